package charts

import (
	"bytes"
	"encoding/base64"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI of every rendered chart.
const DPI = 150

// Image is a rendered chart ready to be embedded in a page.
type Image struct {
	PNG    []byte
	Width  int
	Height int
}

func (i Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.PNG)
}

func (i Image) DataURI() string {
	return "data:image/png;base64," + i.Base64()
}

// Encode writes the canvas as PNG.
func Encode(c *vgimg.Canvas) (Image, error) {
	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(&buf); err != nil {
		return Image{}, &RenderFailure{Msg: "encoding png: " + err.Error(), Err: err}
	}
	b := c.Image().Bounds()
	return Image{PNG: buf.Bytes(), Width: b.Dx(), Height: b.Dy()}, nil
}

// render creates a fresh canvas for one chart, lets fn draw on it and
// encodes the result. Panics raised by the plotting library while drawing
// are reported as a RenderFailure.
func render(w, h vg.Length, background color.Color, fn func(dc draw.Canvas) error) (img Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = Image{}
			err = Failf("drawing chart: %v", r)
		}
	}()

	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(background))
	if err := fn(draw.New(c)); err != nil {
		return Image{}, AsRenderFailure(err)
	}
	return Encode(c)
}
