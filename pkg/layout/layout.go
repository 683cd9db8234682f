package layout

import (
	"image"
	"image/color"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
)

type Point struct {
	X float64
	Y float64
}

// Stroke is one coloured piece of the racing line.
type Stroke struct {
	From  Point
	To    Point
	Color color.Color
}

const (
	// margin around the track, in pixels
	margin        = 12
	BackdropWidth = 6.0
	StrokeWidth   = 4.0
)

var BackdropColor = color.RGBA{0x00, 0x00, 0x00, 0xff}

// transform maps track coordinates into the pixel space of rect keeping the
// aspect ratio and centring the track.
type transform struct {
	minX, minY float64
	scale      float64
	offX, offY float64
}

func (t transform) apply(p Point) (float64, float64) {
	return (p.X-t.minX)*t.scale + t.offX, (p.Y-t.minY)*t.scale + t.offY
}

func getTrackSize(points []Point, rect image.Rectangle) transform {
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	minX := math.Inf(1)
	minY := math.Inf(1)
	for _, p := range points {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
	}

	width := float64(rect.Dx()) - 2*margin
	height := float64(rect.Dy()) - 2*margin
	spanX := maxX - minX
	spanY := maxY - minY

	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(width/spanX, height/spanY)
	case spanX > 0:
		scale = width / spanX
	case spanY > 0:
		scale = height / spanY
	}
	if scale <= 0 {
		scale = 1
	}

	return transform{
		minX:  minX,
		minY:  minY,
		scale: scale,
		offX:  margin + (width-spanX*scale)/2,
		offY:  margin + (height-spanY*scale)/2,
	}
}

// DrawTrack rasterises a lap onto a transparent width x height image: a
// thick backdrop line through every point first, then each stroke in its
// own colour.
func DrawTrack(width, height int, points []Point, strokes []Stroke) *image.RGBA {
	rect := image.Rect(0, 0, width, height)
	dest := image.NewRGBA(rect)
	if len(points) == 0 {
		return dest
	}
	gc := draw2dimg.NewGraphicContext(dest)
	t := getTrackSize(points, rect)

	gc.Save()
	invertY(gc, rect)
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)

	drawBackdrop(gc, t, points)
	for _, s := range strokes {
		drawStroke(gc, t, s)
	}
	gc.Restore()
	return dest
}

// Flips the image around the Y axis so the track is not mirrored.
func invertY(gc draw2d.GraphicContext, rect image.Rectangle) {
	gc.Translate(0, float64(rect.Max.Y))
	gc.Scale(1.0, -1.0)
}

func drawBackdrop(gc draw2d.GraphicContext, t transform, points []Point) {
	gc.SetStrokeColor(BackdropColor)
	gc.SetLineWidth(BackdropWidth)
	for i, p := range points {
		x, y := t.apply(p)
		if i == 0 {
			gc.MoveTo(x, y)
		} else {
			gc.LineTo(x, y)
		}
	}
	gc.Stroke()
}

func drawStroke(gc draw2d.GraphicContext, t transform, s Stroke) {
	gc.SetStrokeColor(s.Color)
	gc.SetLineWidth(StrokeWidth)
	x0, y0 := t.apply(s.From)
	x1, y1 := t.apply(s.To)
	gc.MoveTo(x0, y0)
	gc.LineTo(x1, y1)
	gc.Stroke()
}
