package charts

import (
	"image/color"
	"math"

	"f1charts/pkg/layout"
	"f1charts/pkg/model"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	TrackMapWidth  = 3.56 * vg.Inch
	TrackMapHeight = 2.2 * vg.Inch

	colorBarHeight = 0.55 * vg.Inch
)

// plasma like ramp with strictly increasing luminance
var speedControls = []color.Color{
	color.NRGBA{R: 0x0d, G: 0x08, B: 0x87, A: 0xff},
	color.NRGBA{R: 0x7e, G: 0x03, B: 0xa8, A: 0xff},
	color.NRGBA{R: 0xcc, G: 0x47, B: 0x78, A: 0xff},
	color.NRGBA{R: 0xf8, G: 0x95, B: 0x40, A: 0xff},
	color.NRGBA{R: 0xf0, G: 0xf9, B: 0x21, A: 0xff},
}

// Segment joins two consecutive telemetry samples.
type Segment struct {
	From model.LapTelemetrySample
	To   model.LapTelemetrySample
}

type SpeedRange struct {
	Min float64
	Max float64
}

// BuildSegments returns the n-1 segments joining consecutive samples.
func BuildSegments(samples []model.LapTelemetrySample) ([]Segment, error) {
	if len(samples) < 2 {
		return nil, Failf("lap has %d telemetry samples, at least 2 are needed to draw a path", len(samples))
	}
	segments := make([]Segment, len(samples)-1)
	for i := range segments {
		segments[i] = Segment{From: samples[i], To: samples[i+1]}
	}
	return segments, nil
}

// NormalizeSpeeds maps every speed linearly onto [0,1] using the lap's own
// minimum and maximum. A lap at constant speed maps to 0.5.
func NormalizeSpeeds(samples []model.LapTelemetrySample) ([]float64, SpeedRange) {
	if len(samples) == 0 {
		return nil, SpeedRange{}
	}
	r := SpeedRange{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, s := range samples {
		r.Min = math.Min(r.Min, s.Speed)
		r.Max = math.Max(r.Max, s.Speed)
	}

	norm := make([]float64, len(samples))
	span := r.Max - r.Min
	for i, s := range samples {
		if span == 0 {
			norm[i] = 0.5
			continue
		}
		norm[i] = (s.Speed - r.Min) / span
	}
	return norm, r
}

func speedPalette(min, max float64) (palette.ColorMap, error) {
	cm, err := moreland.NewLuminance(speedControls)
	if err != nil {
		return nil, errors.Wrap(err, "building speed palette")
	}
	cm.SetMin(min)
	cm.SetMax(max)
	return cm, nil
}

// TrackMap draws the lap as a path coloured by speed with a horizontal
// colour scale underneath.
func TrackMap(title string, samples []model.LapTelemetrySample) (Image, SpeedRange, error) {
	segments, err := BuildSegments(samples)
	if err != nil {
		return Image{}, SpeedRange{}, err
	}
	norm, rng := NormalizeSpeeds(samples)

	cm, err := speedPalette(0, 1)
	if err != nil {
		return Image{}, rng, AsRenderFailure(err)
	}
	strokes := make([]layout.Stroke, len(segments))
	for i, s := range segments {
		c, err := cm.At((norm[i] + norm[i+1]) / 2)
		if err != nil {
			return Image{}, rng, AsRenderFailure(errors.Wrapf(err, "colouring segment %d", i))
		}
		strokes[i] = layout.Stroke{
			From:  layout.Point{X: s.From.X, Y: s.From.Y},
			To:    layout.Point{X: s.To.X, Y: s.To.Y},
			Color: c,
		}
	}
	outline := make([]layout.Point, len(samples))
	for i, s := range samples {
		outline[i] = layout.Point{X: s.X, Y: s.Y}
	}

	legendMin, legendMax := rng.Min, rng.Max
	if legendMin == legendMax {
		legendMin -= 0.5
		legendMax += 0.5
	}
	legend, err := speedPalette(legendMin, legendMax)
	if err != nil {
		return Image{}, rng, AsRenderFailure(err)
	}

	img, err := render(TrackMapWidth, TrackMapHeight, color.White, func(dc draw.Canvas) error {
		height := dc.Max.Y - dc.Min.Y
		top := draw.Crop(dc, 0, 0, colorBarHeight, 0)
		bottom := draw.Crop(dc, 0.3*vg.Inch, -0.3*vg.Inch, 0, colorBarHeight-height)

		p := plot.New()
		p.Title.Text = title
		p.Title.TextStyle.Font.Size = vg.Points(7)
		p.HideAxes()
		p.X.Padding = 0
		p.Y.Padding = 0
		p.Add(&trackImage{outline: outline, strokes: strokes})
		p.Draw(top)

		cb := plot.New()
		cb.Add(&plotter.ColorBar{ColorMap: legend})
		cb.HideY()
		cb.Y.Padding = 0
		cb.X.Label.Text = "Speed [km/h]"
		cb.X.Label.TextStyle.Font.Size = vg.Points(6)
		cb.X.Tick.Label.Font.Size = vg.Points(5)
		cb.Draw(bottom)
		return nil
	})
	return img, rng, err
}

// trackImage rasterises the lap at the exact pixel size of the data area
// it is given.
type trackImage struct {
	outline []layout.Point
	strokes []layout.Stroke
}

func (t *trackImage) Plot(c draw.Canvas, _ *plot.Plot) {
	w := int(math.Round((c.Max.X - c.Min.X).Dots(DPI)))
	h := int(math.Round((c.Max.Y - c.Min.Y).Dots(DPI)))
	if w <= 0 || h <= 0 {
		return
	}
	c.DrawImage(c.Rectangle, layout.DrawTrack(w, h, t.outline, t.strokes))
}
