package charts

import (
	"image/color"
	"math"

	"f1charts/pkg/model"
	"f1charts/pkg/teams"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	TireStrategyWidth  = 10 * vg.Inch
	TireStrategyHeight = 6 * vg.Inch

	barHeight = 0.8
)

// CompoundColors is the fixed tyre compound palette.
var CompoundColors = map[string]string{
	"SOFT":         "#FF3333",
	"MEDIUM":       "#FFFF66",
	"HARD":         "#0033FF",
	"INTERMEDIATE": "#33CC33",
	"WET":          "#3399FF",
}

func CompoundColor(compound string) (color.RGBA, error) {
	hex, ok := CompoundColors[compound]
	if !ok {
		return color.RGBA{}, Failf("unknown tyre compound %q", compound)
	}
	c, err := teams.ParseHex(hex)
	if err != nil {
		return color.RGBA{}, AsRenderFailure(err)
	}
	return c, nil
}

// StintBar is one horizontal segment of a driver's strategy, covering the
// laps [Start, End).
type StintBar struct {
	Row      int
	Driver   string
	Stint    int
	Compound string
	Start    float64
	End      float64
	Color    color.RGBA
}

// LayoutStints places every stint of every driver one after the other. Rows
// follow the order of drivers; stints of a driver keep the order they are
// given in.
func LayoutStints(drivers []string, stints []model.StintRecord) ([]StintBar, error) {
	bars := []StintBar{}
	for row, driver := range drivers {
		offset := 0.0
		for _, s := range stints {
			if s.Driver != driver {
				continue
			}
			if s.Laps <= 0 {
				return nil, Failf("stint %d of %s has %d laps", s.Stint, driver, s.Laps)
			}
			c, err := CompoundColor(s.Compound)
			if err != nil {
				return nil, Failf("unknown tyre compound %q in stint %d of %s", s.Compound, s.Stint, driver)
			}
			bars = append(bars, StintBar{
				Row:      row,
				Driver:   driver,
				Stint:    s.Stint,
				Compound: s.Compound,
				Start:    offset,
				End:      offset + float64(s.Laps),
				Color:    c,
			})
			offset += float64(s.Laps)
		}
	}
	return bars, nil
}

// TireStrategy draws one row per driver, first driver on top.
func TireStrategy(title string, drivers []string, bars []StintBar) (Image, error) {
	if len(drivers) == 0 {
		return Image{}, Failf("no drivers to draw")
	}
	return render(TireStrategyWidth, TireStrategyHeight, color.White, func(dc draw.Canvas) error {
		tireStrategyPlot(title, drivers, bars).Draw(dc)
		return nil
	})
}

func tireStrategyPlot(title string, drivers []string, bars []StintBar) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Laps"
	p.Add(&stintBars{bars: bars, rows: len(drivers)})
	p.NominalY(drivers...)
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	return p
}

type stintBars struct {
	bars []StintBar
	rows int
}

func (s *stintBars) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	edge := draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)}
	for _, b := range s.bars {
		x0, x1 := trX(b.Start), trX(b.End)
		y0 := trY(float64(b.Row) - barHeight/2)
		y1 := trY(float64(b.Row) + barHeight/2)
		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		c.FillPolygon(b.Color, pts)
		c.StrokeLines(edge, append(pts, pts[0]))
	}
}

func (s *stintBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmax = 1
	for _, b := range s.bars {
		xmax = math.Max(xmax, b.End)
	}
	return 0, xmax, -0.5, float64(s.rows) - 0.5
}
