package charts

import (
	"fmt"
	"image/color"

	"f1charts/pkg/model"
	"f1charts/pkg/teams"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	ColormapWidth     = 10 * vg.Inch
	ColormapRowHeight = 3 * vg.Inch

	bandHeight = 0.9
)

var textGrey = color.RGBA{0x78, 0x78, 0x78, 0xff}

var bandTicks = plot.ConstantTicks([]plot.Tick{
	{Value: 1, Label: "official"},
	{Value: 2, Label: "default"},
})

// SeasonColors is one row of the reference chart.
type SeasonColors struct {
	Season int
	Teams  []model.TeamColorEntry
}

type swatch struct {
	x        float64
	official color.RGBA
	fallback color.RGBA
}

// Colormap draws, for every season, the official and the fallback colour of
// every team side by side.
func Colormap(seasons []SeasonColors) (Image, error) {
	if len(seasons) == 0 {
		return Image{}, Failf("no seasons to draw")
	}

	rows := make([][]swatch, len(seasons))
	for i, s := range seasons {
		if len(s.Teams) == 0 {
			return Image{}, Failf("season %d has no teams", s.Season)
		}
		for j, t := range s.Teams {
			official, err := teams.ParseHex(t.Official)
			if err != nil {
				return Image{}, AsRenderFailure(errors.Wrapf(err, "%d %s official colour", s.Season, t.Team))
			}
			fallback, err := teams.ParseHex(t.Default)
			if err != nil {
				return Image{}, AsRenderFailure(errors.Wrapf(err, "%d %s default colour", s.Season, t.Team))
			}
			rows[i] = append(rows[i], swatch{x: float64(j + 1), official: official, fallback: fallback})
		}
	}

	height := ColormapRowHeight * vg.Length(len(seasons))
	return render(ColormapWidth, height, color.Transparent, func(dc draw.Canvas) error {
		plots := make([][]*plot.Plot, len(seasons))
		for i, s := range seasons {
			plots[i] = []*plot.Plot{seasonPlot(s, rows[i])}
		}
		tiles := draw.Tiles{
			Rows:      len(seasons),
			Cols:      1,
			PadY:      vg.Points(12),
			PadTop:    vg.Points(6),
			PadBottom: vg.Points(6),
			PadLeft:   vg.Points(6),
			PadRight:  vg.Points(12),
		}
		canvases := plot.Align(plots, tiles, dc)
		for i := range plots {
			plots[i][0].Draw(canvases[i][0])
		}
		return nil
	})
}

func seasonPlot(s SeasonColors, row []swatch) *plot.Plot {
	p := plot.New()
	p.BackgroundColor = nil
	p.Title.Text = fmt.Sprint(s.Season)
	p.Title.TextStyle.Color = textGrey

	ticks := make([]plot.Tick, len(s.Teams))
	for j, t := range s.Teams {
		ticks[j] = plot.Tick{Value: float64(j + 1), Label: t.ShortName}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = bandTicks
	for _, a := range []*plot.Axis{&p.X, &p.Y} {
		a.Color = textGrey
		a.Tick.Color = textGrey
		a.Tick.Label.Color = textGrey
	}

	p.Add(&swatches{row: row})
	p.X.Min, p.X.Max = 0.5, float64(len(row))+0.5
	p.Y.Min, p.Y.Max = 0.5, 2.5
	p.X.Padding = 0
	p.Y.Padding = 0
	return p
}

// swatches draws the two colour bands of every team of one season.
type swatches struct {
	row []swatch
}

func (s *swatches) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	band := func(x, y float64, clr color.Color) {
		x0, x1 := trX(x-0.5), trX(x+0.5)
		y0, y1 := trY(y-bandHeight/2), trY(y+bandHeight/2)
		c.FillPolygon(clr, []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
	}
	for _, sw := range s.row {
		band(sw.x, 1, sw.official)
		band(sw.x, 2, sw.fallback)
	}
}

func (s *swatches) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0.5, float64(len(s.row)) + 0.5, 0.5, 2.5
}
