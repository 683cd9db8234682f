package charts

import (
	"image/color"
	"math"

	"f1charts/pkg/model"
	"f1charts/pkg/teams"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	PositionsWidth  = 8.0 * vg.Inch
	PositionsHeight = 4.9 * vg.Inch

	legendWidth = 0.9 * vg.Inch
)

var positionTicks = plot.ConstantTicks([]plot.Tick{
	{Value: 1, Label: "1"},
	{Value: 5, Label: "5"},
	{Value: 10, Label: "10"},
	{Value: 15, Label: "15"},
	{Value: 20, Label: "20"},
})

// PositionSeries is the race of one driver, samples ordered by lap.
type PositionSeries struct {
	Driver  string
	Samples []model.PositionSample
	Style   teams.DriverStyle
}

func (s PositionSeries) XYs() plotter.XYs {
	xys := make(plotter.XYs, len(s.Samples))
	for i, p := range s.Samples {
		xys[i].X = float64(p.Lap)
		xys[i].Y = float64(p.Position)
	}
	return xys
}

// Positions draws one line per driver with P1 on top and the legend to the
// right of the plot area.
func Positions(title string, series []PositionSeries) (Image, error) {
	if len(series) == 0 {
		return Image{}, Failf("no position data to draw")
	}

	p, legend, err := positionsPlot(title, series)
	if err != nil {
		return Image{}, err
	}

	return render(PositionsWidth, PositionsHeight, color.White, func(dc draw.Canvas) error {
		width := dc.Max.X - dc.Min.X
		plotArea := draw.Crop(dc, 0, -legendWidth, 0, 0)
		legendArea := draw.Crop(dc, width-legendWidth+vg.Points(6), 0, 0, 0)

		p.Draw(plotArea)
		legend.Draw(legendArea)
		return nil
	})
}

// positionsPlot builds the plot and its legend. The legend is drawn on its
// own strip so it stays outside the data area.
func positionsPlot(title string, series []PositionSeries) (*plot.Plot, *plot.Legend, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Lap"
	p.Y.Label.Text = "Position"

	legend := plot.NewLegend()
	legend.Top = true
	legend.Left = true
	legend.TextStyle.Font.Size = vg.Points(7)

	maxPosition := 20.0
	for _, s := range series {
		line, err := plotter.NewLine(s.XYs())
		if err != nil {
			return nil, nil, AsRenderFailure(errors.Wrapf(err, "positions of %s", s.Driver))
		}
		line.Color = s.Style.Color
		line.Width = vg.Points(1.2)
		if s.Style.Dashed {
			line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		p.Add(line)
		legend.Add(s.Driver, line)
		for _, sample := range s.Samples {
			maxPosition = math.Max(maxPosition, float64(sample.Position))
		}
	}

	p.Y.Min = 0.5
	p.Y.Max = maxPosition + 0.5
	p.Y.Tick.Marker = positionTicks
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	return p, &legend, nil
}
