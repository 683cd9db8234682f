package charts

import (
	"bytes"
	"image/color"
	"testing"

	"f1charts/pkg/model"
	"f1charts/pkg/teams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func positionSeries() []PositionSeries {
	mk := func(driver string, positions ...int) PositionSeries {
		s := PositionSeries{Driver: driver, Style: teams.DriverStyle{Color: color.RGBA{0x36, 0x71, 0xc6, 0xff}}}
		for i, p := range positions {
			s.Samples = append(s.Samples, model.PositionSample{Driver: driver, Lap: i + 1, Position: p})
		}
		return s
	}
	a := mk("VER", 1, 1, 1, 2, 1)
	b := mk("PER", 2, 3, 2, 1, 2)
	b.Style.Dashed = true
	return []PositionSeries{a, b}
}

func TestPositionSeriesXYs(t *testing.T) {
	for _, s := range positionSeries() {
		xys := s.XYs()
		assert.Len(t, xys, len(s.Samples))
		for i := 1; i < len(xys); i++ {
			assert.Greater(t, xys[i].X, xys[i-1].X)
		}
	}
}

func TestPositions(t *testing.T) {
	a, err := Positions("positions", positionSeries())
	require.NoError(t, err)
	b, err := Positions("positions", positionSeries())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(a.PNG, b.PNG))
	assert.Equal(t, 1200, a.Width)
	assert.Equal(t, 735, a.Height)
}

func TestPositionsEmpty(t *testing.T) {
	_, err := Positions("positions", nil)
	assert.Error(t, err)
}

func TestPositionsAxis(t *testing.T) {
	p, legend, err := positionsPlot("positions", positionSeries())
	require.NoError(t, err)
	require.NotNil(t, legend)

	assert.IsType(t, plot.InvertedScale{}, p.Y.Scale)
	assert.Equal(t, 0.5, p.Y.Min)
	assert.Equal(t, 20.5, p.Y.Max)
	assert.Greater(t, p.Y.Scale.Normalize(p.Y.Min, p.Y.Max, 1), p.Y.Scale.Normalize(p.Y.Min, p.Y.Max, 20), "P1 is drawn on top")

	values := []float64{}
	for _, tick := range p.Y.Tick.Marker.Ticks(p.Y.Min, p.Y.Max) {
		values = append(values, tick.Value)
	}
	assert.Equal(t, []float64{1, 5, 10, 15, 20}, values)
	assert.Equal(t, "Lap", p.X.Label.Text)
	assert.Equal(t, "Position", p.Y.Label.Text)
}

func TestPositionsAxisGrowsPastTwenty(t *testing.T) {
	series := positionSeries()
	series[1].Samples[0].Position = 22

	p, _, err := positionsPlot("positions", series)
	require.NoError(t, err)
	assert.Equal(t, 22.5, p.Y.Max)
}
