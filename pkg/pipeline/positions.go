package pipeline

import (
	"context"
	"sort"
	"time"

	"f1charts/pkg/charts"
	"f1charts/pkg/model"
)

type PositionsResult struct {
	Image  charts.Image
	Event  model.Event
	Series []charts.PositionSeries
}

// PositionSeries returns the running position of a driver ordered by lap.
// Laps without a position are dropped and a repeated lap keeps its first
// sample.
func PositionSeries(s *model.Session, driver string) []model.PositionSample {
	laps := s.DriverLaps(driver)
	sort.SliceStable(laps, func(i, j int) bool { return laps[i].LapNumber < laps[j].LapNumber })

	samples := []model.PositionSample{}
	last := 0
	for _, l := range laps {
		if l.Position <= 0 || l.LapNumber <= last {
			continue
		}
		samples = append(samples, model.PositionSample{Driver: driver, Lap: l.LapNumber, Position: l.Position})
		last = l.LapNumber
	}
	return samples
}

// Positions renders the running order of the race lap by lap.
func (p *Pipelines) Positions(ctx context.Context, round int) (res *PositionsResult, err error) {
	started := time.Now()
	defer func() { observe(ctx, ChartPositions, started, err) }()

	if err := checkRound(round); err != nil {
		return nil, err
	}
	s, err := p.loadSession(ctx, round, model.SessionRace)
	if err != nil {
		return nil, err
	}

	series := []charts.PositionSeries{}
	for _, d := range s.Drivers {
		samples := PositionSeries(s, d.Abbreviation)
		if len(samples) == 0 {
			continue
		}
		style, err := p.styler.Style(s, d.Abbreviation)
		if err != nil {
			return nil, fail(err, "styling %s", d.Abbreviation)
		}
		series = append(series, charts.PositionSeries{Driver: d.Abbreviation, Samples: samples, Style: style})
	}

	img, err := charts.Positions(eventTitle(s.Event, "Positions"), series)
	if err != nil {
		return nil, charts.AsRenderFailure(err)
	}
	return &PositionsResult{Image: img, Event: s.Event, Series: series}, nil
}
