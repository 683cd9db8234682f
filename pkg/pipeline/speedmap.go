package pipeline

import (
	"context"
	"fmt"
	"time"

	"f1charts/pkg/charts"
	"f1charts/pkg/helper"
	"f1charts/pkg/model"
)

type SpeedMapRequest struct {
	Round   int
	Session string
	Driver  string
}

type SpeedMapResult struct {
	Image   charts.Image
	Event   model.Event
	Driver  string
	Lap     int
	LapTime string
	Speed   charts.SpeedRange
}

// SpeedMap renders the fastest lap of a driver coloured by speed.
func (p *Pipelines) SpeedMap(ctx context.Context, req SpeedMapRequest) (res *SpeedMapResult, err error) {
	started := time.Now()
	defer func() { observe(ctx, ChartSpeedMap, started, err) }()

	if err := checkRound(req.Round); err != nil {
		return nil, err
	}
	sessionType := req.Session
	if sessionType == "" {
		sessionType = model.SessionRace
	}

	s, err := p.loadSession(ctx, req.Round, sessionType)
	if err != nil {
		return nil, err
	}
	if _, ok := s.DriverByAbbreviation(req.Driver); !ok {
		return nil, charts.Failf("driver %q did not take part in %s", req.Driver, s.Event)
	}
	lap, ok := s.PickFastest(req.Driver)
	if !ok {
		return nil, charts.Failf("no timed lap for %s in %s", req.Driver, s.Event)
	}

	samples, err := p.provider.Telemetry(ctx, p.season, req.Round, sessionType, req.Driver, lap.LapNumber)
	if err != nil {
		return nil, fail(err, "loading telemetry of lap %d of %s", lap.LapNumber, req.Driver)
	}

	title := fmt.Sprintf("%s %d - %s - Speed", s.Event.Name, p.season, req.Driver)
	img, rng, err := charts.TrackMap(title, samples)
	if err != nil {
		return nil, charts.AsRenderFailure(err)
	}

	return &SpeedMapResult{
		Image:   img,
		Event:   s.Event,
		Driver:  req.Driver,
		Lap:     lap.LapNumber,
		LapTime: helper.SecondsToMinutes(lap.LapTime),
		Speed:   rng,
	}, nil
}
