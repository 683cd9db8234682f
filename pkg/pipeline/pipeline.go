// Package pipeline turns provider data into rendered charts. Each pipeline
// runs once per request with its own drawing context and reports every
// failure as a charts.RenderFailure.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"f1charts/pkg/charts"
	"f1charts/pkg/logging"
	"f1charts/pkg/metrics"
	"f1charts/pkg/model"
	"f1charts/pkg/provider"
	"f1charts/pkg/teams"

	"github.com/pkg/errors"
)

const (
	ChartSpeedMap     = "speed-map"
	ChartTireStrategy = "tire-strategy"
	ChartPositions    = "positions"
	ChartColormap     = "colormap"
)

type Pipelines struct {
	provider provider.Provider
	styler   teams.Styler
	season   int
}

func New(p provider.Provider, styler teams.Styler, season int) *Pipelines {
	return &Pipelines{
		provider: p,
		styler:   styler,
		season:   season,
	}
}

func (p *Pipelines) Season() int {
	return p.season
}

// fail wraps err with a short description of the step that failed.
func fail(err error, format string, args ...any) error {
	return charts.AsRenderFailure(errors.Wrapf(err, format, args...))
}

func checkRound(round int) error {
	if round <= 0 {
		return charts.Failf("round must be a positive integer, got %d", round)
	}
	return nil
}

func (p *Pipelines) loadSession(ctx context.Context, round int, sessionType string) (*model.Session, error) {
	logging.Ctx(ctx).Debug().Int("season", p.season).Int("round", round).Str("session", sessionType).Msg("loading session")
	s, err := p.provider.Session(ctx, p.season, round, sessionType)
	if err != nil {
		return nil, fail(err, "loading session %s of round %d", sessionType, round)
	}
	return s, nil
}

func observe(ctx context.Context, chart string, started time.Time, err error) {
	metrics.ObserveRender(chart, started, err)
	l := logging.Ctx(ctx)
	if err != nil {
		l.Warn().Err(err).Str("chart", chart).Dur("took", time.Since(started)).Msg("chart not rendered")
		return
	}
	l.Info().Str("chart", chart).Dur("took", time.Since(started)).Msg("chart rendered")
}

func eventTitle(e model.Event, suffix string) string {
	return fmt.Sprintf("%s %d - %s", e.Name, e.Year, suffix)
}
