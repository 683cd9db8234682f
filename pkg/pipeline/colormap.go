package pipeline

import (
	"context"
	"time"

	"f1charts/pkg/charts"
	"f1charts/pkg/teams"
)

type ColormapResult struct {
	Image   charts.Image
	Seasons []int
}

// Colormap renders the static team colour table, most recent season first.
func (p *Pipelines) Colormap(ctx context.Context) (res *ColormapResult, err error) {
	started := time.Now()
	defer func() { observe(ctx, ChartColormap, started, err) }()

	seasons := teams.Seasons()
	rows := make([]charts.SeasonColors, 0, len(seasons))
	for _, season := range seasons {
		t, _ := teams.SeasonTeams(season)
		rows = append(rows, charts.SeasonColors{Season: season, Teams: t})
	}

	img, err := charts.Colormap(rows)
	if err != nil {
		return nil, charts.AsRenderFailure(err)
	}
	return &ColormapResult{Image: img, Seasons: seasons}, nil
}
