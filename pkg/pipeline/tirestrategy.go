package pipeline

import (
	"bytes"
	"context"
	"sort"
	"time"

	"f1charts/pkg/charts"
	"f1charts/pkg/model"

	"github.com/jedib0t/go-pretty/v6/table"
)

type TireStrategyResult struct {
	Image   charts.Image
	Event   model.Event
	Bars    []charts.StintBar
	Summary string
}

// AggregateStints counts the laps of every (driver, stint, compound) group.
// Laps without stint or compound are ignored. Records are ordered by stint,
// groups of the same stint keep the order they first appear in.
func AggregateStints(laps []model.Lap) []model.StintRecord {
	type key struct {
		driver   string
		stint    int
		compound string
	}
	index := map[key]int{}
	records := []model.StintRecord{}
	for _, l := range laps {
		if l.Stint <= 0 || l.Compound == "" {
			continue
		}
		k := key{l.Driver, l.Stint, l.Compound}
		i, ok := index[k]
		if !ok {
			i = len(records)
			index[k] = i
			records = append(records, model.StintRecord{Driver: l.Driver, Stint: l.Stint, Compound: l.Compound})
		}
		records[i].Laps++
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Stint < records[j].Stint })
	return records
}

// TireStrategy renders the tyre stints of every driver of the race.
func (p *Pipelines) TireStrategy(ctx context.Context, round int) (res *TireStrategyResult, err error) {
	started := time.Now()
	defer func() { observe(ctx, ChartTireStrategy, started, err) }()

	if err := checkRound(round); err != nil {
		return nil, err
	}
	s, err := p.loadSession(ctx, round, model.SessionRace)
	if err != nil {
		return nil, err
	}

	drivers := make([]string, len(s.Drivers))
	for i, d := range s.Drivers {
		drivers[i] = d.Abbreviation
	}
	bars, err := charts.LayoutStints(drivers, AggregateStints(s.Laps))
	if err != nil {
		return nil, charts.AsRenderFailure(err)
	}
	img, err := charts.TireStrategy(eventTitle(s.Event, "Tire Strategy"), drivers, bars)
	if err != nil {
		return nil, charts.AsRenderFailure(err)
	}

	return &TireStrategyResult{
		Image:   img,
		Event:   s.Event,
		Bars:    bars,
		Summary: stintSummary(bars),
	}, nil
}

func stintSummary(bars []charts.StintBar) string {
	var b bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&b)
	t.SetStyle(table.StyleRounded)
	t.AppendSeparator()
	t.AppendHeader(table.Row{"Driver", "Stint", "Compound", "Laps", "From", "To"})
	for _, bar := range bars {
		t.AppendRow(table.Row{bar.Driver, bar.Stint, bar.Compound, int(bar.End - bar.Start), int(bar.Start) + 1, int(bar.End)})
	}
	t.Render()
	return b.String()
}
