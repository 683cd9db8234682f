package teams

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"f1charts/pkg/model"
)

func entry(season int, team, short, official, def string) model.TeamColorEntry {
	return model.TeamColorEntry{Season: season, Team: team, ShortName: short, Official: official, Default: def}
}

// table holds the official livery colour of every team next to the colour
// the plotting library falls back to, grouped by season in source order.
var table = map[int][]model.TeamColorEntry{
	2024: {
		entry(2024, "Alpine", "Alpine", "#0093cc", "#ff87bc"),
		entry(2024, "Aston Martin", "Aston Martin", "#229971", "#00665f"),
		entry(2024, "Ferrari", "Ferrari", "#e8002d", "#e8002d"),
		entry(2024, "Haas F1 Team", "Haas", "#b6babd", "#b6babd"),
		entry(2024, "Kick Sauber", "Sauber", "#52e252", "#00e700"),
		entry(2024, "McLaren", "McLaren", "#ff8000", "#ff8000"),
		entry(2024, "Mercedes", "Mercedes", "#27f4d2", "#27f4d2"),
		entry(2024, "RB", "RB", "#6692ff", "#364aa9"),
		entry(2024, "Red Bull Racing", "Red Bull", "#3671c6", "#0600ef"),
		entry(2024, "Williams", "Williams", "#64c4ff", "#00a0dd"),
	},
	2023: {
		entry(2023, "Alfa Romeo", "Alfa Romeo", "#c92d4b", "#900000"),
		entry(2023, "AlphaTauri", "AlphaTauri", "#5e8faa", "#2b4562"),
		entry(2023, "Alpine", "Alpine", "#2293d1", "#fe86bc"),
		entry(2023, "Aston Martin", "Aston Martin", "#358c75", "#00665e"),
		entry(2023, "Ferrari", "Ferrari", "#f91536", "#da291c"),
		entry(2023, "Haas F1 Team", "Haas", "#b6babd", "#b6babd"),
		entry(2023, "McLaren", "McLaren", "#f58020", "#ff8000"),
		entry(2023, "Mercedes", "Mercedes", "#6cd3bf", "#00f5d0"),
		entry(2023, "Red Bull Racing", "Red Bull", "#3671c6", "#0600ef"),
		entry(2023, "Williams", "Williams", "#37bedd", "#00a0de"),
	},
	2022: {
		entry(2022, "Alfa Romeo", "Alfa Romeo", "#c92d4b", "#900000"),
		entry(2022, "AlphaTauri", "AlphaTauri", "#5e8faa", "#2b4562"),
		entry(2022, "Alpine", "Alpine", "#2293d1", "#fe86bc"),
		entry(2022, "Aston Martin", "Aston Martin", "#358c75", "#006f62"),
		entry(2022, "Ferrari", "Ferrari", "#f91536", "#dc0000"),
		entry(2022, "Haas F1 Team", "Haas", "#b6babd", "#ffffff"),
		entry(2022, "McLaren", "McLaren", "#f58020", "#ff8700"),
		entry(2022, "Mercedes", "Mercedes", "#6cd3bf", "#00d2be"),
		entry(2022, "Red Bull Racing", "Red Bull", "#3671c6", "#0600ef"),
		entry(2022, "Williams", "Williams", "#37bedd", "#005aff"),
	},
	2021: {
		entry(2021, "Alfa Romeo Racing", "Alfa Romeo", "#b12039", "#900000"),
		entry(2021, "AlphaTauri", "AlphaTauri", "#4e7c9b", "#2b4562"),
		entry(2021, "Alpine", "Alpine", "#2173b8", "#0090ff"),
		entry(2021, "Aston Martin", "Aston Martin", "#2d826d", "#006f62"),
		entry(2021, "Ferrari", "Ferrari", "#ed1c24", "#dc0000"),
		entry(2021, "Haas F1 Team", "Haas", "#b6babd", "#ffffff"),
		entry(2021, "McLaren", "McLaren", "#f58020", "#ff8700"),
		entry(2021, "Mercedes", "Mercedes", "#6cd3bf", "#00d2be"),
		entry(2021, "Red Bull Racing", "Red Bull", "#1e5bc6", "#0600ef"),
		entry(2021, "Williams", "Williams", "#37bedd", "#005aff"),
	},
}

// Seasons returns the known seasons, most recent first.
func Seasons() []int {
	seasons := make([]int, 0, len(table))
	for s := range table {
		seasons = append(seasons, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(seasons)))
	return seasons
}

// SeasonTeams returns a copy of the teams of a season in table order.
func SeasonTeams(season int) ([]model.TeamColorEntry, bool) {
	teams, ok := table[season]
	if !ok {
		return nil, false
	}
	out := make([]model.TeamColorEntry, len(teams))
	copy(out, teams)
	return out, true
}

// Lookup finds a team of a season by its full or short name, ignoring case.
func Lookup(season int, team string) (model.TeamColorEntry, bool) {
	for _, t := range table[season] {
		if strings.EqualFold(t.Team, team) || strings.EqualFold(t.ShortName, team) {
			return t, true
		}
	}
	return model.TeamColorEntry{}, false
}

// ParseHex parses a #rrggbb colour.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
