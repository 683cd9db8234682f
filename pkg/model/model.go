package model

import "fmt"

const (
	SessionRace       = "R"
	SessionQualifying = "Q"
	SessionSprint     = "S"
)

type Event struct {
	Year     int    `json:"year"`
	Round    int    `json:"round"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Location string `json:"location"`
}

type Driver struct {
	Number       string `json:"number"`
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"fullName"`
	TeamName     string `json:"teamName"`
	Position     int    `json:"position"`
}

type Lap struct {
	Driver    string  `json:"driver"`
	LapNumber int     `json:"lapNumber"`
	LapTime   float64 `json:"lapTime"` // seconds, 0 when no time was set
	Stint     int     `json:"stint"`
	Compound  string  `json:"compound"`
	Position  int     `json:"position"` // 0 when unknown
	Deleted   bool    `json:"deleted"`
}

type Session struct {
	Event   Event    `json:"event"`
	Type    string   `json:"type"`
	Drivers []Driver `json:"drivers"`
	Laps    []Lap    `json:"laps"`
}

type LapTelemetrySample struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
}

type StintRecord struct {
	Driver   string
	Stint    int
	Compound string
	Laps     int
}

type PositionSample struct {
	Driver   string
	Lap      int
	Position int
}

type TeamColorEntry struct {
	Season    int
	Team      string
	ShortName string
	Official  string
	Default   string
}

func (e Event) String() string {
	return fmt.Sprintf("%s %d", e.Name, e.Year)
}

// DriverByAbbreviation looks up a driver by its three letter code.
func (s *Session) DriverByAbbreviation(abbreviation string) (Driver, bool) {
	for _, d := range s.Drivers {
		if d.Abbreviation == abbreviation {
			return d, true
		}
	}
	return Driver{}, false
}

// DriverLaps returns the laps of a driver in source order.
func (s *Session) DriverLaps(abbreviation string) []Lap {
	laps := []Lap{}
	for _, l := range s.Laps {
		if l.Driver == abbreviation {
			laps = append(laps, l)
		}
	}
	return laps
}

// PickFastest returns the quickest timed, non deleted lap of a driver.
// Ties go to the earlier lap. ok is false when no lap qualifies.
func (s *Session) PickFastest(abbreviation string) (Lap, bool) {
	var best Lap
	found := false
	for _, l := range s.Laps {
		if l.Driver != abbreviation || l.Deleted || l.LapTime <= 0 {
			continue
		}
		if !found || l.LapTime < best.LapTime || (l.LapTime == best.LapTime && l.LapNumber < best.LapNumber) {
			best = l
			found = true
		}
	}
	return best, found
}

// TeamMates returns the abbreviations of the drivers of a team in source order.
func (s *Session) TeamMates(team string) []string {
	mates := []string{}
	for _, d := range s.Drivers {
		if d.TeamName == team {
			mates = append(mates, d.Abbreviation)
		}
	}
	return mates
}
