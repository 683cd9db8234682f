package teams

import (
	"image/color"

	"f1charts/pkg/model"

	"github.com/pkg/errors"
)

type DriverStyle struct {
	Color  color.RGBA
	Dashed bool
}

// Styler assigns every driver of a session a stable line style.
type Styler interface {
	Style(s *model.Session, abbreviation string) (DriverStyle, error)
}

// SessionStyler colours drivers with their team's official colour. The
// second driver of a team gets a dashed line.
type SessionStyler struct{}

func NewSessionStyler() *SessionStyler {
	return &SessionStyler{}
}

func (SessionStyler) Style(s *model.Session, abbreviation string) (DriverStyle, error) {
	driver, ok := s.DriverByAbbreviation(abbreviation)
	if !ok {
		return DriverStyle{}, errors.Errorf("driver %q is not part of the session", abbreviation)
	}
	team, ok := Lookup(s.Event.Year, driver.TeamName)
	if !ok {
		return DriverStyle{}, errors.Errorf("no colour for team %q in %d", driver.TeamName, s.Event.Year)
	}
	c, err := ParseHex(team.Official)
	if err != nil {
		return DriverStyle{}, errors.Wrapf(err, "team %q", team.Team)
	}

	style := DriverStyle{Color: c}
	for i, mate := range s.TeamMates(driver.TeamName) {
		if mate == abbreviation {
			style.Dashed = i > 0
			break
		}
	}
	return style, nil
}
