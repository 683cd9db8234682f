package webserver

import (
	"net/http"
	"strconv"
	"strings"

	"f1charts/pkg/charts"
	"f1charts/pkg/model"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	fieldRound   = "wknd"
	fieldSession = "ses"
	fieldDriver  = "driver"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type roundForm struct {
	Round int `validate:"gt=0"`
}

type speedMapForm struct {
	Round   int    `validate:"gt=0"`
	Session string `validate:"required"`
	Driver  string `validate:"required"`
}

// wantsChart reports whether the request asks for a chart rather than the
// bare form.
func wantsChart(r *http.Request) bool {
	return r.Method == http.MethodPost || r.URL.Query().Has(fieldRound)
}

func parseRound(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.FormValue(fieldRound))
	if raw == "" {
		return 0, charts.Failf("the weekend number is required")
	}
	round, err := strconv.Atoi(raw)
	if err != nil {
		return 0, charts.Failf("weekend must be a positive integer, got %q", raw)
	}
	return round, nil
}

func formError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return charts.AsRenderFailure(err)
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Round":
		return charts.Failf("weekend must be a positive integer, got %v", fe.Value())
	default:
		return charts.Failf("%s is required", strings.ToLower(fe.Field()))
	}
}

func parseRoundForm(r *http.Request) (roundForm, error) {
	round, err := parseRound(r)
	if err != nil {
		return roundForm{}, err
	}
	f := roundForm{Round: round}
	if err := validate.Struct(f); err != nil {
		return roundForm{}, formError(err)
	}
	return f, nil
}

func parseSpeedMapForm(r *http.Request) (speedMapForm, error) {
	round, err := parseRound(r)
	if err != nil {
		return speedMapForm{}, err
	}
	f := speedMapForm{
		Round:   round,
		Session: r.FormValue(fieldSession),
		Driver:  r.FormValue(fieldDriver),
	}
	if f.Session == "" {
		f.Session = model.SessionRace
	}
	if err := validate.Struct(f); err != nil {
		return speedMapForm{}, formError(err)
	}
	return f, nil
}
