package webserver

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"f1charts/pkg/charts"
	"f1charts/pkg/logging"
	"f1charts/pkg/pipeline"
)

type navLink struct {
	Route  string
	Label  string
	Active bool
}

type formValues struct {
	Round   string
	Session string
	Driver  string
}

type page struct {
	Title   string
	Route   string
	Season  int
	Nav     []navLink
	Form    formValues
	Image   template.URL
	Caption string
	Summary string
	Error   string
}

var navigation = []navLink{
	{Route: routeSpeedMap, Label: "Speed map"},
	{Route: routeTireStrategy, Label: "Tire strategy"},
	{Route: routePositions, Label: "Positions"},
	{Route: routeColormap, Label: "Team colours"},
}

func (m *Manager) newPage(r *http.Request, title, route string) *page {
	nav := make([]navLink, len(navigation))
	for i, n := range navigation {
		n.Active = n.Route == route
		nav[i] = n
	}
	return &page{
		Title:  title,
		Route:  route,
		Season: m.pipelines.Season(),
		Nav:    nav,
		Form: formValues{
			Round:   r.FormValue(fieldRound),
			Session: r.FormValue(fieldSession),
			Driver:  r.FormValue(fieldDriver),
		},
	}
}

func (p *page) setImage(img charts.Image) {
	p.Image = template.URL(img.DataURI())
}

func (p *page) fail(r *http.Request, err error) {
	f := charts.AsRenderFailure(err)
	logging.Ctx(r.Context()).Debug().Str("page", p.Route).Str("reason", f.Msg).Msg("page rendered without chart")
	p.Image = ""
	p.Error = f.Error()
}

func (m *Manager) render(w http.ResponseWriter, r *http.Request, t *template.Template, p *page) {
	var b bytes.Buffer
	if err := t.Execute(&b, p); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("page", p.Route).Msg("executing template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = b.WriteTo(w)
}

func (m *Manager) handleSpeedMap(w http.ResponseWriter, r *http.Request) {
	p := m.newPage(r, "Track speed map", routeSpeedMap)
	if wantsChart(r) {
		if err := m.speedMap(r, p); err != nil {
			p.fail(r, err)
		}
	}
	m.render(w, r, tmplSpeedMap, p)
}

func (m *Manager) speedMap(r *http.Request, p *page) error {
	f, err := parseSpeedMapForm(r)
	if err != nil {
		return err
	}
	res, err := m.pipelines.SpeedMap(r.Context(), pipeline.SpeedMapRequest{
		Round:   f.Round,
		Session: f.Session,
		Driver:  f.Driver,
	})
	if err != nil {
		return err
	}
	p.setImage(res.Image)
	p.Caption = fmt.Sprintf("%s, fastest lap %d in %s. Speed %.0f to %.0f km/h.",
		res.Event, res.Lap, res.LapTime, res.Speed.Min, res.Speed.Max)
	return nil
}

func (m *Manager) handleTireStrategy(w http.ResponseWriter, r *http.Request) {
	p := m.newPage(r, "Tire strategy", routeTireStrategy)
	if wantsChart(r) {
		if err := m.tireStrategy(r, p); err != nil {
			p.fail(r, err)
		}
	}
	m.render(w, r, tmplRound, p)
}

func (m *Manager) tireStrategy(r *http.Request, p *page) error {
	f, err := parseRoundForm(r)
	if err != nil {
		return err
	}
	res, err := m.pipelines.TireStrategy(r.Context(), f.Round)
	if err != nil {
		return err
	}
	p.setImage(res.Image)
	p.Summary = res.Summary
	return nil
}

func (m *Manager) handlePositions(w http.ResponseWriter, r *http.Request) {
	p := m.newPage(r, "Positions", routePositions)
	if wantsChart(r) {
		if err := m.positions(r, p); err != nil {
			p.fail(r, err)
		}
	}
	m.render(w, r, tmplRound, p)
}

func (m *Manager) positions(r *http.Request, p *page) error {
	f, err := parseRoundForm(r)
	if err != nil {
		return err
	}
	res, err := m.pipelines.Positions(r.Context(), f.Round)
	if err != nil {
		return err
	}
	p.setImage(res.Image)
	p.Caption = fmt.Sprintf("%s, %d drivers.", res.Event, len(res.Series))
	return nil
}

func (m *Manager) handleColormap(w http.ResponseWriter, r *http.Request) {
	p := m.newPage(r, "Team colours", routeColormap)
	res, err := m.pipelines.Colormap(r.Context())
	if err != nil {
		p.fail(r, err)
	} else {
		p.setImage(res.Image)
		p.Caption = fmt.Sprintf("Seasons %s. Official colour against the plotting default.", strings.Trim(fmt.Sprint(res.Seasons), "[]"))
	}
	m.render(w, r, tmplColormap, p)
}
