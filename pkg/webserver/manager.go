// Package webserver serves the chart pages.
package webserver

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"f1charts/pkg/logging"
	"f1charts/pkg/pipeline"

	"github.com/gorilla/mux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	routeSpeedMap     = "/"
	routeTireStrategy = "/tire-strategy"
	routePositions    = "/positions"
	routeColormap     = "/colormap"
	routeMetrics      = "/metrics"
	routeHealth       = "/healthz"
)

type Manager struct {
	r         *mux.Router
	handler   http.Handler
	pipelines *pipeline.Pipelines
}

func NewManager(p *pipeline.Pipelines) *Manager {
	m := &Manager{
		r:         mux.NewRouter(),
		pipelines: p,
	}

	m.rootHandlers()
	// wrapped outside the router so unmatched requests are logged and counted too
	m.handler = requestLogger(m.requestMetrics(m.r))
	return m
}

func (m *Manager) router() *mux.Router {
	return m.r
}

// Handler returns the router wrapped in the request logging and metrics
// middleware.
func (m *Manager) Handler() http.Handler {
	return m.handler
}

func (m *Manager) rootHandlers() {
	m.r.HandleFunc(routeSpeedMap, m.handleSpeedMap).Methods(http.MethodGet, http.MethodPost)
	m.r.HandleFunc(routeTireStrategy, m.handleTireStrategy).Methods(http.MethodGet, http.MethodPost)
	m.r.HandleFunc(routePositions, m.handlePositions).Methods(http.MethodGet, http.MethodPost)
	m.r.HandleFunc(routeColormap, m.handleColormap).Methods(http.MethodGet)

	m.r.Handle(routeMetrics, promhttp.Handler()).Methods(http.MethodGet)
	m.r.HandleFunc(routeHealth, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
}

// routeTable lists every registered route with its methods.
func (m *Manager) routeTable() string {
	var b bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&b)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Route", "Regexp", "Methods"})
	_ = m.router().Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		pathRegexp, _ := route.GetPathRegexp()
		methods, _ := route.GetMethods()
		t.AppendRow(table.Row{pathTemplate, pathRegexp, strings.Join(methods, ",")})
		return nil
	})
	t.Render()
	return b.String()
}

func (m *Manager) Debug() {
	fmt.Print(m.routeTable())
}

// Serve listens on addr until the process receives SIGINT.
func (m *Manager) Serve(addr string) {
	srv := &http.Server{
		Addr: addr,
		// Good practice to set timeouts to avoid Slowloris attacks.
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      m.Handler(),
	}

	go func() {
		logging.Info().Str("address", addr).Msg("webserver listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("webserver stopped")
		}
	}()

	c := make(chan os.Signal, 1)
	// We'll accept graceful shutdowns when quit via SIGINT (Ctrl+C)
	// SIGKILL, SIGQUIT or SIGTERM (Ctrl+/) will not be caught.
	signal.Notify(c, os.Interrupt)

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Doesn't block if no connections, but will otherwise wait
	// until the timeout deadline.
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn().Err(err).Msg("webserver shutdown")
	}
	logging.Info().Msg("webserver shutting down")
}
