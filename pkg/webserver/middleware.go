package webserver

import (
	"net/http"
	"strconv"
	"time"

	"f1charts/pkg/logging"
	"f1charts/pkg/metrics"

	"github.com/gorilla/mux"
)

const headerRequestID = "X-Request-ID"

// statusRecorder keeps the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestLogger tags the request context with a request ID, echoes it in the
// response and logs the request once it is served.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = logging.GenerateRequestID()
		}
		w.Header().Set(headerRequestID, id)
		ctx := logging.ContextWithRequestID(r.Context(), id)

		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		logging.Ctx(ctx).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(started)).
			Msg("request served")
	})
}

const routeUnmatched = "unmatched"

// routeLabel returns the path template of the route serving r. Requests no
// route accepts share one label.
func (m *Manager) routeLabel(r *http.Request) string {
	var match mux.RouteMatch
	if m.r.Match(r, &match) && match.Route != nil {
		if tpl, err := match.Route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return routeUnmatched
}

func (m *Manager) requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := m.routeLabel(r)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.HTTPRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
	})
}
