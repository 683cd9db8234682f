package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"f1charts/pkg/model"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockServer(t *testing.T) (*httptest.Server, *int64) {
	t.Helper()
	var hits int64
	h := NewMockHandler()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestClientSession(t *testing.T) {
	srv, _ := newMockServer(t)
	c := NewClient(srv.URL + "/")

	s, err := c.Session(context.Background(), 2024, 1, model.SessionRace)
	require.NoError(t, err)

	want := MockSession(2024, 1, model.SessionRace)
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Session mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Bahrain Grand Prix", s.Event.Name)
	assert.Len(t, s.Drivers, 20)
}

func TestClientSessionNotFound(t *testing.T) {
	srv, _ := newMockServer(t)
	c := NewClient(srv.URL)

	_, err := c.Session(context.Background(), 2024, 99, model.SessionRace)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "404")
}

func TestClientTelemetry(t *testing.T) {
	srv, _ := newMockServer(t)
	c := NewClient(srv.URL)

	samples, err := c.Telemetry(context.Background(), 2024, 3, model.SessionRace, "VER", 10)
	require.NoError(t, err)
	assert.Len(t, samples, mockTelemetrySample)

	_, err = c.Telemetry(context.Background(), 2024, 3, model.SessionRace, "XXX", 10)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Session(context.Background(), 2024, 1, model.SessionRace)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "error getting session: 502")
}

func TestClientFillsMissingAbbreviation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"event":{"year":2024,"round":1,"name":"Test"},"type":"R","drivers":[{"fullName":"Max Verstappen","teamName":"Red Bull Racing"}],"laps":[]}`))
	}))
	defer srv.Close()

	s, err := NewClient(srv.URL).Session(context.Background(), 2024, 1, model.SessionRace)
	require.NoError(t, err)
	assert.Equal(t, "MVE", s.Drivers[0].Abbreviation)
}

func TestClientUsesCache(t *testing.T) {
	srv, hits := newMockServer(t)
	cache, err := NewCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer cache.Close()

	c := NewClient(srv.URL, WithCache(cache))
	first, err := c.Session(context.Background(), 2024, 2, model.SessionRace)
	require.NoError(t, err)
	second, err := c.Session(context.Background(), 2024, 2, model.SessionRace)
	require.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(hits))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached session differs (-first +second):\n%s", diff)
	}
}

func TestClientDoesNotCacheFailures(t *testing.T) {
	srv, hits := newMockServer(t)
	cache, err := NewCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer cache.Close()

	c := NewClient(srv.URL, WithCache(cache))
	for i := 0; i < 2; i++ {
		_, err := c.Session(context.Background(), 2024, 99, model.SessionRace)
		assert.Error(t, err)
	}
	assert.Equal(t, int64(2), atomic.LoadInt64(hits))

	n, err := cache.Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}
