// Package provider talks to the session and telemetry data provider.
package provider

import (
	"context"

	"f1charts/pkg/model"

	"github.com/pkg/errors"
)

// ErrNotFound is returned for unknown sessions, drivers and laps.
var ErrNotFound = errors.New("not found")

// Provider returns session and lap telemetry tables. Calls block until the
// provider answers; no timeout or retry is applied here.
type Provider interface {
	Session(ctx context.Context, year, round int, sessionType string) (*model.Session, error)
	Telemetry(ctx context.Context, year, round int, sessionType, driver string, lap int) ([]model.LapTelemetrySample, error)
}
