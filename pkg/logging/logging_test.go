package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	ctx := ContextWithRequestID(context.Background(), "req-1")
	Ctx(ctx).Info().Str("chart", "positions").Msg("rendered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "positions", entry["chart"])
	assert.Equal(t, "rendered", entry["message"])
}

func TestCtxWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	Ctx(context.Background()).Info().Msg("plain")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry["request_id"]
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}

func TestGenerateRequestIDUnique(t *testing.T) {
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}
