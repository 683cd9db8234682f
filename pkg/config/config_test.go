package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"f1charts/pkg/teams"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load("")
	require.NoError(t, err)

	assert.Equal(t, 2024, cfg.Season)
	assert.Equal(t, ":8080", cfg.Webserver.Address)
	assert.True(t, cfg.Provider.Mock)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f1charts.yaml")
	content := "season: 2023\nwebserver:\n  address: \":9000\"\nlog:\n  format: console\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("F1_SEASON", "2022")
	t.Setenv("PROVIDER_MOCK", "false")

	cfg, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, 2022, cfg.Season, "environment wins over the file")
	assert.Equal(t, ":9000", cfg.Webserver.Address)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Provider.Mock)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"season too old", "F1_SEASON", "1990"},
		{"season before the colour table", "F1_SEASON", "2019"},
		{"season after the colour table", "F1_SEASON", "2025"},
		{"bad log level", "LOG_LEVEL", "loud"},
		{"bad provider url", "PROVIDER_URL", "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := load("")
			require.Error(t, err)

			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs))
		})
	}
}

func TestEnvTransformFuncSkipsUnknown(t *testing.T) {
	assert.Equal(t, "season", envTransformFunc("F1_SEASON"))
	assert.Equal(t, "", envTransformFunc("HOME"))
}

func TestLoadAcceptsEveryTableSeason(t *testing.T) {
	for _, season := range teams.Seasons() {
		t.Setenv("F1_SEASON", strconv.Itoa(season))
		cfg, err := load("")
		require.NoError(t, err, "season %d", season)
		assert.Equal(t, season, cfg.Season)
	}
}
