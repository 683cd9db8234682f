// Package config loads the service configuration.
//
// Values are layered: struct defaults, then an optional YAML file, then
// environment variables. The result is validated before use.
package config

import (
	"fmt"
	"os"
	"strings"

	"f1charts/pkg/teams"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	ConfigPathEnvVar  = "CONFIG_PATH"
	DefaultConfigPath = "./f1charts.yaml"
)

type Config struct {
	Webserver WebserverConfig `koanf:"webserver"`
	// Season used by every telemetry page. It is never taken from the request
	// and must be one of the seasons of the team colour table.
	Season   int            `koanf:"season" validate:"known_season"`
	Provider ProviderConfig `koanf:"provider"`
	Log      LogConfig      `koanf:"log"`
}

type WebserverConfig struct {
	Address string `koanf:"address" validate:"required"`
	Debug   bool   `koanf:"debug"`
}

type ProviderConfig struct {
	BaseURL      string `koanf:"base_url" validate:"required,url"`
	Mock         bool   `koanf:"mock"`
	MockAddress  string `koanf:"mock_address" validate:"required_if=Mock true"`
	CacheEnabled bool   `koanf:"cache_enabled"`
	CachePath    string `koanf:"cache_path" validate:"required_if=CacheEnabled true"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

func defaultConfig() *Config {
	return &Config{
		Webserver: WebserverConfig{
			Address: ":8080",
		},
		Season: 2024,
		Provider: ProviderConfig{
			BaseURL:      "http://127.0.0.1:8090",
			Mock:         true,
			MockAddress:  "127.0.0.1:8090",
			CacheEnabled: true,
			CachePath:    "./f1charts-cache.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

var envMappings = map[string]string{
	"webserver_address":      "webserver.address",
	"webserver_debug":        "webserver.debug",
	"f1_season":              "season",
	"provider_url":           "provider.base_url",
	"provider_mock":          "provider.mock",
	"provider_mock_address":  "provider.mock_address",
	"provider_cache_enabled": "provider.cache_enabled",
	"provider_cache_path":    "provider.cache_path",
	"log_level":              "log.level",
	"log_format":             "log.format",
	"log_caller":             "log.caller",
}

// envTransformFunc maps an environment variable name to its config path.
// Unknown variables map to "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Load builds the configuration from defaults, the optional YAML file and
// the environment, in increasing priority.
func Load() (*Config, error) {
	return load(findConfigFile())
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return DefaultConfigPath
	}
	return ""
}

// Validate checks the struct tags of the configuration.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("known_season", knownSeason); err != nil {
		return err
	}
	return v.Struct(c)
}

// knownSeason accepts the seasons drivers can be styled for.
func knownSeason(fl validator.FieldLevel) bool {
	_, ok := teams.SeasonTeams(int(fl.Field().Int()))
	return ok
}
