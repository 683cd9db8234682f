package main

import (
	"context"
	"os"
	"time"

	"f1charts/pkg/config"
	"f1charts/pkg/logging"
	"f1charts/pkg/pipeline"
	"f1charts/pkg/provider"
	"f1charts/pkg/teams"
	"f1charts/pkg/webserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("loading configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Caller: cfg.Log.Caller,
		Output: os.Stdout,
	})

	if cfg.Provider.Mock {
		mock, err := provider.StartMockServer(cfg.Provider.MockAddress)
		if err != nil {
			logging.Fatal().Err(err).Msg("starting mock provider")
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mock.Shutdown(ctx)
		}()
	}

	opts := []provider.Option{}
	if cfg.Provider.CacheEnabled {
		cache, err := provider.NewCache(cfg.Provider.CachePath)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Provider.CachePath).Msg("opening provider cache")
		}
		defer cache.Close()
		opts = append(opts, provider.WithCache(cache))
	}
	client := provider.NewClient(cfg.Provider.BaseURL, opts...)

	logging.Info().
		Int("season", cfg.Season).
		Str("provider", cfg.Provider.BaseURL).
		Bool("mock", cfg.Provider.Mock).
		Bool("cache", cfg.Provider.CacheEnabled).
		Msg("starting f1charts")

	p := pipeline.New(client, teams.NewSessionStyler(), cfg.Season)
	m := webserver.NewManager(p)
	if cfg.Webserver.Debug {
		m.Debug()
	}
	m.Serve(cfg.Webserver.Address)
}
