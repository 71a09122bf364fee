package server

import (
	"log/slog"

	"gamerstore-service/internal/config"
	"gamerstore-service/internal/logging"
	"gamerstore-service/internal/metrics"
	"gamerstore-service/internal/providers"
	"gamerstore-service/internal/providers/fixture"
	"gamerstore-service/internal/providers/freetogame"
)

// fetcherFactory assembles the upstream fetcher with the shared retry
// wrapper.
type fetcherFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newFetcherFactory(logger *slog.Logger, metrics *metrics.Recorder) fetcherFactory {
	return fetcherFactory{logger: logger, metrics: metrics}
}

func (f fetcherFactory) build(cfg config.Config) providers.RawFetcher {
	base, name := selectFetcher(cfg, f.logger)
	return providers.NewRetryingFetcher(base, f.logger, f.metrics, name,
		cfg.FreeToGame.MaxAttempts, cfg.FreeToGame.Backoff)
}

func selectFetcher(cfg config.Config, logger *slog.Logger) (providers.Fetcher, string) {
	switch cfg.Provider {
	case "freetogame":
		client := freetogame.NewClient(freetogame.Config{
			BaseURL:  cfg.FreeToGame.BaseURL,
			RelayURL: cfg.FreeToGame.RelayURL,
			Host:     cfg.FreeToGame.PublicHost,
			Timeout:  cfg.FreeToGame.Timeout,
		})
		return client, "freetogame"
	default:
		if cfg.Provider != "fixture" {
			logging.Warn(logger, "unknown provider, using fixture", nil,
				slog.String("provider", cfg.Provider))
		}
		return fixture.New(), "fixture"
	}
}
