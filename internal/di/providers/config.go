// Package providers contains dependency injection providers for the CubHub web front end.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/cubhub/cubhub-web/internal/config"
	"github.com/cubhub/cubhub-web/internal/logger"
)

// ProvideConfig returns a provider that loads configuration from args.
func ProvideConfig(args []string) do.Provider[*config.Config] {
	return func(i do.Injector) (*config.Config, error) {
		return config.Load(args)
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting CubHub web",
		"version", Version,
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Storage.DataPath,
		"upstream", cfg.Upstream.BaseURL,
	)

	return log, nil
}
