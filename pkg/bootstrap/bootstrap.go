// Package bootstrap wires the runtime facilities together and installs the
// process-wide application context. Boot is expected to run once, from a
// single goroutine, during startup.
package bootstrap

import (
	"log/slog"

	"github.com/shuldan/appcore/pkg/app"
	"github.com/shuldan/appcore/pkg/cache"
	"github.com/shuldan/appcore/pkg/config"
	"github.com/shuldan/appcore/pkg/contracts"
	"github.com/shuldan/appcore/pkg/database"
	"github.com/shuldan/appcore/pkg/logger"
	"github.com/shuldan/appcore/pkg/resolver"
	"github.com/shuldan/appcore/pkg/services"
)

type Bootstrap struct {
	envPrefix   string
	configPaths []string
	replace     bool
	loader      config.Loader
	log         contracts.Logger
}

func New(envPrefix string, configPaths ...string) *Bootstrap {
	return &Bootstrap{
		envPrefix:   envPrefix,
		configPaths: configPaths,
	}
}

// WithReplace makes Boot replace an already-installed context instead of
// keeping it. Test harnesses re-initializing between runs want this.
func (b *Bootstrap) WithReplace() *Bootstrap {
	b.replace = true
	return b
}

// WithLoader overrides the default env+YAML loader chain.
func (b *Bootstrap) WithLoader(loader config.Loader) *Bootstrap {
	b.loader = loader
	return b
}

// WithLogger overrides the logger built from configuration.
func (b *Bootstrap) WithLogger(log contracts.Logger) *Bootstrap {
	b.log = log
	return b
}

// Boot loads configuration, builds the facilities it describes, constructs
// a populated context and installs it into the process-wide slot. The
// caller flips SetReady once its own content is loaded.
func (b *Bootstrap) Boot() (contracts.AppContext, error) {
	loader := b.loader
	if loader == nil {
		loader = config.NewChainLoader(
			config.NewYamlLoader(b.configPaths...),
			config.NewEnvLoader(b.envPrefix),
		)
	}

	values, err := loader.Load()
	if err != nil {
		return nil, err
	}
	cfg := config.NewMapConfig(values)

	log := b.log
	if log == nil {
		log = buildLogger(cfg)
	}

	appCache, err := cache.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	db := database.New(
		cfg.GetString("database.driver", "sqlite3"),
		cfg.GetString("database.dsn"),
	)
	if db.IsConfigured() {
		if err := db.Connect(); err != nil {
			return nil, err
		}
	}

	registry := services.NewRegistry()

	resolver.RegisterDefaults()

	ctx, err := app.EnsurePopulated(db, registry, appCache, b.replace,
		app.WithConfig(cfg),
		app.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	log.Info("application context installed",
		"context_id", ctx.ID(),
		"version", app.Version,
		"database_configured", db.IsConfigured(),
	)
	return ctx, nil
}

func buildLogger(cfg contracts.Config) contracts.Logger {
	var opts []logger.Option
	if cfg.GetBool("log.json") {
		opts = append(opts, logger.WithJSON())
	}
	if cfg.GetBool("log.color") {
		opts = append(opts, logger.WithColor())
	}
	if level := cfg.GetString("log.level"); level != "" {
		opts = append(opts, logger.WithLevel(parseLevel(level)))
	}
	return logger.New(opts...)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
