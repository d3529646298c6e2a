package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/matheuskafuri/paknews/internal/ai"
	"github.com/matheuskafuri/paknews/internal/cache"
	"github.com/matheuskafuri/paknews/internal/config"
	"github.com/matheuskafuri/paknews/internal/dashboard"
	"github.com/matheuskafuri/paknews/internal/feed"
	"github.com/matheuskafuri/paknews/internal/logging"
)

// loadEnv reads .env from the working directory if there is one.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

func stderrLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logging.New(w, cfg.LogLevel)
}

// app bundles the wired components a command needs.
type app struct {
	cfg    *config.Config
	store  cache.Store
	db     *cache.DB // nil when ephemeral
	probe  *dashboard.Probe
	ctrl   *dashboard.Controller
	logger *slog.Logger
}

func (a *app) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func newFetcher(cfg *config.Config) feed.Fetcher {
	if cfg.Feed.Mode == config.FeedModeDirect {
		return feed.NewDirectFetcher(cfg.FeedTimeout())
	}
	return feed.NewConverterFetcher(cfg.Feed.ConverterURL, cfg.FeedTimeout())
}

// buildApp wires store, feed client, enricher, connectivity probe and
// controller, then restores the saved list.
func buildApp(cfg *config.Config, logger *slog.Logger, ephemeral bool) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	if ephemeral {
		a.store = cache.NewMemory()
	} else {
		db, err := cache.Open(config.StorePath())
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		a.db = db
		a.store = db
	}

	gen, err := ai.New(cfg.AI, cfg.AIKey())
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		logger.Warn("no AI key configured; summaries and translations are disabled")
	case err != nil:
		a.Close()
		return nil, fmt.Errorf("configuring AI: %w", err)
	}

	var conn dashboard.Connectivity = dashboard.AlwaysOnline{}
	if cfg.Connectivity.ProbeAddr != "" {
		a.probe = dashboard.NewProbe(cfg.Connectivity.ProbeAddr, cfg.ProbeInterval(), logger)
		conn = a.probe
	}

	a.ctrl = dashboard.New(dashboard.Options{
		Source:       feed.NewClient(newFetcher(cfg), feed.Sources, logger),
		Enricher:     ai.NewEnricher(gen, a.store, logger),
		Store:        a.store,
		Connectivity: conn,
		Logger:       logger,
	})
	a.ctrl.LoadSaved()
	return a, nil
}
