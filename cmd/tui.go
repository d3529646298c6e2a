package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/paknews/internal/config"
	"github.com/matheuskafuri/paknews/internal/logging"
	"github.com/matheuskafuri/paknews/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logger, closeLog, err := logging.OpenFile(config.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closeLog()

	a, err := buildApp(cfg, logger, flagEphemeral)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if a.probe != nil {
		go a.probe.Run(ctx)
	}

	logger.Info("starting dashboard", "version", version, "feed_mode", cfg.Feed.Mode, "ai", cfg.AIEnabled())
	return tui.Run(ctx, tui.RunOpts{Ctrl: a.ctrl, Logger: logger})
}
