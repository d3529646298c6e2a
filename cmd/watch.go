package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/paknews/internal/dashboard"
)

var flagInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the feeds fresh in the background without a UI",
	Long: `Run the refresh scheduler headless. Every interval the feeds are reloaded
under the same rules as the dashboard; with no UI there is no user activity,
so refreshes start once the idle threshold has passed. Summaries for the first
page are generated after each refresh to warm the cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := stderrLogger(cfg, cmd.ErrOrStderr())
		a, err := buildApp(cfg, logger, flagEphemeral)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if a.probe != nil {
			go a.probe.Run(ctx)
		}

		if err := a.ctrl.Load(ctx); err != nil {
			logger.Warn("initial load failed", "message", a.ctrl.ErrorMessage())
		}
		warm := func() {
			if cfg.AIEnabled() {
				n := a.ctrl.SummarizePage(ctx)
				logger.Debug("summaries warmed", "articles", n)
			}
		}
		warm()

		logger.Info("watching feeds", "interval", flagInterval, "idle_threshold", dashboard.IdleThreshold)
		a.ctrl.Run(ctx, flagInterval, func(err error) {
			if err != nil {
				logger.Warn("refresh failed", "message", a.ctrl.ErrorMessage())
				return
			}
			logger.Info("refreshed", "articles", len(a.ctrl.Articles()))
			warm()
		})
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&flagInterval, "interval", dashboard.RefreshInterval, "time between refresh checks")
}
