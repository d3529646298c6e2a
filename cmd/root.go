package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/paknews/internal/update"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagEphemeral bool
)

var rootCmd = &cobra.Command{
	Use:   "paknews",
	Short: "Terminal dashboard for Pakistani news",
	Long: `paknews gathers Politics, World, Technology, Business and Sports headlines from
Geo and Dawn, summarizes them with a generative AI model, translates summaries
to Urdu, and keeps saved articles for offline reading.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnv()
	},
	RunE:         runTUI,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "keep saved articles and AI results in memory only")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "check GitHub for a newer release")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(savedCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
}

var (
	flagCheck   bool
	releasesURL = update.ReleasesURL
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "paknews %s (commit: %s, built: %s)\n", version, commit, date)
		if !flagCheck {
			return nil
		}
		res, err := update.NewChecker(releasesURL).Check(cmd.Context(), version)
		if err != nil {
			return err
		}
		if res.Newer() {
			fmt.Fprintf(out, "A newer release is available: %s %s\n", res.Latest, res.URL)
		} else {
			fmt.Fprintln(out, "You are running the latest release.")
		}
		return nil
	},
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
