package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List articles saved for offline reading",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := buildApp(cfg, stderrLogger(cfg, cmd.ErrOrStderr()), flagEphemeral)
		if err != nil {
			return err
		}
		defer a.Close()

		saved := a.ctrl.Saved()
		out := cmd.OutOrStdout()
		if len(saved) == 0 {
			fmt.Fprintln(out, "No saved articles.")
			return nil
		}
		now := time.Now()
		for _, art := range saved {
			printArticle(out, art, true, now)
		}
		fmt.Fprintf(out, "%d saved article(s)\n", len(saved))
		return nil
	},
}
