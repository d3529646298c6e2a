package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/paknews/internal/ai"
	"github.com/matheuskafuri/paknews/internal/cache"
	"github.com/matheuskafuri/paknews/internal/config"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := config.StorePath()
		db, err := cache.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()

		saved, err := cache.LoadSaved(db)
		if err != nil {
			return fmt.Errorf("reading saved articles: %w", err)
		}
		summaries, err := db.CountPrefix(ai.CacheKey(ai.KindSummary, ""))
		if err != nil {
			return fmt.Errorf("counting summaries: %w", err)
		}
		translations, err := db.CountPrefix(ai.CacheKey(ai.KindTranslation, ""))
		if err != nil {
			return fmt.Errorf("counting translations: %w", err)
		}
		size, err := cache.Size(dbPath)
		if err != nil {
			return fmt.Errorf("reading store size: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Store: %s\n", dbPath)
		fmt.Fprintf(out, "Saved articles: %d\n", len(saved))
		fmt.Fprintf(out, "Cached summaries: %d\n", summaries)
		fmt.Fprintf(out, "Cached translations: %d\n", translations)
		fmt.Fprintf(out, "Size: %s\n", formatBytes(size))
		return nil
	},
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
