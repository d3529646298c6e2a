package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/paknews/internal/cache"
	"github.com/matheuskafuri/paknews/internal/dashboard"
)

var (
	flagCategory  string
	flagPage      int
	flagSummarize bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the feeds once and print a page of articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := parseCategoryFlag(flagCategory)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := buildApp(cfg, stderrLogger(cfg, cmd.ErrOrStderr()), flagEphemeral)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		if cat != cache.Offline {
			if err := a.ctrl.Load(ctx); err != nil {
				return fmt.Errorf("%s: %w", a.ctrl.ErrorMessage(), err)
			}
		}

		a.ctrl.SelectFilter(cat)
		if !a.ctrl.SetPage(flagPage) && flagPage != 1 {
			v := a.ctrl.Snapshot()
			return fmt.Errorf("page %d out of range (1-%d)", flagPage, max(v.TotalPages, 1))
		}
		if flagSummarize && cfg.AIEnabled() {
			a.ctrl.SummarizePage(ctx)
		}

		printPage(cmd.OutOrStdout(), a.ctrl.Snapshot(), time.Now())
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&flagCategory, "category", "All", "category to show (All, Politics, World, Technology, Business, Sports, Offline)")
	fetchCmd.Flags().IntVar(&flagPage, "page", 1, "page number")
	fetchCmd.Flags().BoolVar(&flagSummarize, "summarize", false, "generate summaries for the printed articles")
}

func parseCategoryFlag(s string) (cache.Category, error) {
	cat, ok := cache.ParseCategory(s)
	if !ok {
		names := make([]string, 0, len(cache.Categories()))
		for _, c := range cache.Categories() {
			names = append(names, string(c))
		}
		return "", fmt.Errorf("unknown category %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return cat, nil
}

func printPage(w io.Writer, v dashboard.View, now time.Time) {
	if len(v.Cards) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return
	}
	fmt.Fprintf(w, "%s · page %d/%d · %d articles\n\n", v.Filter, v.Page, max(v.TotalPages, 1), v.Total)
	for _, c := range v.Cards {
		printArticle(w, c.Article, c.Saved, now)
	}
}

func printArticle(w io.Writer, a cache.Article, saved bool, now time.Time) {
	mark := ""
	if saved {
		mark = " ★"
	}
	fmt.Fprintf(w, "[%s] %s%s\n", a.Category, a.Title, mark)
	fmt.Fprintf(w, "  %s · %s\n", a.Source, dashboard.TimeAgo(a.Published, now))
	if a.Summary != "" {
		fmt.Fprintf(w, "  %s\n", a.Summary)
	}
	if a.TranslatedSummary != "" {
		fmt.Fprintf(w, "  %s\n", a.TranslatedSummary)
	}
	fmt.Fprintf(w, "  %s\n\n", a.Link)
}
