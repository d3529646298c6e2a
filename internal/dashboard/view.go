package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/matheuskafuri/paknews/internal/cache"
)

// PageSize is the number of cards shown per page.
const PageSize = 6

// Filter returns the articles visible under filter. Offline selects the
// saved set regardless of what was fetched.
func Filter(articles, saved []cache.Article, filter cache.Category) []cache.Article {
	switch filter {
	case cache.Offline:
		return saved
	case cache.All, "":
		return articles
	}
	var out []cache.Article
	for _, a := range articles {
		if a.Category == filter {
			out = append(out, a)
		}
	}
	return out
}

// TotalPages is ceil(n / PageSize).
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

// PageSlice returns the 1-based page of filtered. Out of range pages are empty.
func PageSlice(filtered []cache.Article, page int) []cache.Article {
	if page < 1 {
		return nil
	}
	start := (page - 1) * PageSize
	if start >= len(filtered) {
		return nil
	}
	end := min(start+PageSize, len(filtered))
	return filtered[start:end]
}

// clampPage keeps page within [1, totalPages], treating an empty view as one page.
func clampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	return max(page, 1)
}

// TimeAgo renders the age of t as "42s ago", "5m ago", "3h ago" or "2d ago",
// rounding each unit to the nearest whole number.
func TimeAgo(t, now time.Time) string {
	seconds := math.Round(now.Sub(t).Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds ago", int(seconds))
	}
	minutes := math.Round(seconds / 60)
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", int(minutes))
	}
	hours := math.Round(minutes / 60)
	if hours < 24 {
		return fmt.Sprintf("%dh ago", int(hours))
	}
	return fmt.Sprintf("%dd ago", int(math.Round(hours/24)))
}
