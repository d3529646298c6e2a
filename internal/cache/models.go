package cache

import (
	"strings"
	"time"
)

// Category is a feed category or one of the view-only pseudo categories.
type Category string

const (
	All        Category = "All"
	Politics   Category = "Politics"
	World      Category = "World"
	Technology Category = "Technology"
	Business   Category = "Business"
	Sports     Category = "Sports"
	Offline    Category = "Offline"
)

// Categories returns every selectable filter in display order.
func Categories() []Category {
	return []Category{All, Politics, World, Technology, Business, Sports, Offline}
}

// FeedCategory reports whether c can be attached to a fetched article.
func (c Category) FeedCategory() bool {
	switch c {
	case Politics, World, Technology, Business, Sports:
		return true
	}
	return false
}

// ParseCategory matches s case-insensitively against the known filters.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

type Article struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Link              string    `json:"link"`
	Content           string    `json:"content"`
	Category          Category  `json:"category"`
	Source            string    `json:"source"`
	Published         time.Time `json:"pubDate"`
	Summary           string    `json:"summary,omitempty"`
	TranslatedSummary string    `json:"translatedSummary,omitempty"`
}
