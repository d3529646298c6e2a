package dashboard

import "github.com/matheuskafuri/paknews/internal/cache"

// Card is one article on the current page.
type Card struct {
	Article cache.Article
	Saved   bool
	Status  CardStatus
}

// View is a consistent copy of the controller state for rendering.
type View struct {
	Filter     cache.Category
	Page       int
	TotalPages int
	Total      int // articles under the active filter
	SavedCount int
	Cards      []Card

	Online         bool
	Loading        bool
	Refreshing     bool
	TranslatingAll bool

	Error  string // banner for a failed load
	Notice string // transient message from the last bulk action

	// Detail is the article open in the reading view, if any.
	Detail *cache.Article

	CanRefresh      bool
	CanTranslateAll bool
}

// ShowPagination reports whether page controls should be drawn.
func (v View) ShowPagination() bool { return v.TotalPages > 1 }

func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	online := c.net.Online()
	filtered := c.filteredLocked()
	v := View{
		Filter:         c.filter,
		Page:           c.page,
		TotalPages:     TotalPages(len(filtered)),
		Total:          len(filtered),
		SavedCount:     len(c.saved),
		Online:         online,
		Loading:        c.loading,
		Refreshing:     c.refreshing,
		TranslatingAll: c.translatingAll,
		Error:          c.errorMessageLocked(),
		Notice:         c.notice,
	}
	v.CanRefresh = online && !c.refreshing
	v.CanTranslateAll = online && !c.translatingAll && len(filtered) > 0

	savedIDs := make(map[string]bool, len(c.saved))
	for _, a := range c.saved {
		savedIDs[a.ID] = true
	}
	for _, a := range PageSlice(filtered, c.page) {
		v.Cards = append(v.Cards, Card{Article: a, Saved: savedIDs[a.ID], Status: c.status[a.ID]})
	}

	if c.detail != nil {
		if a, ok := c.findLocked(c.detail.ID); ok {
			v.Detail = &a
		} else {
			a := *c.detail
			v.Detail = &a
		}
	}
	return v
}
