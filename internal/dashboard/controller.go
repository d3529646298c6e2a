// Package dashboard owns the article state: the fetched and saved sets, the
// active filter and page, background refresh, and enrichment coordination.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matheuskafuri/paknews/internal/cache"
	"github.com/matheuskafuri/paknews/internal/logging"
)

const (
	// RefreshInterval is the period of the background refresh timer.
	RefreshInterval = 60 * time.Second
	// IdleThreshold is how long the user must be inactive before a
	// background refresh may replace what they are looking at.
	IdleThreshold = 120 * time.Second
)

const (
	offlineMessage     = "You appear to be offline. Fresh news couldn't be loaded. Check your saved articles in the 'Offline' section."
	fetchFailedMessage = "Failed to fetch news articles. Please try again later."

	summariesPendingNotice = "Please wait for all summaries to be generated before translating all."
	bulkFailedNotice       = "An error occurred during bulk translation."

	summaryOfflineText  = "Cannot generate summary while offline."
	summaryFailedText   = "Could not generate summary."
	translateFailedText = "Translation failed."
)

var (
	ErrSummaryRequired  = errors.New("cannot save an article without a summary")
	ErrSummariesPending = errors.New("summaries are still being generated")
	ErrOffline          = errors.New("network is offline")
	ErrUnknownArticle   = errors.New("unknown article")
)

// ArticleSource produces a fresh set of articles.
type ArticleSource interface {
	FetchAll(ctx context.Context) ([]cache.Article, error)
}

// Enricher produces summaries and translations for articles.
type Enricher interface {
	Summarize(ctx context.Context, articleID, text string) (string, error)
	Translate(ctx context.Context, articleID, text string) (string, error)
}

// Options configures a Controller. Source and Enricher are required; the rest
// default to the system clock, an always-online connectivity report, no
// persistence and a discarding logger.
type Options struct {
	Source       ArticleSource
	Enricher     Enricher
	Store        cache.Store
	Clock        Clock
	Connectivity Connectivity
	Logger       *slog.Logger
}

// CardStatus is the per-article enrichment state shown inline on a card.
type CardStatus struct {
	Summarizing bool
	Translating bool
	// Message replaces the summary when set (offline or failure text).
	Message string
}

// Controller is safe for concurrent use. Remote calls are made without
// holding the lock; their results are applied under it.
type Controller struct {
	source   ArticleSource
	enricher Enricher
	store    cache.Store
	clock    Clock
	net      Connectivity
	logger   *slog.Logger

	mu             sync.Mutex
	articles       []cache.Article
	saved          []cache.Article
	filter         cache.Category
	page           int
	loading        bool
	refreshing     bool
	translatingAll bool
	fetchErr       error
	notice         string
	detail         *cache.Article
	visible        bool
	lastActivity   time.Time
	status         map[string]CardStatus
}

func New(opts Options) *Controller {
	c := &Controller{
		source:   opts.Source,
		enricher: opts.Enricher,
		store:    opts.Store,
		clock:    opts.Clock,
		net:      opts.Connectivity,
		logger:   logging.Component(opts.Logger, "dashboard"),
		filter:   cache.All,
		page:     1,
		visible:  true,
		status:   make(map[string]CardStatus),
	}
	if c.clock == nil {
		c.clock = SystemClock{}
	}
	if c.net == nil {
		c.net = AlwaysOnline{}
	}
	c.lastActivity = c.clock.Now()
	return c
}

// LoadSaved reads the saved list from the store. A read or decode failure is
// logged and leaves the saved set empty.
func (c *Controller) LoadSaved() {
	if c.store == nil {
		return
	}
	saved, err := cache.LoadSaved(c.store)
	if err != nil {
		c.logger.Error("loading saved articles", "error", err)
		return
	}
	c.mu.Lock()
	c.saved = saved
	c.mu.Unlock()
}

// Load replaces the fetched articles with a fresh set. On failure the
// previous articles stay in place and the error is reported in the view.
func (c *Controller) Load(ctx context.Context) error {
	return c.fetch(ctx, &c.loading)
}

// Refresh is Load while the current content stays on screen.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.fetch(ctx, &c.refreshing)
}

func (c *Controller) fetch(ctx context.Context, busy *bool) error {
	c.mu.Lock()
	*busy = true
	c.mu.Unlock()

	articles, err := c.source.FetchAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	*busy = false
	if err != nil {
		c.fetchErr = err
		c.logger.Error("fetching news", "error", err)
		return err
	}

	c.articles = articles
	c.fetchErr = nil
	c.page = clampPage(c.page, TotalPages(len(c.filteredLocked())))
	for id, st := range c.status {
		if !st.Summarizing && !st.Translating {
			delete(c.status, id)
		}
	}
	c.logger.Debug("articles loaded", "count", len(articles))
	return nil
}

// ShouldAutoRefresh reports whether a background refresh may run now: the
// network is up, the live feed is being viewed, the view is visible, no
// article is open and the user has been idle for longer than IdleThreshold.
func (c *Controller) ShouldAutoRefresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.net.Online() &&
		c.filter != cache.Offline &&
		c.visible &&
		c.detail == nil &&
		c.clock.Now().Sub(c.lastActivity) > IdleThreshold
}

// ScheduledRefreshTick refreshes if ShouldAutoRefresh allows it and reports
// whether a refresh ran.
func (c *Controller) ScheduledRefreshTick(ctx context.Context) (bool, error) {
	if !c.ShouldAutoRefresh() {
		return false, nil
	}
	c.logger.Info("auto-refreshing news")
	return true, c.Refresh(ctx)
}

// Run calls ScheduledRefreshTick every interval until ctx is done. onRefresh,
// if set, is called after each refresh that ran.
func (c *Controller) Run(ctx context.Context, interval time.Duration, onRefresh func(error)) {
	if interval <= 0 {
		interval = RefreshInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ran, err := c.ScheduledRefreshTick(ctx)
			if ran && onRefresh != nil {
				onRefresh(err)
			}
		}
	}
}

// SelectFilter switches the active category and returns to the first page.
func (c *Controller) SelectFilter(cat cache.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = cat
	c.page = 1
}

// SetPage moves to page p if it exists and reports whether it did.
func (c *Controller) SetPage(p int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p < 1 || p > TotalPages(len(c.filteredLocked())) {
		return false
	}
	c.page = p
	return true
}

// ToggleSave removes a from the saved set if present, otherwise saves a
// snapshot of it with the given summary and translation. Saving requires a
// summary. Each change is written through to the store before returning;
// the result reports whether the article is now saved.
func (c *Controller) ToggleSave(a cache.Article, summary, translated string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := indexOf(c.saved, a.ID); i >= 0 {
		c.saved = slices.Delete(c.saved, i, i+1)
		c.persistLocked()
		return false, nil
	}

	if summary == "" {
		c.logger.Warn("cannot save an article without a summary", "article", a.ID)
		return false, ErrSummaryRequired
	}

	snap := a
	snap.Summary = summary
	snap.TranslatedSummary = translated
	c.saved = append(c.saved, snap)
	c.persistLocked()
	return true, nil
}

// TranslateAll translates every fetched article that has a summary but no
// translation, concurrently. Results are applied to the fetched and saved
// sets only if every translation succeeded; on any failure nothing is merged.
// It returns the number of articles translated.
func (c *Controller) TranslateAll(ctx context.Context) (int, error) {
	type job struct{ id, summary string }

	c.mu.Lock()
	if c.translatingAll {
		c.mu.Unlock()
		return 0, nil
	}
	if !c.net.Online() {
		c.mu.Unlock()
		return 0, ErrOffline
	}
	var (
		jobs    []job
		pending bool
	)
	for _, a := range c.articles {
		switch {
		case a.Summary == "":
			pending = true
		case a.TranslatedSummary == "":
			jobs = append(jobs, job{a.ID, a.Summary})
		}
	}
	if len(jobs) == 0 {
		defer c.mu.Unlock()
		if pending {
			c.notice = summariesPendingNotice
			return 0, ErrSummariesPending
		}
		return 0, nil
	}
	c.translatingAll = true
	c.notice = ""
	c.mu.Unlock()

	results := make([]string, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, j := range jobs {
		g.Go(func() error {
			t, err := c.enricher.Translate(gctx, j.id, j.summary)
			if err != nil {
				return err
			}
			results[i] = t
			return nil
		})
	}
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.translatingAll = false
	if err != nil {
		c.notice = bulkFailedNotice
		c.logger.Error("bulk translation failed", "articles", len(jobs), "error", err)
		return 0, err
	}

	byID := make(map[string]string, len(jobs))
	for i, j := range jobs {
		byID[j.id] = results[i]
	}
	merge := func(list []cache.Article) {
		for i := range list {
			if t, ok := byID[list[i].ID]; ok {
				list[i].TranslatedSummary = t
			}
		}
	}
	merge(c.articles)
	merge(c.saved)
	c.persistLocked()
	return len(jobs), nil
}

// Summarize generates the summary of one article and attaches it to the
// fetched copy. Failures are kept as the card's inline status.
func (c *Controller) Summarize(ctx context.Context, id string) error {
	c.mu.Lock()
	a, ok := c.findLocked(id)
	if !ok {
		c.mu.Unlock()
		return ErrUnknownArticle
	}
	if a.Summary != "" || c.status[id].Summarizing {
		c.mu.Unlock()
		return nil
	}
	if !c.net.Online() {
		c.status[id] = CardStatus{Message: summaryOfflineText}
		c.mu.Unlock()
		return ErrOffline
	}
	c.status[id] = CardStatus{Summarizing: true}
	c.mu.Unlock()

	summary, err := c.enricher.Summarize(ctx, id, a.Content)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status[id] = CardStatus{Message: summaryFailedText}
		c.logger.Error("summarizing article", "article", id, "error", err)
		return err
	}
	delete(c.status, id)
	update(c.articles, id, func(a *cache.Article) { a.Summary = summary })
	return nil
}

// SummarizePage summarizes, concurrently, every article on the current page
// that has no summary and is not already being summarized. Cards showing a
// failure are retried. It returns once all calls have finished and reports
// how many were started.
func (c *Controller) SummarizePage(ctx context.Context) int {
	c.mu.Lock()
	var ids []string
	for _, a := range PageSlice(c.filteredLocked(), c.page) {
		if a.Summary == "" && !c.status[a.ID].Summarizing {
			ids = append(ids, a.ID)
		}
	}
	c.mu.Unlock()

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Summarize(ctx, id)
		}()
	}
	wg.Wait()
	return len(ids)
}

// Translate generates the Urdu translation of one article's summary and
// attaches it to the fetched copy and to the saved copy, if any.
func (c *Controller) Translate(ctx context.Context, id string) error {
	c.mu.Lock()
	a, ok := c.findLocked(id)
	if !ok {
		c.mu.Unlock()
		return ErrUnknownArticle
	}
	if a.Summary == "" {
		c.mu.Unlock()
		return ErrSummaryRequired
	}
	if a.TranslatedSummary != "" || c.status[id].Translating {
		c.mu.Unlock()
		return nil
	}
	if !c.net.Online() {
		c.mu.Unlock()
		return ErrOffline
	}
	c.status[id] = CardStatus{Translating: true}
	c.mu.Unlock()

	translated, err := c.enricher.Translate(ctx, id, a.Summary)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status[id] = CardStatus{Message: translateFailedText}
		c.logger.Error("translating article", "article", id, "error", err)
		return err
	}
	delete(c.status, id)
	set := func(a *cache.Article) { a.TranslatedSummary = translated }
	update(c.articles, id, set)
	if update(c.saved, id, set) {
		c.persistLocked()
	}
	return nil
}

// OpenDetail opens the reading view for an article. The article stays open
// until CloseDetail, even if a later load drops it.
func (c *Controller) OpenDetail(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.findLocked(id)
	if !ok {
		return ErrUnknownArticle
	}
	c.detail = &a
	return nil
}

func (c *Controller) CloseDetail() {
	c.mu.Lock()
	c.detail = nil
	c.mu.Unlock()
}

// SetVisible records whether the dashboard is in front of the user.
func (c *Controller) SetVisible(visible bool) {
	c.mu.Lock()
	c.visible = visible
	c.mu.Unlock()
}

// RecordActivity marks the user as active now.
func (c *Controller) RecordActivity() {
	c.mu.Lock()
	c.lastActivity = c.clock.Now()
	c.mu.Unlock()
}

func (c *Controller) DismissNotice() {
	c.mu.Lock()
	c.notice = ""
	c.mu.Unlock()
}

// ErrorMessage is the banner for the last failed load, or "" if it succeeded.
func (c *Controller) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errorMessageLocked()
}

func (c *Controller) errorMessageLocked() string {
	if c.fetchErr == nil {
		return ""
	}
	if !c.net.Online() {
		return offlineMessage
	}
	return fetchFailedMessage
}

// Articles returns a copy of the fetched set.
func (c *Controller) Articles() []cache.Article {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.articles)
}

// Saved returns a copy of the saved set.
func (c *Controller) Saved() []cache.Article {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.saved)
}

func (c *Controller) filteredLocked() []cache.Article {
	return Filter(c.articles, c.saved, c.filter)
}

// findLocked looks an article up in the fetched set, then the saved set.
func (c *Controller) findLocked(id string) (cache.Article, bool) {
	if i := indexOf(c.articles, id); i >= 0 {
		return c.articles[i], true
	}
	if i := indexOf(c.saved, id); i >= 0 {
		return c.saved[i], true
	}
	return cache.Article{}, false
}

func (c *Controller) persistLocked() {
	if c.store == nil {
		return
	}
	if err := cache.WriteSaved(c.store, c.saved); err != nil {
		c.logger.Error("persisting saved articles", "count", len(c.saved), "error", err)
	}
}

func indexOf(list []cache.Article, id string) int {
	return slices.IndexFunc(list, func(a cache.Article) bool { return a.ID == id })
}

// update applies fn to the article with id in list and reports whether it was found.
func update(list []cache.Article, id string, fn func(*cache.Article)) bool {
	i := indexOf(list, id)
	if i < 0 {
		return false
	}
	fn(&list[i])
	return true
}
