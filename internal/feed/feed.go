package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/matheuskafuri/paknews/internal/cache"
	"github.com/matheuskafuri/paknews/internal/logging"
)

// MinContentLength is the number of characters a stripped body must exceed
// for an item to be kept.
const MinContentLength = 50

// ErrAllSourcesFailed is returned by FetchAll when no source produced a result.
var ErrAllSourcesFailed = errors.New("all feed sources failed")

// Source pairs a category with the feed polled for it.
type Source struct {
	Category cache.Category
	URL      string
}

// Sources is the fixed list of feeds polled on every load.
var Sources = []Source{
	{Category: cache.Politics, URL: "https://www.geo.tv/rss/2/2"},
	{Category: cache.World, URL: "https://www.geo.tv/rss/3/3"},
	{Category: cache.Business, URL: "https://www.geo.tv/rss/6/6"},
	{Category: cache.Technology, URL: "https://www.geo.tv/rss/7/7"},
	{Category: cache.Sports, URL: "https://www.geo.tv/rss/4/4"},
	{Category: cache.Politics, URL: "https://www.dawn.com/feeds/pakistan"},
	{Category: cache.World, URL: "https://www.dawn.com/feeds/world"},
	{Category: cache.Business, URL: "https://www.dawn.com/feeds/business"},
	{Category: cache.Technology, URL: "https://www.dawn.com/feeds/tech"},
	{Category: cache.Sports, URL: "https://www.dawn.com/feeds/sport"},
}

// Fetcher retrieves the normalized articles of a single source.
type Fetcher interface {
	Fetch(ctx context.Context, source Source) ([]cache.Article, error)
}

// Client queries every source concurrently and merges the results.
type Client struct {
	fetcher Fetcher
	sources []Source
	logger  *slog.Logger
	shuffle func(n int, swap func(i, j int))
}

func NewClient(fetcher Fetcher, sources []Source, logger *slog.Logger) *Client {
	return &Client{
		fetcher: fetcher,
		sources: sources,
		logger:  logging.Component(logger, "feed"),
		shuffle: rand.Shuffle,
	}
}

// FetchAll fetches every source, deduplicates by id (a later source wins) and
// returns the survivors in random order. A failing source contributes nothing;
// only when every source fails is an error returned.
func (c *Client) FetchAll(ctx context.Context) ([]cache.Article, error) {
	var (
		wg      sync.WaitGroup
		results = make([][]cache.Article, len(c.sources))
		errs    = make([]error, len(c.sources))
	)

	for i, src := range c.sources {
		wg.Add(1)
		go func(i int, s Source) {
			defer wg.Done()
			articles, err := c.fetcher.Fetch(ctx, s)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = articles
		}(i, src)
	}
	wg.Wait()

	failed := 0
	for i, err := range errs {
		if err != nil {
			failed++
			c.logger.Warn("feed source failed", "url", c.sources[i].URL, "error", err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(c.sources) > 0 && failed == len(c.sources) {
		return nil, fmt.Errorf("%w: %w", ErrAllSourcesFailed, errors.Join(errs...))
	}

	// Flatten in source order so "later source" is well defined regardless
	// of which fetch finished first.
	var flat []cache.Article
	for _, r := range results {
		flat = append(flat, r...)
	}
	unique := dedupe(flat)
	c.shuffle(len(unique), func(i, j int) { unique[i], unique[j] = unique[j], unique[i] })

	c.logger.Info("feeds fetched", "articles", len(unique), "failed_sources", failed)
	return unique, nil
}

// dedupe keeps one article per id. The last occurrence replaces earlier ones
// while keeping the position of the first.
func dedupe(articles []cache.Article) []cache.Article {
	index := make(map[string]int, len(articles))
	out := make([]cache.Article, 0, len(articles))
	for _, a := range articles {
		if i, ok := index[a.ID]; ok {
			out[i] = a
			continue
		}
		index[a.ID] = len(out)
		out = append(out, a)
	}
	return out
}

// item is a feed entry before normalization, shared by both fetchers.
type item struct {
	GUID      string
	Title     string
	Link      string
	Body      string
	Published time.Time
}

func normalize(src Source, feedTitle string, items []item) []cache.Article {
	label := strings.TrimSpace(feedTitle)
	if label == "" {
		label = hostOf(src.URL)
	}

	now := time.Now()
	articles := make([]cache.Article, 0, len(items))
	for _, it := range items {
		content := stripHTML(it.Body)
		if utf8.RuneCountInString(content) <= MinContentLength {
			continue
		}

		id := it.GUID
		if id == "" {
			id = it.Link
		}
		pub := it.Published
		if pub.IsZero() {
			pub = now
		}

		articles = append(articles, cache.Article{
			ID:        id,
			Title:     strings.TrimSpace(it.Title),
			Link:      it.Link,
			Content:   content,
			Category:  src.Category,
			Source:    label,
			Published: pub,
		})
	}
	return articles
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Hostname()
}
