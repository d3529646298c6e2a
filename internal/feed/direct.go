package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/matheuskafuri/paknews/internal/cache"
	"github.com/mmcdole/gofeed"
)

// DirectFetcher downloads and parses RSS/Atom feeds locally, bypassing the
// conversion endpoint.
type DirectFetcher struct {
	parser *gofeed.Parser
}

func NewDirectFetcher(timeout time.Duration) *DirectFetcher {
	p := gofeed.NewParser()
	p.Client = &http.Client{Timeout: timeout}
	return &DirectFetcher{parser: p}
}

func (f *DirectFetcher) Fetch(ctx context.Context, source Source) ([]cache.Article, error) {
	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.URL, err)
	}

	items := make([]item, 0, len(feed.Items))
	for _, it := range feed.Items {
		body := it.Description
		if body == "" {
			body = it.Content
		}
		var pub time.Time
		if it.PublishedParsed != nil {
			pub = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			pub = *it.UpdatedParsed
		}
		items = append(items, item{
			GUID:      it.GUID,
			Title:     it.Title,
			Link:      it.Link,
			Body:      body,
			Published: pub,
		})
	}
	return normalize(source, feed.Title, items), nil
}
