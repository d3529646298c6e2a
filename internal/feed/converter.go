package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matheuskafuri/paknews/internal/cache"
)

// ConverterFetcher fetches feeds through an RSS-to-JSON conversion endpoint
// (rss2json.com compatible).
type ConverterFetcher struct {
	endpoint string
	client   *http.Client
}

func NewConverterFetcher(endpoint string, timeout time.Duration) *ConverterFetcher {
	return &ConverterFetcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type converterResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Feed    struct {
		Title string `json:"title"`
	} `json:"feed"`
	Items []converterItem `json:"items"`
}

type converterItem struct {
	GUID        string `json:"guid"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Content     string `json:"content"`
	PubDate     string `json:"pubDate"`
}

func (f *ConverterFetcher) Fetch(ctx context.Context, source Source) ([]cache.Article, error) {
	u, err := url.Parse(f.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing converter url: %w", err)
	}
	q := u.Query()
	q.Set("rss_url", source.URL)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetching %s: converter returned %d: %s", source.URL, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var cr converterResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source.URL, err)
	}
	if cr.Status != "ok" {
		return nil, fmt.Errorf("fetching %s: converter status %q: %s", source.URL, cr.Status, cr.Message)
	}

	items := make([]item, 0, len(cr.Items))
	for _, it := range cr.Items {
		body := it.Description
		if body == "" {
			body = it.Content
		}
		items = append(items, item{
			GUID:      it.GUID,
			Title:     it.Title,
			Link:      it.Link,
			Body:      body,
			Published: parsePubDate(it.PubDate),
		})
	}
	return normalize(source, cr.Feed.Title, items), nil
}

var pubDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
}

// parsePubDate returns the zero time when s matches no known layout.
func parsePubDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
