// Package update checks GitHub releases for a newer paknews build.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ReleasesURL is the latest-release endpoint for paknews.
const ReleasesURL = "https://api.github.com/repos/matheuskafuri/paknews/releases/latest"

// Result holds the outcome of a version check.
type Result struct {
	Current string
	Latest  string
	URL     string
}

// Newer reports whether the latest release differs from the running build.
func (r Result) Newer() bool {
	return r.Latest != "" && r.Latest != r.Current
}

type ghRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries a releases endpoint.
type Checker struct {
	endpoint string
	client   *http.Client
}

func NewChecker(endpoint string) *Checker {
	if endpoint == "" {
		endpoint = ReleasesURL
	}
	return &Checker{endpoint: endpoint, client: &http.Client{Timeout: 5 * time.Second}}
}

// Check fetches the latest release tag. Versions are compared without a leading "v".
func (c *Checker) Check(ctx context.Context, currentVersion string) (Result, error) {
	res := Result{Current: strings.TrimPrefix(currentVersion, "v")}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return res, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return res, fmt.Errorf("checking releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("checking releases: HTTP %d", resp.StatusCode)
	}

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return res, fmt.Errorf("decoding release: %w", err)
	}

	res.Latest = strings.TrimPrefix(release.TagName, "v")
	res.URL = release.HTMLURL
	return res, nil
}
