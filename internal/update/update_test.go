package update

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/vnd.github+json" {
			t.Errorf("missing accept header")
		}
		io.WriteString(w, `{"tag_name":"v1.4.0","html_url":"https://github.com/matheuskafuri/paknews/releases/tag/v1.4.0"}`)
	}))
	defer srv.Close()

	tests := []struct {
		current string
		newer   bool
	}{
		{"v1.3.0", true},
		{"1.4.0", false},
		{"v1.4.0", false},
		{"dev", true},
	}
	for _, tt := range tests {
		res, err := NewChecker(srv.URL).Check(context.Background(), tt.current)
		if err != nil {
			t.Fatal(err)
		}
		if res.Latest != "1.4.0" {
			t.Errorf("latest = %q", res.Latest)
		}
		if res.Newer() != tt.newer {
			t.Errorf("Check(%q).Newer() = %v, want %v", tt.current, res.Newer(), tt.newer)
		}
	}
}

func TestCheckHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	res, err := NewChecker(srv.URL).Check(context.Background(), "1.0.0")
	if err == nil {
		t.Fatal("expected error for 403")
	}
	if res.Newer() {
		t.Error("failed check reported a newer version")
	}
}

func TestNewCheckerDefaultEndpoint(t *testing.T) {
	if c := NewChecker(""); c.endpoint != ReleasesURL {
		t.Errorf("endpoint = %q", c.endpoint)
	}
}
