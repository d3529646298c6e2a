package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matheuskafuri/paknews/internal/cache"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeNet struct{ online atomic.Bool }

func (n *fakeNet) Online() bool { return n.online.Load() }

func onlineNet() *fakeNet {
	n := &fakeNet{}
	n.online.Store(true)
	return n
}

type fakeSource struct {
	mu       sync.Mutex
	articles []cache.Article
	err      error
	calls    int
}

func (s *fakeSource) FetchAll(context.Context) ([]cache.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]cache.Article, len(s.articles))
	copy(out, s.articles)
	return out, nil
}

type fakeEnricher struct {
	mu         sync.Mutex
	summarized []string
	translated []string
	failIDs    map[string]bool
}

func (e *fakeEnricher) Summarize(_ context.Context, id, text string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.summarized = append(e.summarized, id)
	if e.failIDs[id] {
		return "", errors.New("remote failure")
	}
	return "summary of " + id, nil
}

func (e *fakeEnricher) Translate(_ context.Context, id, text string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.translated = append(e.translated, id)
	if e.failIDs[id] {
		return "", errors.New("remote failure")
	}
	return "urdu " + id, nil
}

// recordingStore counts writes to the saved key.
type recordingStore struct {
	*cache.Memory
	mu     sync.Mutex
	writes []string
	fail   bool
}

func newRecordingStore() *recordingStore {
	return &recordingStore{Memory: cache.NewMemory()}
}

func (s *recordingStore) Set(key, value string) error {
	if s.fail {
		return errors.New("disk full")
	}
	if key == cache.SavedKey {
		s.mu.Lock()
		s.writes = append(s.writes, value)
		s.mu.Unlock()
	}
	return s.Memory.Set(key, value)
}

type harness struct {
	ctrl     *Controller
	source   *fakeSource
	enricher *fakeEnricher
	store    *recordingStore
	clock    *fakeClock
	net      *fakeNet
}

func newHarness(t *testing.T, articles ...cache.Article) *harness {
	t.Helper()
	h := &harness{
		source:   &fakeSource{articles: articles},
		enricher: &fakeEnricher{failIDs: map[string]bool{}},
		store:    newRecordingStore(),
		clock:    &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
		net:      onlineNet(),
	}
	h.ctrl = New(Options{
		Source:       h.source,
		Enricher:     h.enricher,
		Store:        h.store,
		Clock:        h.clock,
		Connectivity: h.net,
	})
	if len(articles) > 0 {
		if err := h.ctrl.Load(context.Background()); err != nil {
			t.Fatalf("Load: %v", err)
		}
	}
	return h
}

func article(id string, cat cache.Category) cache.Article {
	return cache.Article{ID: id, Title: "Title " + id, Category: cat, Content: "body of article " + id}
}

func articles(n int, cat cache.Category) []cache.Article {
	out := make([]cache.Article, n)
	for i := range out {
		out[i] = article(fmt.Sprintf("a%02d", i), cat)
	}
	return out
}

func TestFilter(t *testing.T) {
	fetched := []cache.Article{
		article("1", cache.Technology),
		article("2", cache.Sports),
		article("3", cache.Technology),
	}
	saved := []cache.Article{article("s1", cache.World)}

	tech := Filter(fetched, saved, cache.Technology)
	if len(tech) != 2 {
		t.Fatalf("expected 2 technology articles, got %d", len(tech))
	}
	for _, a := range tech {
		if a.Category != cache.Technology {
			t.Errorf("unexpected category %q", a.Category)
		}
	}

	offline := Filter(fetched, saved, cache.Offline)
	if len(offline) != 1 || offline[0].ID != "s1" {
		t.Errorf("offline view should equal saved, got %v", offline)
	}
	if got := Filter(fetched, saved, cache.All); len(got) != 3 {
		t.Errorf("all view: expected 3, got %d", len(got))
	}
	if got := Filter(fetched, saved, cache.Business); len(got) != 0 {
		t.Errorf("business view: expected none, got %d", len(got))
	}
}

func TestPagination(t *testing.T) {
	filtered := articles(13, cache.World)
	if got := TotalPages(len(filtered)); got != 3 {
		t.Fatalf("TotalPages(13) = %d, want 3", got)
	}
	page := PageSlice(filtered, 2)
	if len(page) != 6 {
		t.Fatalf("page 2 length = %d, want 6", len(page))
	}
	for i, a := range page {
		if a.ID != filtered[6+i].ID {
			t.Errorf("page[%d] = %s, want %s", i, a.ID, filtered[6+i].ID)
		}
	}
	if got := PageSlice(filtered, 3); len(got) != 1 {
		t.Errorf("last page length = %d, want 1", len(got))
	}
	if got := PageSlice(filtered, 4); got != nil {
		t.Errorf("page past the end should be empty, got %d", len(got))
	}
	if TotalPages(0) != 0 || TotalPages(6) != 1 || TotalPages(7) != 2 {
		t.Error("unexpected TotalPages boundaries")
	}
}

func TestSetPageBounds(t *testing.T) {
	h := newHarness(t, articles(13, cache.World)...)

	if !h.ctrl.SetPage(2) {
		t.Fatal("SetPage(2) rejected")
	}
	if h.ctrl.SetPage(4) {
		t.Error("SetPage(4) accepted with 3 pages")
	}
	if h.ctrl.SetPage(0) {
		t.Error("SetPage(0) accepted")
	}
	if v := h.ctrl.Snapshot(); v.Page != 2 {
		t.Errorf("page = %d, want 2 after rejected moves", v.Page)
	}
}

func TestSelectFilterResetsPage(t *testing.T) {
	h := newHarness(t, articles(13, cache.World)...)
	h.ctrl.SetPage(3)
	h.ctrl.SelectFilter(cache.World)

	v := h.ctrl.Snapshot()
	if v.Page != 1 || v.Filter != cache.World {
		t.Errorf("got filter %s page %d, want World page 1", v.Filter, v.Page)
	}
}

func TestLoadFailureKeepsArticles(t *testing.T) {
	h := newHarness(t, articles(3, cache.Sports)...)

	h.source.err = errors.New("boom")
	if err := h.ctrl.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if got := len(h.ctrl.Articles()); got != 3 {
		t.Errorf("stale articles dropped: got %d", got)
	}
	if msg := h.ctrl.ErrorMessage(); msg != fetchFailedMessage {
		t.Errorf("online error message = %q", msg)
	}

	h.net.online.Store(false)
	if msg := h.ctrl.ErrorMessage(); msg != offlineMessage {
		t.Errorf("offline error message = %q", msg)
	}

	h.net.online.Store(true)
	h.source.err = nil
	if err := h.ctrl.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if msg := h.ctrl.ErrorMessage(); msg != "" {
		t.Errorf("error should clear after a successful load, got %q", msg)
	}
}

func TestLoadClampsPage(t *testing.T) {
	h := newHarness(t, articles(13, cache.World)...)
	h.ctrl.SetPage(3)

	h.source.articles = articles(7, cache.World)
	h.ctrl.Refresh(context.Background())

	if v := h.ctrl.Snapshot(); v.Page != 2 {
		t.Errorf("page = %d, want clamp to 2", v.Page)
	}
}

func TestToggleSaveRoundTrip(t *testing.T) {
	h := newHarness(t, article("a", cache.World))
	a := h.ctrl.Articles()[0]
	before := h.ctrl.Saved()

	saved, err := h.ctrl.ToggleSave(a, "sum", "")
	if err != nil || !saved {
		t.Fatalf("first toggle = %v, %v", saved, err)
	}
	if got := h.ctrl.Saved(); len(got) != 1 || got[0].Summary != "sum" {
		t.Fatalf("saved after first toggle = %+v", got)
	}

	saved, err = h.ctrl.ToggleSave(a, "sum", "")
	if err != nil || saved {
		t.Fatalf("second toggle = %v, %v", saved, err)
	}
	if got := h.ctrl.Saved(); len(got) != len(before) {
		t.Errorf("saved set not restored: %+v", got)
	}

	if len(h.store.writes) != 2 {
		t.Fatalf("expected 2 store writes, got %d", len(h.store.writes))
	}
	if h.store.writes[1] != "[]" {
		t.Errorf("second write should be the full (empty) list, got %s", h.store.writes[1])
	}
	persisted, err := cache.LoadSaved(h.store)
	if err != nil || len(persisted) != 0 {
		t.Errorf("persisted = %v, %v", persisted, err)
	}
}

func TestToggleSaveRequiresSummary(t *testing.T) {
	h := newHarness(t, article("a", cache.World))

	saved, err := h.ctrl.ToggleSave(h.ctrl.Articles()[0], "", "")
	if !errors.Is(err, ErrSummaryRequired) || saved {
		t.Errorf("got %v, %v; want ErrSummaryRequired", saved, err)
	}
	if len(h.ctrl.Saved()) != 0 {
		t.Error("saved set changed")
	}
	if len(h.store.writes) != 0 {
		t.Errorf("rejected save wrote to the store")
	}
}

func TestToggleSavePersistFailureKeepsMemory(t *testing.T) {
	h := newHarness(t, article("a", cache.World))
	h.store.fail = true

	if _, err := h.ctrl.ToggleSave(h.ctrl.Articles()[0], "sum", "tr"); err != nil {
		t.Fatalf("store failure leaked: %v", err)
	}
	if got := h.ctrl.Saved(); len(got) != 1 || got[0].TranslatedSummary != "tr" {
		t.Errorf("saved = %+v", got)
	}
}

func TestLoadSavedRestoresStore(t *testing.T) {
	store := cache.NewMemory()
	cache.WriteSaved(store, []cache.Article{{ID: "x", Summary: "s", Category: cache.Politics}})

	ctrl := New(Options{Source: &fakeSource{}, Enricher: &fakeEnricher{}, Store: store})
	ctrl.LoadSaved()
	ctrl.SelectFilter(cache.Offline)

	v := ctrl.Snapshot()
	if len(v.Cards) != 1 || !v.Cards[0].Saved {
		t.Errorf("offline cards = %+v", v.Cards)
	}
}

func TestScheduledRefreshGating(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, articles(2, cache.World)...)
	base := h.source.calls

	h.ctrl.RecordActivity()
	h.clock.Advance(60 * time.Second)
	if ran, _ := h.ctrl.ScheduledRefreshTick(ctx); ran {
		t.Error("refreshed 60s after activity")
	}

	h.clock.Advance(70 * time.Second)
	ran, err := h.ctrl.ScheduledRefreshTick(ctx)
	if !ran || err != nil {
		t.Fatalf("tick at 130s = %v, %v", ran, err)
	}
	if got := h.source.calls - base; got != 1 {
		t.Errorf("expected exactly 1 refresh, got %d", got)
	}

	tests := []struct {
		name  string
		setup func()
		undo  func()
	}{
		{"offline", func() { h.net.online.Store(false) }, func() { h.net.online.Store(true) }},
		{"offline filter", func() { h.ctrl.SelectFilter(cache.Offline) }, func() { h.ctrl.SelectFilter(cache.All) }},
		{"hidden", func() { h.ctrl.SetVisible(false) }, func() { h.ctrl.SetVisible(true) }},
		{"detail open", func() { h.ctrl.OpenDetail("a00") }, h.ctrl.CloseDetail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.undo()
			calls := h.source.calls
			if ran, _ := h.ctrl.ScheduledRefreshTick(ctx); ran {
				t.Error("refresh ran")
			}
			if h.source.calls != calls {
				t.Error("source was called")
			}
		})
	}

	if !h.ctrl.ShouldAutoRefresh() {
		t.Error("expected auto refresh allowed once every condition holds")
	}
}

func TestRunInvokesTick(t *testing.T) {
	h := newHarness(t, articles(1, cache.World)...)
	h.clock.Advance(IdleThreshold + time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go h.ctrl.Run(ctx, 5*time.Millisecond, func(err error) {
		select {
		case done <- err:
		default:
		}
	})

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("refresh error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never refreshed")
	}
}

func TestTranslateAllEligibility(t *testing.T) {
	first := article("first", cache.World)
	first.Summary = "x"
	second := article("second", cache.World)
	third := article("third", cache.World)
	third.Summary, third.TranslatedSummary = "y", "z"

	h := newHarness(t, first, second, third)
	h.ctrl.ToggleSave(first, "x", "")
	writes := len(h.store.writes)

	n, err := h.ctrl.TranslateAll(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("TranslateAll = %d, %v", n, err)
	}
	if len(h.enricher.translated) != 1 || h.enricher.translated[0] != "first" {
		t.Errorf("translation calls = %v", h.enricher.translated)
	}

	got := h.ctrl.Articles()
	if got[0].TranslatedSummary != "urdu first" {
		t.Errorf("live article not merged: %+v", got[0])
	}
	if got[2].TranslatedSummary != "z" {
		t.Errorf("already translated article changed: %+v", got[2])
	}
	if s := h.ctrl.Saved(); s[0].TranslatedSummary != "urdu first" {
		t.Errorf("saved copy not merged: %+v", s[0])
	}
	if len(h.store.writes) != writes+1 {
		t.Errorf("expected one write-through, got %d", len(h.store.writes)-writes)
	}
}

func TestTranslateAllSummariesPending(t *testing.T) {
	h := newHarness(t, article("a", cache.World), article("b", cache.World))

	_, err := h.ctrl.TranslateAll(context.Background())
	if !errors.Is(err, ErrSummariesPending) {
		t.Fatalf("expected ErrSummariesPending, got %v", err)
	}
	if len(h.enricher.translated) != 0 {
		t.Error("remote calls issued")
	}
	if v := h.ctrl.Snapshot(); v.Notice != summariesPendingNotice {
		t.Errorf("notice = %q", v.Notice)
	}
}

func TestTranslateAllNothingToDo(t *testing.T) {
	a := article("a", cache.World)
	a.Summary, a.TranslatedSummary = "s", "t"
	h := newHarness(t, a)

	n, err := h.ctrl.TranslateAll(context.Background())
	if n != 0 || err != nil {
		t.Errorf("got %d, %v", n, err)
	}
	if len(h.enricher.translated) != 0 {
		t.Error("remote calls issued")
	}
}

func TestTranslateAllFailureDiscardsBatch(t *testing.T) {
	a, b := article("a", cache.World), article("b", cache.World)
	a.Summary, b.Summary = "sa", "sb"
	h := newHarness(t, a, b)
	h.enricher.failIDs["b"] = true

	if _, err := h.ctrl.TranslateAll(context.Background()); err == nil {
		t.Fatal("expected batch failure")
	}
	for _, got := range h.ctrl.Articles() {
		if got.TranslatedSummary != "" {
			t.Errorf("partial merge applied to %s", got.ID)
		}
	}
	v := h.ctrl.Snapshot()
	if v.Notice != bulkFailedNotice || v.TranslatingAll {
		t.Errorf("notice = %q, translating = %v", v.Notice, v.TranslatingAll)
	}
	if v.Error != "" {
		t.Errorf("bulk failure should not raise the load banner: %q", v.Error)
	}
}

func TestTranslateAllOffline(t *testing.T) {
	a := article("a", cache.World)
	a.Summary = "s"
	h := newHarness(t, a)
	h.net.online.Store(false)

	if _, err := h.ctrl.TranslateAll(context.Background()); !errors.Is(err, ErrOffline) {
		t.Errorf("expected ErrOffline, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	h := newHarness(t, article("a", cache.World), article("b", cache.World))
	ctx := context.Background()

	if err := h.ctrl.Summarize(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if got := h.ctrl.Articles()[0].Summary; got != "summary of a" {
		t.Errorf("summary = %q", got)
	}
	h.ctrl.Summarize(ctx, "a")
	if len(h.enricher.summarized) != 1 {
		t.Errorf("summarized twice: %v", h.enricher.summarized)
	}

	h.enricher.failIDs["b"] = true
	if err := h.ctrl.Summarize(ctx, "b"); err == nil {
		t.Error("expected failure")
	}
	if st := h.ctrl.Snapshot().Cards[1].Status; st.Message != summaryFailedText {
		t.Errorf("status = %+v", st)
	}

	if err := h.ctrl.Summarize(ctx, "missing"); !errors.Is(err, ErrUnknownArticle) {
		t.Errorf("expected ErrUnknownArticle, got %v", err)
	}
}

func TestSummarizeOffline(t *testing.T) {
	h := newHarness(t, article("a", cache.World))
	h.net.online.Store(false)

	if err := h.ctrl.Summarize(context.Background(), "a"); !errors.Is(err, ErrOffline) {
		t.Fatalf("expected ErrOffline, got %v", err)
	}
	v := h.ctrl.Snapshot()
	if v.Cards[0].Status.Message != summaryOfflineText {
		t.Errorf("status = %+v", v.Cards[0].Status)
	}
	if len(h.enricher.summarized) != 0 {
		t.Error("remote call made while offline")
	}
	if _, err := h.ctrl.ToggleSave(v.Cards[0].Article, v.Cards[0].Article.Summary, ""); !errors.Is(err, ErrSummaryRequired) {
		t.Errorf("offline placeholder must not count as a summary: %v", err)
	}
}

func TestSummarizePageOnlyCurrentPage(t *testing.T) {
	h := newHarness(t, articles(8, cache.World)...)

	if n := h.ctrl.SummarizePage(context.Background()); n != PageSize {
		t.Fatalf("started %d, want %d", n, PageSize)
	}
	for i, a := range h.ctrl.Articles() {
		if has := a.Summary != ""; has != (i < PageSize) {
			t.Errorf("article %d summary = %q", i, a.Summary)
		}
	}
	if n := h.ctrl.SummarizePage(context.Background()); n != 0 {
		t.Errorf("second pass started %d", n)
	}
}

func TestTranslateUpdatesSavedCopy(t *testing.T) {
	a := article("a", cache.World)
	a.Summary = "s"
	h := newHarness(t, a)
	h.ctrl.ToggleSave(a, "s", "")
	writes := len(h.store.writes)

	if err := h.ctrl.Translate(context.Background(), "a"); err != nil {
		t.Fatal(err)
	}
	if got := h.ctrl.Saved()[0].TranslatedSummary; got != "urdu a" {
		t.Errorf("saved translation = %q", got)
	}
	if len(h.store.writes) != writes+1 {
		t.Error("translation update not persisted")
	}
}

func TestTranslateRequiresSummary(t *testing.T) {
	h := newHarness(t, article("a", cache.World))
	if err := h.ctrl.Translate(context.Background(), "a"); !errors.Is(err, ErrSummaryRequired) {
		t.Errorf("expected ErrSummaryRequired, got %v", err)
	}
}

func TestTranslateFailureStatus(t *testing.T) {
	a := article("a", cache.World)
	a.Summary = "s"
	h := newHarness(t, a)
	h.enricher.failIDs["a"] = true

	h.ctrl.Translate(context.Background(), "a")
	if st := h.ctrl.Snapshot().Cards[0].Status; st.Message != translateFailedText {
		t.Errorf("status = %+v", st)
	}
}

func TestSnapshotControls(t *testing.T) {
	h := newHarness(t, article("a", cache.World))

	v := h.ctrl.Snapshot()
	if !v.CanRefresh || !v.CanTranslateAll {
		t.Errorf("online controls = %v %v", v.CanRefresh, v.CanTranslateAll)
	}
	if v.ShowPagination() {
		t.Error("pagination shown for a single page")
	}

	h.ctrl.SelectFilter(cache.Offline)
	if v := h.ctrl.Snapshot(); v.CanTranslateAll {
		t.Error("translate all enabled on an empty view")
	}

	h.net.online.Store(false)
	if v := h.ctrl.Snapshot(); v.CanRefresh {
		t.Error("refresh enabled while offline")
	}
}

func TestDetail(t *testing.T) {
	h := newHarness(t, article("a", cache.World))

	if err := h.ctrl.OpenDetail("nope"); !errors.Is(err, ErrUnknownArticle) {
		t.Errorf("expected ErrUnknownArticle, got %v", err)
	}
	h.ctrl.OpenDetail("a")
	if v := h.ctrl.Snapshot(); v.Detail == nil || v.Detail.ID != "a" {
		t.Fatalf("detail = %+v", v.Detail)
	}
	h.ctrl.CloseDetail()
	if v := h.ctrl.Snapshot(); v.Detail != nil {
		t.Error("detail still open")
	}
}

func TestDetailSurvivesRefreshThatDropsIt(t *testing.T) {
	h := newHarness(t, article("a", cache.World), article("b", cache.World))
	h.ctrl.OpenDetail("a")

	h.source.mu.Lock()
	h.source.articles = []cache.Article{article("b", cache.World)}
	h.source.mu.Unlock()
	if err := h.ctrl.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	h.clock.Advance(IdleThreshold + time.Second)
	v := h.ctrl.Snapshot()
	if v.Detail == nil || v.Detail.ID != "a" {
		t.Fatalf("detail = %+v, want the opened article", v.Detail)
	}
	if h.ctrl.ShouldAutoRefresh() {
		t.Error("auto refresh allowed while a detail is on screen")
	}

	h.ctrl.CloseDetail()
	if v := h.ctrl.Snapshot(); v.Detail != nil {
		t.Error("detail still open")
	}
	if !h.ctrl.ShouldAutoRefresh() {
		t.Error("auto refresh blocked after closing the detail")
	}
}

func TestSummarizePageRetriesFailedCards(t *testing.T) {
	h := newHarness(t, article("a", cache.World))
	ctx := context.Background()

	h.net.online.Store(false)
	if n := h.ctrl.SummarizePage(ctx); n != 1 {
		t.Fatalf("started %d, want 1", n)
	}
	if st := h.ctrl.Snapshot().Cards[0].Status; st.Message != summaryOfflineText {
		t.Fatalf("status = %+v", st)
	}

	h.net.online.Store(true)
	if n := h.ctrl.SummarizePage(ctx); n != 1 {
		t.Fatalf("retry started %d, want 1", n)
	}
	v := h.ctrl.Snapshot()
	if v.Cards[0].Status != (CardStatus{}) || v.Cards[0].Article.Summary != "summary of a" {
		t.Errorf("card = %+v", v.Cards[0])
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "30s ago"},
		{90 * time.Second, "2m ago"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
		{90 * time.Minute, "2h ago"},
		{2 * 24 * time.Hour, "2d ago"},
	}
	for _, tt := range tests {
		if got := TimeAgo(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("TimeAgo(%v ago) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

type stubConn struct{ net.Conn }

func (stubConn) Close() error { return nil }

func TestProbeCheck(t *testing.T) {
	p := NewProbe("example.com:443", time.Second, nil)
	if !p.Online() {
		t.Fatal("probe should start online")
	}

	p.dial = func(context.Context, string, string) (net.Conn, error) {
		return nil, errors.New("unreachable")
	}
	if p.Check(context.Background()) || p.Online() {
		t.Error("expected offline after failed dial")
	}

	p.dial = func(context.Context, string, string) (net.Conn, error) {
		return stubConn{}, nil
	}
	if !p.Check(context.Background()) || !p.Online() {
		t.Error("expected online after successful dial")
	}
}
