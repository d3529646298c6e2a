package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/matheuskafuri/paknews/internal/cache"
	"github.com/matheuskafuri/paknews/internal/logging"
)

const (
	KindSummary     = "summary"
	KindTranslation = "translation"
)

const summarizePrompt = "Summarize the following news article in 3 to 4 concise sentences. " +
	"Focus on the key information and main points. " +
	"The summary should be easy to read and understand for a general audience. \n\n---\n\n%s"

const translatePrompt = "Translate the following English text to Urdu:\n\n---\n\n%s"

type operation struct {
	kind        string
	prompt      string
	placeholder string
	action      string
}

var (
	summarizeOp = operation{
		kind:        KindSummary,
		prompt:      summarizePrompt,
		placeholder: "No content provided to summarize.",
		action:      "generate summary",
	}
	translateOp = operation{
		kind:        KindTranslation,
		prompt:      translatePrompt,
		placeholder: "No text provided to translate.",
		action:      "translate text",
	}
)

// Error reports a failed enrichment call.
type Error struct {
	Op  string // KindSummary or KindTranslation
	Err error
}

func (e *Error) Error() string {
	action := summarizeOp.action
	if e.Op == KindTranslation {
		action = translateOp.action
	}
	return fmt.Sprintf("failed to %s from AI: %v", action, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// CacheKey is the store key holding the cached result of kind for an article.
func CacheKey(kind, articleID string) string {
	return kind + ":" + articleID
}

// Enricher produces summaries and Urdu translations, consulting the store
// before calling the generator. Results are cached indefinitely; failures are
// never cached. Safe for concurrent use.
type Enricher struct {
	gen    Generator
	store  cache.Store
	logger *slog.Logger
}

// NewEnricher returns an Enricher. gen may be nil, in which case every cache
// miss fails with ErrNotConfigured.
func NewEnricher(gen Generator, store cache.Store, logger *slog.Logger) *Enricher {
	return &Enricher{gen: gen, store: store, logger: logging.Component(logger, "ai")}
}

func (e *Enricher) Summarize(ctx context.Context, articleID, text string) (string, error) {
	return e.enrich(ctx, summarizeOp, articleID, text)
}

func (e *Enricher) Translate(ctx context.Context, articleID, text string) (string, error) {
	return e.enrich(ctx, translateOp, articleID, text)
}

func (e *Enricher) enrich(ctx context.Context, op operation, articleID, text string) (string, error) {
	key := CacheKey(op.kind, articleID)
	if cached, ok := e.lookup(key); ok {
		return cached, nil
	}

	if text == "" {
		return op.placeholder, nil
	}
	if e.gen == nil {
		return "", &Error{Op: op.kind, Err: ErrNotConfigured}
	}

	result, err := e.gen.Generate(ctx, fmt.Sprintf(op.prompt, text))
	if err != nil {
		e.logger.Error("enrichment failed", "kind", op.kind, "article", articleID, "error", err)
		return "", &Error{Op: op.kind, Err: err}
	}

	e.remember(key, result)
	return result, nil
}

func (e *Enricher) lookup(key string) (string, bool) {
	if e.store == nil {
		return "", false
	}
	raw, ok, err := e.store.Get(key)
	if err != nil {
		e.logger.Error("reading enrichment cache", "key", key, "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	var text string
	if err := json.Unmarshal([]byte(raw), &text); err != nil {
		e.logger.Error("decoding enrichment cache", "key", key, "error", err)
		return "", false
	}
	return text, true
}

func (e *Enricher) remember(key, text string) {
	if e.store == nil {
		return
	}
	data, _ := json.Marshal(text)
	if err := e.store.Set(key, string(data)); err != nil {
		e.logger.Error("writing enrichment cache", "key", key, "error", err)
	}
}
