package cache

import (
	"encoding/json"
	"fmt"
)

// SavedKey holds the JSON array of saved articles.
const SavedKey = "savedNewsArticles"

// LoadSaved reads the saved-articles collection. A missing key is an empty list.
func LoadSaved(s Store) ([]Article, error) {
	raw, ok, err := s.Get(SavedKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var articles []Article
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		return nil, fmt.Errorf("decoding saved articles: %w", err)
	}
	return articles, nil
}

// WriteSaved replaces the saved-articles collection with articles.
func WriteSaved(s Store, articles []Article) error {
	if articles == nil {
		articles = []Article{}
	}
	data, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("encoding saved articles: %w", err)
	}
	return s.Set(SavedKey, string(data))
}
