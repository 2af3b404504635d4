package logic

import (
	"github.com/sahilm/fuzzy"

	"reposcout/internal/domain"
)

// FilterResults narrows the displayed rows with a fuzzy match on the repo
// name. An empty query passes everything through untouched; matches come
// back in score order.
func FilterResults(results []domain.SearchResult, query string) []domain.SearchResult {
	if query == "" {
		return results
	}

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}

	matches := fuzzy.Find(query, names)
	filtered := make([]domain.SearchResult, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, results[m.Index])
	}
	return filtered
}
