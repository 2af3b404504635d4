package logic

import (
	"sort"

	"reposcout/internal/domain"
	"reposcout/internal/ui/state"
)

// SortResults orders results by the active column without mutating the
// input slice.
func SortResults(results []domain.SearchResult, ts state.TableSort) []domain.SearchResult {
	sorted := make([]domain.SearchResult, len(results))
	copy(sorted, results)

	less := lessFor(ts.Column)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ts.Reversed {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

func lessFor(column string) func(a, b domain.SearchResult) bool {
	switch column {
	case state.ColumnName:
		return func(a, b domain.SearchResult) bool {
			return a.Name < b.Name
		}
	default:
		// Stars: sorting the negated count makes "increasing" put the
		// highest-starred repo first.
		return func(a, b domain.SearchResult) bool {
			return -a.Stars < -b.Stars
		}
	}
}
