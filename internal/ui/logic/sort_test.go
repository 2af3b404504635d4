package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reposcout/internal/domain"
	"reposcout/internal/ui/state"
)

func sortFixture() []domain.SearchResult {
	return []domain.SearchResult{
		{ID: 1, Name: "b/b", Stars: 5},
		{ID: 2, Name: "a/a", Stars: 9},
	}
}

func ids(results []domain.SearchResult) []int64 {
	out := make([]int64, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func TestDefaultSortPutsHighestStarsFirst(t *testing.T) {
	got := SortResults(sortFixture(), state.DefaultTableSort())

	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestStarsReversedPutsLowestFirst(t *testing.T) {
	ts := state.TableSort{Column: state.ColumnStars, Reversed: true}
	got := SortResults(sortFixture(), ts)

	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestNameSortIsLexicographic(t *testing.T) {
	ts := state.TableSort{Column: state.ColumnName}
	got := SortResults(sortFixture(), ts)

	assert.Equal(t, []int64{2, 1}, ids(got))

	ts.Reversed = true
	got = SortResults(sortFixture(), ts)
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestSortIsStableOnTies(t *testing.T) {
	tied := []domain.SearchResult{
		{ID: 1, Name: "x/one", Stars: 7},
		{ID: 2, Name: "x/two", Stars: 7},
		{ID: 3, Name: "x/three", Stars: 7},
	}

	got := SortResults(tied, state.DefaultTableSort())
	assert.Equal(t, []int64{1, 2, 3}, ids(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := sortFixture()
	before := append([]domain.SearchResult(nil), in...)

	out := SortResults(in, state.TableSort{Column: state.ColumnName})

	assert.Equal(t, before, in)
	require.Len(t, out, len(in))
}

func TestToggleFlipsActiveColumn(t *testing.T) {
	ts := state.DefaultTableSort()

	ts = ts.Toggle(state.ColumnStars)
	assert.Equal(t, state.TableSort{Column: state.ColumnStars, Reversed: true}, ts)

	ts = ts.Toggle(state.ColumnStars)
	assert.Equal(t, state.TableSort{Column: state.ColumnStars, Reversed: false}, ts)
}

func TestToggleNewColumnResetsDirection(t *testing.T) {
	ts := state.TableSort{Column: state.ColumnStars, Reversed: true}

	ts = ts.Toggle(state.ColumnName)
	assert.Equal(t, state.TableSort{Column: state.ColumnName, Reversed: false}, ts)

	ts = ts.Toggle(state.ColumnName)
	assert.True(t, ts.Reversed)
}
