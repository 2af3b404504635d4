package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reposcout/internal/domain"
	"reposcout/internal/ui/state"
)

func testState() state.AppState {
	s := state.NewAppState("tutorial", domain.DefaultSearchOptions())
	s.Results = []domain.SearchResult{
		{ID: 1, Name: "b/b", Stars: 5},
		{ID: 2, Name: "a/a", Stars: 9},
	}
	return s
}

func TestUnrecognizedMessageIsNoOp(t *testing.T) {
	r := Reducer{}
	s := testState()

	type bogusMsg struct{}
	next, intents := r.Apply(s, bogusMsg{})

	assert.Equal(t, s, next)
	assert.Empty(t, intents)
}

func TestSetQuery(t *testing.T) {
	r := Reducer{}
	s := testState()

	next, intents := r.Apply(s, SetQueryMsg{Query: "compiler"})

	assert.Equal(t, "compiler", next.Query)
	assert.Empty(t, intents)
	// Nothing else moves
	assert.Equal(t, s.Results, next.Results)
	assert.Equal(t, s.Options, next.Options)
}

func TestSubmitSearchEmitsIntent(t *testing.T) {
	var gotQuery string
	var gotOpts domain.SearchOptions
	r := Reducer{
		BuildQuery: func(q string, o domain.SearchOptions) string {
			gotQuery, gotOpts = q, o
			return "built-query"
		},
	}
	s := testState()

	next, intents := r.Apply(s, SubmitSearchMsg{})

	assert.Equal(t, s, next, "submit changes no state")
	require.Len(t, intents, 1)
	assert.Equal(t, SearchIntent{Query: "built-query"}, intents[0])
	assert.Equal(t, "tutorial", gotQuery)
	assert.Equal(t, s.Options, gotOpts)
}

func TestSearchResponseReplacesResultsWholesale(t *testing.T) {
	r := Reducer{}
	s := testState()

	fresh := []domain.SearchResult{{ID: 9, Name: "c/c", Stars: 1}}
	next, intents := r.Apply(s, SearchResponseMsg{Results: fresh})

	assert.Equal(t, fresh, next.Results)
	assert.Empty(t, intents)
}

func TestSearchResponseClearsEarlierError(t *testing.T) {
	r := Reducer{}
	s := testState()

	next, _ := r.Apply(s, SearchErrorMsg{Message: "boom"})
	assert.Equal(t, "boom", next.Err)

	// Unrelated messages leave the error in place
	next, _ = r.Apply(next, SetQueryMsg{Query: "other"})
	assert.Equal(t, "boom", next.Err)
	next, _ = r.Apply(next, DismissResultMsg{ID: 1})
	assert.Equal(t, "boom", next.Err)

	// Another failure overwrites it
	next, _ = r.Apply(next, SearchErrorMsg{Message: "worse"})
	assert.Equal(t, "worse", next.Err)

	// Only a success clears it
	next, _ = r.Apply(next, SearchResponseMsg{Results: nil})
	assert.Empty(t, next.Err)
}

func TestDismissRemovesMatchingID(t *testing.T) {
	r := Reducer{}
	s := testState()

	next, _ := r.Apply(s, DismissResultMsg{ID: 1})

	require.Len(t, next.Results, 1)
	assert.Equal(t, int64(2), next.Results[0].ID)
}

func TestDismissUnknownIDLeavesResultsUnchanged(t *testing.T) {
	r := Reducer{}
	s := testState()

	next, _ := r.Apply(s, DismissResultMsg{ID: 42})

	assert.Equal(t, s.Results, next.Results)
}

func TestDismissDoesNotMutateInputSlice(t *testing.T) {
	r := Reducer{}
	s := testState()
	before := append([]domain.SearchResult(nil), s.Results...)

	r.Apply(s, DismissResultMsg{ID: 1})

	assert.Equal(t, before, s.Results)
}

func TestSetTableSort(t *testing.T) {
	r := Reducer{}
	s := testState()

	want := state.TableSort{Column: state.ColumnName, Reversed: true}
	next, _ := r.Apply(s, SetTableSortMsg{Sort: want})

	assert.Equal(t, want, next.Table)
}

func TestOptionsMessageDelegates(t *testing.T) {
	r := Reducer{}
	s := testState()

	next, intents := r.Apply(s, OptionsMsg{Sub: SetOwnerFilterMsg{Owner: "foo"}})

	assert.Equal(t, "foo", next.Options.OwnerFilter)
	assert.Empty(t, intents)
}
