package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reposcout/internal/domain"
)

func TestFilterEmptyQueryPassesThrough(t *testing.T) {
	in := []domain.SearchResult{
		{ID: 1, Name: "elm/core", Stars: 100},
		{ID: 2, Name: "evancz/elm-todomvc", Stars: 50},
	}

	got := FilterResults(in, "")

	assert.Equal(t, in, got)
}

func TestFilterNarrowsByName(t *testing.T) {
	in := []domain.SearchResult{
		{ID: 1, Name: "elm/core", Stars: 100},
		{ID: 2, Name: "rust-lang/rust", Stars: 900},
		{ID: 3, Name: "evancz/elm-todomvc", Stars: 50},
	}

	got := FilterResults(in, "todomvc")

	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestFilterNoMatchesIsEmpty(t *testing.T) {
	in := []domain.SearchResult{
		{ID: 1, Name: "elm/core", Stars: 100},
	}

	got := FilterResults(in, "zzzz")

	assert.Empty(t, got)
}
