package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedFixture() []Article {
	return []Article{
		{Slug: "first", Title: "First", Tags: []string{"elm"}},
		{Slug: "second", Title: "Second", Tags: []string{"go", "elm"}},
		{Slug: "third", Title: "Third", Tags: []string{"go"}},
	}
}

func TestFilterByTagKeepsOnlyTagged(t *testing.T) {
	got := FilterByTag(feedFixture(), "go")

	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Slug)
	assert.Equal(t, "third", got[1].Slug)
}

func TestFilterByTagPreservesOrder(t *testing.T) {
	got := FilterByTag(feedFixture(), "elm")

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Slug)
	assert.Equal(t, "second", got[1].Slug)
}

func TestFilterByEmptyTagPassesThrough(t *testing.T) {
	in := feedFixture()

	got := FilterByTag(in, "")

	assert.Equal(t, in, got)
}

func TestFilterByUnknownTagIsEmpty(t *testing.T) {
	got := FilterByTag(feedFixture(), "rust")

	assert.Empty(t, got)
}

func TestTagsFirstSeenOrder(t *testing.T) {
	got := Tags(feedFixture())

	assert.Equal(t, []string{"elm", "go"}, got)
}

func TestTagCounts(t *testing.T) {
	got := TagCounts(feedFixture())

	assert.Equal(t, map[string]int{"elm": 2, "go": 2}, got)
}

func TestHasTag(t *testing.T) {
	a := Article{Tags: []string{"go", "elm"}}

	assert.True(t, a.HasTag("go"))
	assert.False(t, a.HasTag("rust"))
	assert.False(t, Article{}.HasTag("go"))
}

func TestSeedArticlesAreWellFormed(t *testing.T) {
	articles := SeedArticles()

	require.NotEmpty(t, articles)
	for _, a := range articles {
		assert.NotEmpty(t, a.Slug)
		assert.NotEmpty(t, a.Title)
		assert.NotEmpty(t, a.Tags)
	}
}
