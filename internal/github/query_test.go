package github

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"reposcout/internal/domain"
)

func TestBuildDefaultOptions(t *testing.T) {
	b := QueryBuilder{Token: "secret", Language: "elm"}

	got := b.Build("tutorial", domain.DefaultSearchOptions())

	assert.Equal(t,
		"access_token=secret&q=tutorial+in:name+language:elm&sort=stars&order=desc",
		got)
}

func TestBuildForksAscending(t *testing.T) {
	b := QueryBuilder{Token: "secret", Language: "elm"}
	opts := domain.SearchOptions{
		SortField: domain.SortByForks,
		Ascending: true,
	}

	got := b.Build("tutorial", opts)

	assert.True(t, strings.HasSuffix(got, "+in:name+language:elm&sort=forks&order=asc"), got)
	assert.NotContains(t, got, "user:")
}

func TestBuildDescriptionsWidenScope(t *testing.T) {
	b := QueryBuilder{Token: "secret", Language: "elm"}
	opts := domain.DefaultSearchOptions()
	opts.SearchDescriptions = true

	got := b.Build("tutorial", opts)

	assert.Contains(t, got, "&q=tutorial+in:name,description+language:elm")
}

func TestBuildOwnerFilter(t *testing.T) {
	b := QueryBuilder{Token: "secret", Language: "elm"}
	opts := domain.DefaultSearchOptions()
	opts.OwnerFilter = "foo"

	got := b.Build("tutorial", opts)

	assert.Equal(t, 1, strings.Count(got, "+user:foo"))
	assert.Contains(t, got, "+language:elm+user:foo&sort=")
}

func TestBuildEmptyOwnerAddsNothing(t *testing.T) {
	b := QueryBuilder{Token: "secret", Language: "elm"}

	withOwner := domain.DefaultSearchOptions()
	withOwner.OwnerFilter = ""

	got := b.Build("tutorial", withOwner)

	assert.NotContains(t, got, "user:")
	assert.Contains(t, got, "+language:elm&sort=")
}
