package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reposcout/internal/domain"
)

func TestApplyOptionSetsExactlyOneField(t *testing.T) {
	base := domain.DefaultSearchOptions()

	got := ApplyOption(base, SetSortFieldMsg{Field: domain.SortByForks})
	assert.Equal(t, domain.SortByForks, got.SortField)
	got.SortField = base.SortField
	assert.Equal(t, base, got)

	got = ApplyOption(base, SetAscendingMsg{Ascending: true})
	assert.True(t, got.Ascending)
	got.Ascending = base.Ascending
	assert.Equal(t, base, got)

	got = ApplyOption(base, SetSearchDescriptionsMsg{Enabled: true})
	assert.True(t, got.SearchDescriptions)
	got.SearchDescriptions = base.SearchDescriptions
	assert.Equal(t, base, got)

	got = ApplyOption(base, SetOwnerFilterMsg{Owner: "evancz"})
	assert.Equal(t, "evancz", got.OwnerFilter)
	got.OwnerFilter = base.OwnerFilter
	assert.Equal(t, base, got)
}

func TestApplyOptionAcceptsArbitraryStrings(t *testing.T) {
	base := domain.DefaultSearchOptions()

	// No validation at this layer
	got := ApplyOption(base, SetSortFieldMsg{Field: "not-a-field"})
	assert.Equal(t, domain.SortField("not-a-field"), got.SortField)
}

func TestApplyOptionUnknownMessageIsNoOp(t *testing.T) {
	base := domain.DefaultSearchOptions()

	got := ApplyOption(base, struct{}{})
	assert.Equal(t, base, got)
}
