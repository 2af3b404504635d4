package logic

import (
	"reposcout/internal/domain"
	"reposcout/internal/ui/state"
)

// Messages fed to the reducer. Anything not listed here is a no-op.

// SetQueryMsg replaces the free-text search term.
type SetQueryMsg struct {
	Query string
}

// SubmitSearchMsg asks for a search with the current state's query and
// options. It changes no state itself.
type SubmitSearchMsg struct{}

// SearchResponseMsg carries a decoded result list.
type SearchResponseMsg struct {
	Results []domain.SearchResult
}

// SearchErrorMsg carries a transport or decode failure.
type SearchErrorMsg struct {
	Message string
}

// DismissResultMsg removes the result with the given id from view.
type DismissResultMsg struct {
	ID int64
}

// SetTableSortMsg replaces the table sort state.
type SetTableSortMsg struct {
	Sort state.TableSort
}

// OptionsMsg wraps one of the option sub-messages below.
type OptionsMsg struct {
	Sub any
}

// Option sub-messages. Each sets exactly one field; no validation happens
// at this layer.

type SetSortFieldMsg struct {
	Field domain.SortField
}

type SetAscendingMsg struct {
	Ascending bool
}

type SetSearchDescriptionsMsg struct {
	Enabled bool
}

type SetOwnerFilterMsg struct {
	Owner string
}

// Intent describes a side effect the reducer requests but does not
// perform.
type Intent interface {
	isIntent()
}

// SearchIntent asks the transport layer to run the given query string.
type SearchIntent struct {
	Query string
}

func (SearchIntent) isIntent() {}
