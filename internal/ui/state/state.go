package state

import (
	"reposcout/internal/domain"
)

// Table column titles. Column identity for sort state is the display
// title, so titles must stay unique.
const (
	ColumnStars = "Stars"
	ColumnName  = "Name"
)

// TableSort is the active table column and direction. Reversed means the
// column's natural order is inverted; for Stars the natural order already
// puts the highest count first.
type TableSort struct {
	Column   string
	Reversed bool
}

// DefaultTableSort returns the initial table order: Stars, highest first.
func DefaultTableSort() TableSort {
	return TableSort{Column: ColumnStars}
}

// Toggle computes the sort state after a header interaction: the active
// column flips direction, any other column becomes active in its natural
// order.
func (t TableSort) Toggle(column string) TableSort {
	if t.Column == column {
		t.Reversed = !t.Reversed
		return t
	}
	return TableSort{Column: column}
}

// AppState contains all the application state. The reducer owns the
// canonical fields; the trailing fields are display-local and the reducer
// never touches them.
type AppState struct {
	Query   string                // free-text search term
	Results []domain.SearchResult // canonical unsorted result set, replaced wholesale per search
	Err     string                // last transport/decode error, empty means none
	Options domain.SearchOptions
	Table   TableSort

	// Display-local state
	Cursor        int    // selected row in the displayed table
	Filter        string // local fuzzy filter over displayed rows
	Searching     bool   // a request is in flight
	StatusMessage string // status bar message
}

// NewAppState creates the startup state.
func NewAppState(query string, opts domain.SearchOptions) AppState {
	return AppState{
		Query:   query,
		Options: opts,
		Table:   DefaultTableSort(),
	}
}
