package domain

// SearchResult is a single repository returned by a search.
type SearchResult struct {
	ID    int64  // stable unique key across fetches of the same repo
	Name  string // fully qualified, e.g. "owner/repo"
	Stars int    // non-negative star count
}

// SortField names a server-side sort criterion for the search query.
type SortField string

const (
	SortByStars   SortField = "stars"
	SortByForks   SortField = "forks"
	SortByUpdated SortField = "updated"
)

// SearchOptions are the query-construction parameters. They shape the
// outbound query string only; the displayed table order is a separate,
// purely local concern.
type SearchOptions struct {
	SortField          SortField
	Ascending          bool
	SearchDescriptions bool   // match in descriptions as well as names
	OwnerFilter        string // empty means no owner restriction
}

// DefaultSearchOptions returns the options a fresh session starts with.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		SortField:          SortByStars,
		Ascending:          false,
		SearchDescriptions: false,
		OwnerFilter:        "",
	}
}
