package github

import (
	"strings"

	"reposcout/internal/domain"
)

// QueryBuilder constructs the raw query string for the repository search
// endpoint. The token and language are process-wide configuration injected
// at startup; everything else comes from the caller's options.
type QueryBuilder struct {
	Token    string
	Language string
}

// Build assembles the query string. Segment order is fixed and optional
// segments are omitted entirely, not sent empty-valued: the server side is
// picky about both.
func (b QueryBuilder) Build(query string, opts domain.SearchOptions) string {
	var sb strings.Builder

	sb.WriteString("access_token=")
	sb.WriteString(b.Token)

	sb.WriteString("&q=")
	sb.WriteString(query)

	if opts.SearchDescriptions {
		sb.WriteString("+in:name,description")
	} else {
		sb.WriteString("+in:name")
	}

	sb.WriteString("+language:")
	sb.WriteString(b.Language)

	if opts.OwnerFilter != "" {
		sb.WriteString("+user:")
		sb.WriteString(opts.OwnerFilter)
	}

	sb.WriteString("&sort=")
	sb.WriteString(string(opts.SortField))

	if opts.Ascending {
		sb.WriteString("&order=asc")
	} else {
		sb.WriteString("&order=desc")
	}

	return sb.String()
}
