package logic

import (
	"reposcout/internal/domain"
)

// ApplyOption handles the option sub-messages. Each one sets a single
// field; arbitrary field and owner strings are accepted here and validated,
// if at all, by the presentation layer.
func ApplyOption(opts domain.SearchOptions, msg any) domain.SearchOptions {
	switch m := msg.(type) {
	case SetSortFieldMsg:
		opts.SortField = m.Field
	case SetAscendingMsg:
		opts.Ascending = m.Ascending
	case SetSearchDescriptionsMsg:
		opts.SearchDescriptions = m.Enabled
	case SetOwnerFilterMsg:
		opts.OwnerFilter = m.Owner
	}
	return opts
}
