package logic

import (
	"reposcout/internal/domain"
	"reposcout/internal/ui/state"
)

// Reducer computes the next application state from the current state and
// an incoming message. It performs no I/O; side effects come back as
// intents for the caller to execute.
type Reducer struct {
	// BuildQuery constructs the outbound query string from the current
	// term and options. The credential token lives inside the builder,
	// never in the state.
	BuildQuery func(query string, opts domain.SearchOptions) string
}

// Apply returns the next state and any outbound intents. Unrecognized
// messages return the input state unchanged.
func (r Reducer) Apply(s state.AppState, msg any) (state.AppState, []Intent) {
	switch m := msg.(type) {
	case SetQueryMsg:
		s.Query = m.Query

	case SubmitSearchMsg:
		if r.BuildQuery != nil {
			return s, []Intent{SearchIntent{Query: r.BuildQuery(s.Query, s.Options)}}
		}

	case SearchResponseMsg:
		s.Results = m.Results
		// Success is the only thing that clears a stale error.
		s.Err = ""

	case SearchErrorMsg:
		s.Err = m.Message

	case DismissResultMsg:
		s.Results = removeByID(s.Results, m.ID)

	case SetTableSortMsg:
		s.Table = m.Sort

	case OptionsMsg:
		s.Options = ApplyOption(s.Options, m.Sub)
	}

	return s, nil
}

// removeByID filters out the entry with the given id. Filtering rather
// than index removal keeps a miss harmless.
func removeByID(results []domain.SearchResult, id int64) []domain.SearchResult {
	kept := make([]domain.SearchResult, 0, len(results))
	for _, r := range results {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	return kept
}
