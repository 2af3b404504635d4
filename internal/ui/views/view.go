package views

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"reposcout/internal/domain"
	"reposcout/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Query         string
	Rows          []domain.SearchResult // display order, already sorted and filtered
	ResultTotal   int                   // canonical result count before local filtering
	Table         state.TableSort
	Cursor        int
	Err           string
	Options       domain.SearchOptions
	Filter        string
	Searching     bool
	StatusMessage string
	InputView     string // rendered text input when a field is being edited
	InputLabel    string // which field the input edits, empty when idle
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	table  *TableRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		table:  NewTableRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(vs))
	content.WriteString("\n")
	content.WriteString(r.renderQueryLine(vs))
	content.WriteString("\n")
	content.WriteString(r.renderOptionsLine(vs.Options))
	content.WriteString("\n\n")

	content.WriteString(r.table.Render(vs.Rows, vs.Table, vs.Cursor, vs.Width))

	if vs.Err != "" {
		content.WriteString("\n")
		content.WriteString(r.renderErrorBanner(vs.Err, vs.Width))
		content.WriteString("\n")
	}

	content.WriteString(r.renderStatusLine(vs))

	if vs.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(vs.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(vs ViewState) string {
	title := r.styles.Title.Render("reposcout")
	if vs.Searching {
		title += r.styles.Dim.Render("  searching…")
	}
	if vs.Filter != "" {
		title += "  " + r.styles.Filter.Render(fmt.Sprintf("[filter: %s]", vs.Filter))
	}
	return title
}

func (r *Renderer) renderQueryLine(vs ViewState) string {
	if vs.InputLabel != "" {
		return fmt.Sprintf("%s %s", r.styles.Prompt.Render(vs.InputLabel+":"), vs.InputView)
	}
	return fmt.Sprintf("%s %s", r.styles.Prompt.Render("query:"), vs.Query)
}

// renderOptionsLine shows the query-construction options as they will be
// sent, not as form widgets.
func (r *Renderer) renderOptionsLine(opts domain.SearchOptions) string {
	parts := []string{
		r.styles.OptionOn.Render("sort:" + string(opts.SortField)),
	}

	if opts.Ascending {
		parts = append(parts, r.styles.OptionOn.Render("order:asc"))
	} else {
		parts = append(parts, r.styles.OptionOn.Render("order:desc"))
	}

	if opts.SearchDescriptions {
		parts = append(parts, r.styles.OptionOn.Render("in:name,description"))
	} else {
		parts = append(parts, r.styles.OptionOff.Render("in:name"))
	}

	if opts.OwnerFilter != "" {
		parts = append(parts, r.styles.OptionOn.Render("user:"+opts.OwnerFilter))
	}

	return r.styles.Dim.Render("  ") + strings.Join(parts, r.styles.Dim.Render("  "))
}

func (r *Renderer) renderErrorBanner(msg string, width int) string {
	wrapWidth := width - 8
	if wrapWidth < 20 {
		wrapWidth = 20
	}
	return r.styles.ErrorBanner.Render(wordwrap.String(msg, wrapWidth))
}

func (r *Renderer) renderStatusLine(vs ViewState) string {
	shown := len(vs.Rows)
	status := fmt.Sprintf("%d results", vs.ResultTotal)
	if shown != vs.ResultTotal {
		status = fmt.Sprintf("%d/%d results", shown, vs.ResultTotal)
	}
	if vs.StatusMessage != "" {
		status += "  " + vs.StatusMessage
	}
	return r.styles.Status.Render(status)
}
