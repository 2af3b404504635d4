package views

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"reposcout/internal/domain"
	"reposcout/internal/ui/state"
)

const starsColWidth = 10

// TableRenderer draws the results table
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// Render draws the header and the rows in display order. cursor is the
// index of the highlighted row, -1 for none.
func (t *TableRenderer) Render(rows []domain.SearchResult, ts state.TableSort, cursor int, width int) string {
	if width <= 0 {
		width = 80
	}
	nameWidth := width - starsColWidth - 6
	if nameWidth < 16 {
		nameWidth = 16
	}

	var b strings.Builder
	b.WriteString(t.renderHeader(ts, nameWidth))
	b.WriteString("\n")

	for i, row := range rows {
		name := truncate.StringWithTail(row.Name, uint(nameWidth), "…")
		stars := t.styles.Stars.Render(humanize.Comma(int64(row.Stars)))
		line := fmt.Sprintf("  %-*s %*s", nameWidth, name, starsColWidth, stars)
		if i == cursor {
			line = t.styles.RowSelected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(rows) == 0 {
		b.WriteString(t.styles.Dim.Render("  no results"))
		b.WriteString("\n")
	}

	return b.String()
}

func (t *TableRenderer) renderHeader(ts state.TableSort, nameWidth int) string {
	name := t.headerCell(state.ColumnName, ts)
	stars := t.headerCell(state.ColumnStars, ts)
	pad := nameWidth - len(state.ColumnName)
	if ts.Column == state.ColumnName {
		pad -= 2 // direction marker
	}
	if pad < 1 {
		pad = 1
	}
	return fmt.Sprintf("  %s%s %s", name, strings.Repeat(" ", pad), stars)
}

// headerCell renders one column title, marking the active sort column with
// its direction.
func (t *TableRenderer) headerCell(column string, ts state.TableSort) string {
	if ts.Column != column {
		return t.styles.Header.Render(column)
	}
	marker := "▾"
	if ts.Reversed {
		marker = "▴"
	}
	return t.styles.HeaderActive.Render(column + " " + marker)
}
