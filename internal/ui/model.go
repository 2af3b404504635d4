package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reposcout/internal/config"
	"reposcout/internal/domain"
	"reposcout/internal/eventbus"
	"reposcout/internal/pager"
	"reposcout/internal/ui/logic"
	"reposcout/internal/ui/state"
	"reposcout/internal/ui/views"
)

// Fields the inline text input can edit.
const (
	editNone   = ""
	editQuery  = "query"
	editOwner  = "owner"
	editFilter = "filter"
)

// Model represents the UI state for the search browser.
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	state   state.AppState
	reducer logic.Reducer

	width   int
	height  int
	editing string
	input   textinput.Model
	keys    keyMap
	help    help.Model

	renderer *views.Renderer
	pager    *pager.Ops

	program *tea.Program
}

// NewModel creates a new UI model. buildQuery carries the injected
// credential and language; the model never sees them directly.
func NewModel(bus eventbus.EventBus, cfg *config.Config, buildQuery func(string, domain.SearchOptions) string) *Model {
	input := textinput.New()
	input.CharLimit = 200

	return &Model{
		bus:      bus,
		config:   cfg,
		state:    state.NewAppState(cfg.Query, cfg.Options()),
		reducer:  logic.Reducer{BuildQuery: buildQuery},
		input:    input,
		keys:     defaultKeyMap(),
		help:     help.New(),
		renderer: views.NewRenderer(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = pager.New(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case clearStatusMsg:
		m.state.StatusMessage = ""

	case helpPagerMsg:
		if msg.err != nil {
			m.state.StatusMessage = fmt.Sprintf("help pager: %v", msg.err)
			return m, clearStatusAfter(3 * time.Second)
		}
	}

	return m, nil
}

// updateNormal handles keys outside of text-editing mode.
func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		if m.config.UI.AutosaveOnExit {
			m.bus.Publish(eventbus.ConfigChangedEvent{
				Query:   m.state.Query,
				Options: m.state.Options,
			})
		}
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.state.Cursor > 0 {
			m.state.Cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.state.Cursor < len(m.displayRows())-1 {
			m.state.Cursor++
		}

	case key.Matches(msg, keys.Search):
		m.dispatch(logic.SubmitSearchMsg{})

	case key.Matches(msg, keys.EditQuery):
		m.startEditing(editQuery, m.state.Query)

	case key.Matches(msg, keys.EditOwner):
		m.startEditing(editOwner, m.state.Options.OwnerFilter)

	case key.Matches(msg, keys.EditFilter):
		m.startEditing(editFilter, m.state.Filter)

	case key.Matches(msg, keys.Dismiss):
		rows := m.displayRows()
		if m.state.Cursor >= 0 && m.state.Cursor < len(rows) {
			m.dispatch(logic.DismissResultMsg{ID: rows[m.state.Cursor].ID})
		}

	case key.Matches(msg, keys.SortName):
		m.dispatch(logic.SetTableSortMsg{Sort: m.state.Table.Toggle(state.ColumnName)})

	case key.Matches(msg, keys.SortStars):
		m.dispatch(logic.SetTableSortMsg{Sort: m.state.Table.Toggle(state.ColumnStars)})

	case key.Matches(msg, keys.CycleSort):
		m.dispatch(logic.OptionsMsg{Sub: logic.SetSortFieldMsg{Field: nextSortField(m.state.Options.SortField)}})

	case key.Matches(msg, keys.ToggleOrder):
		m.dispatch(logic.OptionsMsg{Sub: logic.SetAscendingMsg{Ascending: !m.state.Options.Ascending}})

	case key.Matches(msg, keys.ToggleDesc):
		m.dispatch(logic.OptionsMsg{Sub: logic.SetSearchDescriptionsMsg{Enabled: !m.state.Options.SearchDescriptions}})

	case key.Matches(msg, keys.Clear):
		m.state.Filter = ""
		m.state.Cursor = 0

	case key.Matches(msg, keys.Help):
		return m, m.showHelpPager()
	}

	return m, nil
}

// updateEditing handles keys while the inline text input is focused.
func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.input.Value()
		field := m.editing
		m.stopEditing()

		switch field {
		case editQuery:
			m.dispatch(logic.SetQueryMsg{Query: value})
			m.dispatch(logic.SubmitSearchMsg{})
		case editOwner:
			m.dispatch(logic.OptionsMsg{Sub: logic.SetOwnerFilterMsg{Owner: value}})
		case editFilter:
			m.state.Filter = value
			m.state.Cursor = 0
		}
		return m, nil

	case "esc":
		m.stopEditing()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEvent processes domain events forwarded from the bus.
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.SearchCompletedEvent:
		m.state.Searching = false
		m.dispatch(logic.SearchResponseMsg{Results: e.Results})
		m.state.Cursor = 0

	case eventbus.SearchFailedEvent:
		m.state.Searching = false
		m.dispatch(logic.SearchErrorMsg{Message: e.Message})

	default:
		log.Printf("UI: ignoring event %s", event.Type())
	}

	return m, nil
}

// dispatch feeds a message through the reducer and executes any intents.
func (m *Model) dispatch(msg any) {
	next, intents := m.reducer.Apply(m.state, msg)
	m.state = next
	m.clampCursor()

	for _, intent := range intents {
		switch it := intent.(type) {
		case logic.SearchIntent:
			m.state.Searching = true
			m.bus.Publish(eventbus.SearchRequestedEvent{Query: it.Query})
		}
	}
}

// displayRows derives the table rows: local filter first, then the active
// column order. The canonical result list is never reordered.
func (m *Model) displayRows() []domain.SearchResult {
	return logic.SortResults(logic.FilterResults(m.state.Results, m.state.Filter), m.state.Table)
}

func (m *Model) clampCursor() {
	max := len(m.displayRows()) - 1
	if m.state.Cursor > max {
		m.state.Cursor = max
	}
	if m.state.Cursor < 0 {
		m.state.Cursor = 0
	}
}

func (m *Model) startEditing(field, current string) {
	m.editing = field
	m.input.SetValue(current)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) stopEditing() {
	m.editing = editNone
	m.input.Blur()
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	vs := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Query:         m.state.Query,
		Rows:          m.displayRows(),
		ResultTotal:   len(m.state.Results),
		Table:         m.state.Table,
		Cursor:        m.state.Cursor,
		Err:           m.state.Err,
		Options:       m.state.Options,
		Filter:        m.state.Filter,
		Searching:     m.state.Searching,
		StatusMessage: m.state.StatusMessage,
		HelpView:      m.help.View(m.keys),
	}

	if m.editing != editNone {
		vs.InputLabel = m.editing
		vs.InputView = m.input.View()
	}

	return m.renderer.Render(vs)
}

// showHelpPager returns a command that shows help using the ov pager.
func (m *Model) showHelpPager() tea.Cmd {
	if m.pager == nil {
		return nil
	}
	content := renderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.pager.Show(content)}
	}
}

func nextSortField(field domain.SortField) domain.SortField {
	switch field {
	case domain.SortByStars:
		return domain.SortByForks
	case domain.SortByForks:
		return domain.SortByUpdated
	default:
		return domain.SortByStars
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
