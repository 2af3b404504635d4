package feed

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reposcout/internal/pager"
)

// ClickedTagMsg selects a tag; the previous selection is replaced
// entirely.
type ClickedTagMsg struct {
	Tag string
}

// pagerDoneMsg reports the article pager closing.
type pagerDoneMsg struct {
	err error
}

const (
	paneTags = iota
	paneArticles
)

// Model is the feed browser UI.
type Model struct {
	articles    []Article
	tags        []string
	counts      map[string]int
	selectedTag string

	pane      int
	tagCursor int
	artCursor int
	width     int
	height    int
	statusMsg string
	styles    *styles
	pagerOps  *pager.Ops
	program   *tea.Program
}

type styles struct {
	title    lipgloss.Style
	dim      lipgloss.Style
	selected lipgloss.Style
	active   lipgloss.Style
	author   lipgloss.Style
	pane     lipgloss.Style
	paneOn   lipgloss.Style
}

func newStyles() *styles {
	return &styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		dim:      lipgloss.NewStyle().Faint(true),
		selected: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		active:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		author:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		pane:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("241")).Padding(0, 1),
		paneOn:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1),
	}
}

// NewModel creates the feed browser over a fixed article list.
func NewModel(articles []Article) *Model {
	return &Model{
		articles: articles,
		tags:     Tags(articles),
		counts:   TagCounts(articles),
		styles:   newStyles(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps = pager.New(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Visible returns the articles under the current tag selection.
func (m *Model) Visible() []Article {
	return FilterByTag(m.articles, m.selectedTag)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ClickedTagMsg:
		m.selectedTag = msg.Tag
		m.artCursor = 0

	case pagerDoneMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("pager: %v", msg.err)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab", "h", "l", "left", "right":
		if m.pane == paneTags {
			m.pane = paneArticles
		} else {
			m.pane = paneTags
		}

	case "j", "down":
		m.moveCursor(1)

	case "k", "up":
		m.moveCursor(-1)

	case "enter", " ":
		if m.pane == paneTags {
			if m.tagCursor < len(m.tags) {
				tag := m.tags[m.tagCursor]
				return m, func() tea.Msg { return ClickedTagMsg{Tag: tag} }
			}
		} else {
			return m, m.openArticle()
		}

	case "esc":
		return m, func() tea.Msg { return ClickedTagMsg{Tag: ""} }
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.pane == paneTags {
		m.tagCursor = clamp(m.tagCursor+delta, 0, len(m.tags)-1)
	} else {
		m.artCursor = clamp(m.artCursor+delta, 0, len(m.Visible())-1)
	}
}

// openArticle shows the selected article body in the pager.
func (m *Model) openArticle() tea.Cmd {
	visible := m.Visible()
	if m.pagerOps == nil || m.artCursor < 0 || m.artCursor >= len(visible) {
		return nil
	}

	article := visible[m.artCursor]
	content := fmt.Sprintf("%s\nby %s\n\n%s\n", article.Title, article.Author, article.Body)
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pagerOps.Show(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	left := m.renderTags()
	right := m.renderArticles()

	leftStyle, rightStyle := m.styles.pane, m.styles.pane
	if m.pane == paneTags {
		leftStyle = m.styles.paneOn
	} else {
		rightStyle = m.styles.paneOn
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		leftStyle.Render(left),
		rightStyle.Render(right),
	)

	var b strings.Builder
	b.WriteString(m.styles.title.Render("conduit"))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render("tab: switch pane  enter: select/read  esc: all articles  q: quit"))
	if m.statusMsg != "" {
		b.WriteString("  " + m.statusMsg)
	}
	return b.String()
}

func (m *Model) renderTags() string {
	var b strings.Builder
	b.WriteString(m.styles.dim.Render("Popular Tags"))
	b.WriteString("\n")

	for i, tag := range m.tags {
		line := fmt.Sprintf("%s (%d)", tag, m.counts[tag])
		if tag == m.selectedTag {
			line = m.styles.active.Render(line)
		}
		if m.pane == paneTags && i == m.tagCursor {
			line = m.styles.selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderArticles() string {
	var b strings.Builder
	header := "Global Feed"
	if m.selectedTag != "" {
		header = "#" + m.selectedTag
	}
	b.WriteString(m.styles.dim.Render(header))
	b.WriteString("\n")

	visible := m.Visible()
	for i, article := range visible {
		title := article.Title
		if m.pane == paneArticles && i == m.artCursor {
			title = m.styles.selected.Render(title)
		}
		b.WriteString(title)
		b.WriteString("\n")
		b.WriteString(m.styles.dim.Render(article.Description))
		b.WriteString(" ")
		b.WriteString(m.styles.author.Render("· " + article.Author))
		b.WriteString("\n")
	}

	if len(visible) == 0 {
		b.WriteString(m.styles.dim.Render("no articles for this tag"))
		b.WriteString("\n")
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
