package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings for the search browser
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Search      key.Binding
	EditQuery   key.Binding
	EditOwner   key.Binding
	EditFilter  key.Binding
	Dismiss     key.Binding
	SortName    key.Binding
	SortStars   key.Binding
	CycleSort   key.Binding
	ToggleOrder key.Binding
	ToggleDesc  key.Binding
	Clear       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "search"),
		),
		EditQuery: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "edit query"),
		),
		EditOwner: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "owner filter"),
		),
		EditFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter rows"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "dismiss row"),
		),
		SortName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "sort by name"),
		),
		SortStars: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort by stars"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "server sort field"),
		),
		ToggleOrder: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "asc/desc"),
		),
		ToggleDesc: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "match descriptions"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.EditQuery, k.Dismiss, k.SortName, k.SortStars, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dismiss},
		{k.Search, k.EditQuery, k.EditOwner, k.EditFilter},
		{k.SortName, k.SortStars, k.CycleSort, k.ToggleOrder, k.ToggleDesc},
		{k.Clear, k.Help, k.Quit},
	}
}
