package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	RowSelected  lipgloss.Style
	Stars        lipgloss.Style
	ErrorBanner  lipgloss.Style
	OptionOn     lipgloss.Style
	OptionOff    lipgloss.Style
	Prompt       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		HeaderActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		RowSelected:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Stars:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		ErrorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 1),
		OptionOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		OptionOff: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
