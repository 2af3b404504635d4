package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"reposcout/internal/feed"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse the built-in article feed by tag",
	Args:  cobra.MaximumNArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		model := feed.NewModel(feed.SeedArticles())
		p := tea.NewProgram(model, tea.WithAltScreen())
		model.SetProgram(p)

		_, err := p.Run()
		return err
	},
}

func init() {
	root.AddCommand(feedCmd)
}
