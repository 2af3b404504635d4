package cmd

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"reposcout/internal/config"
	"reposcout/internal/eventbus"
	"reposcout/internal/github"
	"reposcout/internal/ui"
)

var flags = struct {
	ConfigFile string
	Token      string
	Language   string
	Query      string
}{}

var root = &cobra.Command{
	Use:   "reposcout",
	Short: "Reposcout is a terminal GitHub repository search browser",
	Args:  cobra.MaximumNArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		bus := eventbus.New()
		defer bus.Close()

		configSvc := config.NewConfigServiceWithBus(bus)
		cfg, err := loadConfig(configSvc)
		if err != nil {
			return err
		}

		// Flag overrides on top of file and environment
		if flags.Token != "" {
			cfg.Token = flags.Token
		}
		if flags.Language != "" {
			cfg.Language = flags.Language
		}
		if flags.Query != "" {
			cfg.Query = flags.Query
		}

		// Transport service subscribes to search requests on the bus
		client := github.NewClient()
		_ = github.NewService(bus, client)

		builder := github.QueryBuilder{Token: cfg.Token, Language: cfg.Language}
		uiModel := ui.NewModel(bus, cfg, builder.Build)

		p := tea.NewProgram(uiModel, tea.WithAltScreen())
		uiModel.SetProgram(p)

		// Forward search outcomes into the UI loop. Arrival order is the
		// only ordering guarantee.
		eventChan := make(chan eventbus.DomainEvent, 100)
		forward := func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Println("Event channel full, dropping event")
			}
		}
		bus.Subscribe(eventbus.EventSearchCompleted, forward)
		bus.Subscribe(eventbus.EventSearchFailed, forward)

		bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
			event, ok := e.(eventbus.ConfigChangedEvent)
			if !ok {
				return
			}
			cfg.Query = event.Query
			cfg.SetOptions(event.Options)
			if err := configSvc.Save(cfg); err != nil {
				log.Printf("Failed to save config: %v", err)
			}
		})

		go func() {
			for event := range eventChan {
				p.Send(ui.EventMsg{Event: event})
			}
		}()

		_, err = p.Run()
		close(eventChan)
		return err
	},
}

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "configuration file")
	root.PersistentFlags().StringVarP(&flags.Token, "token", "t", "", "API token (overrides config and $"+config.TokenEnvVar+")")
	root.Flags().StringVarP(&flags.Language, "language", "l", "", "language filter term")
	root.Flags().StringVarP(&flags.Query, "query", "q", "", "initial search term")
}

func loadConfig(configSvc config.ConfigService) (*config.Config, error) {
	if flags.ConfigFile != "" {
		return configSvc.LoadFromPath(flags.ConfigFile)
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

// setupLogging redirects the standard logger to a file; the terminal
// belongs to the TUI.
func setupLogging() {
	logFile, err := os.OpenFile("reposcout.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return
	}
	log.SetOutput(logFile)
}

// Execute runs the root command.
func Execute() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
