package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"reposcout/internal/domain"
	"reposcout/internal/eventbus"
)

// TokenEnvVar overrides the configured API token when set.
const TokenEnvVar = "GITHUB_TOKEN"

// Config represents the application configuration
type Config struct {
	Version  int        `toml:"version"`
	Token    string     `toml:"token"`                        // opaque API credential, passed through verbatim
	Query    string     `toml:"query"`                        // initial search term
	Language string     `toml:"language" validate:"required"` // fixed language filter term
	Search   Search     `toml:"search"`
	UI       UISettings `toml:"ui"`
}

// Search holds the persisted query-construction options.
type Search struct {
	Sort         string `toml:"sort" validate:"oneof=stars forks updated"`
	Ascending    bool   `toml:"ascending"`
	Descriptions bool   `toml:"descriptions"` // also match in repo descriptions
	Owner        string `toml:"owner"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// Options converts the persisted search section to domain options.
func (c *Config) Options() domain.SearchOptions {
	return domain.SearchOptions{
		SortField:          domain.SortField(c.Search.Sort),
		Ascending:          c.Search.Ascending,
		SearchDescriptions: c.Search.Descriptions,
		OwnerFilter:        c.Search.Owner,
	}
}

// SetOptions writes domain options back into the persisted search section.
func (c *Config) SetOptions(o domain.SearchOptions) {
	c.Search = Search{
		Sort:         string(o.SortField),
		Ascending:    o.Ascending,
		Descriptions: o.SearchDescriptions,
		Owner:        o.OwnerFilter,
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
	validate *validator.Validate
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "reposcout")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
		validate: validator.New(),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		applyEnv(cfg)
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(cfg)

	if err := cs.validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Query:    cfg.Query,
			Language: cfg.Language,
		})
	}
}

// applyEnv overlays environment-provided values onto the config. The token
// is never validated or parsed here.
func applyEnv(cfg *Config) {
	if token := os.Getenv(TokenEnvVar); token != "" {
		cfg.Token = token
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Query:    "tutorial",
		Language: "elm",
		Search: Search{
			Sort:      string(domain.SortByStars),
			Ascending: false,
		},
		UI: UISettings{
			AutosaveOnExit: true,
		},
	}
}
