package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reposcout/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "tutorial", cfg.Query)
	assert.Equal(t, "elm", cfg.Language)
	assert.Equal(t, string(domain.SortByStars), cfg.Search.Sort)
	assert.False(t, cfg.Search.Ascending)
	assert.True(t, cfg.UI.AutosaveOnExit)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv(TokenEnvVar, "")
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Token = "abc123"
	cfg.Query = "compiler"
	cfg.Search.Sort = string(domain.SortByForks)
	cfg.Search.Owner = "evancz"

	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromMissingPathFails(t *testing.T) {
	cs := NewConfigService()

	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
}

func TestLoadRejectsInvalidSortField(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	data := []byte("language = \"elm\"\n\n[search]\nsort = \"popularity\"\n")
	require.NoError(t, os.WriteFile(path, data, 0600))

	_, err := cs.LoadFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadRejectsMissingLanguage(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	data := []byte("language = \"\"\n")
	require.NoError(t, os.WriteFile(path, data, 0600))

	_, err := cs.LoadFromPath(path)

	require.Error(t, err)
}

func TestEnvTokenOverridesFile(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Token = "from-file"
	require.NoError(t, cs.SaveToPath(cfg, path))

	t.Setenv(TokenEnvVar, "from-env")

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", loaded.Token)
}

func TestOptionsRoundTrip(t *testing.T) {
	opts := domain.SearchOptions{
		SortField:          domain.SortByUpdated,
		Ascending:          true,
		SearchDescriptions: true,
		OwnerFilter:        "foo",
	}

	var cfg Config
	cfg.SetOptions(opts)

	assert.Equal(t, opts, cfg.Options())
}
