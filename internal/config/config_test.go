package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "caseforge", cfg.Name)
	assert.Equal(t, 1, cfg.Generation.DefaultCount)
	assert.Equal(t, "TechCorp", cfg.Generation.Company)
	assert.Equal(t, "forensic_audit", cfg.Generation.AuthCondition)
	assert.NotEmpty(t, cfg.Archive.DatabasePath)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Generation, cfg.Generation)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caseforge.yaml")
	body := `
catalog:
  path: /etc/caseforge/catalog.yaml
  watch: true
generation:
  company: Initech
  default_count: 5
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/caseforge/catalog.yaml", cfg.Catalog.Path)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, "Initech", cfg.Generation.Company)
	assert.Equal(t, 5, cfg.Generation.DefaultCount)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep defaults.
	assert.Equal(t, DefaultConfig().Archive.DatabasePath, cfg.Archive.DatabasePath)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("CASEFORGE_CATALOG overrides path", func(t *testing.T) {
		t.Setenv("CASEFORGE_CATALOG", "/tmp/alt.yaml")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "/tmp/alt.yaml", cfg.Catalog.Path)
	})

	t.Run("CASEFORGE_DB overrides database path", func(t *testing.T) {
		t.Setenv("CASEFORGE_DB", "/tmp/archive.db")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "/tmp/archive.db", cfg.Archive.DatabasePath)
	})

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("CASEFORGE_COMPANY", "Globex")
		path := filepath.Join(t.TempDir(), "caseforge.yaml")
		require.NoError(t, os.WriteFile(path, []byte("generation:\n  company: Initech\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Globex", cfg.Generation.Company)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "caseforge.yaml")

	cfg := DefaultConfig()
	cfg.Generation.DefaultCount = 7
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Generation.DefaultCount)
}
