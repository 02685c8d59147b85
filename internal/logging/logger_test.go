package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetState() {
	CloseAll()
	logsDir = ""
	workspace = ""
	config = loggingConfig{}
	configLoaded = false
	logLevel = LevelInfo
}

func TestInitializeWithoutConfigIsProductionMode(t *testing.T) {
	t.Cleanup(resetState)

	ws := t.TempDir()
	require.NoError(t, Initialize(ws))

	assert.False(t, IsDebugMode())
	_, err := os.Stat(filepath.Join(ws, ".caseforge", "logs"))
	assert.True(t, os.IsNotExist(err))
}

func TestInitializeDebugModeWritesLogs(t *testing.T) {
	t.Cleanup(resetState)

	ws := t.TempDir()
	cfgDir := filepath.Join(ws, ".caseforge")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	cfg := `{"logging": {"debug_mode": true, "level": "debug"}}`
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(cfg), 0644))

	require.NoError(t, Initialize(ws))
	require.True(t, IsDebugMode())

	Catalog("loaded %d templates", 2)
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(cfgDir, "logs"))
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestCategoryFilter(t *testing.T) {
	t.Cleanup(resetState)

	ws := t.TempDir()
	cfgDir := filepath.Join(ws, ".caseforge")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	cfg := `{"logging": {"debug_mode": true, "categories": {"archive": false}}}`
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(cfg), 0644))

	require.NoError(t, Initialize(ws))
	assert.False(t, IsCategoryEnabled(CategoryArchive))
	assert.True(t, IsCategoryEnabled(CategoryCatalog))
}

func TestEmptyWorkspaceRejected(t *testing.T) {
	t.Cleanup(resetState)
	assert.Error(t, Initialize(""))
}
