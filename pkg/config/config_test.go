package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.NotEmpty(t, config.CatalogDir)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, 16, config.Dump.MaxPreviewBytes)
	assert.True(t, config.Dump.ShowNames)
}

func TestSaveAndLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	config := DefaultConfig()
	config.CatalogDir = "/music/.flp-catalog"
	config.Logging.Level = "debug"
	config.Dump.MaxPreviewBytes = 32

	require.NoError(t, SaveConfig(config, configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config.CatalogDir, loaded.CatalogDir)
	assert.Equal(t, "debug", loaded.Logging.Level)
	assert.Equal(t, 32, loaded.Dump.MaxPreviewBytes)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::: not yaml"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
