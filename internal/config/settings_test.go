package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dancerunaway/internal/input"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.False(t, cfg.Window)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Len(t, cfg.ButtonMapping, 8)

	mapping, err := cfg.Mapping()
	require.NoError(t, err)
	pad, ok := mapping.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, input.PadLeft, pad)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("DANCE_RUNAWAY_ASSETS", "")
	t.Setenv("DANCE_RUNAWAY_DEBUG", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().AssetsDir, cfg.AssetsDir)
}

func TestSaveLoad(t *testing.T) {
	t.Setenv("DANCE_RUNAWAY_ASSETS", "")
	t.Setenv("DANCE_RUNAWAY_DEBUG", "")

	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Window = true
	cfg.AssetsDir = "/opt/dance/assets"
	cfg.ButtonMapping = map[int]string{0: "left", 1: "right"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.True(t, loaded.Window)
	assert.Equal(t, "/opt/dance/assets", loaded.AssetsDir)
	assert.Equal(t, map[int]string{0: "left", 1: "right"}, loaded.ButtonMapping)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("DANCE_RUNAWAY_ASSETS overrides the asset dir", func(t *testing.T) {
		t.Setenv("DANCE_RUNAWAY_ASSETS", "/env/assets")
		t.Setenv("DANCE_RUNAWAY_DEBUG", "")

		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "/env/assets", cfg.AssetsDir)
	})

	t.Run("DANCE_RUNAWAY_DEBUG flips debug mode", func(t *testing.T) {
		t.Setenv("DANCE_RUNAWAY_ASSETS", "")
		t.Setenv("DANCE_RUNAWAY_DEBUG", "true")

		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.True(t, cfg.Debug)
	})

	t.Run("garbage DANCE_RUNAWAY_DEBUG is ignored", func(t *testing.T) {
		t.Setenv("DANCE_RUNAWAY_ASSETS", "")
		t.Setenv("DANCE_RUNAWAY_DEBUG", "maybe")

		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.False(t, cfg.Debug)
	})
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, writeFile(path, "window: [not a bool"))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMapping_InvalidPadName(t *testing.T) {
	cfg := Default()
	cfg.ButtonMapping = map[int]string{0: "start"}

	_, err := cfg.Mapping()
	assert.Error(t, err)
}
