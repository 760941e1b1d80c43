package config_test

import (
	"os"
	"path/filepath"
	"spritegen/internal/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spritegen.yml")
	require.NoError(t, os.WriteFile(path, []byte(`environment: production
icons:
  inputDir: assets/icons
  fingerprintPath: .cache/icons.sum
log:
  verbose: true
`), 0o600))

	t.Setenv("ICONS_SPRITE_PATH", "static/sprite.svg")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "assets/icons", cfg.Icons.InputDir)
	require.Equal(t, "static/sprite.svg", cfg.Icons.SpritePath)
	require.Equal(t, "src/types/icon.d.ts", cfg.Icons.ManifestPath)
	require.Equal(t, ".cache/icons.sum", cfg.Icons.FingerprintPath)
	require.Equal(t, 16, cfg.Icons.Concurrency)
	require.True(t, cfg.Log.Verbose)
	require.Equal(t, "spritegen", cfg.Metrics.JobName)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "public/svg", cfg.Icons.InputDir)
	require.Equal(t, "public/sprite.svg", cfg.Icons.SpritePath)
	require.Empty(t, cfg.Icons.FingerprintPath)
	require.False(t, cfg.Log.Verbose)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("icons: [unterminated"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
