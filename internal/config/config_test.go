package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Windows.BreakInside.EIDLookback)
	assert.Equal(t, 120, cfg.Windows.BreakInside.ContentWindow)
	assert.Equal(t, 31, cfg.Windows.YJBreak.EIDLookback)
	assert.Equal(t, 20, cfg.Windows.YJBreak.ResourceWindow)
	assert.Equal(t, 200, cfg.Windows.YJBreak.ContentWindow)
	assert.Empty(t, cfg.History.Path)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
history:
  path: runs.db
windows:
  yj_break:
    eid_lookback: 40
    resource_window: 10
    content_window: 300
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "runs.db", cfg.History.Path)
	assert.Equal(t, 40, cfg.Windows.YJBreak.EIDLookback)
	assert.Equal(t, 10, cfg.Windows.YJBreak.ResourceWindow)
	assert.Equal(t, 300, cfg.Windows.YJBreak.ContentWindow)
	// Untouched families keep defaults.
	assert.Equal(t, 120, cfg.Windows.BreakInside.ContentWindow)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("KFXCOMPARE_DB", "/tmp/env.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.History.Path)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("windows: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
