package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/ireum/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("provider: gemini\nhttp_timeout: 30s\nformat: text\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, ":8080", cfg.Addr, "unset keys keep their default")
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed\n"), 0644))

	cfg, err := config.Load(path)
	assert.Error(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.FileName)

	want := config.Defaults()
	want.Model = "gpt-4o"
	want.Addr = "127.0.0.1:9000"
	want.Prompts = map[string]string{"text": "/etc/ireum/text.tmpl"}
	require.NoError(t, config.Save(path, want))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := config.EnsureConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "ireum"), dir)
	assert.DirExists(t, dir)
}
