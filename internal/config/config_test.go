package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, 1.0, cfg.Scale)
	assert.Equal(t, ".", cfg.Output)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Display)
	assert.Zero(t, cfg.Region)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
display: ":1"
format: jpeg
scale: 0.5
region:
  x: 10
  y: 20
  width: 640
  height: 480
`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":1", cfg.Display)
	assert.Equal(t, "jpeg", cfg.Format)
	assert.Equal(t, 0.5, cfg.Scale)
	assert.Equal(t, Region{X: 10, Y: 20, Width: 640, Height: 480}, cfg.Region)
	// untouched keys keep their defaults
	assert.Equal(t, "9000", cfg.HTTPPort)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
