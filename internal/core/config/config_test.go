package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Renderer.TargetFPS)
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")

	cfg := Default()
	cfg.Window.Title = "Round Trip"
	cfg.Renderer.TargetFPS = 144
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")

	cfg := Default()
	cfg.Audio.MusicVolume = 0.25
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadYAMLDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yml")
	doc := `
window:
  title: Demo
  width: 800
  height: 600
  vsync: true
renderer:
  target_fps: 30
  fov: 60
  near_plane: 0.1
  far_plane: 500
audio:
  master_volume: 0.5
  music_volume: 0.5
  sfx_volume: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.Equal(t, 30, cfg.Renderer.TargetFPS)
	assert.Equal(t, 0.5, cfg.Audio.SFXVolume)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported config extension")
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EngineConfig)
	}{
		{"zero window width", func(c *EngineConfig) { c.Window.Width = 0 }},
		{"negative window height", func(c *EngineConfig) { c.Window.Height = -1 }},
		{"negative fps", func(c *EngineConfig) { c.Renderer.TargetFPS = -1 }},
		{"far plane behind near plane", func(c *EngineConfig) { c.Renderer.FarPlane = 0.05 }},
		{"volume above one", func(c *EngineConfig) { c.Audio.MasterVolume = 1.5 }},
		{"negative volume", func(c *EngineConfig) { c.Audio.SFXVolume = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
