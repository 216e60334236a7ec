// Package config holds the engine's persisted settings: window shape,
// renderer tuning, and audio volumes. Files are JSON or YAML, picked by
// extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfig is the root configuration consumed by the engine orchestrator.
type EngineConfig struct {
	Window   WindowConfig   `json:"window" yaml:"window"`
	Renderer RendererConfig `json:"renderer" yaml:"renderer"`
	Audio    AudioConfig    `json:"audio" yaml:"audio"`
}

// WindowConfig shapes the application window.
type WindowConfig struct {
	Title      string `json:"title" yaml:"title"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Fullscreen bool   `json:"fullscreen" yaml:"fullscreen"`
	Resizable  bool   `json:"resizable" yaml:"resizable"`
	VSync      bool   `json:"vsync" yaml:"vsync"`
}

// RendererConfig tunes the render loop and projection.
type RendererConfig struct {
	// TargetFPS caps the frame rate; 0 means uncapped.
	TargetFPS   int     `json:"target_fps" yaml:"target_fps"`
	MSAASamples int     `json:"msaa_samples" yaml:"msaa_samples"`
	FOV         float64 `json:"fov" yaml:"fov"`
	NearPlane   float64 `json:"near_plane" yaml:"near_plane"`
	FarPlane    float64 `json:"far_plane" yaml:"far_plane"`
}

// AudioConfig holds mixer volumes, each in [0, 1].
type AudioConfig struct {
	MasterVolume float64 `json:"master_volume" yaml:"master_volume"`
	MusicVolume  float64 `json:"music_volume" yaml:"music_volume"`
	SFXVolume    float64 `json:"sfx_volume" yaml:"sfx_volume"`
}

// Default returns the configuration used when no file is supplied.
func Default() EngineConfig {
	return EngineConfig{
		Window: WindowConfig{
			Title:      "Lumen Application",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			Resizable:  true,
			VSync:      true,
		},
		Renderer: RendererConfig{
			TargetFPS:   60,
			MSAASamples: 4,
			FOV:         70.0,
			NearPlane:   0.1,
			FarPlane:    1000.0,
		},
		Audio: AudioConfig{
			MasterVolume: 1.0,
			MusicVolume:  0.8,
			SFXVolume:    1.0,
		},
	}
}

// Load reads and validates a configuration file. The format follows the
// extension: .json, or .yaml/.yml.
func Load(path string) (EngineConfig, error) {
	var cfg EngineConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config YAML: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration in the format matching the extension.
func (c EngineConfig) Save(path string) error {
	var (
		data []byte
		err  error
	)

	switch ext := filepath.Ext(path); ext {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("unsupported config extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate rejects configurations the engine cannot start with.
func (c EngineConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	if c.Renderer.TargetFPS < 0 {
		return fmt.Errorf("target fps must not be negative, got %d", c.Renderer.TargetFPS)
	}
	if c.Renderer.NearPlane > 0 && c.Renderer.FarPlane <= c.Renderer.NearPlane {
		return fmt.Errorf("far plane %v must exceed near plane %v", c.Renderer.FarPlane, c.Renderer.NearPlane)
	}
	for name, v := range map[string]float64{
		"master_volume": c.Audio.MasterVolume,
		"music_volume":  c.Audio.MusicVolume,
		"sfx_volume":    c.Audio.SFXVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", name, v)
		}
	}
	return nil
}
