// Package engine composes the runtime: scene, resource cache, input, audio,
// and frame clock behind a synchronous update-callback loop. Everything runs
// on the goroutine that calls Run; the engine introduces no concurrency of
// its own.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumen-engine/lumen/internal/core/audio"
	"github.com/lumen-engine/lumen/internal/core/config"
	"github.com/lumen-engine/lumen/internal/core/ecs"
	"github.com/lumen-engine/lumen/internal/core/input"
	"github.com/lumen-engine/lumen/internal/core/observability/log"
	"github.com/lumen-engine/lumen/internal/core/resource"
)

// Engine-specific errors.
var (
	ErrNilUpdate = errors.New("engine: nil update callback")
)

// UpdateFunc is the per-frame game callback. It receives the scene, the
// frame's input snapshot, and the delta time in seconds. Returning false
// stops the loop cleanly.
type UpdateFunc func(scene *ecs.Scene, in *input.State, dt float64) bool

// Option configures an Engine.
type Option func(*Engine)

// WithFrontend plugs in the window/render layer. Default is Headless.
func WithFrontend(f Frontend) Option {
	return func(e *Engine) { e.frontend = f }
}

// WithAudioBackend plugs in the audio playback layer.
func WithAudioBackend(b audio.Backend) Option {
	return func(e *Engine) { e.audioBackend = b }
}

// WithSceneName names the initial scene.
func WithSceneName(name string) Option {
	return func(e *Engine) { e.sceneName = name }
}

// Engine owns one scene, one resource manager, and the frame loop state.
type Engine struct {
	cfg    config.EngineConfig
	logger *log.Logger

	scene     *ecs.Scene
	resources *resource.Manager
	inputs    *input.State
	mixer     *audio.Mixer
	clock     *Clock

	frontend     Frontend
	audioBackend audio.Backend
	sceneName    string
}

// New validates the configuration and assembles the runtime. Subsystems are
// created here; the window/GPU side only attaches through options.
func New(cfg config.EngineConfig, logger *log.Logger, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if logger == nil {
		logger = log.Nop()
	}

	e := &Engine{
		cfg:       cfg,
		logger:    logger,
		frontend:  Headless(),
		sceneName: "main",
	}
	for _, opt := range opts {
		opt(e)
	}

	e.scene = ecs.NewScene(e.sceneName, logger)
	e.resources = resource.NewManager(logger)
	e.inputs = input.NewState()
	e.mixer = audio.NewMixer(e.audioBackend, logger,
		cfg.Audio.MasterVolume, cfg.Audio.MusicVolume, cfg.Audio.SFXVolume)
	e.clock = NewClock()

	logger.Info("engine initialized",
		log.String("window_title", cfg.Window.Title),
		log.Int("target_fps", cfg.Renderer.TargetFPS),
	)
	return e, nil
}

// Scene returns the engine's scene.
func (e *Engine) Scene() *ecs.Scene {
	return e.scene
}

// Resources returns the engine's resource manager.
func (e *Engine) Resources() *resource.Manager {
	return e.resources
}

// Input returns the current input snapshot.
func (e *Engine) Input() *input.State {
	return e.inputs
}

// Audio returns the mixer.
func (e *Engine) Audio() *audio.Mixer {
	return e.mixer
}

// Clock returns the frame clock.
func (e *Engine) Clock() *Clock {
	return e.clock
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.EngineConfig {
	return e.cfg
}

// Run drives the frame loop until the update callback returns false, the
// frontend reports a close request, or ctx is cancelled. When TargetFPS is
// positive, frames are paced by sleeping out the remainder of the frame
// budget.
func (e *Engine) Run(ctx context.Context, update UpdateFunc) error {
	if update == nil {
		return ErrNilUpdate
	}

	var frameBudget time.Duration
	if fps := e.cfg.Renderer.TargetFPS; fps > 0 {
		frameBudget = time.Second / time.Duration(fps)
	}

	defer func() {
		if err := e.frontend.Close(); err != nil {
			e.logger.Warn("frontend close failed", log.Err(err))
		}
	}()

	e.clock.Reset()
	e.logger.Info("engine loop started")

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine loop cancelled")
			return ctx.Err()
		default:
		}

		frameStart := time.Now()
		e.clock.Tick()

		if !e.frontend.PollEvents(e.inputs) {
			e.logger.Info("close requested by frontend")
			return nil
		}

		if !update(e.scene, e.inputs, e.clock.DeltaSeconds()) {
			e.logger.Info("engine loop stopped by update callback",
				log.Uint64("frames", e.clock.FrameCount()),
			)
			return nil
		}

		if err := e.frontend.Present(e.scene); err != nil {
			return fmt.Errorf("engine: present: %w", err)
		}

		e.inputs.EndFrame()

		if frameBudget > 0 {
			if remaining := frameBudget - time.Since(frameStart); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}
