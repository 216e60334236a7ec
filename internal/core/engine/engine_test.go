package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-engine/lumen/internal/core/config"
	"github.com/lumen-engine/lumen/internal/core/ecs"
	"github.com/lumen-engine/lumen/internal/core/input"
)

func uncappedConfig() config.EngineConfig {
	cfg := config.Default()
	cfg.Renderer.TargetFPS = 0 // no pacing in tests
	return cfg
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width = 0

	_, err := New(cfg, nil)
	assert.Error(t, err)
}

func TestNewAssemblesSubsystems(t *testing.T) {
	e, err := New(uncappedConfig(), nil, WithSceneName("level1"))
	require.NoError(t, err)

	assert.Equal(t, "level1", e.Scene().Name())
	assert.NotNil(t, e.Resources())
	assert.NotNil(t, e.Input())
	assert.NotNil(t, e.Clock())
	assert.InDelta(t, 0.8, e.Audio().MusicVolume(), 1e-9, "mixer seeded from config")
}

func TestRunStopsWhenCallbackReturnsFalse(t *testing.T) {
	e, err := New(uncappedConfig(), nil)
	require.NoError(t, err)

	frames := 0
	err = e.Run(context.Background(), func(s *ecs.Scene, in *input.State, dt float64) bool {
		frames++
		return frames < 5
	})
	require.NoError(t, err)
	assert.Equal(t, 5, frames)
	assert.Equal(t, uint64(5), e.Clock().FrameCount())
}

func TestRunNilCallback(t *testing.T) {
	e, err := New(uncappedConfig(), nil)
	require.NoError(t, err)

	assert.ErrorIs(t, e.Run(context.Background(), nil), ErrNilUpdate)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	e, err := New(uncappedConfig(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	err = e.Run(ctx, func(s *ecs.Scene, in *input.State, dt float64) bool {
		cancel()
		return true
	})
	assert.ErrorIs(t, err, context.Canceled)
}

// scriptedFrontend closes after a fixed number of polls and records calls.
type scriptedFrontend struct {
	pollsLeft  int
	presents   int
	closed     bool
	presentErr error
	keyToPush  input.Key
}

func (f *scriptedFrontend) PollEvents(in *input.State) bool {
	if f.keyToPush != 0 {
		in.PushKeyDown(f.keyToPush)
		f.keyToPush = 0
	}
	f.pollsLeft--
	return f.pollsLeft >= 0
}

func (f *scriptedFrontend) Present(*ecs.Scene) error {
	f.presents++
	return f.presentErr
}

func (f *scriptedFrontend) Close() error {
	f.closed = true
	return nil
}

func TestRunStopsOnFrontendClose(t *testing.T) {
	fe := &scriptedFrontend{pollsLeft: 3}
	e, err := New(uncappedConfig(), nil, WithFrontend(fe))
	require.NoError(t, err)

	frames := 0
	err = e.Run(context.Background(), func(s *ecs.Scene, in *input.State, dt float64) bool {
		frames++
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 3, frames, "update runs once per successful poll")
	assert.Equal(t, 3, fe.presents)
	assert.True(t, fe.closed, "frontend closed after the loop exits")
}

func TestRunPropagatesPresentError(t *testing.T) {
	fe := &scriptedFrontend{pollsLeft: 10, presentErr: errors.New("device lost")}
	e, err := New(uncappedConfig(), nil, WithFrontend(fe))
	require.NoError(t, err)

	err = e.Run(context.Background(), func(s *ecs.Scene, in *input.State, dt float64) bool {
		return true
	})
	assert.ErrorContains(t, err, "device lost")
	assert.True(t, fe.closed)
}

func TestRunClearsInputEdgesBetweenFrames(t *testing.T) {
	const jumpKey input.Key = 57
	fe := &scriptedFrontend{pollsLeft: 10, keyToPush: jumpKey}
	e, err := New(uncappedConfig(), nil, WithFrontend(fe))
	require.NoError(t, err)

	var pressedFrames []int
	frame := 0
	err = e.Run(context.Background(), func(s *ecs.Scene, in *input.State, dt float64) bool {
		frame++
		if in.KeyPressed(jumpKey) {
			pressedFrames = append(pressedFrames, frame)
		}
		return frame < 3
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, pressedFrames, "pressed edge visible for exactly one frame")
}

func TestRunSceneStatePersistsAcrossFrames(t *testing.T) {
	e, err := New(uncappedConfig(), nil)
	require.NoError(t, err)

	type spin struct{ Angle float64 }

	err = e.Run(context.Background(), func(s *ecs.Scene, in *input.State, dt float64) bool {
		if s.Len() == 0 {
			id := s.CreateEntity("cube")
			ent, _ := s.Entity(id)
			ecs.Add(ent, spin{})
			return true
		}
		for ent := range s.ActiveEntities() {
			sp, ok := ecs.Get[spin](ent)
			if !ok {
				continue
			}
			sp.Angle += 90
			if sp.Angle >= 180 {
				return false
			}
		}
		return true
	})
	require.NoError(t, err)

	assert.Equal(t, 1, e.Scene().Len())
	ids := ecs.FindWith[spin](e.Scene())
	require.Len(t, ids, 1)
	ent, ok := e.Scene().Entity(ids[0])
	require.True(t, ok)
	sp, ok := ecs.Get[spin](ent)
	require.True(t, ok)
	assert.Equal(t, 180.0, sp.Angle)
}
