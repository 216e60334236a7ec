// Package audio tracks mixer volumes and forwards playback requests to an
// opaque backend. Device and stream management live behind the Backend
// interface, outside the engine core.
package audio

import (
	"github.com/lumen-engine/lumen/internal/core/observability/log"
)

// Backend plays a named sound at an effective volume. Implementations wrap
// whatever audio stack the application links in.
type Backend interface {
	Play(name string, volume float64) error
}

// NopBackend discards every playback request. It is the default, keeping the
// engine usable headless.
type NopBackend struct{}

func (NopBackend) Play(string, float64) error { return nil }

// Channel selects which volume slider scales a playback request.
type Channel int

const (
	ChannelMusic Channel = iota
	ChannelSFX
)

// Mixer scales playback volume by channel and master sliders. Volumes are
// clamped to [0, 1] on every write.
type Mixer struct {
	logger  *log.Logger
	backend Backend

	master float64
	music  float64
	sfx    float64
}

// NewMixer creates a mixer with the given initial volumes. A nil backend is
// replaced with NopBackend, a nil logger with a no-op logger.
func NewMixer(backend Backend, logger *log.Logger, master, music, sfx float64) *Mixer {
	if backend == nil {
		backend = NopBackend{}
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Mixer{
		logger:  logger,
		backend: backend,
		master:  clamp(master),
		music:   clamp(music),
		sfx:     clamp(sfx),
	}
}

// Play forwards a request to the backend at the effective channel volume.
func (m *Mixer) Play(name string, ch Channel) error {
	vol := m.EffectiveVolume(ch)
	if err := m.backend.Play(name, vol); err != nil {
		m.logger.Warn("audio playback failed",
			log.String("sound", name),
			log.Err(err),
		)
		return err
	}
	return nil
}

// EffectiveVolume returns the channel volume scaled by the master slider.
func (m *Mixer) EffectiveVolume(ch Channel) float64 {
	switch ch {
	case ChannelMusic:
		return m.master * m.music
	case ChannelSFX:
		return m.master * m.sfx
	default:
		return m.master
	}
}

// MasterVolume returns the master slider.
func (m *Mixer) MasterVolume() float64 { return m.master }

// SetMasterVolume sets the master slider, clamped to [0, 1].
func (m *Mixer) SetMasterVolume(v float64) { m.master = clamp(v) }

// MusicVolume returns the music slider.
func (m *Mixer) MusicVolume() float64 { return m.music }

// SetMusicVolume sets the music slider, clamped to [0, 1].
func (m *Mixer) SetMusicVolume(v float64) { m.music = clamp(v) }

// SFXVolume returns the effects slider.
func (m *Mixer) SFXVolume() float64 { return m.sfx }

// SetSFXVolume sets the effects slider, clamped to [0, 1].
func (m *Mixer) SetSFXVolume(v float64) { m.sfx = clamp(v) }

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
