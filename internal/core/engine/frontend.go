package engine

import (
	"github.com/lumen-engine/lumen/internal/core/ecs"
	"github.com/lumen-engine/lumen/internal/core/input"
)

// Frontend is the boundary to the windowing and rendering layer. The engine
// core never creates windows or GPU pipelines itself; it drives whatever
// frontend the application plugs in, once per frame.
type Frontend interface {
	// PollEvents drains pending window/input events into the input state.
	// Returning false requests a clean shutdown (window closed).
	PollEvents(in *input.State) bool

	// Present renders the scene for this frame.
	Present(scene *ecs.Scene) error

	// Close releases frontend resources after the loop exits.
	Close() error
}

// Headless returns a frontend that never produces events and renders
// nothing. It keeps the engine runnable in tests, tools, and servers.
func Headless() Frontend {
	return headless{}
}

type headless struct{}

func (headless) PollEvents(*input.State) bool { return true }
func (headless) Present(*ecs.Scene) error     { return nil }
func (headless) Close() error                 { return nil }
