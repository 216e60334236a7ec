package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const keySpace Key = 32

func TestKeyPressedLastsOneFrame(t *testing.T) {
	s := NewState()

	s.PushKeyDown(keySpace)
	assert.True(t, s.KeyPressed(keySpace))
	assert.True(t, s.KeyDown(keySpace))

	s.EndFrame()
	assert.False(t, s.KeyPressed(keySpace), "pressed edge clears at frame end")
	assert.True(t, s.KeyDown(keySpace), "held state carries over")
}

func TestKeyRepeatDoesNotRetrigger(t *testing.T) {
	s := NewState()

	s.PushKeyDown(keySpace)
	s.EndFrame()
	s.PushKeyDown(keySpace) // OS key repeat while held

	assert.False(t, s.KeyPressed(keySpace))
	assert.True(t, s.KeyDown(keySpace))
}

func TestKeyReleased(t *testing.T) {
	s := NewState()

	s.PushKeyDown(keySpace)
	s.EndFrame()
	s.PushKeyUp(keySpace)

	assert.True(t, s.KeyReleased(keySpace))
	assert.False(t, s.KeyDown(keySpace))

	s.EndFrame()
	assert.False(t, s.KeyReleased(keySpace))
}

func TestMouseButtons(t *testing.T) {
	s := NewState()

	s.PushMouseDown(MouseLeft)
	assert.True(t, s.MousePressed(MouseLeft))
	assert.True(t, s.MouseDown(MouseLeft))
	assert.False(t, s.MouseDown(MouseRight))

	s.EndFrame()
	assert.False(t, s.MousePressed(MouseLeft))

	s.PushMouseUp(MouseLeft)
	assert.False(t, s.MouseDown(MouseLeft))
}

func TestCursorAndScroll(t *testing.T) {
	s := NewState()

	s.SetCursor(100, 250)
	x, y := s.Cursor()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 250.0, y)

	s.PushScroll(1.5)
	s.PushScroll(-0.5)
	assert.Equal(t, 1.0, s.Scroll(), "scroll accumulates within a frame")

	s.EndFrame()
	assert.Zero(t, s.Scroll())
	x, y = s.Cursor()
	assert.Equal(t, 100.0, x, "cursor position persists across frames")
	assert.Equal(t, 250.0, y)
}
