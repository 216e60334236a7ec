// Package input keeps a per-frame snapshot of keyboard and mouse state. The
// frontend feeds events in as it polls them; the game loop reads the snapshot
// during update; EndFrame clears the edge-triggered sets afterwards.
package input

// Key identifies a keyboard key. Values are frontend-defined scancodes; the
// engine core only compares them.
type Key int

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// State is the input snapshot for one frame. It is owned by the engine and
// mutated only on the frame thread.
type State struct {
	keysDown     map[Key]bool
	keysPressed  map[Key]bool
	keysReleased map[Key]bool

	buttonsDown    map[MouseButton]bool
	buttonsPressed map[MouseButton]bool

	cursorX, cursorY float64
	scroll           float64
}

// NewState returns an empty input snapshot.
func NewState() *State {
	return &State{
		keysDown:       make(map[Key]bool),
		keysPressed:    make(map[Key]bool),
		keysReleased:   make(map[Key]bool),
		buttonsDown:    make(map[MouseButton]bool),
		buttonsPressed: make(map[MouseButton]bool),
	}
}

// --- event feed, called by the frontend while polling -------------------

// PushKeyDown records a key going down. Repeats while held do not re-trigger
// the pressed edge.
func (s *State) PushKeyDown(k Key) {
	if !s.keysDown[k] {
		s.keysPressed[k] = true
	}
	s.keysDown[k] = true
}

// PushKeyUp records a key release.
func (s *State) PushKeyUp(k Key) {
	if s.keysDown[k] {
		s.keysReleased[k] = true
	}
	delete(s.keysDown, k)
}

// PushMouseDown records a button press.
func (s *State) PushMouseDown(b MouseButton) {
	if !s.buttonsDown[b] {
		s.buttonsPressed[b] = true
	}
	s.buttonsDown[b] = true
}

// PushMouseUp records a button release.
func (s *State) PushMouseUp(b MouseButton) {
	delete(s.buttonsDown, b)
}

// SetCursor records the cursor position.
func (s *State) SetCursor(x, y float64) {
	s.cursorX, s.cursorY = x, y
}

// PushScroll accumulates scroll delta for the frame.
func (s *State) PushScroll(delta float64) {
	s.scroll += delta
}

// --- queries, called by the game loop ------------------------------------

// KeyDown reports whether the key is currently held.
func (s *State) KeyDown(k Key) bool {
	return s.keysDown[k]
}

// KeyPressed reports whether the key went down this frame.
func (s *State) KeyPressed(k Key) bool {
	return s.keysPressed[k]
}

// KeyReleased reports whether the key went up this frame.
func (s *State) KeyReleased(k Key) bool {
	return s.keysReleased[k]
}

// MouseDown reports whether the button is currently held.
func (s *State) MouseDown(b MouseButton) bool {
	return s.buttonsDown[b]
}

// MousePressed reports whether the button went down this frame.
func (s *State) MousePressed(b MouseButton) bool {
	return s.buttonsPressed[b]
}

// Cursor returns the last known cursor position.
func (s *State) Cursor() (x, y float64) {
	return s.cursorX, s.cursorY
}

// Scroll returns the scroll delta accumulated this frame.
func (s *State) Scroll() float64 {
	return s.scroll
}

// EndFrame clears the edge-triggered sets and the scroll accumulator. Held
// state carries over. The engine calls this once at the end of every frame.
func (s *State) EndFrame() {
	clear(s.keysPressed)
	clear(s.keysReleased)
	clear(s.buttonsPressed)
	s.scroll = 0
}
