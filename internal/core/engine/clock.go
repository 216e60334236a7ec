package engine

import "time"

// fpsWindow is how often the FPS estimate is recomputed.
const fpsWindow = time.Second

// Clock tracks frame timing: delta since the previous frame, total frame
// count, and an FPS estimate over a one-second window. Tick is called once
// per frame by the engine loop.
type Clock struct {
	now func() time.Time

	start     time.Time
	lastFrame time.Time
	delta     time.Duration

	frameCount uint64
	fps        float64
	fpsTimer   time.Duration
	fpsFrames  int
}

// NewClock starts a clock at the current time.
func NewClock() *Clock {
	c := &Clock{now: time.Now}
	c.Reset()
	return c
}

// Tick advances the clock to the current frame.
func (c *Clock) Tick() {
	now := c.now()
	c.delta = now.Sub(c.lastFrame)
	c.lastFrame = now
	c.frameCount++

	c.fpsTimer += c.delta
	c.fpsFrames++
	if c.fpsTimer >= fpsWindow {
		c.fps = float64(c.fpsFrames) / c.fpsTimer.Seconds()
		c.fpsTimer = 0
		c.fpsFrames = 0
	}
}

// Delta returns the duration of the last frame.
func (c *Clock) Delta() time.Duration {
	return c.delta
}

// DeltaSeconds returns the last frame duration in seconds, the unit the
// update callback works in.
func (c *Clock) DeltaSeconds() float64 {
	return c.delta.Seconds()
}

// FPS returns the most recent frames-per-second estimate. It reads zero
// until the first full window has elapsed.
func (c *Clock) FPS() float64 {
	return c.fps
}

// FrameCount returns the number of ticks since creation or the last Reset.
func (c *Clock) FrameCount() uint64 {
	return c.frameCount
}

// Elapsed returns time since creation or the last Reset.
func (c *Clock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// Reset rewinds all counters to a fresh start.
func (c *Clock) Reset() {
	now := c.now()
	c.start = now
	c.lastFrame = now
	c.delta = 0
	c.frameCount = 0
	c.fps = 0
	c.fpsTimer = 0
	c.fpsFrames = 0
}
