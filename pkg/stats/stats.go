// Package stats counts what a run executed and reports it.
package stats

import "time"

// Counter records the instructions and frames executed during a run.
// It is not safe for concurrent use.
type Counter struct {
	instructions uint64
	frames       uint64
	perFrame     []uint64
	frameStart   uint64

	start   time.Time
	elapsed time.Duration
	running bool
	now     func() time.Time
}

// NewCounter returns a stopped Counter.
func NewCounter() *Counter {
	return &Counter{now: time.Now}
}

// Start starts the clock.
func (c *Counter) Start() {
	c.start = c.now()
	c.running = true
}

// Stop stops the clock, adding the time since Start to the elapsed time.
func (c *Counter) Stop() {
	if !c.running {
		return
	}
	c.elapsed += c.now().Sub(c.start)
	c.running = false
}

// Instruction counts one executed instruction.
func (c *Counter) Instruction() {
	c.instructions++
}

// SetInstructions sets the number of instructions executed, for
// callers that keep their own count.
func (c *Counter) SetInstructions(n uint64) {
	c.instructions = n
}

// Frame counts a frame, recording the instructions executed since the
// previous one.
func (c *Counter) Frame() {
	c.frames++
	c.perFrame = append(c.perFrame, c.instructions-c.frameStart)
	c.frameStart = c.instructions
}

// Instructions returns the number of instructions executed.
func (c *Counter) Instructions() uint64 {
	return c.instructions
}

// Frames returns the number of frames executed.
func (c *Counter) Frames() uint64 {
	return c.frames
}

// PerFrame returns the number of instructions executed in each frame.
func (c *Counter) PerFrame() []uint64 {
	return c.perFrame
}

// Elapsed returns the time the clock has run for.
func (c *Counter) Elapsed() time.Duration {
	if c.running {
		return c.elapsed + c.now().Sub(c.start)
	}
	return c.elapsed
}

// Rate returns the instructions executed per second, or 0 before any
// time has elapsed.
func (c *Counter) Rate() float64 {
	e := c.Elapsed()
	if e <= 0 {
		return 0
	}
	return float64(c.instructions) / e.Seconds()
}
