package gameboy

import (
	"github.com/thelolagemann/sm83/pkg/display"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before it is built.
type Opt func(gb *GameBoy)

// WithLogger sets the logger the machine and its CPU report to.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithRenderer attaches the renderer signalled at every frame. A
// display.Driver is initialized with the machine as its host.
func WithRenderer(r display.Renderer) Opt {
	return func(gb *GameBoy) {
		gb.renderer = r
	}
}

// WithFrameCycles changes the number of cycles after which a frame is
// signalled.
func WithFrameCycles(n uint32) Opt {
	return func(gb *GameBoy) {
		gb.frameCycles = n
	}
}

// WithMemorySize changes the size of the address space.
func WithMemorySize(size int) Opt {
	return func(gb *GameBoy) {
		gb.memorySize = size
	}
}

// WithInterrupts services interrupts requested through IF and IE.
func WithInterrupts(enabled bool) Opt {
	return func(gb *GameBoy) {
		gb.interrupts = enabled
	}
}

// Trace logs every executed instruction at debug level.
func Trace(enabled bool) Opt {
	return func(gb *GameBoy) {
		gb.trace = enabled
	}
}

// WithPostBootState controls whether the registers start with the
// values the boot ROM leaves behind. Without them every register is
// zero and execution starts at 0x0000, for raw images.
func WithPostBootState(enabled bool) Opt {
	return func(gb *GameBoy) {
		gb.postBoot = enabled
	}
}
