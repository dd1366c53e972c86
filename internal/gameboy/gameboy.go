// Package gameboy wires the address space, the CPU, interrupts and a
// renderer into a runnable machine.
package gameboy

import (
	"context"
	"fmt"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/rom"
	"github.com/thelolagemann/sm83/pkg/display"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/stats"
)

// checkInterval is the number of steps between checks of the run's
// context.
const checkInterval = 1024

// GameBoy represents the machine. It contains all the components and
// is the main entry point for running an image.
type GameBoy struct {
	CPU        *cpu.CPU
	MMU        *mmu.MMU
	Interrupts *interrupts.Service // nil unless interrupts are enabled
	Header     *rom.Header         // nil if the image has no header
	Stats      *stats.Counter

	log.Logger

	renderer    display.Renderer
	frameCycles uint32
	memorySize  int
	interrupts  bool
	trace       bool
	postBoot    bool
}

// New returns a GameBoy with image loaded at address 0.
func New(image []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger:      log.NewNullLogger(),
		Stats:       stats.NewCounter(),
		frameCycles: cpu.FrameCycles,
		memorySize:  mmu.DefaultSize,
		postBoot:    true,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Infof("Loading ROM...")
	g.MMU = mmu.New(mmu.WithSize(g.memorySize))
	if err := g.MMU.Load(image); err != nil {
		return nil, fmt.Errorf("gameboy: loading image: %w", err)
	}
	g.Infof("Read %d bytes", len(image))

	if header, err := rom.ParseHeader(image); err == nil {
		g.Header = &header
		g.Infof("%s", header.String())
		if !header.ChecksumValid() {
			g.Debugf("header checksum mismatch")
		}
	} else {
		g.Debugf("no cartridge header: %v", err)
	}

	cpuOpts := []cpu.Opt{
		cpu.WithRenderer(g),
		cpu.WithFrameCycles(g.frameCycles),
		cpu.WithLogger(g.Logger),
		cpu.Trace(g.trace),
	}
	if g.interrupts {
		svc, err := interrupts.NewService(g.MMU)
		if err != nil {
			return nil, fmt.Errorf("gameboy: attaching interrupts: %w", err)
		}
		g.Interrupts = svc
		cpuOpts = append(cpuOpts, cpu.WithInterruptSource(svc))
	}
	g.CPU = cpu.NewCPU(g.MMU, cpuOpts...)
	if !g.postBoot {
		g.CPU.A, g.CPU.F, g.CPU.B, g.CPU.C = 0, 0, 0, 0
		g.CPU.D, g.CPU.E, g.CPU.H, g.CPU.L = 0, 0, 0, 0
		g.CPU.SP, g.CPU.PC = 0, 0
	}

	if d, ok := g.renderer.(display.Driver); ok {
		if err := d.Initialize(host{g}); err != nil {
			return nil, fmt.Errorf("gameboy: initializing display: %w", err)
		}
	}

	return g, nil
}

// FrameReady records the frame and passes the signal on to the
// renderer.
func (g *GameBoy) FrameReady() {
	g.Stats.SetInstructions(g.CPU.Instructions())
	g.Stats.Frame()
	g.Debugf("Frame %d", g.CPU.Frames())
	if g.renderer != nil {
		g.renderer.FrameReady()
	}
}

// Run executes instructions until the CPU halts on an error or ctx is
// done. The error is the CPU's, wrapped, or the context's.
func (g *GameBoy) Run(ctx context.Context) error {
	g.Infof("Starting emulation")
	g.Stats.Start()
	defer func() {
		g.Stats.SetInstructions(g.CPU.Instructions())
		g.Stats.Stop()
	}()

	for i := 0; ; i++ {
		if i%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := g.CPU.Step(); err != nil {
			return fmt.Errorf("gameboy: %w", err)
		}
	}
}

// Close releases the display driver, if there is one.
func (g *GameBoy) Close() error {
	if d, ok := g.renderer.(display.Driver); ok {
		return d.Close()
	}
	return nil
}

// host is the machine as seen by a display driver.
type host struct {
	g *GameBoy
}

func (h host) Read8(address uint16) (uint8, error) {
	return h.g.MMU.Read8(address)
}

func (h host) Write8(address uint16, value uint8) error {
	return h.g.MMU.Write8(address, value)
}

func (h host) Copy(dst []byte, address uint16) error {
	return h.g.MMU.Copy(dst, address)
}

func (h host) RequestVBlank() {
	if h.g.Interrupts == nil {
		return
	}
	if err := h.g.Interrupts.Request(interrupts.VBlankFlag); err != nil {
		h.g.Errorf("requesting VBlank: %v", err)
	}
}
