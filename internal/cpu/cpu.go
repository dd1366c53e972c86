// Package cpu implements the SM83 (Sharp LR35902) instruction set: the
// register file, the flag encoding, the primary and 0xCB prefixed opcode
// tables and the fetch-decode-execute loop that drives them.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
	// FrameCycles is the number of clock cycles the hardware spends
	// scanning out and refreshing one frame.
	FrameCycles = 70224
)

// Bus is the address space as seen by the CPU.
type Bus interface {
	Read8(address uint16) (uint8, error)
	Read8Signed(address uint16) (int8, error)
	Read16(address uint16) (uint16, error)
	Write8(address uint16, value uint8) error
}

// Renderer receives a signal every time a frame's worth of cycles has
// been executed. FrameReady is called synchronously from Step and must
// return promptly.
type Renderer interface {
	FrameReady()
}

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT, the CPU idles until an interrupt
	// is requested.
	ModeHalt
	// ModeStop is entered by STOP, the CPU idles until an interrupt
	// is requested.
	ModeStop
)

// State is the run state of the CPU.
type State uint8

const (
	// Running is the state of a CPU that can execute instructions.
	Running State = iota
	// Halted is the terminal state entered after a fatal error. The
	// reason is available from CPU.Err.
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	}
	return "Unknown"
}

// CPU represents the SM83 CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers
	// IME is the interrupt master enable flag, set by EI and RETI and
	// cleared by DI.
	IME bool

	bus      Bus
	renderer Renderer
	irq      InterruptSource
	log      log.Logger
	trace    bool

	cycles       uint32 // cycles since the last frame
	frameCycles  uint32
	instructions uint64
	frames       uint64

	mode  mode
	state State
	err   error
	fault error // first memory error raised by the current instruction
}

// Opt configures a CPU.
type Opt func(c *CPU)

// WithRenderer attaches the renderer signalled at every frame.
func WithRenderer(r Renderer) Opt {
	return func(c *CPU) {
		c.renderer = r
	}
}

// WithFrameCycles changes the number of cycles after which a frame is
// signalled.
func WithFrameCycles(n uint32) Opt {
	return func(c *CPU) {
		c.frameCycles = n
	}
}

// WithInterruptSource attaches a source of interrupt requests. Without
// one interrupts are never serviced and IME is only stored.
func WithInterruptSource(irq InterruptSource) Opt {
	return func(c *CPU) {
		c.irq = irq
	}
}

// WithLogger sets the logger used for trace output.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// Trace logs every executed instruction at debug level.
func Trace(enabled bool) Opt {
	return func(c *CPU) {
		c.trace = enabled
	}
}

// NewCPU creates a new CPU reading and writing memory through bus, with
// the registers set to the values the boot ROM leaves behind.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus:         bus,
		frameCycles: FrameCycles,
		log:         log.NewNullLogger(),
	}
	// create register pairs
	c.Registers.init()
	c.Reset()

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Reset restores the post-boot register values and clears the run state.
func (c *CPU) Reset() {
	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D
	c.SP = 0xFFFE
	c.PC = types.EntryPoint
	c.IME = true

	c.cycles = 0
	c.instructions = 0
	c.frames = 0
	c.mode = ModeNormal
	c.state = Running
	c.err = nil
	c.fault = nil
}

// State returns the run state of the CPU.
func (c *CPU) State() State {
	return c.state
}

// Err returns the reason the CPU halted, or nil while it is running.
func (c *CPU) Err() error {
	return c.err
}

// Cycles returns the number of cycles executed since the last frame.
func (c *CPU) Cycles() uint32 {
	return c.cycles
}

// Instructions returns the number of instructions executed.
func (c *CPU) Instructions() uint64 {
	return c.instructions
}

// Frames returns the number of frames signalled.
func (c *CPU) Frames() uint64 {
	return c.frames
}

// Step fetches, decodes and executes one instruction, then signals the
// renderer if a frame's worth of cycles has passed. Once an error has
// been returned the CPU is halted, and every further call returns the
// same error without executing anything.
func (c *CPU) Step() error {
	if c.state == Halted {
		return c.err
	}

	if c.mode != ModeNormal {
		// HALT and STOP idle for one machine cycle at a time
		c.cycles += 4
		if err := c.serviceInterrupts(); err != nil {
			return err
		}
		c.frameTick()
		return nil
	}

	address := c.PC
	opcode := c.readInstruction()
	instruction := &InstructionSet[opcode]
	prefixed := opcode == prefixCB
	if prefixed {
		opcode = c.readOperand()
		instruction = &InstructionSetCB[opcode]
	}
	if c.fault != nil {
		return c.halt(c.fault)
	}
	if !instruction.Defined() {
		c.PC = address
		return c.halt(&UnimplementedOpcodeError{Opcode: opcode, Prefixed: prefixed, Address: address})
	}

	if c.trace {
		text, _ := Disassemble(c.bus, address)
		c.log.Debugf("Executing 0x%02X @ 0x%04X\t%-16s %s", opcode, address, text, c)
	}

	var operands Operands
	switch instruction.length {
	case 1:
		operands[0] = c.readOperand()
	case 2:
		operands.setD16(c.readOperand16())
	}
	if c.fault != nil {
		return c.halt(c.fault)
	}

	c.cycles += uint32(instruction.Execute(c, operands))
	if c.fault != nil {
		return c.halt(c.fault)
	}
	c.instructions++

	if err := c.serviceInterrupts(); err != nil {
		return err
	}
	c.frameTick()

	return nil
}

// frameTick signals the renderer and starts a new frame once the cycle
// counter has passed the frame threshold.
func (c *CPU) frameTick() {
	if c.cycles <= c.frameCycles {
		return
	}
	c.frames++
	if c.renderer != nil {
		c.renderer.FrameReady()
	}
	c.cycles = 0
}

// halt moves the CPU to the Halted state.
func (c *CPU) halt(err error) error {
	c.state = Halted
	c.err = err
	return err
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// readOperand reads the next operand from memory. The same as
// readInstruction, but kept apart so the two can be traced separately.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// readOperand16 reads a little-endian 16-bit operand.
func (c *CPU) readOperand16() uint16 {
	value, err := c.bus.Read16(c.PC)
	if err != nil {
		c.setFault(err)
	}
	c.PC += 2
	return value
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	value, err := c.bus.Read8(addr)
	if err != nil {
		c.setFault(err)
	}
	return value
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	if err := c.bus.Write8(addr, val); err != nil {
		c.setFault(err)
	}
}

func (c *CPU) setFault(err error) {
	if c.fault == nil {
		c.fault = err
	}
}

// String formats the register file for trace output.
func (c *CPU) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X SP: %04X PC: %04X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
}
