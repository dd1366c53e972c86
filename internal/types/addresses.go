package types

// HardwareAddress represents the address of a memory-mapped
// register. The hardware IO are mapped to memory addresses
// 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// IF is the address of the interrupt flag register. A bit is set
	// when the corresponding interrupt has been requested.
	IF HardwareAddress = 0xFF0F
	// LY is the address of the LY hardware register, the scanline
	// currently being drawn. The renderer resets it to 0 at the start
	// of a frame and moves it into VBlank (>= 144) once drawing ends,
	// so code polling it can tell whether a frame is in progress.
	LY HardwareAddress = 0xFF44
	// IE is the address of the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)

// Regions of the address space used outside the CPU.
const (
	// EntryPoint is where execution starts once the boot ROM has
	// handed over control.
	EntryPoint uint16 = 0x0100
	// HeaderStart is the first byte of the cartridge header.
	HeaderStart uint16 = 0x0100
	// VRAMStart is the first byte of video RAM.
	VRAMStart uint16 = 0x8000
	// VRAMEnd is the last byte of video RAM.
	VRAMEnd uint16 = 0x9FFF
	// HRAMStart is the first byte of high RAM, the usual home of
	// the stack.
	HRAMStart uint16 = 0xFF80
)

// LYVBlank is the value the renderer leaves in LY once a frame has
// been drawn.
const LYVBlank uint8 = 148
