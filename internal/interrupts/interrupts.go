// Package interrupts implements the interrupt request and enable registers
// on top of the address space, and the priority encoder the CPU uses to
// select a vector.
package interrupts

import (
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time a frame has been
	// drawn.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4
)

// VBlankVector is the address the CPU jumps to when servicing the
// VBlank interrupt. Each following interrupt's vector is 8 bytes further
// on.
const VBlankVector uint16 = 0x0040

// Bus is the part of the address space the Service needs.
type Bus interface {
	Read8(address uint16) (uint8, error)
	Write8(address uint16, value uint8) error
	Hook(address uint16, fn mmu.WriteHook) error
}

// Service is the interrupt service, used to request
// interrupts and to get the current interrupt vector.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register (types.IF) is set. When an interrupt
// is enabled, the corresponding bit in the Enable register
// (types.IE) is set. When an interrupt is requested and
// enabled, and the IME is set, the CPU will jump to the
// interrupt vector, and the corresponding bit in the Flag
// register will be cleared.
//
// Both registers live in the address space, so programs
// read and write them with ordinary loads and stores.
type Service struct {
	bus Bus
}

// NewService returns a new Service backed by bus.
func NewService(bus Bus) (*Service, error) {
	s := &Service{bus: bus}
	if err := bus.Hook(types.IF, func(_ uint16, v uint8) uint8 {
		return v&0x1F | 0xE0 // the upper 3 bits are always set
	}); err != nil {
		return nil, err
	}
	if err := bus.Write8(types.IF, 0); err != nil {
		return nil, err
	}
	return s, nil
}

// Flag returns the interrupt Flag register.
func (s *Service) Flag() uint8 {
	v, _ := s.bus.Read8(types.IF)
	return v
}

// Enable returns the interrupt Enable register.
func (s *Service) Enable() uint8 {
	v, _ := s.bus.Read8(types.IE)
	return v
}

// SetEnable sets the interrupt Enable register.
func (s *Service) SetEnable(v uint8) error {
	return s.bus.Write8(types.IE, v)
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) error {
	return s.bus.Write8(types.IF, s.Flag()|flag)
}

// Pending reports whether there are any interrupts
// that are requested and enabled.
func (s *Service) Pending() bool {
	return s.Flag()&s.Enable()&0x1F != 0
}

// Acknowledge returns the vector of the highest priority
// pending interrupt, clearing the corresponding bit in
// the Flag register. It returns 0 if no interrupt is
// pending.
func (s *Service) Acknowledge() uint16 {
	pending := s.Flag() & s.Enable()
	for i := uint8(0); i < 5; i++ {
		// get the flag for the current interrupt
		flag := uint8(1 << i)

		if pending&flag != 0 {
			// clear the interrupt flag and return the vector
			_ = s.bus.Write8(types.IF, s.Flag()&^flag)
			return VBlankVector + uint16(i)*8
		}
	}

	return 0
}
