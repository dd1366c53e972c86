// Package mmu provides the address space of the CPU. Memory is a flat
// byte array covering the 16-bit address range and some scratch space
// beyond it, with optional side effects attached to writes in the I/O
// page (0xFF00 - 0xFFFF).
package mmu

import (
	"encoding/binary"
)

// DefaultSize is the default size of the backing store. Anything above
// 0xFFFF is unmapped scratch memory, which lets a 16-bit read at 0xFFFF
// complete without wrapping.
const DefaultSize = 0xF0000

// ioPage is the first address that may carry a WriteHook.
const ioPage = 0xFF00

// WriteHook is invoked when the CPU writes to a hooked address. The
// value it returns is the one stored.
type WriteHook func(address uint16, value uint8) uint8

// MMU is the memory management unit. It owns the backing store and
// bounds checks every access against it.
type MMU struct {
	ram   []byte
	hooks [0x100]WriteHook
}

// Opt configures an MMU.
type Opt func(m *MMU)

// WithSize changes the size of the backing store.
func WithSize(size int) Opt {
	return func(m *MMU) {
		m.ram = make([]byte, size)
	}
}

// New returns an MMU with a zeroed backing store.
func New(opts ...Opt) *MMU {
	m := &MMU{}
	for _, opt := range opts {
		opt(m)
	}
	if m.ram == nil {
		m.ram = make([]byte, DefaultSize)
	}

	return m
}

// Size returns the size of the backing store in bytes.
func (m *MMU) Size() int {
	return len(m.ram)
}

// check ensures n bytes starting at address are backed by memory. The
// error reports the first address of the access that is not.
func (m *MMU) check(address uint32, n int) error {
	if int(address)+n <= len(m.ram) {
		return nil
	}
	if int(address) < len(m.ram) {
		address = uint32(len(m.ram))
	}
	return &OutOfRangeError{Address: address, Size: len(m.ram)}
}

// Read8 returns the byte at address.
func (m *MMU) Read8(address uint16) (uint8, error) {
	if err := m.check(uint32(address), 1); err != nil {
		return 0, err
	}
	return m.ram[address], nil
}

// Read8Signed returns the byte at address reinterpreted as a two's
// complement value in [-128, 127].
func (m *MMU) Read8Signed(address uint16) (int8, error) {
	v, err := m.Read8(address)
	return int8(v), err
}

// Read16 returns the little-endian 16-bit value stored at address and
// address+1.
func (m *MMU) Read16(address uint16) (uint16, error) {
	if err := m.check(uint32(address), 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(m.ram[address:]), nil
}

// Write8 stores value at address, passing it through the address's
// WriteHook if there is one.
func (m *MMU) Write8(address uint16, value uint8) error {
	if err := m.check(uint32(address), 1); err != nil {
		return err
	}
	if address >= ioPage {
		if hook := m.hooks[address-ioPage]; hook != nil {
			value = hook(address, value)
		}
	}
	m.ram[address] = value
	return nil
}

// Load copies image verbatim into memory starting at address 0. Hooks
// are not invoked.
func (m *MMU) Load(image []byte) error {
	if len(image) == 0 {
		return nil
	}
	if err := m.check(0, len(image)); err != nil {
		return err
	}
	copy(m.ram, image)
	return nil
}

// Copy fills dst with the memory starting at address, for collaborators
// that need a snapshot of a region (such as video RAM).
func (m *MMU) Copy(dst []byte, address uint16) error {
	if err := m.check(uint32(address), len(dst)); err != nil {
		return err
	}
	copy(dst, m.ram[address:])
	return nil
}

// Hook attaches fn to writes at address, replacing any existing hook.
// Only the I/O page (0xFF00 - 0xFFFF) can be hooked; hooks for other
// addresses are reported as an error.
func (m *MMU) Hook(address uint16, fn WriteHook) error {
	if address < ioPage {
		return &HookError{Address: address}
	}
	m.hooks[address-ioPage] = fn
	return nil
}
