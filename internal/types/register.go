package types

import "fmt"

// Register holds one of the CPU's 8-bit values. The CPU has 8 of them:
// A, F, B, C, D, E, H and L, with F reserved for the flags.
type Register = uint8

// RegisterPair is a 16-bit view over two Registers. The pair does not
// own any storage of its own, reading it composes the high and low
// registers and writing it splits the value back into them.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to the low register on writes, so that
	// AF can never carry bits in the lower nibble of F.
	mask uint8
}

// NewRegisterPair returns a RegisterPair over high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: 0xFF}
}

// NewMaskedRegisterPair returns a RegisterPair whose low register only
// accepts the bits set in mask.
func NewMaskedRegisterPair(high, low *Register, mask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: mask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.mask
}

// String implements fmt.Stringer.
func (r *RegisterPair) String() string {
	return fmt.Sprintf("%04X", r.Uint16())
}
