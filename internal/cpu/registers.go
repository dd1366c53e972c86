package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
)

// Register is an alias for types.Register.
type Register = types.Register

// RegisterPair is an alias for types.RegisterPair.
type RegisterPair = types.RegisterPair

// Registers represents the CPU's 8-bit registers and the 16-bit pairs
// viewing them.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// init creates the register pairs. The lower nibble of F is not
// addressable, so AF masks it away on writes.
func (r *Registers) init() {
	r.BC = types.NewRegisterPair(&r.B, &r.C)
	r.DE = types.NewRegisterPair(&r.D, &r.E)
	r.HL = types.NewRegisterPair(&r.H, &r.L)
	r.AF = types.NewMaskedRegisterPair(&r.A, &r.F, 0xF0)
}

// reg8 is the operand encoding used by the opcode table for 8-bit
// sources and destinations, in the order the hardware decodes them.
type reg8 uint8

const (
	regB reg8 = iota
	regC
	regD
	regE
	regH
	regL
	regHL // the byte addressed by HL
	regA
)

var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (r reg8) String() string {
	return reg8Names[r&7]
}

// registerIndex returns a Register pointer for the given operand, or
// nil for (HL), which lives in memory.
func (c *CPU) registerIndex(r reg8) *Register {
	switch r {
	case regB:
		return &c.B
	case regC:
		return &c.C
	case regD:
		return &c.D
	case regE:
		return &c.E
	case regH:
		return &c.H
	case regL:
		return &c.L
	case regA:
		return &c.A
	}
	return nil
}

// get8 returns the value of an 8-bit operand.
func (c *CPU) get8(r reg8) uint8 {
	if reg := c.registerIndex(r); reg != nil {
		return *reg
	}
	return c.readByte(c.HL.Uint16())
}

// set8 stores value in an 8-bit operand.
func (c *CPU) set8(r reg8, value uint8) {
	if reg := c.registerIndex(r); reg != nil {
		*reg = value
		return
	}
	c.writeByte(c.HL.Uint16(), value)
}

// pair is the operand encoding for 16-bit register pairs. SP and AF
// share an encoding on hardware, here they are kept apart.
type pair uint8

const (
	pairBC pair = iota
	pairDE
	pairHL
	pairSP
	pairAF
)

var pairNames = [5]string{"BC", "DE", "HL", "SP", "AF"}

func (p pair) String() string {
	return pairNames[p]
}

// get16 returns the value of a 16-bit register pair.
func (c *CPU) get16(p pair) uint16 {
	switch p {
	case pairBC:
		return c.BC.Uint16()
	case pairDE:
		return c.DE.Uint16()
	case pairHL:
		return c.HL.Uint16()
	case pairAF:
		return c.AF.Uint16()
	}
	return c.SP
}

// set16 stores value in a 16-bit register pair.
func (c *CPU) set16(p pair, value uint16) {
	switch p {
	case pairBC:
		c.BC.SetUint16(value)
	case pairDE:
		c.DE.SetUint16(value)
	case pairHL:
		c.HL.SetUint16(value)
	case pairAF:
		c.AF.SetUint16(value)
	default:
		c.SP = value
	}
}
