package cpu

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.Flag(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.Flag(FlagCarry))
	return decremented
}

// aluOp selects one of the eight accumulator operations encoded in
// opcodes 0x80 - 0xBF and the d8 variants.
type aluOp uint8

const (
	aluADD aluOp = iota
	aluADC
	aluSUB
	aluSBC
	aluAND
	aluXOR
	aluOR
	aluCP
)

var aluNames = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}

func (op aluOp) String() string {
	return aluNames[op&7]
}

// alu applies op to the accumulator and n.
func (c *CPU) alu(op aluOp, n uint8) {
	switch op {
	case aluADD:
		c.add(n, false)
	case aluADC:
		c.add(n, true)
	case aluSUB:
		c.A = c.subtract(n, false)
	case aluSBC:
		c.A = c.subtract(n, true)
	case aluAND:
		c.and(n)
	case aluXOR:
		c.xor(n)
	case aluOR:
		c.or(n)
	case aluCP:
		c.compare(n)
	}
}

// add is a helper function for adding n to the accumulator and
// setting the flags accordingly.
//
// Used by:
//
//	ADD A, n
//	ADC A, n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry && c.Flag(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	sumHalf := c.A&0xF + n&0xF + carry
	c.setFlags(uint8(sum) == 0, false, sumHalf > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// subtract is a helper function for subtracting n from the accumulator
// and setting the flags accordingly. The accumulator is left alone, the
// result is returned.
//
// Used by:
//
//	SUB n
//	SBC A, n
//	CP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) subtract(n uint8, withCarry bool) uint8 {
	var carry int16
	if withCarry && c.Flag(FlagCarry) {
		carry = 1
	}
	sub := int16(c.A) - int16(n) - carry
	subHalf := int16(c.A&0xF) - int16(n&0xF) - carry
	c.setFlags(uint8(sub) == 0, true, subHalf < 0, sub < 0)
	return uint8(sub)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register, the result of the subtraction
// is discarded.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.subtract(n, false)
}

// addHL adds n to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.Flag(FlagZero), false, hl&0xFFF+n&0xFFF > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed offset e. The flags are
// computed on the low byte, as an unsigned 8-bit addition.
//
//	ADD SP, r8
//	LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e int8) uint16 {
	result := uint16(int32(c.SP) + int32(e))
	carries := c.SP ^ uint16(e) ^ result
	c.setFlags(false, false, carries&0x10 == 0x10, carries&0x100 == 0x100)
	return result
}

// decimalAdjust corrects the accumulator after a BCD addition or
// subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the adjustment carried.
func (c *CPU) decimalAdjust() {
	a := c.A
	carry := c.Flag(FlagCarry)
	if !c.Flag(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.Flag(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.Flag(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.setFlags(a == 0, c.Flag(FlagSubtract), false, carry)
	c.A = a
}

// complement flips every bit of the accumulator.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.SetFlag(FlagSubtract, true)
	c.SetFlag(FlagHalfCarry, true)
}

// setCarry sets the carry flag (SCF), or inverts it when toggle is set
// (CCF). N and H are reset, Z is not affected.
func (c *CPU) setCarry(toggle bool) {
	carry := true
	if toggle {
		carry = !c.Flag(FlagCarry)
	}
	c.setFlags(c.Flag(FlagZero), false, false, carry)
}
