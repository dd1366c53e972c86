package cpu

// push8 decrements SP and writes value to the new top of the stack.
func (c *CPU) push8(value uint8) {
	c.SP--
	c.writeByte(c.SP, value)
}

// pop8 reads the top of the stack and increments SP.
func (c *CPU) pop8() uint8 {
	value := c.readByte(c.SP)
	c.SP++
	return value
}

// push16 pushes the high byte, then the low byte, so that the word sits
// little-endian in memory at SP.
func (c *CPU) push16(value uint16) {
	c.push8(uint8(value >> 8))
	c.push8(uint8(value))
}

// pop16 pops the low byte, then the high byte.
func (c *CPU) pop16() uint16 {
	low := c.pop8()
	high := c.pop8()
	return uint16(high)<<8 | uint16(low)
}

// call pushes the address of the next instruction and jumps to address.
//
//	CALL nn
//	RST n
func (c *CPU) call(address uint16) Flow {
	c.push16(c.PC)
	return JumpTo(address)
}

// ret pops the return address pushed by call and jumps to it.
//
//	RET
func (c *CPU) ret() Flow {
	return JumpTo(c.pop16())
}
