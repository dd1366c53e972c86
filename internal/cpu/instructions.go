package cpu

// InstructionSet holds the primary opcode table. Opcodes without an entry
// (0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC and 0xFD) are
// undefined on hardware and halt the CPU.
var InstructionSet = [256]Instruction{
	0x00: op("NOP", 4, func(c *CPU) {}),
	0x01: ldPairImm(pairBC),
	0x02: op("LD (BC), A", 8, func(c *CPU) { c.writeByte(c.BC.Uint16(), c.A) }),
	0x03: incPair(pairBC),
	0x04: incReg(regB),
	0x05: decReg(regB),
	0x06: ldImm(regB),
	0x07: op("RLCA", 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftCarry) }),
	0x08: opN("LD (a16), SP", 2, 20, func(c *CPU, o Operands) Flow {
		c.writeByte(o.d16(), uint8(c.SP))
		c.writeByte(o.d16()+1, uint8(c.SP>>8))
		return Next
	}),
	0x09: addHLPair(pairBC),
	0x0A: op("LD A, (BC)", 8, func(c *CPU) { c.A = c.readByte(c.BC.Uint16()) }),
	0x0B: decPair(pairBC),
	0x0C: incReg(regC),
	0x0D: decReg(regC),
	0x0E: ldImm(regC),
	0x0F: op("RRCA", 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightCarry) }),
	0x10: opN("STOP", 1, 4, func(c *CPU, _ Operands) Flow {
		c.mode = ModeStop
		return Next
	}),
	0x11: ldPairImm(pairDE),
	0x12: op("LD (DE), A", 8, func(c *CPU) { c.writeByte(c.DE.Uint16(), c.A) }),
	0x13: incPair(pairDE),
	0x14: incReg(regD),
	0x15: decReg(regD),
	0x16: ldImm(regD),
	0x17: op("RLA", 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftThroughCarry) }),
	0x18: jr(always),
	0x19: addHLPair(pairDE),
	0x1A: op("LD A, (DE)", 8, func(c *CPU) { c.A = c.readByte(c.DE.Uint16()) }),
	0x1B: decPair(pairDE),
	0x1C: incReg(regE),
	0x1D: decReg(regE),
	0x1E: ldImm(regE),
	0x1F: op("RRA", 4, func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightThroughCarry) }),
	0x20: jr(condNZ),
	0x21: ldPairImm(pairHL),
	0x22: op("LD (HL+), A", 8, func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}),
	0x23: incPair(pairHL),
	0x24: incReg(regH),
	0x25: decReg(regH),
	0x26: ldImm(regH),
	0x27: op("DAA", 4, (*CPU).decimalAdjust),
	0x28: jr(condZ),
	0x29: addHLPair(pairHL),
	0x2A: op("LD A, (HL+)", 8, func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	}),
	0x2B: decPair(pairHL),
	0x2C: incReg(regL),
	0x2D: decReg(regL),
	0x2E: ldImm(regL),
	0x2F: op("CPL", 4, (*CPU).complement),
	0x30: jr(condNC),
	0x31: ldPairImm(pairSP),
	0x32: op("LD (HL-), A", 8, func(c *CPU) {
		c.writeByte(c.HL.Uint16(), c.A)
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}),
	0x33: incPair(pairSP),
	0x34: incReg(regHL),
	0x35: decReg(regHL),
	0x36: ldImm(regHL),
	0x37: op("SCF", 4, func(c *CPU) { c.setCarry(false) }),
	0x38: jr(condC),
	0x39: addHLPair(pairSP),
	0x3A: op("LD A, (HL-)", 8, func(c *CPU) {
		c.A = c.readByte(c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	}),
	0x3B: decPair(pairSP),
	0x3C: incReg(regA),
	0x3D: decReg(regA),
	0x3E: ldImm(regA),
	0x3F: op("CCF", 4, func(c *CPU) { c.setCarry(true) }),
	0x40: ld(regB, regB),
	0x41: ld(regB, regC),
	0x42: ld(regB, regD),
	0x43: ld(regB, regE),
	0x44: ld(regB, regH),
	0x45: ld(regB, regL),
	0x46: ld(regB, regHL),
	0x47: ld(regB, regA),
	0x48: ld(regC, regB),
	0x49: ld(regC, regC),
	0x4A: ld(regC, regD),
	0x4B: ld(regC, regE),
	0x4C: ld(regC, regH),
	0x4D: ld(regC, regL),
	0x4E: ld(regC, regHL),
	0x4F: ld(regC, regA),
	0x50: ld(regD, regB),
	0x51: ld(regD, regC),
	0x52: ld(regD, regD),
	0x53: ld(regD, regE),
	0x54: ld(regD, regH),
	0x55: ld(regD, regL),
	0x56: ld(regD, regHL),
	0x57: ld(regD, regA),
	0x58: ld(regE, regB),
	0x59: ld(regE, regC),
	0x5A: ld(regE, regD),
	0x5B: ld(regE, regE),
	0x5C: ld(regE, regH),
	0x5D: ld(regE, regL),
	0x5E: ld(regE, regHL),
	0x5F: ld(regE, regA),
	0x60: ld(regH, regB),
	0x61: ld(regH, regC),
	0x62: ld(regH, regD),
	0x63: ld(regH, regE),
	0x64: ld(regH, regH),
	0x65: ld(regH, regL),
	0x66: ld(regH, regHL),
	0x67: ld(regH, regA),
	0x68: ld(regL, regB),
	0x69: ld(regL, regC),
	0x6A: ld(regL, regD),
	0x6B: ld(regL, regE),
	0x6C: ld(regL, regH),
	0x6D: ld(regL, regL),
	0x6E: ld(regL, regHL),
	0x6F: ld(regL, regA),
	0x70: ld(regHL, regB),
	0x71: ld(regHL, regC),
	0x72: ld(regHL, regD),
	0x73: ld(regHL, regE),
	0x74: ld(regHL, regH),
	0x75: ld(regHL, regL),
	0x76: op("HALT", 4, func(c *CPU) { c.mode = ModeHalt }),
	0x77: ld(regHL, regA),
	0x78: ld(regA, regB),
	0x79: ld(regA, regC),
	0x7A: ld(regA, regD),
	0x7B: ld(regA, regE),
	0x7C: ld(regA, regH),
	0x7D: ld(regA, regL),
	0x7E: ld(regA, regHL),
	0x7F: ld(regA, regA),
	0x80: aluReg(aluADD, regB),
	0x81: aluReg(aluADD, regC),
	0x82: aluReg(aluADD, regD),
	0x83: aluReg(aluADD, regE),
	0x84: aluReg(aluADD, regH),
	0x85: aluReg(aluADD, regL),
	0x86: aluReg(aluADD, regHL),
	0x87: aluReg(aluADD, regA),
	0x88: aluReg(aluADC, regB),
	0x89: aluReg(aluADC, regC),
	0x8A: aluReg(aluADC, regD),
	0x8B: aluReg(aluADC, regE),
	0x8C: aluReg(aluADC, regH),
	0x8D: aluReg(aluADC, regL),
	0x8E: aluReg(aluADC, regHL),
	0x8F: aluReg(aluADC, regA),
	0x90: aluReg(aluSUB, regB),
	0x91: aluReg(aluSUB, regC),
	0x92: aluReg(aluSUB, regD),
	0x93: aluReg(aluSUB, regE),
	0x94: aluReg(aluSUB, regH),
	0x95: aluReg(aluSUB, regL),
	0x96: aluReg(aluSUB, regHL),
	0x97: aluReg(aluSUB, regA),
	0x98: aluReg(aluSBC, regB),
	0x99: aluReg(aluSBC, regC),
	0x9A: aluReg(aluSBC, regD),
	0x9B: aluReg(aluSBC, regE),
	0x9C: aluReg(aluSBC, regH),
	0x9D: aluReg(aluSBC, regL),
	0x9E: aluReg(aluSBC, regHL),
	0x9F: aluReg(aluSBC, regA),
	0xA0: aluReg(aluAND, regB),
	0xA1: aluReg(aluAND, regC),
	0xA2: aluReg(aluAND, regD),
	0xA3: aluReg(aluAND, regE),
	0xA4: aluReg(aluAND, regH),
	0xA5: aluReg(aluAND, regL),
	0xA6: aluReg(aluAND, regHL),
	0xA7: aluReg(aluAND, regA),
	0xA8: aluReg(aluXOR, regB),
	0xA9: aluReg(aluXOR, regC),
	0xAA: aluReg(aluXOR, regD),
	0xAB: aluReg(aluXOR, regE),
	0xAC: aluReg(aluXOR, regH),
	0xAD: aluReg(aluXOR, regL),
	0xAE: aluReg(aluXOR, regHL),
	0xAF: aluReg(aluXOR, regA),
	0xB0: aluReg(aluOR, regB),
	0xB1: aluReg(aluOR, regC),
	0xB2: aluReg(aluOR, regD),
	0xB3: aluReg(aluOR, regE),
	0xB4: aluReg(aluOR, regH),
	0xB5: aluReg(aluOR, regL),
	0xB6: aluReg(aluOR, regHL),
	0xB7: aluReg(aluOR, regA),
	0xB8: aluReg(aluCP, regB),
	0xB9: aluReg(aluCP, regC),
	0xBA: aluReg(aluCP, regD),
	0xBB: aluReg(aluCP, regE),
	0xBC: aluReg(aluCP, regH),
	0xBD: aluReg(aluCP, regL),
	0xBE: aluReg(aluCP, regHL),
	0xBF: aluReg(aluCP, regA),
	0xC0: ret(condNZ),
	0xC1: pop(pairBC),
	0xC2: jp(condNZ),
	0xC3: jp(always),
	0xC4: call(condNZ),
	0xC5: push(pairBC),
	0xC6: aluImm(aluADD),
	0xC7: rst(0x00),
	0xC8: ret(condZ),
	0xC9: ret(always),
	0xCA: jp(condZ),
	0xCB: opN("PREFIX CB", 1, 4, func(c *CPU, o Operands) Flow {
		return InstructionSetCB[o.d8()].fn(c, Operands{})
	}),
	0xCC: call(condZ),
	0xCD: call(always),
	0xCE: aluImm(aluADC),
	0xCF: rst(0x08),
	0xD0: ret(condNC),
	0xD1: pop(pairDE),
	0xD2: jp(condNC),
	0xD4: call(condNC),
	0xD5: push(pairDE),
	0xD6: aluImm(aluSUB),
	0xD7: rst(0x10),
	0xD8: ret(condC),
	0xD9: opN("RETI", 0, 16, func(c *CPU, _ Operands) Flow {
		c.IME = true
		return c.ret()
	}),
	0xDA: jp(condC),
	0xDC: call(condC),
	0xDE: aluImm(aluSBC),
	0xDF: rst(0x18),
	0xE0: opN("LDH (a8), A", 1, 12, func(c *CPU, o Operands) Flow {
		c.writeByte(0xFF00+uint16(o.d8()), c.A)
		return Next
	}),
	0xE1: pop(pairHL),
	0xE2: op("LD (C), A", 8, func(c *CPU) { c.writeByte(0xFF00+uint16(c.C), c.A) }),
	0xE5: push(pairHL),
	0xE6: aluImm(aluAND),
	0xE7: rst(0x20),
	0xE8: opN("ADD SP, r8", 1, 16, func(c *CPU, o Operands) Flow {
		c.SP = c.addSPSigned(o.r8())
		return Next
	}),
	0xE9: opN("JP HL", 0, 4, func(c *CPU, _ Operands) Flow {
		return JumpTo(c.HL.Uint16())
	}),
	0xEA: opN("LD (a16), A", 2, 16, func(c *CPU, o Operands) Flow {
		c.writeByte(o.d16(), c.A)
		return Next
	}),
	0xEE: aluImm(aluXOR),
	0xEF: rst(0x28),
	0xF0: opN("LDH A, (a8)", 1, 12, func(c *CPU, o Operands) Flow {
		c.A = c.readByte(0xFF00 + uint16(o.d8()))
		return Next
	}),
	0xF1: pop(pairAF),
	0xF2: op("LD A, (C)", 8, func(c *CPU) { c.A = c.readByte(0xFF00 + uint16(c.C)) }),
	0xF3: op("DI", 4, func(c *CPU) { c.IME = false }),
	0xF5: push(pairAF),
	0xF6: aluImm(aluOR),
	0xF7: rst(0x30),
	0xF8: opN("LD HL, SP+r8", 1, 12, func(c *CPU, o Operands) Flow {
		c.HL.SetUint16(c.addSPSigned(o.r8()))
		return Next
	}),
	0xF9: op("LD SP, HL", 8, func(c *CPU) { c.SP = c.HL.Uint16() }),
	0xFA: opN("LD A, (a16)", 2, 16, func(c *CPU, o Operands) Flow {
		c.A = c.readByte(o.d16())
		return Next
	}),
	0xFB: op("EI", 4, func(c *CPU) { c.IME = true }),
	0xFE: aluImm(aluCP),
	0xFF: rst(0x38),
}
