package cpu

import "fmt"

// prefixCB is the opcode that selects InstructionSetCB for the byte
// that follows it.
const prefixCB = 0xCB

// Operands holds the operand bytes read after an opcode, in the order
// they appear in memory.
type Operands [2]uint8

// d8 returns the first operand as an unsigned byte.
func (o Operands) d8() uint8 { return o[0] }

// r8 returns the first operand as a signed displacement.
func (o Operands) r8() int8 { return int8(o[0]) }

// d16 returns both operands as a little-endian word.
func (o Operands) d16() uint16 { return uint16(o[1])<<8 | uint16(o[0]) }

func (o *Operands) setD16(v uint16) {
	o[0] = uint8(v)
	o[1] = uint8(v >> 8)
}

// Flow is the control-flow result of a Handler.
type Flow struct {
	target uint16
	jump   bool
}

// Next continues with the instruction following the current one.
var Next = Flow{}

// JumpTo redirects the program counter to addr.
func JumpTo(addr uint16) Flow {
	return Flow{target: addr, jump: true}
}

// Target returns the jump target and whether the flow is a jump.
func (f Flow) Target() (uint16, bool) {
	return f.target, f.jump
}

// Handler executes a single instruction. The operands have already been
// read and PC points past them.
type Handler func(c *CPU, o Operands) Flow

// Instruction describes a single opcode.
type Instruction struct {
	name   string  // mnemonic, with operand placeholders d8, d16, a8, a16 and r8
	length uint8   // operand bytes following the opcode
	cycles uint8   // clock cycles, or the cost of a branch not taken
	taken  uint8   // clock cycles when a conditional branch is taken
	fn     Handler // nil for undefined opcodes
}

// Name returns the mnemonic of the instruction.
func (i *Instruction) Name() string {
	return i.name
}

// Length returns the number of operand bytes.
func (i *Instruction) Length() uint8 {
	return i.length
}

// Cycles returns the cost of the instruction when it falls through.
func (i *Instruction) Cycles() uint8 {
	return i.cycles
}

// TakenCycles returns the cost of the instruction when it jumps.
func (i *Instruction) TakenCycles() uint8 {
	if i.taken == 0 {
		return i.cycles
	}
	return i.taken
}

// Defined reports whether the opcode has a handler.
func (i *Instruction) Defined() bool {
	return i.fn != nil
}

// Execute runs the handler, applies its Flow to PC and returns the
// number of cycles spent.
func (i *Instruction) Execute(c *CPU, o Operands) uint8 {
	flow := i.fn(c, o)
	if !flow.jump {
		return i.cycles
	}
	c.PC = flow.target
	return i.TakenCycles()
}

// op creates an instruction without operands that always falls through.
func op(name string, cycles uint8, fn func(c *CPU)) Instruction {
	return Instruction{name: name, cycles: cycles, fn: func(c *CPU, _ Operands) Flow {
		fn(c)
		return Next
	}}
}

// opN creates an instruction that reads length operand bytes.
func opN(name string, length, cycles uint8, fn Handler) Instruction {
	return Instruction{name: name, length: length, cycles: cycles, fn: fn}
}

// branch creates a conditional instruction with separate costs for the
// taken and not taken paths.
func branch(name string, length, cycles, taken uint8, fn Handler) Instruction {
	return Instruction{name: name, length: length, cycles: cycles, taken: taken, fn: fn}
}

// memCycles returns cycles, plus extra when any of the operands is (HL).
func memCycles(cycles, extra uint8, regs ...reg8) uint8 {
	for _, r := range regs {
		if r == regHL {
			return cycles + extra
		}
	}
	return cycles
}

// ld creates LD dst, src.
func ld(dst, src reg8) Instruction {
	return op(fmt.Sprintf("LD %s, %s", dst, src), memCycles(4, 4, dst, src), func(c *CPU) {
		c.set8(dst, c.get8(src))
	})
}

// ldImm creates LD dst, d8.
func ldImm(dst reg8) Instruction {
	return opN(fmt.Sprintf("LD %s, d8", dst), 1, memCycles(8, 4, dst), func(c *CPU, o Operands) Flow {
		c.set8(dst, o.d8())
		return Next
	})
}

// ldPairImm creates LD rr, d16.
func ldPairImm(p pair) Instruction {
	return opN(fmt.Sprintf("LD %s, d16", p), 2, 12, func(c *CPU, o Operands) Flow {
		c.set16(p, o.d16())
		return Next
	})
}

func aluName(a aluOp, operand string) string {
	return a.String() + " " + operand
}

// aluReg creates an accumulator operation with a register source.
func aluReg(a aluOp, src reg8) Instruction {
	return op(aluName(a, src.String()), memCycles(4, 4, src), func(c *CPU) {
		c.alu(a, c.get8(src))
	})
}

// aluImm creates an accumulator operation with an immediate source.
func aluImm(a aluOp) Instruction {
	return opN(aluName(a, "d8"), 1, 8, func(c *CPU, o Operands) Flow {
		c.alu(a, o.d8())
		return Next
	})
}

// incReg creates INC r.
func incReg(r reg8) Instruction {
	return op(fmt.Sprintf("INC %s", r), memCycles(4, 8, r), func(c *CPU) {
		c.set8(r, c.increment(c.get8(r)))
	})
}

// decReg creates DEC r.
func decReg(r reg8) Instruction {
	return op(fmt.Sprintf("DEC %s", r), memCycles(4, 8, r), func(c *CPU) {
		c.set8(r, c.decrement(c.get8(r)))
	})
}

// incPair creates INC rr. Flags are not affected.
func incPair(p pair) Instruction {
	return op(fmt.Sprintf("INC %s", p), 8, func(c *CPU) {
		c.set16(p, c.get16(p)+1)
	})
}

// decPair creates DEC rr. Flags are not affected.
func decPair(p pair) Instruction {
	return op(fmt.Sprintf("DEC %s", p), 8, func(c *CPU) {
		c.set16(p, c.get16(p)-1)
	})
}

// addHLPair creates ADD HL, rr.
func addHLPair(p pair) Instruction {
	return op(fmt.Sprintf("ADD HL, %s", p), 8, func(c *CPU) {
		c.addHL(c.get16(p))
	})
}

// push creates PUSH rr.
func push(p pair) Instruction {
	return op(fmt.Sprintf("PUSH %s", p), 16, func(c *CPU) {
		c.push16(c.get16(p))
	})
}

// pop creates POP rr.
func pop(p pair) Instruction {
	return op(fmt.Sprintf("POP %s", p), 12, func(c *CPU) {
		c.set16(p, c.pop16())
	})
}

// withCondition formats a mnemonic with an optional condition.
func withCondition(mnemonic string, cc condition, operand string) string {
	switch {
	case cc == always && operand == "":
		return mnemonic
	case cc == always:
		return mnemonic + " " + operand
	case operand == "":
		return mnemonic + " " + cc.String()
	}
	return mnemonic + " " + cc.String() + ", " + operand
}

// jr creates JR cc, r8. The target is relative to the address following
// the operand.
func jr(cc condition) Instruction {
	fn := func(c *CPU, o Operands) Flow {
		if !c.test(cc) {
			return Next
		}
		return JumpTo(uint16(int32(c.PC) + int32(o.r8())))
	}
	if cc == always {
		return opN("JR r8", 1, 12, fn)
	}
	return branch(withCondition("JR", cc, "r8"), 1, 8, 12, fn)
}

// jp creates JP cc, a16.
func jp(cc condition) Instruction {
	fn := func(c *CPU, o Operands) Flow {
		if !c.test(cc) {
			return Next
		}
		return JumpTo(o.d16())
	}
	if cc == always {
		return opN("JP a16", 2, 16, fn)
	}
	return branch(withCondition("JP", cc, "a16"), 2, 12, 16, fn)
}

// call creates CALL cc, a16.
func call(cc condition) Instruction {
	fn := func(c *CPU, o Operands) Flow {
		if !c.test(cc) {
			return Next
		}
		return c.call(o.d16())
	}
	if cc == always {
		return opN("CALL a16", 2, 24, fn)
	}
	return branch(withCondition("CALL", cc, "a16"), 2, 12, 24, fn)
}

// ret creates RET cc.
func ret(cc condition) Instruction {
	fn := func(c *CPU, _ Operands) Flow {
		if !c.test(cc) {
			return Next
		}
		return c.ret()
	}
	if cc == always {
		return opN("RET", 0, 16, fn)
	}
	return branch(withCondition("RET", cc, ""), 0, 8, 20, fn)
}

// rst creates RST n, a call to a fixed address in page zero.
func rst(target uint16) Instruction {
	return opN(fmt.Sprintf("RST %02XH", target), 0, 16, func(c *CPU, _ Operands) Flow {
		return c.call(target)
	})
}
