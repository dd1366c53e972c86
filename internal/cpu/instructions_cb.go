package cpu

import "fmt"

// InstructionSetCB holds the opcodes selected by the 0xCB prefix. Every
// entry is defined.
var InstructionSetCB [256]Instruction

// cbOps are the rotate and shift operations encoded in 0x00 - 0x3F, in
// opcode order.
var cbOps = [8]struct {
	name string
	fn   func(*CPU, uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

func init() {
	// loop through each register (B, C, D, E, H, L, (HL), A)
	for r := regB; r <= regA; r++ {
		r := r
		for i, o := range cbOps {
			o := o
			defineCB(uint8(i)<<3|uint8(r), fmt.Sprintf("%s %s", o.name, r), memCycles(8, 8, r), func(c *CPU) {
				c.set8(r, o.fn(c, c.get8(r)))
			})
		}

		for b := uint8(0); b < 8; b++ {
			b := b
			defineCB(0x40|b<<3|uint8(r), fmt.Sprintf("BIT %d, %s", b, r), memCycles(8, 4, r), func(c *CPU) {
				c.testBit(b, c.get8(r))
			})
			defineCB(0x80|b<<3|uint8(r), fmt.Sprintf("RES %d, %s", b, r), memCycles(8, 8, r), func(c *CPU) {
				c.set8(r, c.get8(r)&^(1<<b))
			})
			defineCB(0xC0|b<<3|uint8(r), fmt.Sprintf("SET %d, %s", b, r), memCycles(8, 8, r), func(c *CPU) {
				c.set8(r, c.get8(r)|1<<b)
			})
		}
	}
}

// defineCB adds an entry to InstructionSetCB, panicking if the opcode has
// already been defined.
func defineCB(opcode uint8, name string, cycles uint8, fn func(*CPU)) {
	if InstructionSetCB[opcode].Defined() {
		panic(fmt.Sprintf("cpu: prefixed opcode 0x%02X defined twice", opcode))
	}
	InstructionSetCB[opcode] = op(name, cycles, fn)
}
