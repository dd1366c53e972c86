package cpu

import (
	"fmt"
	"strings"
)

// Disassemble decodes the instruction at addr, returning its mnemonic with
// the operands resolved and its total length in bytes. Undefined opcodes
// are rendered as a data byte.
func Disassemble(bus Bus, addr uint16) (string, int) {
	opcode, err := bus.Read8(addr)
	if err != nil {
		return "??", 1
	}
	if opcode == prefixCB {
		sub, err := bus.Read8(addr + 1)
		if err != nil {
			return "PREFIX CB", 1
		}
		return InstructionSetCB[sub].name, 2
	}

	instruction := &InstructionSet[opcode]
	if !instruction.Defined() {
		return fmt.Sprintf("DB 0x%02X", opcode), 1
	}

	var operands Operands
	for i := uint8(0); i < instruction.length; i++ {
		if operands[i], err = bus.Read8(addr + 1 + uint16(i)); err != nil {
			return instruction.name, 1 + int(instruction.length)
		}
	}

	r := strings.NewReplacer(
		"d16", fmt.Sprintf("0x%04X", operands.d16()),
		"a16", fmt.Sprintf("0x%04X", operands.d16()),
		"d8", fmt.Sprintf("0x%02X", operands.d8()),
		"a8", fmt.Sprintf("0x%02X", operands.d8()),
		"+r8", fmt.Sprintf("%+d", operands.r8()),
		"r8", fmt.Sprintf("%d", operands.r8()),
	)
	return r.Replace(instruction.name), 1 + int(instruction.length)
}
