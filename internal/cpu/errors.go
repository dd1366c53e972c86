package cpu

import (
	"errors"
	"fmt"
)

// ErrUnimplementedOpcode matches every *UnimplementedOpcodeError.
var ErrUnimplementedOpcode = errors.New("unimplemented opcode")

// UnimplementedOpcodeError is returned by Step when the fetched byte has
// no entry in the opcode table.
type UnimplementedOpcodeError struct {
	Opcode   uint8
	Prefixed bool
	Address  uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("unimplemented opcode 0xCB 0x%02X at address 0x%04X", e.Opcode, e.Address)
	}
	return fmt.Sprintf("unimplemented opcode 0x%02X at address 0x%04X", e.Opcode, e.Address)
}

// Is reports whether target is ErrUnimplementedOpcode.
func (e *UnimplementedOpcodeError) Is(target error) bool {
	return target == ErrUnimplementedOpcode
}
