package cpu

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/mmu"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		program []uint8
		text    string
		length  int
	}{
		{[]uint8{0x00}, "NOP", 1},
		{[]uint8{0x20, 0xFE}, "JR NZ, -2", 2},
		{[]uint8{0x18, 0x05}, "JR 5", 2},
		{[]uint8{0x3E, 0x05}, "LD A, 0x05", 2},
		{[]uint8{0xCD, 0x34, 0x12}, "CALL 0x1234", 3},
		{[]uint8{0x01, 0xEF, 0xBE}, "LD BC, 0xBEEF", 3},
		{[]uint8{0xE0, 0x44}, "LDH (0x44), A", 2},
		{[]uint8{0xF8, 0x05}, "LD HL, SP+5", 2},
		{[]uint8{0xF8, 0xFB}, "LD HL, SP-5", 2},
		{[]uint8{0xE8, 0x80}, "ADD SP, -128", 2},
		{[]uint8{0xCB, 0x7C}, "BIT 7, H", 2},
		{[]uint8{0xFF}, "RST 38H", 1},
		{[]uint8{0xD3}, "DB 0xD3", 1},
	}
	for _, tt := range tests {
		m := mmu.New(mmu.WithSize(0x10))
		if err := m.Load(tt.program); err != nil {
			t.Fatal(err)
		}
		text, length := Disassemble(m, 0)
		if text != tt.text || length != tt.length {
			t.Errorf("% X: expected %q (%d), got %q (%d)", tt.program, tt.text, tt.length, text, length)
		}
	}
}
