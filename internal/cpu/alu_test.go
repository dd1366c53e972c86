package cpu

import "testing"

func TestALU_IncrementDecrement(t *testing.T) {
	c := newTestCPU(nil)

	t.Run("increment wraps", func(t *testing.T) {
		c.F = 0
		c.SetFlag(FlagCarry, true)
		if v := c.increment(0xFF); v != 0x00 {
			t.Errorf("expected 0x00, got 0x%02X", v)
		}
		if !c.Flag(FlagZero) || c.Flag(FlagSubtract) || !c.Flag(FlagHalfCarry) || !c.Flag(FlagCarry) {
			t.Errorf("expected Z-HC, got %08b", c.F)
		}
	})
	t.Run("increment half carry", func(t *testing.T) {
		c.F = 0
		if v := c.increment(0x0F); v != 0x10 || !c.Flag(FlagHalfCarry) || c.Flag(FlagZero) {
			t.Errorf("expected 0x10 with H set, got 0x%02X %08b", v, c.F)
		}
		if v := c.increment(0x10); v != 0x11 || c.Flag(FlagHalfCarry) {
			t.Errorf("expected 0x11 with H reset, got 0x%02X %08b", v, c.F)
		}
	})
	t.Run("decrement wraps", func(t *testing.T) {
		c.F = 0
		if v := c.decrement(0x00); v != 0xFF {
			t.Errorf("expected 0xFF, got 0x%02X", v)
		}
		if c.Flag(FlagZero) || !c.Flag(FlagSubtract) || !c.Flag(FlagHalfCarry) || c.Flag(FlagCarry) {
			t.Errorf("expected -NH-, got %08b", c.F)
		}
	})
	t.Run("decrement to zero", func(t *testing.T) {
		if v := c.decrement(0x01); v != 0x00 || !c.Flag(FlagZero) || c.Flag(FlagHalfCarry) {
			t.Errorf("expected 0x00 with Z set and H reset, got 0x%02X %08b", v, c.F)
		}
	})
}

func TestALU_Operations(t *testing.T) {
	type test struct {
		name    string
		op      aluOp
		a, n    uint8
		carry   bool
		want    uint8
		z, h, c bool
	}
	tests := []test{
		{"ADD", aluADD, 0x3A, 0xC6, false, 0x00, true, true, true},
		{"ADD no carry", aluADD, 0x01, 0x02, false, 0x03, false, false, false},
		{"ADD half carry", aluADD, 0x0F, 0x01, false, 0x10, false, true, false},
		{"ADC", aluADC, 0xE1, 0x0F, true, 0xF1, false, true, false},
		{"ADC overflow", aluADC, 0xE1, 0x1E, true, 0x00, true, true, true},
		{"SUB", aluSUB, 0x3E, 0x3E, false, 0x00, true, false, false},
		{"SUB borrow", aluSUB, 0x3E, 0x40, false, 0xFE, false, false, true},
		{"SUB half borrow", aluSUB, 0x3E, 0x0F, false, 0x2F, false, true, false},
		{"SBC", aluSBC, 0x3B, 0x2A, true, 0x10, false, false, false},
		{"SBC borrow", aluSBC, 0x3B, 0x4F, true, 0xEB, false, true, true},
		{"AND", aluAND, 0x5A, 0x3F, true, 0x1A, false, true, false},
		{"AND zero", aluAND, 0x5A, 0x00, false, 0x00, true, true, false},
		{"XOR", aluXOR, 0xFF, 0xFF, true, 0x00, true, false, false},
		{"OR", aluOR, 0x5A, 0x03, true, 0x5B, false, false, false},
		{"CP equal", aluCP, 0x3C, 0x3C, false, 0x3C, true, false, false},
		{"CP less", aluCP, 0x3C, 0x40, false, 0x3C, false, false, true},
		{"CP half", aluCP, 0x3C, 0x2F, false, 0x3C, false, true, false},
	}
	c := newTestCPU(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.A = tt.a
			c.setFlags(false, false, false, tt.carry)
			c.alu(tt.op, tt.n)
			if c.A != tt.want {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.want, c.A)
			}
			subtract := tt.op == aluSUB || tt.op == aluSBC || tt.op == aluCP
			if c.Flag(FlagZero) != tt.z || c.Flag(FlagSubtract) != subtract || c.Flag(FlagHalfCarry) != tt.h || c.Flag(FlagCarry) != tt.c {
				t.Errorf("expected Z=%v N=%v H=%v C=%v, got %08b", tt.z, subtract, tt.h, tt.c, c.F)
			}
		})
	}
}

func TestALU_DecimalAdjust(t *testing.T) {
	c := newTestCPU(nil)
	tests := []struct {
		a, b, want uint8
		sub, carry bool
	}{
		{0x15, 0x27, 0x42, false, false},
		{0x99, 0x01, 0x00, false, true},
		{0x50, 0x50, 0x00, false, true},
		{0x42, 0x15, 0x27, true, false},
		{0x10, 0x20, 0x90, true, true},
	}
	for _, tt := range tests {
		c.A = tt.a
		c.setFlags(false, false, false, false)
		if tt.sub {
			c.alu(aluSUB, tt.b)
		} else {
			c.alu(aluADD, tt.b)
		}
		c.decimalAdjust()
		if c.A != tt.want {
			t.Errorf("%02X,%02X: expected 0x%02X, got 0x%02X", tt.a, tt.b, tt.want, c.A)
		}
		if c.Flag(FlagCarry) != tt.carry {
			t.Errorf("%02X,%02X: expected carry %v", tt.a, tt.b, tt.carry)
		}
		if c.Flag(FlagZero) != (tt.want == 0) || c.Flag(FlagHalfCarry) || c.Flag(FlagSubtract) != tt.sub {
			t.Errorf("%02X,%02X: unexpected flags %08b", tt.a, tt.b, c.F)
		}
	}
}

func TestALU_Misc(t *testing.T) {
	c := newTestCPU(nil)

	t.Run("CPL", func(t *testing.T) {
		c.A = 0x35
		c.F = 0
		c.complement()
		if c.A != 0xCA || !c.Flag(FlagSubtract) || !c.Flag(FlagHalfCarry) {
			t.Errorf("expected 0xCA with N and H, got 0x%02X %08b", c.A, c.F)
		}
	})
	t.Run("SCF", func(t *testing.T) {
		c.setFlags(true, true, true, false)
		c.setCarry(false)
		if c.F != 0x90 {
			t.Errorf("expected Z and C, got %08b", c.F)
		}
	})
	t.Run("CCF", func(t *testing.T) {
		c.setFlags(false, true, true, true)
		c.setCarry(true)
		if c.F != 0x00 {
			t.Errorf("expected no flags, got %08b", c.F)
		}
		c.setCarry(true)
		if c.F != 0x10 {
			t.Errorf("expected C, got %08b", c.F)
		}
	})
	t.Run("ADD SP negative", func(t *testing.T) {
		c.SP = 0x0100
		if v := c.addSPSigned(-2); v != 0x00FE {
			t.Errorf("expected 0x00FE, got 0x%04X", v)
		}
		if c.Flag(FlagHalfCarry) || c.Flag(FlagCarry) {
			t.Errorf("expected no carries, got %08b", c.F)
		}
	})
}
