package cpu

import "testing"

type fakeSource struct {
	pending bool
	vector  uint16
	acks    int
}

func (f *fakeSource) Pending() bool { return f.pending }

func (f *fakeSource) Acknowledge() uint16 {
	f.acks++
	f.pending = false
	return f.vector
}

func TestInterrupts_Dispatch(t *testing.T) {
	irq := &fakeSource{pending: true, vector: 0x0040}
	c := newTestCPU([]Opt{WithInterruptSource(irq)}) // NOP

	if err := c.Step(); err != nil {
		t.Fatal(err)
	}
	if c.PC != 0x0040 {
		t.Errorf("expected PC=0x0040, got 0x%04X", c.PC)
	}
	if c.IME {
		t.Errorf("expected IME to be cleared")
	}
	if ret, _ := bus.Read16(c.SP); ret != 0x0101 || c.SP != 0xFFFC {
		t.Errorf("expected 0x0101 pushed, got 0x%04X SP=0x%04X", ret, c.SP)
	}
	if c.Cycles() != 24 {
		t.Errorf("expected 24 cycles, got %d", c.Cycles())
	}
	if irq.acks != 1 {
		t.Errorf("expected one acknowledgement, got %d", irq.acks)
	}
}

func TestInterrupts_Disabled(t *testing.T) {
	irq := &fakeSource{pending: true, vector: 0x0040}
	// DI; NOP
	c := newTestCPU([]Opt{WithInterruptSource(irq)}, 0xF3, 0x00)
	for i := 0; i < 2; i++ {
		if err := c.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if c.PC != 0x0102 || irq.acks != 0 {
		t.Errorf("expected no dispatch with IME reset, got PC=0x%04X acks=%d", c.PC, irq.acks)
	}
}

func TestInterrupts_WakeFromHalt(t *testing.T) {
	irq := &fakeSource{vector: 0x0048}
	// DI; HALT; INC A
	c := newTestCPU([]Opt{WithInterruptSource(irq)}, 0xF3, 0x76, 0x3C)
	for i := 0; i < 2; i++ {
		if err := c.Step(); err != nil {
			t.Fatal(err)
		}
	}

	// sleeping, nothing executes
	a := c.A
	for i := 0; i < 3; i++ {
		_ = c.Step()
	}
	if c.A != a || c.PC != 0x0102 {
		t.Fatalf("expected the CPU to sleep, got A=0x%02X PC=0x%04X", c.A, c.PC)
	}
	if c.Instructions() != 2 {
		t.Errorf("expected 2 instructions, got %d", c.Instructions())
	}

	irq.pending = true
	_ = c.Step() // wakes
	_ = c.Step() // INC A
	if c.A != a+1 {
		t.Errorf("expected INC A to run after waking, got A=0x%02X", c.A)
	}
}

func TestInterrupts_None(t *testing.T) {
	// HALT without a source sleeps forever
	c := newTestCPU(nil, 0x76, 0x3C)
	for i := 0; i < 10; i++ {
		_ = c.Step()
	}
	if c.PC != 0x0101 || c.A != 0x01 {
		t.Errorf("expected the CPU to stay asleep, got PC=0x%04X A=0x%02X", c.PC, c.A)
	}
	if c.Cycles() != 40 {
		t.Errorf("expected 40 cycles, got %d", c.Cycles())
	}
}
