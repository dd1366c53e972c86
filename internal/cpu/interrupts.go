package cpu

// InterruptSource supplies interrupt requests to the CPU.
type InterruptSource interface {
	// Pending reports whether any enabled interrupt has been requested.
	Pending() bool
	// Acknowledge clears the highest priority pending request and
	// returns its vector.
	Acknowledge() uint16
}

// serviceInterrupts wakes a sleeping CPU when a request is pending and,
// with IME set, dispatches the request to its vector.
func (c *CPU) serviceInterrupts() error {
	if c.irq == nil || !c.irq.Pending() {
		return nil
	}
	c.mode = ModeNormal
	if !c.IME {
		return nil
	}

	c.IME = false
	c.push16(c.PC)
	c.PC = c.irq.Acknowledge()
	c.cycles += 20
	if c.fault != nil {
		return c.halt(c.fault)
	}
	return nil
}
