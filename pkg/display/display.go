// Package display defines how the machine hands finished frames to an
// output, and keeps the registry of installed display drivers.
package display

// Renderer receives a signal every time the CPU has executed a frame's
// worth of cycles. FrameReady is called synchronously from the execution
// loop, so it must return promptly; drivers that need more time queue
// the work themselves.
type Renderer interface {
	FrameReady()
}

// Memory is the view of the address space a driver may use from inside
// FrameReady.
type Memory interface {
	Read8(address uint16) (uint8, error)
	Write8(address uint16, value uint8) error
	// Copy fills dst with the memory starting at address.
	Copy(dst []byte, address uint16) error
}

// Host is what a driver sees of the machine it is attached to.
type Host interface {
	Memory
	// RequestVBlank raises the VBlank interrupt. It does nothing when
	// the machine runs without interrupts.
	RequestVBlank()
}

// Driver is the interface that wraps the basic methods for a
// display driver.
type Driver interface {
	Renderer
	// Initialize initializes the display driver by attaching it to
	// the machine that is using it.
	Initialize(host Host) error
	// Close releases anything the driver holds.
	Close() error
}
