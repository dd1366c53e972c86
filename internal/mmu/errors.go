package mmu

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every OutOfRangeError.
	ErrOutOfRange = errors.New("address out of range")
	// ErrNotHookable is matched by every HookError.
	ErrNotHookable = errors.New("address cannot be hooked")
)

// OutOfRangeError is returned when an access touches memory beyond the
// backing store.
type OutOfRangeError struct {
	Address uint32 // first address that is not backed
	Size    int    // size of the backing store
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("address 0x%04X out of range (memory size 0x%X)", e.Address, e.Size)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// HookError is returned when a hook is attached outside the I/O page.
type HookError struct {
	Address uint16
}

func (e *HookError) Error() string {
	return fmt.Sprintf("cannot hook address 0x%04X: only 0xFF00-0xFFFF may be hooked", e.Address)
}

// Is reports whether target is ErrNotHookable.
func (e *HookError) Is(target error) bool {
	return target == ErrNotHookable
}
