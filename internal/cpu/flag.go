package cpu

// Flag is the bit position of a flag within the F register.
type Flag uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags lists every flag, most significant first.
var Flags = [4]Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

func (f Flag) String() string {
	switch f {
	case FlagZero:
		return "Z"
	case FlagSubtract:
		return "N"
	case FlagHalfCarry:
		return "H"
	case FlagCarry:
		return "C"
	}
	return "?"
}

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return r.F&(1<<flag) != 0
}

// SetFlag sets or clears a single flag, leaving the others untouched.
func (r *Registers) SetFlag(flag Flag, value bool) {
	if value {
		r.F |= 1 << flag
	} else {
		r.F &^= 1 << flag
	}
}

// setFlags replaces all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.F = 0
	if zero {
		r.F |= 1 << FlagZero
	}
	if subtract {
		r.F |= 1 << FlagSubtract
	}
	if halfCarry {
		r.F |= 1 << FlagHalfCarry
	}
	if carry {
		r.F |= 1 << FlagCarry
	}
}

// condition is a branch condition tested against the flags.
type condition uint8

const (
	always condition = iota
	condNZ
	condZ
	condNC
	condC
)

var conditionNames = [5]string{"", "NZ", "Z", "NC", "C"}

func (cc condition) String() string {
	return conditionNames[cc]
}

// test reports whether cc holds.
func (r *Registers) test(cc condition) bool {
	switch cc {
	case condNZ:
		return !r.Flag(FlagZero)
	case condZ:
		return r.Flag(FlagZero)
	case condNC:
		return !r.Flag(FlagCarry)
	case condC:
		return r.Flag(FlagCarry)
	}
	return true
}
