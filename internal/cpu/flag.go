package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// Flag is the bit index of a flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.SetF(bits.Reset(c.F(), flag))
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.SetF(bits.Set(c.F(), flag))
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.Test(c.F(), flag)
}

// isFlagsSet returns true if all the given flags are set.
func (c *CPU) isFlagsSet(flags ...Flag) bool {
	for _, flag := range flags {
		if !c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// isFlagsNotSet returns true if none of the given flags are set.
func (c *CPU) isFlagsNotSet(flags ...Flag) bool {
	for _, flag := range flags {
		if c.isFlagSet(flag) {
			return false
		}
	}
	return true
}

// setFlags replaces all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f uint8
	if zero {
		f = bits.Set(f, FlagZero)
	}
	if subtract {
		f = bits.Set(f, FlagSubtract)
	}
	if halfCarry {
		f = bits.Set(f, FlagHalfCarry)
	}
	if carry {
		f = bits.Set(f, FlagCarry)
	}
	c.SetF(f)
}
