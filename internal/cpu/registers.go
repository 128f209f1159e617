package cpu

import "github.com/thelolagemann/sm83/internal/types"

// Register represents a GB Register which is used to hold an 8-bit value.
type Register = uint8

// RegisterPair holds a 16-bit value that can also be accessed as two
// 8-bit Registers. The high Register is the upper byte of the value.
type RegisterPair uint16

// Uint16 returns the value of the RegisterPair as an uint16.
func (r RegisterPair) Uint16() uint16 {
	return uint16(r)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r = RegisterPair(value)
}

// High returns the upper Register of the pair.
func (r RegisterPair) High() Register {
	return Register(r >> 8)
}

// Low returns the lower Register of the pair.
func (r RegisterPair) Low() Register {
	return Register(r & 0xFF)
}

// SetHigh sets the upper Register of the pair, leaving the lower intact.
func (r *RegisterPair) SetHigh(value Register) {
	*r = RegisterPair(uint16(*r)&0x00FF | uint16(value)<<8)
}

// SetLow sets the lower Register of the pair, leaving the upper intact.
func (r *RegisterPair) SetLow(value Register) {
	*r = RegisterPair(uint16(*r)&0xFF00 | uint16(value))
}

// Registers represents the GB CPU registers. The 8-bit registers A, F,
// B, C, D, E, H and L are the halves of the register pairs AF, BC, DE
// and HL. F holds the flags in its upper nibble; its lower nibble is
// always 0, which is why AF is only reachable through accessors.
type Registers struct {
	af RegisterPair

	BC RegisterPair
	DE RegisterPair
	HL RegisterPair

	// SP is the stack pointer.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

func (r *Registers) A() Register { return r.af.High() }
func (r *Registers) F() Register { return r.af.Low() }
func (r *Registers) B() Register { return r.BC.High() }
func (r *Registers) C() Register { return r.BC.Low() }
func (r *Registers) D() Register { return r.DE.High() }
func (r *Registers) E() Register { return r.DE.Low() }
func (r *Registers) H() Register { return r.HL.High() }
func (r *Registers) L() Register { return r.HL.Low() }

func (r *Registers) SetA(v Register) { r.af.SetHigh(v) }
func (r *Registers) SetB(v Register) { r.BC.SetHigh(v) }
func (r *Registers) SetC(v Register) { r.BC.SetLow(v) }
func (r *Registers) SetD(v Register) { r.DE.SetHigh(v) }
func (r *Registers) SetE(v Register) { r.DE.SetLow(v) }
func (r *Registers) SetH(v Register) { r.HL.SetHigh(v) }
func (r *Registers) SetL(v Register) { r.HL.SetLow(v) }

// SetF sets the flag register. The lower nibble is discarded.
func (r *Registers) SetF(v Register) { r.af.SetLow(v & types.HighNibble) }

// AF returns the value of the AF register pair.
func (r *Registers) AF() uint16 { return r.af.Uint16() }

// SetAF sets the AF register pair. The lower nibble of F is discarded.
func (r *Registers) SetAF(v uint16) { r.af.SetUint16(v & 0xFFF0) }
