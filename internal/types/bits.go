package types

const (
	// LowNibble masks bits 0-3 of a byte.
	LowNibble = 0x0F
	// HighNibble masks bits 4-7 of a byte.
	HighNibble = 0xF0
)
