package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// The opcode of a block 0-3 instruction is laid out as follows, where
// the meaning of each field depends on the block (XX) it belongs to.
//
//	7 6 | 5 4 | 3 | 2 1 0
//	XX  | YY  |   ZZZ
//	XX  | YY  |  ZZZZ
//	XX  |   YYZ   | ZZZ

// XX returns the block of an opcode, bits 7-6.
func XX(opcode uint8) uint8 { return bits.Field(opcode, 7, 6) }

// YY returns bits 5-4 of an opcode, the r16 selector.
func YY(opcode uint8) uint8 { return bits.Field(opcode, 5, 4) }

// ZZZZ returns the low nibble of an opcode.
func ZZZZ(opcode uint8) uint8 { return bits.Field(opcode, 3, 0) }

// ZZZ returns bits 2-0 of an opcode, the source r8 selector.
func ZZZ(opcode uint8) uint8 { return bits.Field(opcode, 2, 0) }

// YYZ returns bits 5-3 of an opcode, the destination r8 selector.
func YYZ(opcode uint8) uint8 { return bits.Field(opcode, 5, 3) }

// CC returns the condition code of a conditional instruction, bits 4-3.
func CC(opcode uint8) uint8 { return bits.Field(opcode, 4, 3) }

// Fields holds every field of a decoded opcode.
type Fields struct {
	Opcode uint8
	XX     uint8
	YY     uint8
	ZZZZ   uint8
	ZZZ    uint8
	YYZ    uint8
	CC     uint8
}

// Decode splits an opcode into its fields.
func Decode(opcode uint8) Fields {
	return Fields{
		Opcode: opcode,
		XX:     XX(opcode),
		YY:     YY(opcode),
		ZZZZ:   ZZZZ(opcode),
		ZZZ:    ZZZ(opcode),
		YYZ:    YYZ(opcode),
		CC:     CC(opcode),
	}
}
