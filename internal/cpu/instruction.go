package cpu

import (
	"fmt"
)

// handler executes an instruction. It receives the opcode so that a
// single handler can serve a whole class of opcodes.
type handler func(c *CPU, opcode uint8) error

// Instruction is the resolved form of an opcode.
type Instruction struct {
	name string
	fn   handler
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// Implemented reports whether the instruction has a handler.
func (i Instruction) Implemented() bool {
	return i.fn != nil
}

// pattern matches every opcode for which opcode&mask == value.
type pattern struct {
	mask  uint8
	value uint8
	name  func(opcode uint8) string
	fn    handler
}

func (p pattern) matches(opcode uint8) bool {
	return opcode&p.mask == p.value
}

// exact returns a pattern matching a single opcode.
func exact(opcode uint8, name string, fn handler) pattern {
	return pattern{mask: 0xFF, value: opcode, name: func(uint8) string { return name }, fn: fn}
}

// nibble returns a pattern matching opcodes sharing XX and ZZZZ.
func nibble(value uint8, name func(uint8) string, fn handler) pattern {
	return pattern{mask: 0xCF, value: value, name: name, fn: fn}
}

// triplet returns a pattern matching opcodes sharing XX and ZZZ.
func triplet(value uint8, name func(uint8) string, fn handler) pattern {
	return pattern{mask: 0xC7, value: value, name: name, fn: fn}
}

var (
	// exactPatterns are matched first.
	exactPatterns = []pattern{
		exact(0x00, "NOP", (*CPU).nop),
		exact(0x07, "RLCA", (*CPU).rotateLeftCircularA),
		exact(0x0F, "RRCA", (*CPU).rotateRightCircularA),
		exact(0x17, "RLA", (*CPU).rotateLeftA),
		exact(0x1F, "RRA", (*CPU).rotateRightA),
		exact(0x27, "DAA", (*CPU).decimalAdjust),
		exact(0x2F, "CPL", (*CPU).complement),
		exact(0x37, "SCF", (*CPU).setCarryFlag),
		exact(0x3F, "CCF", (*CPU).complementCarryFlag),
		exact(0x18, "JR e8", (*CPU).jumpRelative),
		exact(0x10, "STOP", (*CPU).stop),
		exact(0x76, "HALT", (*CPU).halt),
	}
	// nibblePatterns are matched if no exact pattern matched.
	nibblePatterns = []pattern{
		nibble(0x01, func(op uint8) string {
			return fmt.Sprintf("LD %s, d16", pairNames[YY(op)])
		}, (*CPU).loadRegisterPairImmediate),
		nibble(0x02, func(op uint8) string {
			return fmt.Sprintf("LD (%s), A", pairMemoryNames[YY(op)])
		}, (*CPU).storeAccumulator),
		nibble(0x0A, func(op uint8) string {
			return fmt.Sprintf("LD A, (%s)", pairMemoryNames[YY(op)])
		}, (*CPU).loadAccumulator),
		exact(0x08, "LD (a16), SP", (*CPU).storeStackPointer),
		nibble(0x03, func(op uint8) string {
			return "INC " + pairNames[YY(op)]
		}, (*CPU).incrementRegisterPair),
		nibble(0x0B, func(op uint8) string {
			return "DEC " + pairNames[YY(op)]
		}, (*CPU).decrementRegisterPair),
		nibble(0x09, func(op uint8) string {
			return "ADD HL, " + pairNames[YY(op)]
		}, (*CPU).addHL),
	}
	// tripletPatterns are matched last.
	tripletPatterns = []pattern{
		triplet(0x04, func(op uint8) string {
			return "INC " + registerNames[YYZ(op)]
		}, (*CPU).incrementRegister),
		triplet(0x05, func(op uint8) string {
			return "DEC " + registerNames[YYZ(op)]
		}, (*CPU).decrementRegister),
		triplet(0x06, func(op uint8) string {
			return fmt.Sprintf("LD %s, d8", registerNames[YYZ(op)])
		}, (*CPU).loadRegisterImmediate),
		{mask: 0xE7, value: 0x20, name: func(op uint8) string {
			return fmt.Sprintf("JR %s, e8", conditionNames[CC(op)])
		}, fn: (*CPU).jumpRelativeConditional},
		{mask: 0xC0, value: 0x40, name: func(op uint8) string {
			return fmt.Sprintf("LD %s, %s", registerNames[YYZ(op)], registerNames[ZZZ(op)])
		}, fn: (*CPU).loadRegisterToRegister},
	}

	tiers = [][]pattern{exactPatterns, nibblePatterns, tripletPatterns}
)

var (
	registerNames   = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	pairNames       = [4]string{"BC", "DE", "HL", "SP"}
	pairMemoryNames = [4]string{"BC", "DE", "HL+", "HL-"}
	conditionNames  = [4]string{"NZ", "Z", "NC", "C"}
	aluNames        = [8]string{"ADD A,", "ADC A,", "SUB", "SBC A,", "AND", "XOR", "OR", "CP"}
)

// InstructionSet holds every opcode resolved against the patterns.
var InstructionSet = resolveInstructionSet()

// match returns the first pattern matching the opcode, searching each
// tier in order.
func match(opcode uint8) (pattern, bool) {
	for _, tier := range tiers {
		for _, p := range tier {
			if p.matches(opcode) {
				return p, true
			}
		}
	}
	return pattern{}, false
}

func resolveInstructionSet() [256]Instruction {
	var set [256]Instruction
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		if p, ok := match(opcode); ok {
			set[i] = Instruction{name: p.name(opcode), fn: p.fn}
			continue
		}
		set[i] = Instruction{name: unimplementedName(opcode)}
	}
	return set
}

// unimplementedName names opcodes that have no handler, so that they can
// still be logged meaningfully.
func unimplementedName(opcode uint8) string {
	switch {
	case opcode == 0xCB:
		return "PREFIX CB"
	case XX(opcode) == 2:
		return fmt.Sprintf("%s %s", aluNames[YYZ(opcode)], registerNames[ZZZ(opcode)])
	}
	return fmt.Sprintf("0x%02X", opcode)
}
