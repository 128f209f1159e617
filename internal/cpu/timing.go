package cpu

// prefixCB is the opcode that selects the extended instruction set.
const prefixCB uint8 = 0xCB

// illegal opcodes have no defined timing, they are accounted as a
// single byte taking 4 cycles.
const (
	illegalCycles = 4
	illegalLength = 1
)

// cycleTable holds the number of T-cycles taken by each opcode. For
// conditional instructions the cost of the branch not being taken is
// used.
var cycleTable = [256]uint8{
	//0  1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	4, 12, 8, 8, 4, 4, 8, 4, 20, 8, 8, 8, 4, 4, 8, 4, // 0x0_
	4, 12, 8, 8, 4, 4, 8, 4, 12, 8, 8, 8, 4, 4, 8, 4, // 0x1_
	8, 12, 8, 8, 4, 4, 8, 4, 8, 8, 8, 8, 4, 4, 8, 4, // 0x2_
	8, 12, 8, 8, 12, 12, 12, 4, 8, 8, 8, 8, 4, 4, 8, 4, // 0x3_
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x4_
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x5_
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x6_
	8, 8, 8, 8, 8, 8, 4, 8, 4, 4, 4, 4, 4, 4, 8, 4, // 0x7_
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x8_
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0x9_
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0xA_
	4, 4, 4, 4, 4, 4, 8, 4, 4, 4, 4, 4, 4, 4, 8, 4, // 0xB_
	8, 12, 12, 16, 12, 16, 8, 16, 8, 16, 12, 4, 12, 24, 8, 16, // 0xC_
	8, 12, 12, 4, 12, 16, 8, 16, 8, 16, 12, 4, 12, 4, 8, 16, // 0xD_
	12, 12, 8, 4, 4, 16, 8, 16, 16, 4, 16, 4, 4, 4, 8, 16, // 0xE_
	12, 12, 8, 4, 4, 16, 8, 16, 12, 8, 16, 4, 4, 4, 8, 16, // 0xF_
}

// lengthTable holds the size in bytes of each opcode including its
// immediate operands.
var lengthTable = [256]uint8{
	//0 1 2 3 4 5 6 7 8 9 A B C D E F
	1, 3, 1, 1, 1, 1, 2, 1, 3, 1, 1, 1, 1, 1, 2, 1, // 0x0_
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 0x1_
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 0x2_
	2, 3, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, // 0x3_
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x4_
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x5_
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x6_
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x7_
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x8_
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0x9_
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xA_
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xB_
	1, 1, 3, 3, 3, 1, 2, 1, 1, 1, 3, 2, 3, 3, 2, 1, // 0xC_
	1, 1, 3, 1, 3, 1, 2, 1, 1, 1, 3, 1, 3, 1, 2, 1, // 0xD_
	2, 1, 1, 1, 1, 1, 2, 1, 2, 1, 3, 1, 1, 1, 2, 1, // 0xE_
	2, 1, 1, 1, 1, 1, 2, 1, 2, 1, 3, 1, 1, 1, 2, 1, // 0xF_
}

// illegalOpcodes have no instruction on the SM83.
var illegalOpcodes = map[uint8]struct{}{
	0xD3: {}, 0xDB: {}, 0xDD: {},
	0xE3: {}, 0xE4: {}, 0xEB: {}, 0xEC: {}, 0xED: {},
	0xF4: {}, 0xFC: {}, 0xFD: {},
}

// isIllegal reports whether the opcode is not an SM83 instruction.
func isIllegal(opcode uint8) bool {
	_, ok := illegalOpcodes[opcode]
	return ok
}

// cbCycles returns the number of T-cycles taken by a CB prefixed
// instruction, including the prefix. Instructions operating on a
// register take 8 cycles, BIT n, (HL) takes 12 and every other (HL)
// instruction reads, modifies and writes back for 16.
func cbCycles(opcode uint8) uint8 {
	switch {
	case ZZZ(opcode) != selectorHL:
		return 8
	case XX(opcode) == 1:
		return 12
	default:
		return 16
	}
}

// timing returns the length and T-cycle cost of the instruction at PC.
func (c *CPU) timing(opcode uint8) (length uint8, cycles uint8, err error) {
	if opcode == prefixCB {
		next, err := c.readOperand()
		if err != nil {
			return 0, 0, err
		}
		return 2, cbCycles(next), nil
	}
	if isIllegal(opcode) {
		return illegalLength, illegalCycles, nil
	}
	return lengthTable[opcode], cycleTable[opcode], nil
}
