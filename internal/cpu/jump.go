package cpu

// jumpRelative adds the signed 8-bit immediate to PC. The displacement
// is relative to the end of the instruction, which the step driver
// accounts for when it advances PC by the instruction length.
//
//	JR e8
func (c *CPU) jumpRelative(uint8) error {
	value, err := c.readOperand()
	if err != nil {
		return err
	}
	c.PC = uint16(int32(c.PC) + int32(int8(value)))
	return nil
}

// condition reports whether the condition code cc holds.
func (c *CPU) condition(cc uint8) bool {
	switch cc {
	case 0:
		return c.isFlagsNotSet(FlagZero)
	case 1:
		return c.isFlagsSet(FlagZero)
	case 2:
		return c.isFlagsNotSet(FlagCarry)
	case 3:
		return c.isFlagsSet(FlagCarry)
	}
	return false
}

// jumpRelativeConditional jumps relative if the condition holds.
//
//	JR cc, e8
func (c *CPU) jumpRelativeConditional(opcode uint8) error {
	if !c.condition(CC(opcode)) {
		return nil
	}
	return c.jumpRelative(opcode)
}
