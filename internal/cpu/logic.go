package cpu

// complement flips every bit of A.
//
//	CPL
//	Flags: - 1 1 -
func (c *CPU) complement(uint8) error {
	c.SetA(^c.A())
	c.setFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
	return nil
}

// setCarryFlag sets the carry flag.
//
//	SCF
//	Flags: - 0 0 1
func (c *CPU) setCarryFlag(uint8) error {
	c.setFlag(FlagCarry)
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	return nil
}

// complementCarryFlag flips the carry flag.
//
//	CCF
//	Flags: - 0 0 C
func (c *CPU) complementCarryFlag(uint8) error {
	if c.isFlagSet(FlagCarry) {
		c.clearFlag(FlagCarry)
	} else {
		c.setFlag(FlagCarry)
	}
	c.clearFlag(FlagSubtract)
	c.clearFlag(FlagHalfCarry)
	return nil
}
