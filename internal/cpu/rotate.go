package cpu

// rotateLeftCircularA rotates A left, bit 7 goes to both bit 0 and the
// carry flag.
//
//	RLCA
//	Flags: 0 0 0 C
func (c *CPU) rotateLeftCircularA(uint8) error {
	a := c.A()
	carry := a&0x80 != 0
	c.SetA(a<<1 | a>>7)
	c.setFlags(false, false, false, carry)
	return nil
}

// rotateRightCircularA rotates A right, bit 0 goes to both bit 7 and the
// carry flag.
//
//	RRCA
//	Flags: 0 0 0 C
func (c *CPU) rotateRightCircularA(uint8) error {
	a := c.A()
	carry := a&0x01 != 0
	c.SetA(a>>1 | a<<7)
	c.setFlags(false, false, false, carry)
	return nil
}

// rotateLeftA rotates A left through the carry flag.
//
//	RLA
//	Flags: 0 0 0 C
func (c *CPU) rotateLeftA(uint8) error {
	a := c.A()
	result := a << 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x01
	}
	c.SetA(result)
	c.setFlags(false, false, false, a&0x80 != 0)
	return nil
}

// rotateRightA rotates A right through the carry flag.
//
//	RRA
//	Flags: 0 0 0 C
func (c *CPU) rotateRightA(uint8) error {
	a := c.A()
	result := a >> 1
	if c.isFlagSet(FlagCarry) {
		result |= 0x80
	}
	c.SetA(result)
	c.setFlags(false, false, false, a&0x01 != 0)
	return nil
}
