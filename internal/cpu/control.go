package cpu

func (c *CPU) nop(uint8) error {
	return nil
}

// stop enters the halted mode. Waking up again is left to the caller.
func (c *CPU) stop(uint8) error {
	c.enterHalt()
	return nil
}

// halt enters the halted mode. Waking up again is left to the caller.
func (c *CPU) halt(uint8) error {
	c.enterHalt()
	return nil
}
