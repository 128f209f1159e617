package cpu

// loadRegisterImmediate loads the 8-bit immediate into r8.
//
//	LD r8, d8
func (c *CPU) loadRegisterImmediate(opcode uint8) error {
	value, err := c.readOperand()
	if err != nil {
		return err
	}
	return c.writeRegister(YYZ(opcode), value)
}

// loadRegisterToRegister copies the source operand (ZZZ) into the
// destination operand (YYZ).
//
//	LD r8, r8
func (c *CPU) loadRegisterToRegister(opcode uint8) error {
	value, err := c.readRegister(ZZZ(opcode))
	if err != nil {
		return err
	}
	return c.writeRegister(YYZ(opcode), value)
}

// storeAccumulator writes A to the address held by r16mem.
//
//	LD (r16mem), A
func (c *CPU) storeAccumulator(opcode uint8) error {
	address, hl, err := c.registerPairAddress(YY(opcode))
	if err != nil {
		return err
	}
	if err := c.mmu.Write(address, c.A()); err != nil {
		return err
	}
	c.HL.SetUint16(hl)
	return nil
}

// loadAccumulator reads the address held by r16mem into A.
//
//	LD A, (r16mem)
func (c *CPU) loadAccumulator(opcode uint8) error {
	address, hl, err := c.registerPairAddress(YY(opcode))
	if err != nil {
		return err
	}
	value, err := c.mmu.Read(address)
	if err != nil {
		return err
	}
	c.SetA(value)
	c.HL.SetUint16(hl)
	return nil
}

// loadRegisterPairImmediate loads the 16-bit immediate into r16.
//
//	LD r16, d16
func (c *CPU) loadRegisterPairImmediate(opcode uint8) error {
	value, err := c.readOperand16()
	if err != nil {
		return err
	}
	return c.writeRegisterPair(YY(opcode), value)
}

// storeStackPointer writes SP to the 16-bit immediate address, using the
// same byte order the immediate is read with.
//
//	LD (a16), SP
func (c *CPU) storeStackPointer(uint8) error {
	address, err := c.readOperand16()
	if err != nil {
		return err
	}
	var b [2]byte
	c.order.PutUint16(b[:], c.SP)
	if err := c.mmu.Write(address, b[0]); err != nil {
		return err
	}
	return c.mmu.Write(address+1, b[1])
}
