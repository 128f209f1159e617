package cpu

import (
	"github.com/thelolagemann/sm83/internal/fault"
)

const (
	// selectorHL is the r8 selector that dereferences HL.
	selectorHL uint8 = 6
	// selectorA is the r8 selector for the accumulator.
	selectorA uint8 = 7
)

func unrecognizedSelector(kind string, sel uint8) error {
	return fault.New(fault.UnrecognizedRegisterSelector, "%s selector %d", kind, sel)
}

// readRegister returns the value of the r8 operand sel. Selector 6 reads
// the memory addressed by HL.
func (c *CPU) readRegister(sel uint8) (uint8, error) {
	switch sel {
	case 0:
		return c.B(), nil
	case 1:
		return c.C(), nil
	case 2:
		return c.D(), nil
	case 3:
		return c.E(), nil
	case 4:
		return c.H(), nil
	case 5:
		return c.L(), nil
	case selectorHL:
		return c.mmu.Read(c.HL.Uint16())
	case selectorA:
		return c.A(), nil
	}
	return 0, unrecognizedSelector("r8", sel)
}

// writeRegister sets the r8 operand sel. Selector 6 writes the memory
// addressed by HL.
func (c *CPU) writeRegister(sel uint8, value uint8) error {
	switch sel {
	case 0:
		c.SetB(value)
	case 1:
		c.SetC(value)
	case 2:
		c.SetD(value)
	case 3:
		c.SetE(value)
	case 4:
		c.SetH(value)
	case 5:
		c.SetL(value)
	case selectorHL:
		return c.mmu.Write(c.HL.Uint16(), value)
	case selectorA:
		c.SetA(value)
	default:
		return unrecognizedSelector("r8", sel)
	}
	return nil
}

// modifyRegister replaces the r8 operand sel with fn applied to it. The
// memory operand is mutated in place.
func (c *CPU) modifyRegister(sel uint8, fn func(uint8) uint8) error {
	if sel == selectorHL {
		p, err := c.mmu.Pointer(c.HL.Uint16())
		if err != nil {
			return err
		}
		*p = fn(*p)
		return nil
	}
	value, err := c.readRegister(sel)
	if err != nil {
		return err
	}
	return c.writeRegister(sel, fn(value))
}

// readRegisterPair returns the value of the r16 operand sel.
func (c *CPU) readRegisterPair(sel uint8) (uint16, error) {
	switch sel {
	case 0:
		return c.BC.Uint16(), nil
	case 1:
		return c.DE.Uint16(), nil
	case 2:
		return c.HL.Uint16(), nil
	case 3:
		return c.SP, nil
	}
	return 0, unrecognizedSelector("r16", sel)
}

// writeRegisterPair sets the r16 operand sel.
func (c *CPU) writeRegisterPair(sel uint8, value uint16) error {
	switch sel {
	case 0:
		c.BC.SetUint16(value)
	case 1:
		c.DE.SetUint16(value)
	case 2:
		c.HL.SetUint16(value)
	case 3:
		c.SP = value
	default:
		return unrecognizedSelector("r16", sel)
	}
	return nil
}

// registerPairAddress returns the address held by the r16mem operand
// sel, along with the value HL takes once the access has succeeded.
// Selectors 2 and 3 increment and decrement HL.
func (c *CPU) registerPairAddress(sel uint8) (address, hl uint16, err error) {
	hl = c.HL.Uint16()
	switch sel {
	case 0:
		return c.BC.Uint16(), hl, nil
	case 1:
		return c.DE.Uint16(), hl, nil
	case 2:
		return hl, hl + 1, nil
	case 3:
		return hl, hl - 1, nil
	}
	return 0, hl, unrecognizedSelector("r16mem", sel)
}

// readOperand returns the 8-bit immediate following the opcode.
func (c *CPU) readOperand() (uint8, error) {
	return c.mmu.Read(c.PC + 1)
}

// readOperand16 returns the 16-bit immediate following the opcode,
// composed with the configured byte order.
func (c *CPU) readOperand16() (uint16, error) {
	var b [2]byte
	var err error
	if b[0], err = c.mmu.Read(c.PC + 1); err != nil {
		return 0, err
	}
	if b[1], err = c.mmu.Read(c.PC + 2); err != nil {
		return 0, err
	}
	return c.order.Uint16(b[:]), nil
}
