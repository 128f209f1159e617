package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/bits"
)

// increment increments the given value and sets the flags accordingly.
// The carry flag is left untouched.
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.setFlags(result == 0, false, bits.HalfCarryAdd8(value, 1), c.isFlagSet(FlagCarry))
	return result
}

// decrement decrements the given value and sets the flags accordingly.
// The carry flag is left untouched.
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.setFlags(result == 0, true, bits.HalfBorrowSub8(value, 1), c.isFlagSet(FlagCarry))
	return result
}

// incrementRegister increments the r8 operand.
//
//	INC r8
//	Flags: Z 0 H -
func (c *CPU) incrementRegister(opcode uint8) error {
	return c.modifyRegister(YYZ(opcode), c.increment)
}

// decrementRegister decrements the r8 operand.
//
//	DEC r8
//	Flags: Z 1 H -
func (c *CPU) decrementRegister(opcode uint8) error {
	return c.modifyRegister(YYZ(opcode), c.decrement)
}

// incrementRegisterPair increments the r16 operand.
//
//	INC r16
func (c *CPU) incrementRegisterPair(opcode uint8) error {
	value, err := c.readRegisterPair(YY(opcode))
	if err != nil {
		return err
	}
	return c.writeRegisterPair(YY(opcode), value+1)
}

// decrementRegisterPair decrements the r16 operand.
//
//	DEC r16
func (c *CPU) decrementRegisterPair(opcode uint8) error {
	value, err := c.readRegisterPair(YY(opcode))
	if err != nil {
		return err
	}
	return c.writeRegisterPair(YY(opcode), value-1)
}

// addHL adds the r16 operand to HL.
//
//	ADD HL, r16
//	Flags: - 0 H C
func (c *CPU) addHL(opcode uint8) error {
	value, err := c.readRegisterPair(YY(opcode))
	if err != nil {
		return err
	}
	hl := c.HL.Uint16()
	c.setFlags(c.isFlagSet(FlagZero), false, bits.HalfCarryAdd16(hl, value), bits.CarryAdd16(hl, value))
	c.HL.SetUint16(hl + value)
	return nil
}

// decimalAdjust corrects A to hold the BCD result of the previous
// addition or subtraction.
//
//	DAA
//	Flags: Z - 0 C
func (c *CPU) decimalAdjust(uint8) error {
	a := c.A()
	carry := c.isFlagSet(FlagCarry)
	if !c.isFlagSet(FlagSubtract) {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.isFlagSet(FlagHalfCarry) || a&types.LowNibble > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.SetA(a)
	c.setFlags(a == 0, c.isFlagSet(FlagSubtract), false, carry)
	return nil
}
