// Package bits provides helpers for working with the individual bits
// and bit-fields of 8 and 16-bit values.
package bits

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Field extracts the bits hi..lo (inclusive) of b, shifted down so that
// bit lo becomes bit 0.
//
//	Field(0b1101_0110, 5, 4) == 0b01
func Field(b, hi, lo uint8) uint8 {
	width := hi - lo + 1
	return (b >> lo) & (1<<width - 1)
}

// HalfCarryAdd8 reports whether adding b to a carries out of bit 3.
func HalfCarryAdd8(a, b uint8) bool {
	return (a&0x0F)+(b&0x0F) > 0x0F
}

// HalfBorrowSub8 reports whether subtracting b from a borrows from bit 4.
func HalfBorrowSub8(a, b uint8) bool {
	return a&0x0F < b&0x0F
}

// HalfCarryAdd16 reports whether adding b to a carries out of bit 11.
func HalfCarryAdd16(a, b uint16) bool {
	return (a&0x0FFF)+(b&0x0FFF) > 0x0FFF
}

// CarryAdd16 reports whether adding b to a overflows 16 bits.
func CarryAdd16(a, b uint16) bool {
	return uint32(a)+uint32(b) > 0xFFFF
}
