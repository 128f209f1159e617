package cpu

import (
	"testing"

	"github.com/thelolagemann/sm83/internal/fault"
)

func TestRegister_ReadWrite(t *testing.T) {
	c := newTestCPU(t)
	c.HL.SetUint16(scratch)
	for sel := uint8(0); sel < 8; sel++ {
		if sel == 4 || sel == 5 {
			// H and L would move the memory operand
			continue
		}
		value := 0x10 + sel
		if err := c.writeRegister(sel, value); err != nil {
			t.Fatal(err)
		}
		got, err := c.readRegister(sel)
		if err != nil {
			t.Fatal(err)
		}
		if got != value {
			t.Errorf("%s: expected 0x%02X, got 0x%02X", registerNames[sel], value, got)
		}
	}
	if read(t, c, scratch) != 0x16 {
		t.Errorf("expected (HL) to be written to memory")
	}
}

func TestRegister_UnrecognizedSelector(t *testing.T) {
	c := newTestCPU(t)
	if _, err := c.readRegister(8); !fault.Is(err, fault.UnrecognizedRegisterSelector) {
		t.Errorf("expected unrecognized selector, got %v", err)
	}
	if err := c.writeRegister(8, 0); !fault.Is(err, fault.UnrecognizedRegisterSelector) {
		t.Errorf("expected unrecognized selector, got %v", err)
	}
	if _, err := c.readRegisterPair(4); !fault.Is(err, fault.UnrecognizedRegisterSelector) {
		t.Errorf("expected unrecognized selector, got %v", err)
	}
	if err := c.writeRegisterPair(4, 0); !fault.Is(err, fault.UnrecognizedRegisterSelector) {
		t.Errorf("expected unrecognized selector, got %v", err)
	}
	if _, _, err := c.registerPairAddress(4); !fault.Is(err, fault.UnrecognizedRegisterSelector) {
		t.Errorf("expected unrecognized selector, got %v", err)
	}
}

func TestRegisterPair_ReadWrite(t *testing.T) {
	c := newTestCPU(t)
	for sel := uint8(0); sel < 4; sel++ {
		value := 0x1111 * uint16(sel+1)
		if err := c.writeRegisterPair(sel, value); err != nil {
			t.Fatal(err)
		}
		got, err := c.readRegisterPair(sel)
		if err != nil {
			t.Fatal(err)
		}
		if got != value {
			t.Errorf("%s: expected 0x%04X, got 0x%04X", pairNames[sel], value, got)
		}
	}
	if c.SP != 0x4444 {
		t.Errorf("expected SP 0x4444, got 0x%04X", c.SP)
	}
}

func TestRegisterPairAddress(t *testing.T) {
	tests := []struct {
		sel     uint8
		address uint16
		hl      uint16
	}{
		{0, 0xC0C0, 0xC100},
		{1, 0xD0D0, 0xC100},
		{2, 0xC100, 0xC101},
		{3, 0xC100, 0xC0FF},
	}
	for _, tt := range tests {
		t.Run(pairMemoryNames[tt.sel], func(t *testing.T) {
			c := newTestCPU(t)
			c.BC.SetUint16(0xC0C0)
			c.DE.SetUint16(0xD0D0)
			c.HL.SetUint16(0xC100)
			address, hl, err := c.registerPairAddress(tt.sel)
			if err != nil {
				t.Fatal(err)
			}
			if address != tt.address {
				t.Errorf("expected address 0x%04X, got 0x%04X", tt.address, address)
			}
			if hl != tt.hl {
				t.Errorf("expected HL to become 0x%04X, got 0x%04X", tt.hl, hl)
			}
			if c.HL.Uint16() != 0xC100 {
				t.Errorf("expected HL to be left for the caller, got 0x%04X", c.HL.Uint16())
			}
		})
	}
}

func TestModifyRegister(t *testing.T) {
	c := newTestCPU(t)
	c.HL.SetUint16(scratch)
	write(t, c, scratch, 0x41)
	if err := c.modifyRegister(selectorHL, func(v uint8) uint8 { return v * 2 }); err != nil {
		t.Fatal(err)
	}
	if read(t, c, scratch) != 0x82 {
		t.Errorf("expected 0x82, got 0x%02X", read(t, c, scratch))
	}

	c.SetA(0x03)
	if err := c.modifyRegister(selectorA, func(v uint8) uint8 { return v + 1 }); err != nil {
		t.Fatal(err)
	}
	if c.A() != 0x04 {
		t.Errorf("expected A 0x04, got 0x%02X", c.A())
	}

	c.HL.SetUint16(0xFEA0)
	if err := c.modifyRegister(selectorHL, func(v uint8) uint8 { return v }); !fault.Is(err, fault.InvalidAddress) {
		t.Errorf("expected invalid address, got %v", err)
	}
}

func TestReadOperand16(t *testing.T) {
	c := newTestCPU(t, 0x00, 0xCD, 0xAB)
	value, err := c.readOperand16()
	if err != nil {
		t.Fatal(err)
	}
	if value != 0xABCD {
		t.Errorf("expected 0xABCD, got 0x%04X", value)
	}
}
