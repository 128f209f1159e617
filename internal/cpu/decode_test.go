package cpu

import "testing"

func TestDecode(t *testing.T) {
	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		want := Fields{
			Opcode: opcode,
			XX:     opcode >> 6,
			YY:     (opcode >> 4) & 0b11,
			ZZZZ:   opcode & 0b1111,
			ZZZ:    opcode & 0b111,
			YYZ:    (opcode >> 3) & 0b111,
			CC:     (opcode >> 3) & 0b11,
		}
		if got := Decode(opcode); got != want {
			t.Errorf("0x%02X: expected %+v, got %+v", opcode, want, got)
		}
	}
}

func TestDecode_Fields(t *testing.T) {
	tests := []struct {
		opcode uint8
		want   Fields
	}{
		{0xA5, Fields{Opcode: 0xA5, XX: 2, YY: 2, ZZZZ: 5, ZZZ: 5, YYZ: 4, CC: 0}},
		{0x38, Fields{Opcode: 0x38, XX: 0, YY: 3, ZZZZ: 8, ZZZ: 0, YYZ: 7, CC: 3}},
		{0x7E, Fields{Opcode: 0x7E, XX: 1, YY: 3, ZZZZ: 14, ZZZ: 6, YYZ: 7, CC: 3}},
	}
	for _, tt := range tests {
		if got := Decode(tt.opcode); got != tt.want {
			t.Errorf("0x%02X: expected %+v, got %+v", tt.opcode, tt.want, got)
		}
	}
}
