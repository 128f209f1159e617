package cpu

import "testing"

func TestInstructionSet_Names(t *testing.T) {
	tests := map[uint8]string{
		0x00: "NOP",
		0x01: "LD BC, d16",
		0x08: "LD (a16), SP",
		0x09: "ADD HL, BC",
		0x10: "STOP",
		0x17: "RLA",
		0x18: "JR e8",
		0x20: "JR NZ, e8",
		0x22: "LD (HL+), A",
		0x28: "JR Z, e8",
		0x31: "LD SP, d16",
		0x34: "INC (HL)",
		0x36: "LD (HL), d8",
		0x38: "JR C, e8",
		0x39: "ADD HL, SP",
		0x3A: "LD A, (HL-)",
		0x3B: "DEC SP",
		0x3D: "DEC A",
		0x41: "LD B, C",
		0x70: "LD (HL), B",
		0x76: "HALT",
		0x7E: "LD A, (HL)",
		0x80: "ADD A, B",
		0x96: "SUB (HL)",
		0xAE: "XOR (HL)",
		0xC3: "0xC3",
		0xCB: "PREFIX CB",
	}
	for opcode, name := range tests {
		if got := InstructionSet[opcode].Name(); got != name {
			t.Errorf("0x%02X: expected %q, got %q", opcode, name, got)
		}
	}
}

func TestInstructionSet_Implemented(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := i < 0x80
		if got := InstructionSet[i].Implemented(); got != want {
			t.Errorf("0x%02X (%s): expected implemented %t, got %t", i, InstructionSet[i].Name(), want, got)
		}
	}
}

func TestMatch_Priority(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		mask   uint8
		value  uint8
	}{
		// JR e8 would also satisfy a 3-bit class if tiers were unordered
		{"JR e8", 0x18, 0xFF, 0x18},
		// HALT sits in the middle of LD r8, r8
		{"HALT", 0x76, 0xFF, 0x76},
		{"LD (a16), SP", 0x08, 0xFF, 0x08},
		{"JR cc", 0x30, 0xE7, 0x20},
		{"LD r8, r8", 0x75, 0xC0, 0x40},
		{"INC r8", 0x3C, 0xC7, 0x04},
		{"LD r16, d16", 0x21, 0xCF, 0x01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := match(tt.opcode)
			if !ok {
				t.Fatalf("expected 0x%02X to match", tt.opcode)
			}
			if p.mask != tt.mask || p.value != tt.value {
				t.Errorf("expected pattern %02X/%02X, got %02X/%02X", tt.mask, tt.value, p.mask, p.value)
			}
		})
	}
}

func TestMatch_Unmatched(t *testing.T) {
	for _, opcode := range []uint8{0x80, 0xBF, 0xC0, 0xCB, 0xFF} {
		if _, ok := match(opcode); ok {
			t.Errorf("expected 0x%02X not to match", opcode)
		}
	}
}
