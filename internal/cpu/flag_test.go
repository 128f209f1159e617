package cpu

import "testing"

func TestFlag(t *testing.T) {
	cpu := newTestCPU(t)
	t.Run("clear", func(t *testing.T) {
		for i := FlagCarry; i <= FlagZero; i++ {
			cpu.clearFlag(i)
			if cpu.isFlagSet(i) {
				t.Errorf("expected flag %d to be unset, got set", i)
			}
		}
	})
	t.Run("set", func(t *testing.T) {
		for i := FlagCarry; i <= FlagZero; i++ {
			cpu.setFlag(i)
			if !cpu.isFlagSet(i) {
				t.Errorf("expected flag %d to be set, got unset", i)
			}
		}
	})
	t.Run("isFlagsSet", func(t *testing.T) {
		cpu.SetF(0xA0)
		if !cpu.isFlagsSet(FlagZero, FlagHalfCarry) {
			t.Error("expected Z and H to be set")
		}
		if cpu.isFlagsSet(FlagZero, FlagCarry) {
			t.Error("expected C to be unset")
		}
		if !cpu.isFlagsNotSet(FlagSubtract, FlagCarry) {
			t.Error("expected N and C to be unset")
		}
	})
	t.Run("setFlags", func(t *testing.T) {
		cpu.setFlags(true, false, true, false)
		if cpu.F() != 0xA0 {
			t.Errorf("expected F 0xA0, got 0x%02X", cpu.F())
		}
		cpu.setFlags(false, true, false, true)
		if cpu.F() != 0x50 {
			t.Errorf("expected F 0x50, got 0x%02X", cpu.F())
		}
	})
}
