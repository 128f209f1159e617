package gameboy

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/fault"
	"github.com/thelolagemann/sm83/pkg/log"
)

// writeROM writes a 32KiB image with program at the entry point.
func writeROM(t *testing.T, program ...byte) string {
	t.Helper()
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], program)
	path := filepath.Join(t.TempDir(), "test.gb")
	require.NoError(t, os.WriteFile(path, rom, 0o644))
	return path
}

func TestNew(t *testing.T) {
	g, err := New(writeROM(t), WithLogger(log.NewNullLogger()))
	require.NoError(t, err)
	defer g.Close()

	assert.Equal(t, uint16(0x0100), g.CPU.PC)
	assert.Equal(t, cpu.ModeRunning, g.CPU.Mode())
	assert.NotNil(t, g.MMU.Cart)
}

func TestNew_Missing(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.gb"), WithLogger(log.NewNullLogger()))
	assert.ErrorIs(t, err, fault.ErrFileNotFound)
}

func TestNew_InvalidLogLevel(t *testing.T) {
	_, err := New(writeROM(t), WithLogLevel("loud"))
	assert.Error(t, err)
}

func TestGameBoy_Step(t *testing.T) {
	// LD HL, 0xC000; LD (HL+), A; INC A; HALT
	g, err := New(writeROM(t, 0x21, 0x00, 0xC0, 0x22, 0x3C, 0x76), WithLogger(log.NewNullLogger()))
	require.NoError(t, err)
	defer g.Close()

	var out cpu.Outcome
	for !out.Halted {
		out, err = g.Step()
		require.NoError(t, err)
	}

	assert.Equal(t, uint16(0xC001), g.CPU.HL.Uint16())
	assert.Equal(t, uint8(0x01), g.CPU.A())
	assert.Equal(t, uint64(12+8+4+4), g.CPU.Cycles())

	v, err := g.MMU.Read(0xC000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x00), v)
}

func TestGameBoy_Step_Unimplemented(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := New(writeROM(t, 0xC3, 0x00, 0x01), WithLogger(logger))
	require.NoError(t, err)
	defer g.Close()

	out, err := g.Step()
	assert.ErrorIs(t, err, fault.ErrUnimplementedInstruction)
	assert.Equal(t, uint8(0xC3), out.Opcode)
	assert.Equal(t, uint16(0x0103), g.CPU.PC)
	assert.Equal(t, cpu.ModeRunning, g.CPU.Mode())
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "skipped")
}

func TestGameBoy_ImmediateOrder(t *testing.T) {
	g, err := New(writeROM(t, 0x01, 0x12, 0x34), WithLogger(log.NewNullLogger()), WithImmediateOrder(binary.BigEndian))
	require.NoError(t, err)
	defer g.Close()

	_, err = g.Step()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), g.CPU.BC.Uint16())
}

func TestGameBoy_Debug(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := New(writeROM(t), WithLogger(logger), Debug())
	require.NoError(t, err)
	defer g.Close()

	hook.Reset()
	_, err = g.Step()
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "NOP")
}

func TestGameBoy_Close(t *testing.T) {
	g, err := New(writeROM(t), WithLogger(log.NewNullLogger()))
	require.NoError(t, err)

	m := g.MMU
	assert.NoError(t, g.Close())
	assert.Nil(t, g.MMU)
	assert.Nil(t, m.Cart)
	assert.NoError(t, g.Close())
}
