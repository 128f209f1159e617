package fault

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFault_Is(t *testing.T) {
	err := New(InvalidAddress, "0x%04X", 0xFEA0)

	assert.True(t, errors.Is(err, ErrInvalidAddress))
	assert.False(t, errors.Is(err, ErrUnimplementedInstruction))
	assert.Equal(t, "invalid address: 0xFEA0", err.Error())
}

func TestFault_Wrap(t *testing.T) {
	err := Wrap(FileNotFound, os.ErrNotExist, "%s", "rom.gb")

	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "rom.gb")
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("stepping: %w", New(UnimplementedInstruction, "0x%02X", 0x80))

	assert.Equal(t, UnimplementedInstruction, CodeOf(wrapped))
	assert.True(t, Is(wrapped, UnimplementedInstruction))
	assert.Equal(t, Unknown, CodeOf(errors.New("plain")))
	assert.Equal(t, Unknown, CodeOf(nil))
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "unsupported cartridge RAM type", UnsupportedCartridgeRamType.String())
	assert.Equal(t, "code(200)", Code(200).String())
}
