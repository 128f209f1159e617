package ram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRAM(t *testing.T) {
	r := NewRAM(0x80)
	assert.Equal(t, 0x80, r.Size())
	assert.Equal(t, make([]byte, 0x80), r.Bytes())

	// Bytes is the backing buffer, not a copy
	r.Bytes()[0x7F] = 0x42
	assert.Equal(t, uint8(0x42), r.Bytes()[0x7F])
}

func TestRAM_Empty(t *testing.T) {
	r := NewRAM(0)
	assert.Equal(t, 0, r.Size())
	assert.Empty(t, r.Bytes())
}
