// Package cartridge loads a game cartridge image and exposes the two
// fixed ROM banks and the optional external RAM it provides.
package cartridge

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Cartridge holds the raw image of a game, bank 0 and bank N copied out
// of it, and any external RAM the header asks for.
type Cartridge struct {
	raw []byte

	// bank0 and bankN are copies, not views, of raw. They are written
	// once by New and never modified afterwards.
	bank0 [types.ROMBankSize]byte
	bankN [types.ROMBankSize]byte

	// ram is nil if the header reports no external RAM.
	ram *ram.RAM

	header Header
}

// Load reads the cartridge image at path, decompressing it if
// necessary, and returns the resulting Cartridge.
func Load(path string, l log.Logger) (*Cartridge, error) {
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return New(raw, l)
}

// New returns a cartridge for the given image. The first 0x8000 bytes
// become bank 0, the next 0x8000 bytes (zero padded) bank N. Only the
// first 0x4000 bytes of each bank fall inside its address window, so
// image offsets 0x4000-0x7FFF and anything past 0xC000 are kept but not
// addressable.
func New(raw []byte, l log.Logger) (*Cartridge, error) {
	if l == nil {
		l = log.NewNullLogger()
	}

	header, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}

	c := &Cartridge{
		raw:    raw,
		header: header,
	}
	n := copy(c.bank0[:], raw)
	if n < len(raw) {
		copy(c.bankN[:], raw[n:])
	}
	if header.RAMSize > 0 {
		c.ram = ram.NewRAM(uint32(header.RAMSize))
	}

	l.Infof("Cartridge: %s | %d bytes | xxhash %016x", header.String(), len(raw), c.Fingerprint())
	if err := header.Verify(raw); err != nil {
		l.Warnf("cartridge verification: %v", err)
	}

	return c, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Size returns the size of the raw image in bytes.
func (c *Cartridge) Size() int {
	return len(c.raw)
}

// Fingerprint returns the xxhash64 of the raw image, used to identify a
// cartridge regardless of the file name or archive it was loaded from.
func (c *Cartridge) Fingerprint() uint64 {
	return xxhash.Sum64(c.raw)
}

// ROM0 returns the bank 0 buffer.
func (c *Cartridge) ROM0() []byte {
	return c.bank0[:]
}

// ROMN returns the bank N buffer.
func (c *Cartridge) ROMN() []byte {
	return c.bankN[:]
}

// RAM returns the external RAM, or nil if the cartridge has none.
func (c *Cartridge) RAM() *ram.RAM {
	return c.ram
}

// Release drops the image and external RAM buffers.
func (c *Cartridge) Release() {
	c.raw = nil
	c.ram = nil
	c.bank0 = [types.ROMBankSize]byte{}
	c.bankN = [types.ROMBankSize]byte{}
}
