// Package mmu provides the memory management unit for the Game Boy. The
// MMU routes every address of the 64kB address space to the buffer of
// the region that claims it, and faults on addresses no region claims.
package mmu

import (
	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/internal/fault"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Region identifies one of the regions of the address space.
type Region uint8

const (
	// Unmapped is reported for addresses no region claims.
	Unmapped Region = iota
	ROM0
	ROMN
	VRAM
	ExternalRAM
	WRAM
	OAM
	IO
	HRAM
	InterruptEnable
)

var regionNames = [...]string{
	Unmapped:        "unmapped",
	ROM0:            "ROM bank 0",
	ROMN:            "ROM bank N",
	VRAM:            "VRAM",
	ExternalRAM:     "external RAM",
	WRAM:            "WRAM",
	OAM:             "OAM",
	IO:              "I/O registers",
	HRAM:            "HRAM",
	InterruptEnable: "interrupt enable",
}

func (r Region) String() string {
	if int(r) < len(regionNames) {
		return regionNames[r]
	}
	return "invalid region"
}

// area is a region of the address space, backed by a single buffer.
type area struct {
	region   Region
	start    uint16
	buf      []byte
	readOnly bool
}

// MMU is the memory management unit for the Game Boy. It owns every
// buffer of the address space apart from the cartridge banks, which it
// only reads.
type MMU struct {
	// 64kB address space, nil entries are unmapped
	raw [65536]*area

	// 0x0000 - 0x7FFF - ROM bank 0 / N
	// 0xA000 - 0xBFFF - External RAM
	Cart *cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM *ram.RAM
	// 0xC000 - 0xDFFF - Work RAM (8kB)
	wRAM *ram.RAM
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam *ram.RAM
	// 0xFF00 - 0xFF7F - I/O Registers
	io *ram.RAM
	// 0xFF80 - 0xFFFE - High RAM (127B)
	hRAM *ram.RAM
	// 0xFFFF - Interrupt Enable register
	ie [1]byte

	// scratch receives in-place writes aimed at ROM, so that
	// the banks are never modified.
	scratch uint8

	Log log.Logger
}

// NewMMU returns a new MMU for the given cartridge.
func NewMMU(cart *cartridge.Cartridge, l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	m := &MMU{
		Cart: cart,
		vRAM: ram.NewRAM(types.VRAMSize),
		wRAM: ram.NewRAM(types.WRAMSize),
		oam:  ram.NewRAM(types.OAMSize),
		io:   ram.NewRAM(types.IOSize),
		hRAM: ram.NewRAM(types.HRAMSize),
		Log:  l,
	}
	m.init()

	return m
}

// LoadCartridge loads the cartridge at path and returns an MMU mapping it.
func LoadCartridge(path string, l log.Logger) (*MMU, error) {
	cart, err := cartridge.Load(path, l)
	if err != nil {
		return nil, err
	}
	return NewMMU(cart, l), nil
}

func (m *MMU) init() {
	m.mapArea(&area{region: ROM0, start: types.ROM0Start, buf: m.Cart.ROM0(), readOnly: true}, types.ROM0End)
	m.mapArea(&area{region: ROMN, start: types.ROMNStart, buf: m.Cart.ROMN(), readOnly: true}, types.ROMNEnd)
	m.mapArea(&area{region: VRAM, start: types.VRAMStart, buf: m.vRAM.Bytes()}, types.VRAMEnd)
	// 0xA000 - 0xBFFF stays unmapped without external RAM
	if extRAM := m.Cart.RAM(); extRAM != nil {
		m.mapArea(&area{region: ExternalRAM, start: types.ExternalRAMStart, buf: extRAM.Bytes()}, types.ExternalRAMEnd)
	}
	m.mapArea(&area{region: WRAM, start: types.WRAMStart, buf: m.wRAM.Bytes()}, types.WRAMEnd)
	m.mapArea(&area{region: OAM, start: types.OAMStart, buf: m.oam.Bytes()}, types.OAMEnd)
	m.mapArea(&area{region: IO, start: types.IOStart, buf: m.io.Bytes()}, types.IOEnd)
	m.mapArea(&area{region: HRAM, start: types.HRAMStart, buf: m.hRAM.Bytes()}, types.HRAMEnd)
	m.mapArea(&area{region: InterruptEnable, start: types.IE, buf: m.ie[:]}, types.IE)
}

// mapArea claims start..end (inclusive) for a.
func (m *MMU) mapArea(a *area, end uint16) {
	for i := int(a.start); i <= int(end); i++ {
		m.raw[i] = a
	}
}

// lookup resolves address to its area and the offset within it.
func (m *MMU) lookup(address uint16) (*area, uint16, error) {
	a := m.raw[address]
	if a == nil {
		if address >= types.ExternalRAMStart && address <= types.ExternalRAMEnd {
			return nil, 0, fault.New(fault.InvalidAddress, "0x%04X: cartridge has no external RAM", address)
		}
		return nil, 0, fault.New(fault.InvalidAddress, "0x%04X: unmapped", address)
	}
	offset := address - a.start
	if int(offset) >= len(a.buf) {
		return nil, 0, fault.New(fault.InvalidAddress, "0x%04X: beyond %s", address, a.region)
	}
	return a, offset, nil
}

// Lookup returns the region claiming address and the offset of address
// within it.
func (m *MMU) Lookup(address uint16) (Region, uint16, error) {
	a, offset, err := m.lookup(address)
	if err != nil {
		return Unmapped, 0, err
	}
	return a.region, offset, nil
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) (uint8, error) {
	a, offset, err := m.lookup(address)
	if err != nil {
		return 0, err
	}
	return a.buf[offset], nil
}

// Write writes the value to the given address. Writes to ROM are
// accepted and discarded.
func (m *MMU) Write(address uint16, value uint8) error {
	a, offset, err := m.lookup(address)
	if err != nil {
		return err
	}
	if a.readOnly {
		m.Log.Debugf("discarding write of 0x%02X to %s at 0x%04X", value, a.region, address)
		return nil
	}
	a.buf[offset] = value
	return nil
}

// Pointer returns a pointer to the byte at address, for in-place
// modification. For ROM the pointer refers to a scratch copy of the
// byte, so modifications through it are discarded as for Write.
func (m *MMU) Pointer(address uint16) (*uint8, error) {
	a, offset, err := m.lookup(address)
	if err != nil {
		return nil, err
	}
	if a.readOnly {
		m.scratch = a.buf[offset]
		return &m.scratch, nil
	}
	return &a.buf[offset], nil
}

// Release drops every buffer owned by the MMU, along with the cartridge.
func (m *MMU) Release() {
	m.raw = [65536]*area{}
	m.vRAM, m.wRAM, m.oam, m.io, m.hRAM = nil, nil, nil, nil, nil
	if m.Cart != nil {
		m.Cart.Release()
		m.Cart = nil
	}
}
