package types

// EntryPoint is the address execution starts from once the boot ROM
// has handed over to the cartridge.
const EntryPoint uint16 = 0x0100

// The boundaries of each region of the address space. Each region runs
// from its Start address up to and including its End address.
const (
	// ROM0Start is the start of the fixed ROM bank (bank 0).
	ROM0Start uint16 = 0x0000
	ROM0End   uint16 = 0x3FFF
	// ROMNStart is the start of the switchable ROM bank window (bank N).
	ROMNStart uint16 = 0x4000
	ROMNEnd   uint16 = 0x7FFF
	// VRAMStart is the start of video RAM.
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
	// ExternalRAMStart is the start of cartridge RAM, if present.
	ExternalRAMStart uint16 = 0xA000
	ExternalRAMEnd   uint16 = 0xBFFF
	// WRAMStart is the start of work RAM.
	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xDFFF
	// OAMStart is the start of the sprite attribute table.
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
	// IOStart is the start of the I/O register block.
	IOStart uint16 = 0xFF00
	IOEnd   uint16 = 0xFF7F
	// HRAMStart is the start of high RAM.
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
	// IE is the address of the interrupt enable register. It is
	// stored but never acted upon.
	IE uint16 = 0xFFFF
)

// Sizes of the fixed buffers backing each region.
const (
	// ROMBankSize is the size of each of the two ROM bank buffers. Only
	// the first 0x4000 bytes of each are visible through the address
	// window.
	ROMBankSize = 0x8000
	// ROMWindowSize is the size of each ROM bank window in the address
	// space.
	ROMWindowSize = 0x4000
	VRAMSize      = 0x2000
	WRAMSize      = 0x2000
	OAMSize       = 0xA0
	IOSize        = 0x80
	HRAMSize      = 0x7F
)
