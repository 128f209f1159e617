package cartridge

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/sm83/internal/fault"
)

const (
	headerStart = 0x0100
	headerEnd   = 0x0150 // exclusive

	ramSizeOffset = 0x0149
)

// Flag describes the hardware a cartridge is compatible with.
type Flag uint8

const (
	// FlagOnlyDMG marks a cartridge for the original Game Boy.
	FlagOnlyDMG Flag = iota
	// FlagSupportsCGB marks a cartridge that also uses Colour Game Boy features.
	FlagSupportsCGB
	// FlagOnlyCGB marks a cartridge that only runs on the Colour Game Boy.
	FlagOnlyCGB
)

// ramSizes maps the RAM size code at 0x0149 to the size of the
// external RAM in bytes.
var ramSizes = map[uint8]int{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// RAMSize returns the size in bytes of the external RAM described by
// the given header code. An unknown code is a fault.UnsupportedCartridgeRamType.
func RAMSize(code uint8) (int, error) {
	size, ok := ramSizes[code]
	if !ok {
		return 0, fault.New(fault.UnsupportedCartridgeRamType, "RAM size code 0x%02X", code)
	}
	return size, nil
}

var bootLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Header represents the header of a cartridge, located at the address
// space 0x0100-0x014F. It describes the cartridge itself and the
// hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	// 0x0147 - CartridgeType selects the memory bank controller. Only
	// the fixed two bank window is emulated, whatever the type.
	CartridgeType uint8

	// 0x0148 - ROMSize in bytes (32kB x (1 << n)).
	ROMSize int

	// 0x0149 - RAMSizeCode and the RAMSize in bytes it decodes to.
	RAMSizeCode uint8
	RAMSize     int

	HeaderChecksum uint8
	GlobalChecksum uint16

	// present is false when the image is too small to hold a header.
	present bool
}

// parseHeader parses the header of the given ROM image. Images too small
// to hold the RAM size code yield an empty header without external RAM.
// Images holding the RAM size code but not the full header only have
// their RAM size decoded.
func parseHeader(rom []byte) (Header, error) {
	h := Header{}
	if len(rom) <= ramSizeOffset {
		return h, nil
	}
	if len(rom) < headerEnd {
		err := h.decodeRAMSize(rom[ramSizeOffset])
		return h, err
	}
	header := rom[headerStart:headerEnd]
	h.present = true

	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	// the CGB flag overlaps the last byte of the title
	if h.CartridgeGBMode == FlagOnlyDMG {
		h.Title = cleanTitle(header[0x34:0x44])
	} else {
		h.Title = cleanTitle(header[0x34:0x43])
	}

	h.CartridgeType = header[0x47]
	if header[0x48] < 0x09 {
		h.ROMSize = (32 * 1024) * (1 << header[0x48])
	}

	if err := h.decodeRAMSize(header[ramSizeOffset-headerStart]); err != nil {
		return h, err
	}

	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	return h, nil
}

func (h *Header) decodeRAMSize(code uint8) error {
	h.RAMSizeCode = code
	size, err := RAMSize(code)
	if err != nil {
		return err
	}
	h.RAMSize = size
	return nil
}

func cleanTitle(raw []byte) string {
	return strings.TrimRight(string(bytes.TrimRight(raw, "\x00")), " ")
}

// Verify checks the boot logo and header checksum of the image the
// header was parsed from. All problems found are returned together. A
// failed verification does not prevent the cartridge from running.
func (h *Header) Verify(rom []byte) error {
	if !h.present {
		return nil
	}
	var result *multierror.Error

	if !bytes.Equal(rom[0x0104:0x0134], bootLogo[:]) {
		result = multierror.Append(result, fmt.Errorf("boot logo mismatch"))
	}

	var sum uint8
	for addr := 0x0134; addr <= 0x014C; addr++ {
		sum = sum - rom[addr] - 1
	}
	if sum != h.HeaderChecksum {
		result = multierror.Append(result, fmt.Errorf("header checksum 0x%02X, computed 0x%02X", h.HeaderChecksum, sum))
	}

	return result.ErrorOrNil()
}

// Hardware returns the name of the hardware the cartridge targets.
func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB, FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

// String returns a one line summary of the header.
func (h *Header) String() string {
	return fmt.Sprintf("%s Mode: %s | Type: 0x%02X | ROM Size: %dkB | RAM Size: %dkB",
		h.Title, h.Hardware(), h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024)
}
