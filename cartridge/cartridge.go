package cartridge

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Header field offsets in the ROM image.
const (
	titleAddress    = 0x0134
	cartTypeAddress = 0x0147
	romSizeAddress  = 0x0148
	ramSizeAddress  = 0x0149
)

const (
	ROMBankSize = 0x4000 // 16 KiB
	RAMBankSize = 0x2000 // 8 KiB
)

// Load-time validation errors.
var (
	ErrImageTooShort   = errors.New("cartridge: image shorter than one ROM bank")
	ErrUnsupportedType = errors.New("cartridge: unsupported cartridge type")
)

// batteryTypes are the header type bytes that declare battery-backed RAM.
var batteryTypes = map[byte]bool{
	0x03: true, 0x06: true, 0x09: true, 0x0F: true, 0x10: true,
	0x13: true, 0x1B: true, 0x1E: true,
}

// Cartridge owns the immutable ROM image and the mutable external RAM,
// and routes bank mapping through its Controller.
type Cartridge struct {
	rom  []byte
	ram  []byte
	ctrl Controller

	title      string
	cartType   byte
	romBanks   int
	ramBanks   int
	hasBattery bool
}

// New parses the header of a ROM image and builds the matching
// bank-switch controller. Images shorter than a single ROM bank and
// unknown cartridge types are rejected.
func New(data []byte) (*Cartridge, error) {
	if len(data) < ROMBankSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrImageTooShort, len(data))
	}

	cartType := data[cartTypeAddress]
	ctrl, err := newController(cartType)
	if err != nil {
		return nil, err
	}

	romBanks, err := romBankCount(data[romSizeAddress])
	if err != nil {
		return nil, err
	}
	ramBanks, err := ramBankCount(data[ramSizeAddress])
	if err != nil {
		return nil, err
	}

	c := &Cartridge{
		rom:        data,
		ctrl:       ctrl,
		title:      parseTitle(data),
		cartType:   cartType,
		romBanks:   romBanks,
		ramBanks:   ramBanks,
		hasBattery: batteryTypes[cartType],
	}

	// MBC2 carries its own 512x4-bit RAM regardless of the header's RAM
	// size byte.
	if _, ok := ctrl.(*mbc2); ok {
		c.ram = make([]byte, 0x200)
	} else {
		c.ram = make([]byte, ramBanks*RAMBankSize)
	}
	return c, nil
}

// NewFromFile loads a ROM image from disk.
func NewFromFile(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(data)
}

func parseTitle(data []byte) string {
	raw := data[titleAddress : titleAddress+16]
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	return strings.TrimSpace(string(raw[:end]))
}

func romBankCount(sizeByte byte) (int, error) {
	switch {
	case sizeByte <= 0x08:
		return 2 << sizeByte, nil
	case sizeByte == 0x52:
		return 72, nil
	case sizeByte == 0x53:
		return 80, nil
	case sizeByte == 0x54:
		return 96, nil
	}
	return 0, fmt.Errorf("cartridge: unknown ROM size byte %#02x", sizeByte)
}

func ramBankCount(sizeByte byte) (int, error) {
	switch sizeByte {
	case 0x00, 0x01:
		return 0, nil
	case 0x02:
		return 1, nil
	case 0x03:
		return 4, nil
	case 0x04:
		return 16, nil
	case 0x05:
		return 8, nil
	}
	return 0, fmt.Errorf("cartridge: unknown RAM size byte %#02x", sizeByte)
}

// Read returns a byte from the ROM window (0x0000-0x7FFF) or external RAM
// (0xA000-0xBFFF). Disabled or absent RAM reads as 0xFF, matching the
// open-bus behavior of real hardware.
func (c *Cartridge) Read(addr uint16) byte {
	if addr < 0x8000 {
		bank, offset := c.ctrl.MapROM(addr)
		return c.rom[c.romOffset(bank, offset)]
	}
	if !c.ctrl.RAMEnabled() || len(c.ram) == 0 {
		return 0xFF
	}
	bank, offset, ok := c.ctrl.MapRAM(addr)
	if !ok {
		return 0xFF
	}
	if _, isMBC2 := c.ctrl.(*mbc2); isMBC2 {
		return 0xF0 | c.ram[int(offset)%len(c.ram)]
	}
	return c.ram[c.ramOffset(bank, offset)]
}

// Write forwards ROM-range writes to the controller as control-register
// writes and stores RAM-range writes when RAM is enabled.
func (c *Cartridge) Write(addr uint16, data byte) {
	if addr < 0x8000 {
		c.ctrl.WriteControl(addr, data)
		return
	}
	if !c.ctrl.RAMEnabled() || len(c.ram) == 0 {
		return
	}
	bank, offset, ok := c.ctrl.MapRAM(addr)
	if !ok {
		return
	}
	if _, isMBC2 := c.ctrl.(*mbc2); isMBC2 {
		c.ram[int(offset)%len(c.ram)] = data & 0x0F
		return
	}
	c.ram[c.ramOffset(bank, offset)] = data
}

// romOffset reduces the selected bank modulo the physical bank count, so
// out-of-range selections alias to valid banks instead of faulting. The
// physical count comes from the image length, which protects against
// under-dumped images whose header declares more banks than are present.
func (c *Cartridge) romOffset(bank int, offset uint16) int {
	banks := len(c.rom) / ROMBankSize
	return (bank%banks)*ROMBankSize + int(offset)
}

func (c *Cartridge) ramOffset(bank int, offset uint16) int {
	banks := len(c.ram) / RAMBankSize
	if banks == 0 {
		banks = 1
	}
	return (bank%banks)*RAMBankSize + int(offset)
}

// Controller exposes the active bank-switch controller.
func (c *Cartridge) Controller() Controller {
	return c.ctrl
}

// Title returns the game title from the header.
func (c *Cartridge) Title() string {
	return c.title
}

// HasBattery reports whether the header declares battery-backed RAM, in
// which case the host should persist ExportRAM's buffer across sessions.
func (c *Cartridge) HasBattery() bool {
	return c.hasBattery
}

// ROMBanks returns the header-declared number of 16 KiB ROM banks.
func (c *Cartridge) ROMBanks() int {
	return c.romBanks
}

// RAMBanks returns the header-declared number of 8 KiB RAM banks.
func (c *Cartridge) RAMBanks() int {
	return c.ramBanks
}

// ExportRAM returns a copy of the external RAM for the host to persist.
func (c *Cartridge) ExportRAM() []byte {
	out := make([]byte, len(c.ram))
	copy(out, c.ram)
	return out
}

// ImportRAM loads previously persisted external RAM. Oversized input is
// truncated to the declared RAM size.
func (c *Cartridge) ImportRAM(data []byte) {
	copy(c.ram, data)
}
