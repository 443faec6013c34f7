package cartridge

import "fmt"

// Controller is the bank-switch (MBC) capability of a cartridge. It maps
// bus addresses to bank/offset pairs and interprets ROM-range writes as
// control-register writes. It never touches ROM or RAM storage itself;
// the Cartridge owns the bytes and reduces bank indices modulo the
// physical bank count.
type Controller interface {
	// MapROM translates an address in 0x0000-0x7FFF to a ROM bank and an
	// offset within that 16 KiB bank.
	MapROM(addr uint16) (bank int, offset uint16)

	// MapRAM translates an address in 0xA000-0xBFFF to a RAM bank and an
	// offset within that 8 KiB bank. ok is false when the address does
	// not reach RAM (for example when an MBC3 clock register is
	// selected).
	MapRAM(addr uint16) (bank int, offset uint16, ok bool)

	// WriteControl interprets a write to 0x0000-0x7FFF as a control
	// register write.
	WriteControl(addr uint16, data byte)

	// RAMEnabled reports whether external RAM is currently accessible.
	RAMEnabled() bool
}

// newController creates the Controller for a header-declared cartridge
// type byte.
func newController(cartType byte) (Controller, error) {
	switch cartType {
	case 0x00, 0x08, 0x09:
		return newROMOnly(), nil
	case 0x01, 0x02, 0x03:
		return newMBC1(), nil
	case 0x05, 0x06:
		return newMBC2(), nil
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		return newMBC3(), nil
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return newMBC5(), nil
	default:
		return nil, fmt.Errorf("%w: %#02x", ErrUnsupportedType, cartType)
	}
}
