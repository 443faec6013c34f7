package cartridge

import (
	"errors"
	"testing"
)

// testImage builds a ROM image with the given header bytes and a bank
// number stamped at the start of every 16 KiB bank.
func testImage(cartType, romSize, ramSize byte, banks int) []byte {
	data := make([]byte, banks*ROMBankSize)
	copy(data[titleAddress:], "TESTCART")
	data[cartTypeAddress] = cartType
	data[romSizeAddress] = romSize
	data[ramSizeAddress] = ramSize
	for b := 0; b < banks; b++ {
		data[b*ROMBankSize] = byte(b)
	}
	return data
}

func TestNewRejectsShortImage(t *testing.T) {
	_, err := New(make([]byte, 0x2000))
	if !errors.Is(err, ErrImageTooShort) {
		t.Errorf("New(short image) = %v, want ErrImageTooShort", err)
	}
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(testImage(0xFC, 0x00, 0x00, 2))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("New(pocket camera) = %v, want ErrUnsupportedType", err)
	}
}

func TestHeaderParsing(t *testing.T) {
	c, err := New(testImage(0x03, 0x05, 0x03, 64)) // MBC1+RAM+BATTERY
	if err != nil {
		t.Fatal(err)
	}
	if c.Title() != "TESTCART" {
		t.Errorf("Title() = %q, want TESTCART", c.Title())
	}
	if c.ROMBanks() != 64 {
		t.Errorf("ROMBanks() = %d, want 64", c.ROMBanks())
	}
	if c.RAMBanks() != 4 {
		t.Errorf("RAMBanks() = %d, want 4", c.RAMBanks())
	}
	if !c.HasBattery() {
		t.Error("HasBattery() = false, want true")
	}
}

func TestMBC1BankSwitch(t *testing.T) {
	// Type1, 128 KiB ROM (8 banks), 8 KiB RAM.
	c, err := New(testImage(0x03, 0x02, 0x02, 8))
	if err != nil {
		t.Fatal(err)
	}

	// Writing 0x02 to the ROM bank select range maps physical bank 2
	// into the switchable window.
	c.Write(0x2000, 0x02)
	if got := c.Read(0x4000); got != 2 {
		t.Errorf("Read(0x4000) after selecting bank 2 = %d, want 2", got)
	}

	// Bank 0 aliases to bank 1.
	c.Write(0x2000, 0x00)
	if got := c.Read(0x4000); got != 1 {
		t.Errorf("Read(0x4000) after selecting bank 0 = %d, want 1", got)
	}

	// Bank 0 stays directly mapped.
	if got := c.Read(0x0000); got != 0 {
		t.Errorf("Read(0x0000) = %d, want 0", got)
	}
}

func TestBankIndexModuloReduction(t *testing.T) {
	// Every controller reduces out-of-range selections modulo the
	// physical bank count.
	cases := []struct {
		name     string
		cartType byte
		selects  func(c *Cartridge)
		want     byte
	}{
		{"mbc1", 0x01, func(c *Cartridge) { c.Write(0x2000, 0x1F) }, 0x1F % 4},
		{"mbc2", 0x05, func(c *Cartridge) { c.Write(0x2100, 0x0F) }, 0x0F % 4},
		{"mbc3", 0x11, func(c *Cartridge) { c.Write(0x2000, 0x7F) }, 0x7F % 4},
		{"mbc5", 0x19, func(c *Cartridge) {
			c.Write(0x2000, 0xFF)
			c.Write(0x3000, 0x01) // bank 0x1FF
		}, 0x1FF % 4},
	}

	for _, tc := range cases {
		c, err := New(testImage(tc.cartType, 0x01, 0x00, 4))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		tc.selects(c)
		if got := c.Read(0x4000); got != tc.want {
			t.Errorf("%s: switchable window bank = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestMBC1RAMEnable(t *testing.T) {
	c, err := New(testImage(0x03, 0x02, 0x02, 8))
	if err != nil {
		t.Fatal(err)
	}

	c.Write(0xA000, 0x42)
	if got := c.Read(0xA000); got != 0xFF {
		t.Errorf("disabled RAM read = %#02x, want 0xFF", got)
	}

	c.Write(0x0000, 0x0A)
	c.Write(0xA000, 0x42)
	if got := c.Read(0xA000); got != 0x42 {
		t.Errorf("enabled RAM read = %#02x, want 0x42", got)
	}

	// Only the low nibble 0x0A enables; anything else disables.
	c.Write(0x0000, 0x0B)
	if got := c.Read(0xA000); got != 0xFF {
		t.Errorf("re-disabled RAM read = %#02x, want 0xFF", got)
	}
}

func TestMBC1AdvancedModeRAMBanking(t *testing.T) {
	c, err := New(testImage(0x03, 0x02, 0x03, 8)) // 4 RAM banks
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x0000, 0x0A)

	c.Write(0x6000, 0x01) // advanced mode
	c.Write(0x4000, 0x02) // secondary = RAM bank 2
	c.Write(0xA000, 0x22)

	c.Write(0x4000, 0x00)
	c.Write(0xA000, 0x00)

	c.Write(0x4000, 0x02)
	if got := c.Read(0xA000); got != 0x22 {
		t.Errorf("RAM bank 2 read = %#02x, want 0x22", got)
	}
}

func TestMBC2NibbleRAM(t *testing.T) {
	c, err := New(testImage(0x06, 0x01, 0x00, 4))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x0000, 0x0A) // address bit 8 clear: RAM enable
	c.Write(0xA000, 0xA5)
	if got := c.Read(0xA000); got != 0xF5 {
		t.Errorf("MBC2 RAM read = %#02x, want 0xF5 (upper nibble open)", got)
	}
	// The 512-byte RAM echoes through the whole range.
	if got := c.Read(0xA200); got != 0xF5 {
		t.Errorf("MBC2 RAM echo read = %#02x, want 0xF5", got)
	}
}

func TestMBC3ClockSelectionReadsFixed(t *testing.T) {
	c, err := New(testImage(0x10, 0x02, 0x02, 8)) // MBC3+TIMER+RAM+BATTERY
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x0000, 0x0A)
	c.Write(0xA000, 0x42)

	c.Write(0x4000, 0x08) // select a clock register
	if got := c.Read(0xA000); got != 0xFF {
		t.Errorf("clock register read = %#02x, want fixed 0xFF", got)
	}

	c.Write(0x4000, 0x00) // back to RAM
	if got := c.Read(0xA000); got != 0x42 {
		t.Errorf("RAM read after clock deselect = %#02x, want 0x42", got)
	}
}

func TestRAMExportImport(t *testing.T) {
	c, err := New(testImage(0x03, 0x02, 0x02, 8))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x0000, 0x0A)
	c.Write(0xA123, 0x99)

	snap := c.ExportRAM()
	if len(snap) != RAMBankSize {
		t.Fatalf("ExportRAM() length = %d, want %d", len(snap), RAMBankSize)
	}

	c.Write(0xA123, 0x00)
	c.ImportRAM(snap)
	if got := c.Read(0xA123); got != 0x99 {
		t.Errorf("RAM after import = %#02x, want 0x99", got)
	}
}

func TestSaveLoadState(t *testing.T) {
	c, err := New(testImage(0x03, 0x02, 0x02, 8))
	if err != nil {
		t.Fatal(err)
	}
	c.Write(0x0000, 0x0A)
	c.Write(0x2000, 0x03)
	c.Write(0xA000, 0x77)
	s := c.SaveState()

	c2, err := New(testImage(0x03, 0x02, 0x02, 8))
	if err != nil {
		t.Fatal(err)
	}
	if err := c2.LoadState(s); err != nil {
		t.Fatal(err)
	}
	if got := c2.Read(0x4000); got != 3 {
		t.Errorf("restored ROM bank read = %d, want 3", got)
	}
	c2.Write(0x0000, 0x0A)
	if got := c2.Read(0xA000); got != 0x77 {
		t.Errorf("restored RAM read = %#02x, want 0x77", got)
	}
}
