package cartridge

// mbc5 has a 9-bit ROM bank register written as two halves (low byte and
// high bit) and a 4-bit RAM bank register. Unlike MBC1 it has no bank-0
// aliasing quirk: bank 0 is a valid switchable-window selection.
type mbc5 struct {
	romBank   uint16 // 9-bit register
	ramBank   byte
	ramEnable bool
}

func newMBC5() *mbc5 {
	return &mbc5{romBank: 1}
}

func (m *mbc5) MapROM(addr uint16) (int, uint16) {
	if addr < ROMBankSize {
		return 0, addr
	}
	return int(m.romBank), addr - ROMBankSize
}

func (m *mbc5) MapRAM(addr uint16) (int, uint16, bool) {
	return int(m.ramBank), addr - 0xA000, true
}

func (m *mbc5) WriteControl(addr uint16, data byte) {
	switch {
	case addr < 0x2000:
		m.ramEnable = data == 0x0A
	case addr < 0x3000:
		m.romBank = m.romBank&0x100 | uint16(data)
	case addr < 0x4000:
		m.romBank = uint16(data&0x01)<<8 | m.romBank&0xFF
	case addr < 0x6000:
		m.ramBank = data & 0x0F
	}
}

func (m *mbc5) RAMEnabled() bool {
	return m.ramEnable
}
