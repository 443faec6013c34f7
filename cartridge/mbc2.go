package cartridge

// mbc2 has a 4-bit ROM bank register and 512x4 bits of built-in RAM. A
// single control range covers both registers: address bit 8 selects
// between RAM enable (clear) and ROM bank (set).
type mbc2 struct {
	romBank   byte // 4-bit register, never 0
	ramEnable bool
}

func newMBC2() *mbc2 {
	return &mbc2{romBank: 1}
}

func (m *mbc2) MapROM(addr uint16) (int, uint16) {
	if addr < ROMBankSize {
		return 0, addr
	}
	return int(m.romBank), addr - ROMBankSize
}

// MapRAM returns an offset into the built-in 512-nibble RAM; the whole
// 0xA000-0xBFFF range echoes it.
func (m *mbc2) MapRAM(addr uint16) (int, uint16, bool) {
	return 0, addr & 0x01FF, true
}

func (m *mbc2) WriteControl(addr uint16, data byte) {
	if addr >= 0x4000 {
		return
	}
	if addr&0x0100 == 0 {
		m.ramEnable = data&0x0F == 0x0A
		return
	}
	m.romBank = data & 0x0F
	if m.romBank == 0 {
		m.romBank = 1
	}
}

func (m *mbc2) RAMEnabled() bool {
	return m.ramEnable
}
