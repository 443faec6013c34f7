package cartridge

// mbc1 has a 5-bit ROM bank register, a 2-bit secondary register and a
// banking mode flag. In simple mode (0) the secondary register supplies
// ROM bank bits 5-6 for the switchable window only; in advanced mode (1)
// it also banks the 0x0000 window and selects the RAM bank.
type mbc1 struct {
	romBank   byte // 5-bit register, never 0
	secondary byte // 2-bit register
	ramEnable bool
	mode      byte // 0 simple, 1 advanced
}

func newMBC1() *mbc1 {
	return &mbc1{romBank: 1}
}

func (m *mbc1) MapROM(addr uint16) (int, uint16) {
	if addr < ROMBankSize {
		if m.mode == 1 {
			return int(m.secondary) << 5, addr
		}
		return 0, addr
	}
	return int(m.secondary)<<5 | int(m.romBank), addr - ROMBankSize
}

func (m *mbc1) MapRAM(addr uint16) (int, uint16, bool) {
	if m.mode == 1 {
		return int(m.secondary), addr - 0xA000, true
	}
	return 0, addr - 0xA000, true
}

func (m *mbc1) WriteControl(addr uint16, data byte) {
	switch {
	case addr < 0x2000:
		m.ramEnable = data&0x0F == 0x0A
	case addr < 0x4000:
		// Bank 0 is never selectable as the switchable window; it
		// aliases to 1.
		m.romBank = data & 0x1F
		if m.romBank == 0 {
			m.romBank = 1
		}
	case addr < 0x6000:
		m.secondary = data & 0x03
	default:
		m.mode = data & 0x01
	}
}

func (m *mbc1) RAMEnabled() bool {
	return m.ramEnable
}
