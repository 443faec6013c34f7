package cartridge

// mbc3 has a 7-bit ROM bank register and a 4-bit RAM bank register.
// Values 0x08-0x0C in the RAM bank register select a real-time-clock
// register instead of RAM; the clock itself is not implemented and those
// selections read as a fixed 0xFF. This is a documented capability gap,
// not an error.
type mbc3 struct {
	romBank   byte // 7-bit register, never 0
	ramBank   byte
	rtcSelect bool
	ramEnable bool
}

func newMBC3() *mbc3 {
	return &mbc3{romBank: 1}
}

func (m *mbc3) MapROM(addr uint16) (int, uint16) {
	if addr < ROMBankSize {
		return 0, addr
	}
	return int(m.romBank), addr - ROMBankSize
}

func (m *mbc3) MapRAM(addr uint16) (int, uint16, bool) {
	if m.rtcSelect {
		return 0, 0, false
	}
	return int(m.ramBank), addr - 0xA000, true
}

func (m *mbc3) WriteControl(addr uint16, data byte) {
	switch {
	case addr < 0x2000:
		m.ramEnable = data&0x0F == 0x0A
	case addr < 0x4000:
		m.romBank = data & 0x7F
		if m.romBank == 0 {
			m.romBank = 1
		}
	case addr < 0x6000:
		if data <= 0x03 {
			m.ramBank = data
			m.rtcSelect = false
		} else if data >= 0x08 && data <= 0x0C {
			m.rtcSelect = true
		}
	default:
		// Clock latch register; nothing to latch without a clock.
	}
}

func (m *mbc3) RAMEnabled() bool {
	return m.ramEnable
}
