package cartridge

// romOnly is the no-MBC cartridge: a fixed 32 KiB ROM window and, for the
// 0x08/0x09 header types, a single always-enabled RAM bank. Control
// writes are ignored.
type romOnly struct{}

func newROMOnly() *romOnly {
	return &romOnly{}
}

func (r *romOnly) MapROM(addr uint16) (int, uint16) {
	return int(addr / ROMBankSize), addr % ROMBankSize
}

func (r *romOnly) MapRAM(addr uint16) (int, uint16, bool) {
	return 0, addr - 0xA000, true
}

func (r *romOnly) WriteControl(addr uint16, data byte) {}

func (r *romOnly) RAMEnabled() bool {
	return true
}
