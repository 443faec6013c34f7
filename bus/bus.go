package bus

import (
	"github.com/meadori/dotmatrix/cartridge"
	"github.com/meadori/dotmatrix/interrupt"
	"github.com/meadori/dotmatrix/joypad"
	"github.com/meadori/dotmatrix/ppu"
	"github.com/meadori/dotmatrix/timer"
)

// Bus wires the CPU-visible address space to memory and peripherals:
//
//	0x0000-0x7FFF  cartridge ROM
//	0x8000-0x9FFF  video RAM
//	0xA000-0xBFFF  cartridge RAM
//	0xC000-0xDFFF  work RAM
//	0xE000-0xFDFF  work RAM echo
//	0xFE00-0xFE9F  object attribute memory
//	0xFEA0-0xFEFF  unusable, reads 0xFF
//	0xFF00-0xFF7F  I/O registers
//	0xFF80-0xFFFE  high RAM
//	0xFFFF         interrupt enable
type Bus struct {
	cart *cartridge.Cartridge

	PPU        *ppu.PPU
	Timer      *timer.Timer
	Joypad     *joypad.Joypad
	Interrupts *interrupt.Controller

	vram [0x2000]byte
	wram [0x2000]byte
	oam  [0xA0]byte
	hram [0x7F]byte

	// Registers without dedicated peripherals. Serial has no link cable
	// behind it; a started transfer completes instantly against an
	// unplugged peer.
	serialData byte
	serialCtrl byte
	dma        byte
	io         [0x80]byte
}

// New creates a Bus with all peripherals attached and no cartridge.
func New() *Bus {
	b := &Bus{
		Timer:      timer.New(),
		Joypad:     joypad.New(),
		Interrupts: interrupt.New(),
	}
	b.PPU = ppu.New(b)
	return b
}

// InsertCartridge attaches a cartridge to the bus.
func (b *Bus) InsertCartridge(cart *cartridge.Cartridge) {
	b.cart = cart
}

// Cartridge returns the attached cartridge, or nil.
func (b *Bus) Cartridge() *cartridge.Cartridge {
	return b.cart
}

// Reset puts the I/O registers into their state at the end of the boot
// ROM, ready to run a cartridge from 0x0100.
func (b *Bus) Reset() {
	b.Timer.SetDivider(0xABCC)
	b.Write(0xFF07, 0x00) // TAC
	b.Write(0xFF40, 0x91) // LCDC
	b.Write(0xFF47, 0xFC) // BGP
	b.Interrupts.SetFlag(0x01)
	b.Interrupts.SetEnable(0x00)
	b.serialCtrl = 0x7E
}

// Read returns the byte at a CPU-visible address.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x8000:
		if b.cart == nil {
			return 0xFF
		}
		return b.cart.Read(addr)
	case addr < 0xA000:
		return b.vram[addr-0x8000]
	case addr < 0xC000:
		if b.cart == nil {
			return 0xFF
		}
		return b.cart.Read(addr)
	case addr < 0xE000:
		return b.wram[addr-0xC000]
	case addr < 0xFE00:
		return b.wram[addr-0xE000]
	case addr < 0xFEA0:
		return b.oam[addr-0xFE00]
	case addr < 0xFF00:
		return 0xFF
	case addr < 0xFF80:
		return b.readIO(addr)
	case addr < 0xFFFF:
		return b.hram[addr-0xFF80]
	}
	return b.Interrupts.Enable()
}

// Write stores a byte at a CPU-visible address.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr < 0x8000:
		if b.cart != nil {
			b.cart.Write(addr, data)
		}
	case addr < 0xA000:
		b.vram[addr-0x8000] = data
	case addr < 0xC000:
		if b.cart != nil {
			b.cart.Write(addr, data)
		}
	case addr < 0xE000:
		b.wram[addr-0xC000] = data
	case addr < 0xFE00:
		b.wram[addr-0xE000] = data
	case addr < 0xFEA0:
		b.oam[addr-0xFE00] = data
	case addr < 0xFF00:
		// unusable
	case addr < 0xFF80:
		b.writeIO(addr, data)
	case addr < 0xFFFF:
		b.hram[addr-0xFF80] = data
	default:
		b.Interrupts.SetEnable(data)
	}
}

func (b *Bus) readIO(addr uint16) byte {
	switch {
	case addr == 0xFF00:
		return b.Joypad.Read()
	case addr == 0xFF01:
		return b.serialData
	case addr == 0xFF02:
		return b.serialCtrl | 0x7E
	case addr >= 0xFF04 && addr <= 0xFF07:
		return b.Timer.Read(addr)
	case addr == 0xFF0F:
		return b.Interrupts.Flag()
	case addr >= 0xFF40 && addr <= 0xFF4B:
		if addr == 0xFF46 {
			return b.dma
		}
		return b.PPU.Read(addr)
	}
	return b.io[addr-0xFF00]
}

func (b *Bus) writeIO(addr uint16, data byte) {
	switch {
	case addr == 0xFF00:
		b.Joypad.Write(data)
	case addr == 0xFF01:
		b.serialData = data
	case addr == 0xFF02:
		b.serialCtrl = data & 0x83
		if data&0x81 == 0x81 {
			// Internal clock with nobody on the other end: shift in
			// all ones and finish the transfer immediately.
			b.serialData = 0xFF
			b.serialCtrl &^= 0x80
			b.Interrupts.Request(interrupt.Serial)
		}
	case addr >= 0xFF04 && addr <= 0xFF07:
		b.Timer.Write(addr, data)
	case addr == 0xFF0F:
		b.Interrupts.SetFlag(data)
	case addr == 0xFF46:
		b.dma = data
		b.dmaTransfer(data)
	case addr >= 0xFF40 && addr <= 0xFF4B:
		b.PPU.Write(addr, data)
	default:
		b.io[addr-0xFF00] = data
	}
}

// dmaTransfer copies 160 bytes from source<<8 into OAM. The copy is
// modelled as instantaneous; real hardware takes 160 machine cycles
// during which the CPU can only reach high RAM.
func (b *Bus) dmaTransfer(source byte) {
	base := uint16(source) << 8
	for i := uint16(0); i < 0xA0; i++ {
		b.oam[i] = b.Read(base + i)
	}
}

// ReadVRAM and ReadOAM give the PPU raw access to video memory, outside
// the CPU's address decode.
func (b *Bus) ReadVRAM(offset uint16) byte {
	return b.vram[offset]
}

func (b *Bus) ReadOAM(offset uint16) byte {
	return b.oam[offset]
}

// Step advances the peripherals by the given number of cycles and moves
// their interrupt requests into the interrupt controller.
func (b *Bus) Step(cycles int) {
	b.Timer.Step(cycles)
	b.PPU.Step(cycles)

	if b.Timer.IRQ {
		b.Timer.IRQ = false
		b.Interrupts.Request(interrupt.Timer)
	}
	if b.PPU.VBlankIRQ {
		b.PPU.VBlankIRQ = false
		b.Interrupts.Request(interrupt.VBlank)
	}
	if b.PPU.StatIRQ {
		b.PPU.StatIRQ = false
		b.Interrupts.Request(interrupt.LCDStat)
	}
	if b.Joypad.IRQ {
		b.Joypad.IRQ = false
		b.Interrupts.Request(interrupt.Joypad)
	}
}
