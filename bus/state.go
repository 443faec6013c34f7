package bus

import (
	"github.com/meadori/dotmatrix/cartridge"
	"github.com/meadori/dotmatrix/interrupt"
	"github.com/meadori/dotmatrix/joypad"
	"github.com/meadori/dotmatrix/ppu"
	"github.com/meadori/dotmatrix/timer"
)

type State struct {
	VRAM [0x2000]byte
	WRAM [0x2000]byte
	OAM  [0xA0]byte
	HRAM [0x7F]byte
	IO   [0x80]byte

	SerialData, SerialCtrl, DMA byte

	PPU        ppu.State
	Timer      timer.State
	Joypad     joypad.State
	Interrupts interrupt.State
	Cartridge  cartridge.State
}

func (b *Bus) SaveState() State {
	s := State{
		VRAM:       b.vram,
		WRAM:       b.wram,
		OAM:        b.oam,
		HRAM:       b.hram,
		IO:         b.io,
		SerialData: b.serialData,
		SerialCtrl: b.serialCtrl,
		DMA:        b.dma,
		PPU:        b.PPU.SaveState(),
		Timer:      b.Timer.SaveState(),
		Joypad:     b.Joypad.SaveState(),
		Interrupts: b.Interrupts.SaveState(),
	}
	if b.cart != nil {
		s.Cartridge = b.cart.SaveState()
	}
	return s
}

func (b *Bus) LoadState(s State) error {
	b.vram, b.wram, b.oam, b.hram, b.io = s.VRAM, s.WRAM, s.OAM, s.HRAM, s.IO
	b.serialData, b.serialCtrl, b.dma = s.SerialData, s.SerialCtrl, s.DMA
	b.PPU.LoadState(s.PPU)
	b.Timer.LoadState(s.Timer)
	b.Joypad.LoadState(s.Joypad)
	b.Interrupts.LoadState(s.Interrupts)
	if b.cart != nil {
		return b.cart.LoadState(s.Cartridge)
	}
	return nil
}
