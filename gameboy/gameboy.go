package gameboy

import (
	"github.com/meadori/dotmatrix/bus"
	"github.com/meadori/dotmatrix/cartridge"
	"github.com/meadori/dotmatrix/cpu"
	"github.com/meadori/dotmatrix/joypad"
)

// CyclesPerFrame is the length of one LCD frame at 4 MiHz: 154 scanlines
// of 456 cycles.
const CyclesPerFrame = 154 * 456

// GameBoy is the assembled machine: an SM83 core driving the bus and its
// peripherals.
type GameBoy struct {
	Bus *bus.Bus
	CPU *cpu.CPU
}

// New creates a machine with no cartridge inserted.
func New() *GameBoy {
	b := bus.New()
	c := cpu.New(b, b.Interrupts)
	return &GameBoy{Bus: b, CPU: c}
}

// LoadROM parses a ROM image, inserts the cartridge and resets the
// machine to the post-boot state.
func (g *GameBoy) LoadROM(data []byte) error {
	cart, err := cartridge.New(data)
	if err != nil {
		return err
	}
	g.Bus.InsertCartridge(cart)
	g.Reset()
	return nil
}

// LoadROMFile loads a ROM image from disk.
func (g *GameBoy) LoadROMFile(path string) error {
	cart, err := cartridge.NewFromFile(path)
	if err != nil {
		return err
	}
	g.Bus.InsertCartridge(cart)
	g.Reset()
	return nil
}

// Reset returns the machine to the post-boot state with the current
// cartridge still inserted.
func (g *GameBoy) Reset() {
	g.CPU.Reset()
	g.Bus.Reset()
}

// Step executes one CPU instruction (or interrupt dispatch), advances the
// peripherals by the same number of cycles and returns that count.
func (g *GameBoy) Step() int {
	cycles := g.CPU.Step()
	g.Bus.Step(cycles)
	return cycles
}

// RunFrame executes until the PPU completes a frame. With the LCD off no
// frame ever completes, so a whole frame's worth of cycles bounds the
// loop either way.
func (g *GameBoy) RunFrame() {
	g.Bus.PPU.FrameComplete = false
	for cycles := 0; cycles < CyclesPerFrame; {
		cycles += g.Step()
		if g.Bus.PPU.FrameComplete {
			return
		}
	}
}

// FrameReady reports whether a completed frame is waiting in the
// framebuffer. Reading it clears the flag, so each frame reports
// exactly once.
func (g *GameBoy) FrameReady() bool {
	if g.Bus.PPU.FrameComplete {
		g.Bus.PPU.FrameComplete = false
		return true
	}
	return false
}

// Framebuffer returns the 160x144 framebuffer of 2-bit shades,
// row-major, 0 lightest to 3 darkest.
func (g *GameBoy) Framebuffer() []byte {
	return g.Bus.PPU.Pixels()
}

// SetButton presses or releases one joypad button.
func (g *GameBoy) SetButton(b joypad.Button, pressed bool) {
	g.Bus.Joypad.SetButton(b, pressed)
}

// SetButtons replaces the whole joypad state at once.
func (g *GameBoy) SetButtons(buttons [8]bool) {
	g.Bus.Joypad.SetButtons(buttons)
}

// Title returns the loaded cartridge's title, or an empty string.
func (g *GameBoy) Title() string {
	if cart := g.Bus.Cartridge(); cart != nil {
		return cart.Title()
	}
	return ""
}

// HasBattery reports whether the loaded cartridge has battery-backed RAM
// worth persisting.
func (g *GameBoy) HasBattery() bool {
	cart := g.Bus.Cartridge()
	return cart != nil && cart.HasBattery()
}

// BatteryRAM returns a copy of the cartridge's external RAM.
func (g *GameBoy) BatteryRAM() []byte {
	if cart := g.Bus.Cartridge(); cart != nil {
		return cart.ExportRAM()
	}
	return nil
}

// LoadBatteryRAM restores previously persisted external RAM.
func (g *GameBoy) LoadBatteryRAM(data []byte) {
	if cart := g.Bus.Cartridge(); cart != nil {
		cart.ImportRAM(data)
	}
}
