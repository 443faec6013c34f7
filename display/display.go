package display

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"

	"github.com/meadori/dotmatrix/gameboy"
	"github.com/meadori/dotmatrix/ppu"
	"github.com/meadori/dotmatrix/server"
)

const scale = 4

// Palettes for the four LCD shades, lightest first.
var palettes = map[string][4]color.RGBA{
	"green": {
		{0x9B, 0xBC, 0x0F, 0xFF},
		{0x8B, 0xAC, 0x0F, 0xFF},
		{0x30, 0x62, 0x30, 0xFF},
		{0x0F, 0x38, 0x0F, 0xFF},
	},
	"gray": {
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0xAA, 0xAA, 0xAA, 0xFF},
		{0x55, 0x55, 0x55, 0xFF},
		{0x00, 0x00, 0x00, 0xFF},
	},
}

// Palette returns the named palette, falling back to the classic green.
func Palette(name string) [4]color.RGBA {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["green"]
}

// Display runs the emulator inside an ebiten game loop and implements
// server.Machine so the gRPC side can poke at it.
type Display struct {
	gb         *gameboy.GameBoy
	grpcServer *server.GRPCServer
	palette    [4]color.RGBA

	frameImage *ebiten.Image
	framePix   []byte

	// TV static shown when no cartridge is loaded.
	staticImage *ebiten.Image
	staticPix   []byte

	mu            sync.Mutex
	paused        bool
	stepRequested bool

	// Input recording
	recordFile      *os.File
	lastButtons     [8]bool
	buttonHoldCount int
	firstFrame      bool

	romLoadChan chan string
}

// New creates a Display for the given machine.
func New(gb *gameboy.GameBoy, srv *server.GRPCServer, recFile *os.File, palette [4]color.RGBA) *Display {
	return &Display{
		gb:          gb,
		grpcServer:  srv,
		palette:     palette,
		frameImage:  ebiten.NewImage(ppu.ScreenWidth, ppu.ScreenHeight),
		framePix:    make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4),
		staticImage: ebiten.NewImage(ppu.ScreenWidth, ppu.ScreenHeight),
		staticPix:   make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4),
		recordFile:  recFile,
		firstFrame:  true,
		romLoadChan: make(chan string, 1),
	}
}

func (d *Display) loadROM(path string) {
	if err := d.gb.LoadROMFile(path); err != nil {
		log.Printf("Error loading ROM: %v", err)
		return
	}
	log.Printf("Loaded %q", d.gb.Title())
}

func (d *Display) writeRecord(frames int, b [8]bool) {
	names := []string{"A", "B", "SELECT", "START", "UP", "DOWN", "LEFT", "RIGHT"}
	var held []string
	for i, pressed := range b {
		if pressed {
			held = append(held, names[i])
		}
	}
	line := "NONE"
	if len(held) > 0 {
		line = strings.Join(held, "+")
	}
	fmt.Fprintf(d.recordFile, "%d %s\n", frames, line)
}

// Update runs one frame of emulation. It is called every tick (1/60 s by
// default), which matches the LCD's refresh rate closely enough.
func (d *Display) Update() error {
	select {
	case filename := <-d.romLoadChan:
		d.loadROM(filename)
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		go func() {
			filename, err := dialog.File().Filter("Game Boy ROM", "gb").Load()
			if err != nil {
				log.Println(err)
			} else {
				d.romLoadChan <- filename
			}
		}()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.gb.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := d.gb.SaveState("dotmatrix.state"); err != nil {
			log.Printf("Error saving state: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF7) {
		if err := d.gb.LoadState("dotmatrix.state"); err != nil {
			log.Printf("Error loading state: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		d.mu.Lock()
		d.paused = !d.paused
		d.mu.Unlock()
	}

	// Local keyboard ORed with the remote network input.
	remote := d.grpcServer.InputState()
	buttons := [8]bool{
		ebiten.IsKeyPressed(ebiten.KeyZ) || remote[0],          // A
		ebiten.IsKeyPressed(ebiten.KeyX) || remote[1],          // B
		ebiten.IsKeyPressed(ebiten.KeyShift) || remote[2],      // Select
		ebiten.IsKeyPressed(ebiten.KeyEnter) || remote[3],      // Start
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) || remote[4],    // Up
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) || remote[5],  // Down
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || remote[6],  // Left
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || remote[7], // Right
	}
	d.gb.SetButtons(buttons)

	if d.gb.Bus.Cartridge() == nil {
		for i := 0; i < len(d.staticPix); i += 4 {
			v := byte(rand.Intn(256))
			d.staticPix[i] = v
			d.staticPix[i+1] = v
			d.staticPix[i+2] = v
			d.staticPix[i+3] = 0xFF
		}
		d.staticImage.WritePixels(d.staticPix)
		return nil
	}

	if d.recordFile != nil {
		if d.firstFrame {
			d.lastButtons = buttons
			d.buttonHoldCount = 1
			d.firstFrame = false
		} else if buttons == d.lastButtons {
			d.buttonHoldCount++
		} else {
			d.writeRecord(d.buttonHoldCount, d.lastButtons)
			d.lastButtons = buttons
			d.buttonHoldCount = 1
		}
	}

	d.mu.Lock()
	paused := d.paused
	step := d.stepRequested
	d.stepRequested = false
	d.mu.Unlock()

	if paused {
		if step {
			d.gb.Step()
		}
	} else {
		d.gb.RunFrame()
	}

	d.blitFrame()
	return nil
}

// blitFrame converts the 2-bit framebuffer into RGBA pixels.
func (d *Display) blitFrame() {
	fb := d.gb.Framebuffer()
	for i, shade := range fb {
		c := d.palette[shade&0x03]
		d.framePix[i*4] = c.R
		d.framePix[i*4+1] = c.G
		d.framePix[i*4+2] = c.B
		d.framePix[i*4+3] = c.A
	}
	d.frameImage.WritePixels(d.framePix)
}

// Draw paints the current frame, scaled up.
func (d *Display) Draw(screen *ebiten.Image) {
	src := d.frameImage
	if d.gb.Bus.Cartridge() == nil {
		src = d.staticImage
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(src, op)

	d.mu.Lock()
	paused := d.paused
	d.mu.Unlock()
	if paused {
		ebitenutil.DebugPrint(screen, "PAUSED")
	}
}

// Layout returns the fixed logical screen size.
func (d *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.ScreenWidth * scale, ppu.ScreenHeight * scale
}

// ScaledWidth and ScaledHeight are the window dimensions.
func ScaledWidth() int {
	return ppu.ScreenWidth * scale
}

func ScaledHeight() int {
	return ppu.ScreenHeight * scale
}

// server.Machine implementation. These run on gRPC goroutines; the
// emulator itself is only mutated between frames, matching how the
// control flags are consumed in Update.

func (d *Display) Read(addr uint16) byte {
	return d.gb.Bus.Read(addr)
}

func (d *Display) ReadBlock(addr, size uint16) []byte {
	out := make([]byte, size)
	for i := uint16(0); i < size; i++ {
		out[i] = d.gb.Bus.Read(addr + i)
	}
	return out
}

func (d *Display) FramePixels() []byte {
	fb := d.gb.Framebuffer()
	out := make([]byte, len(fb))
	copy(out, fb)
	return out
}

func (d *Display) CPUState() (a, f, b, c, d2, e, h, l byte, sp, pc uint16, cycles uint64) {
	cpu := d.gb.CPU
	return cpu.A, cpu.F, cpu.B, cpu.C, cpu.D, cpu.E, cpu.H, cpu.L, cpu.SP, cpu.PC, cpu.Cycles
}

func (d *Display) LoadState(filename string) error {
	return d.gb.LoadState(filename)
}

func (d *Display) Reset() {
	d.gb.Reset()
}

func (d *Display) SetPaused(p bool) {
	d.mu.Lock()
	d.paused = p
	d.mu.Unlock()
}

func (d *Display) RequestStep() {
	d.mu.Lock()
	d.stepRequested = true
	d.mu.Unlock()
}
