package ppu

import "testing"

// testMemory is a flat VRAM/OAM backing store for PPU tests.
type testMemory struct {
	vram [0x2000]byte
	oam  [0xA0]byte
}

func (m *testMemory) ReadVRAM(offset uint16) byte { return m.vram[offset] }
func (m *testMemory) ReadOAM(offset uint16) byte  { return m.oam[offset] }

func newTestPPU() (*PPU, *testMemory) {
	mem := &testMemory{}
	p := New(mem)
	p.Write(0xFF40, 0x91) // LCD on, BG on, tile data at 0x8000
	p.Write(0xFF47, 0xE4) // identity-ish background palette
	return p, mem
}

func TestModeSequence(t *testing.T) {
	p, _ := newTestPPU()

	if p.Mode() != OAMScan {
		t.Fatalf("initial mode = %d, want OAMScan", p.Mode())
	}

	p.Step(oamScanCycles)
	if p.Mode() != PixelTransfer {
		t.Errorf("mode after %d cycles = %d, want PixelTransfer", oamScanCycles, p.Mode())
	}

	p.Step(transferCycles)
	if p.Mode() != HBlank {
		t.Errorf("mode after transfer = %d, want HBlank", p.Mode())
	}

	p.Step(scanlineCycles - oamScanCycles - transferCycles)
	if p.Mode() != OAMScan {
		t.Errorf("mode at next scanline = %d, want OAMScan", p.Mode())
	}
	if p.LY() != 1 {
		t.Errorf("LY after one scanline = %d, want 1", p.LY())
	}
}

func TestVBlankOncePerFrame(t *testing.T) {
	p, _ := newTestPPU()

	vblanks := 0
	for i := 0; i < linesPerFrame*scanlineCycles; i++ {
		p.Step(1)
		if p.VBlankIRQ {
			p.VBlankIRQ = false
			vblanks++
		}
	}
	if vblanks != 1 {
		t.Errorf("VBlank interrupts per frame = %d, want 1", vblanks)
	}
	if !p.FrameComplete {
		t.Error("FrameComplete = false after a full frame")
	}
	if p.LY() != 0 {
		t.Errorf("LY after a full frame = %d, want 0", p.LY())
	}
}

func TestVBlankEntry(t *testing.T) {
	p, _ := newTestPPU()

	p.Step(visibleLines * scanlineCycles)
	if p.Mode() != VBlank {
		t.Errorf("mode at line 144 = %d, want VBlank", p.Mode())
	}
	if p.LY() != visibleLines {
		t.Errorf("LY = %d, want %d", p.LY(), visibleLines)
	}
	if !p.VBlankIRQ {
		t.Error("VBlankIRQ not raised on VBlank entry")
	}
}

func TestCoincidenceInterrupt(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(0xFF45, 5)    // LYC
	p.Write(0xFF41, 0x40) // LYC interrupt enable

	p.Step(4 * scanlineCycles)
	p.StatIRQ = false
	if p.Read(0xFF41)&0x04 != 0 {
		t.Error("coincidence flag set while LY != LYC")
	}

	p.Step(scanlineCycles)
	if p.LY() != 5 {
		t.Fatalf("LY = %d, want 5", p.LY())
	}
	if p.Read(0xFF41)&0x04 == 0 {
		t.Error("coincidence flag clear while LY == LYC")
	}
	if !p.StatIRQ {
		t.Error("StatIRQ not raised on LY == LYC")
	}
}

func TestStatLineEdgeTriggered(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(0xFF41, 0x08) // HBlank interrupt enable

	p.Step(oamScanCycles + transferCycles)
	if !p.StatIRQ {
		t.Fatal("StatIRQ not raised on HBlank entry")
	}
	p.StatIRQ = false

	// Still in HBlank: the held line must not re-trigger.
	p.Step(10)
	if p.StatIRQ {
		t.Error("StatIRQ re-raised while the condition was held")
	}
}

func TestDisabledLCDHoldsStill(t *testing.T) {
	p, _ := newTestPPU()
	p.Step(scanlineCycles * 3)
	p.Write(0xFF40, 0x11) // LCD off

	if p.LY() != 0 {
		t.Errorf("LY after disabling = %d, want 0", p.LY())
	}
	p.Step(scanlineCycles * 10)
	if p.LY() != 0 || p.VBlankIRQ {
		t.Error("PPU advanced while the LCD was off")
	}
}

func TestSTATReadUpperBitAndMode(t *testing.T) {
	p, _ := newTestPPU()
	if got := p.Read(0xFF41); got&0x80 == 0 {
		t.Errorf("STAT = %#02x, want bit 7 set", got)
	}
	if got := p.Read(0xFF41) & 0x03; got != byte(OAMScan) {
		t.Errorf("STAT mode bits = %d, want %d", got, OAMScan)
	}
}

// fillTile writes a solid tile of the given color index into VRAM.
func fillTile(mem *testMemory, tile int, color byte) {
	var lo, hi byte
	if color&0x01 != 0 {
		lo = 0xFF
	}
	if color&0x02 != 0 {
		hi = 0xFF
	}
	for row := 0; row < 8; row++ {
		mem.vram[tile*16+row*2] = lo
		mem.vram[tile*16+row*2+1] = hi
	}
}

func TestBackgroundRendering(t *testing.T) {
	p, mem := newTestPPU()
	fillTile(mem, 1, 3)
	mem.vram[0x1800] = 1 // tile map entry (0,0)

	p.Step(scanlineCycles) // render line 0

	pix := p.Pixels()
	// BGP 0xE4 maps color 3 to shade 3 and color 0 to shade 0.
	if pix[0] != 3 {
		t.Errorf("pixel (0,0) = %d, want 3", pix[0])
	}
	if pix[8] != 0 {
		t.Errorf("pixel (8,0) = %d, want 0", pix[8])
	}
}

func TestSpriteOverBackground(t *testing.T) {
	p, mem := newTestPPU()
	p.Write(0xFF40, 0x93) // LCD, BG, sprites on
	p.Write(0xFF48, 0xE4) // OBP0

	fillTile(mem, 2, 1)
	// Sprite at screen (0,0): OAM y=16, x=8.
	mem.oam[0] = 16
	mem.oam[1] = 8
	mem.oam[2] = 2
	mem.oam[3] = 0

	p.Step(scanlineCycles)

	if got := p.Pixels()[0]; got != 1 {
		t.Errorf("sprite pixel = %d, want 1", got)
	}
}

func TestSpritePriorityByX(t *testing.T) {
	p, mem := newTestPPU()
	p.Write(0xFF40, 0x93)
	p.Write(0xFF48, 0xE4)
	p.Write(0xFF49, 0xE4)

	fillTile(mem, 2, 1)
	fillTile(mem, 3, 2)

	// Later OAM entry but smaller X: it wins where they overlap.
	mem.oam[0], mem.oam[1], mem.oam[2], mem.oam[3] = 16, 10, 2, 0
	mem.oam[4], mem.oam[5], mem.oam[6], mem.oam[7] = 16, 8, 3, 0x10

	p.Step(scanlineCycles)

	if got := p.Pixels()[4]; got != 2 {
		t.Errorf("overlapping pixel = %d, want 2 (smaller X wins)", got)
	}
}

func TestSpriteLimitPerScanline(t *testing.T) {
	p, mem := newTestPPU()
	p.Write(0xFF40, 0x93)
	p.Write(0xFF48, 0xE4)

	fillTile(mem, 2, 1)
	// Twelve sprites on line 0, spread across X so each is visible.
	for i := 0; i < 12; i++ {
		mem.oam[i*4] = 16
		mem.oam[i*4+1] = byte(8 + i*10)
		mem.oam[i*4+2] = 2
		mem.oam[i*4+3] = 0
	}

	p.Step(scanlineCycles)

	pix := p.Pixels()
	if pix[9*10] != 1 {
		t.Errorf("tenth sprite not drawn: pixel = %d, want 1", pix[9*10])
	}
	if pix[10*10] != 0 {
		t.Errorf("eleventh sprite drawn: pixel = %d, want 0", pix[10*10])
	}
	if pix[11*10] != 0 {
		t.Errorf("twelfth sprite drawn: pixel = %d, want 0", pix[11*10])
	}
}

func TestWindowOverridesBackground(t *testing.T) {
	p, mem := newTestPPU()
	p.Write(0xFF40, 0xF1) // LCD, BG, window on; window map at 0x9C00
	fillTile(mem, 1, 3)
	fillTile(mem, 2, 1)
	// Background shows tile 1 everywhere; the window map shows tile 2.
	for i := 0; i < 32*32; i++ {
		mem.vram[0x1800+i] = 1
		mem.vram[0x1C00+i] = 2
	}
	p.Write(0xFF4A, 0) // WY
	p.Write(0xFF4B, 7) // WX: window starts at x=0

	p.Step(scanlineCycles)

	if got := p.Pixels()[0]; got != 1 {
		t.Errorf("window pixel = %d, want 1", got)
	}
}

func TestSaveLoadState(t *testing.T) {
	p, _ := newTestPPU()
	p.Step(scanlineCycles*3 + 100)
	s := p.SaveState()

	q, _ := newTestPPU()
	q.LoadState(s)
	if q.LY() != p.LY() || q.Mode() != p.Mode() {
		t.Errorf("restored LY/mode = %d/%d, want %d/%d", q.LY(), q.Mode(), p.LY(), p.Mode())
	}
}
