package ppu

// Screen dimensions and scanline timing in 4 MiHz cycles.
const (
	ScreenWidth  = 160
	ScreenHeight = 144

	oamScanCycles   = 80
	transferCycles  = 172
	scanlineCycles  = 456
	visibleLines    = 144
	linesPerFrame   = 154
	spritesPerLine  = 10
	spriteCount     = 40
	spriteEntrySize = 4
)

// Mode is the PPU's current phase within a scanline.
type Mode byte

const (
	HBlank Mode = iota
	VBlank
	OAMScan
	PixelTransfer
)

// Memory gives the PPU access to video memory owned by the bus. Offsets
// are relative: VRAM 0x0000-0x1FFF, OAM 0x00-0x9F.
type Memory interface {
	ReadVRAM(offset uint16) byte
	ReadOAM(offset uint16) byte
}

// PPU walks the scanline state machine and composites background, window
// and sprite layers into a framebuffer of 2-bit shades. Interrupt requests
// surface as plain bool fields for the bus to collect.
type PPU struct {
	mem Memory

	// Registers 0xFF40-0xFF4B (0xFF46 is the bus's DMA register).
	lcdc byte
	stat byte // writable interrupt-enable bits only
	scy  byte
	scx  byte
	ly   byte
	lyc  byte
	bgp  byte
	obp0 byte
	obp1 byte
	wy   byte
	wx   byte

	mode       Mode
	dot        int  // cycle within the current scanline
	windowLine byte // internal window line counter
	statLine   bool // for rising-edge detection on the STAT line

	VBlankIRQ     bool
	StatIRQ       bool
	FrameComplete bool

	pixels [ScreenWidth * ScreenHeight]byte
}

// New creates a PPU reading video memory through mem.
func New(mem Memory) *PPU {
	return &PPU{mem: mem, mode: OAMScan}
}

// Pixels returns the framebuffer: one shade (0 lightest to 3 darkest) per
// pixel, row-major.
func (p *PPU) Pixels() []byte {
	return p.pixels[:]
}

// Mode returns the current scanline phase.
func (p *PPU) Mode() Mode {
	return p.mode
}

// LY returns the current scanline number.
func (p *PPU) LY() byte {
	return p.ly
}

func (p *PPU) enabled() bool {
	return p.lcdc&0x80 != 0
}

// Step advances the PPU by the given number of cycles.
func (p *PPU) Step(cycles int) {
	if !p.enabled() {
		return
	}
	for i := 0; i < cycles; i++ {
		p.tick()
	}
}

func (p *PPU) tick() {
	p.dot++

	if p.ly < visibleLines {
		switch p.dot {
		case oamScanCycles:
			p.setMode(PixelTransfer)
		case oamScanCycles + transferCycles:
			p.renderScanline()
			p.setMode(HBlank)
		case scanlineCycles:
			p.dot = 0
			p.ly++
			if p.ly == visibleLines {
				p.setMode(VBlank)
				p.VBlankIRQ = true
				p.FrameComplete = true
			} else {
				p.setMode(OAMScan)
			}
			p.updateStatLine()
		}
		return
	}

	if p.dot == scanlineCycles {
		p.dot = 0
		p.ly++
		if p.ly == linesPerFrame {
			p.ly = 0
			p.windowLine = 0
			p.setMode(OAMScan)
		}
		p.updateStatLine()
	}
}

func (p *PPU) setMode(m Mode) {
	p.mode = m
	p.updateStatLine()
}

// updateStatLine recomputes the STAT interrupt line and requests an
// interrupt on its rising edge. Conditions sharing the line means a second
// condition becoming true while one is already held does not re-trigger.
func (p *PPU) updateStatLine() {
	line := false
	switch {
	case p.mode == HBlank && p.stat&0x08 != 0:
		line = true
	case p.mode == VBlank && p.stat&0x10 != 0:
		line = true
	case p.mode == OAMScan && p.stat&0x20 != 0:
		line = true
	}
	if p.ly == p.lyc && p.stat&0x40 != 0 {
		line = true
	}
	if line && !p.statLine {
		p.StatIRQ = true
	}
	p.statLine = line
}

// Read returns the value of a PPU register.
func (p *PPU) Read(addr uint16) byte {
	switch addr {
	case 0xFF40:
		return p.lcdc
	case 0xFF41:
		v := 0x80 | p.stat | byte(p.mode)
		if p.ly == p.lyc {
			v |= 0x04
		}
		return v
	case 0xFF42:
		return p.scy
	case 0xFF43:
		return p.scx
	case 0xFF44:
		return p.ly
	case 0xFF45:
		return p.lyc
	case 0xFF47:
		return p.bgp
	case 0xFF48:
		return p.obp0
	case 0xFF49:
		return p.obp1
	case 0xFF4A:
		return p.wy
	case 0xFF4B:
		return p.wx
	}
	return 0xFF
}

// Write stores a value into a PPU register. LY is read-only.
func (p *PPU) Write(addr uint16, data byte) {
	switch addr {
	case 0xFF40:
		wasEnabled := p.enabled()
		p.lcdc = data
		if wasEnabled && !p.enabled() {
			// Switching the LCD off parks the PPU at the top of the
			// frame in HBlank; LY reads back 0 immediately.
			p.ly = 0
			p.dot = 0
			p.windowLine = 0
			p.mode = HBlank
			p.statLine = false
		} else if !wasEnabled && p.enabled() {
			p.setMode(OAMScan)
		}
	case 0xFF41:
		p.stat = data & 0x78
		p.updateStatLine()
	case 0xFF42:
		p.scy = data
	case 0xFF43:
		p.scx = data
	case 0xFF45:
		p.lyc = data
		p.updateStatLine()
	case 0xFF47:
		p.bgp = data
	case 0xFF48:
		p.obp0 = data
	case 0xFF49:
		p.obp1 = data
	case 0xFF4A:
		p.wy = data
	case 0xFF4B:
		p.wx = data
	}
}

// renderScanline composites the background, window and sprite layers for
// the current line into the framebuffer.
func (p *PPU) renderScanline() {
	// Background color indices before palette application; sprite
	// priority decisions need the raw index, not the shade.
	var bgIndex [ScreenWidth]byte

	windowDrawn := false
	for x := 0; x < ScreenWidth; x++ {
		var idx byte
		if p.lcdc&0x01 != 0 {
			if p.windowVisible(x) {
				idx = p.windowPixel(x)
				windowDrawn = true
			} else {
				idx = p.backgroundPixel(x)
			}
		}
		bgIndex[x] = idx
		p.pixels[int(p.ly)*ScreenWidth+x] = shade(p.bgp, idx)
	}
	if windowDrawn {
		p.windowLine++
	}

	if p.lcdc&0x02 != 0 {
		p.renderSprites(&bgIndex)
	}
}

func (p *PPU) windowVisible(x int) bool {
	return p.lcdc&0x20 != 0 && p.ly >= p.wy && x >= int(p.wx)-7
}

func (p *PPU) backgroundPixel(x int) byte {
	px := (x + int(p.scx)) & 0xFF
	py := (int(p.ly) + int(p.scy)) & 0xFF
	base := uint16(0x1800)
	if p.lcdc&0x08 != 0 {
		base = 0x1C00
	}
	return p.tilePixel(base, px, py)
}

func (p *PPU) windowPixel(x int) byte {
	px := x - (int(p.wx) - 7)
	py := int(p.windowLine)
	base := uint16(0x1800)
	if p.lcdc&0x40 != 0 {
		base = 0x1C00
	}
	return p.tilePixel(base, px, py)
}

// tilePixel fetches the 2-bit color index for a pixel from a tile map.
// mapBase is the VRAM-relative tile map address; px and py are pixel
// coordinates within the 256x256 layer.
func (p *PPU) tilePixel(mapBase uint16, px, py int) byte {
	tileID := p.mem.ReadVRAM(mapBase + uint16(py/8)*32 + uint16(px/8))

	var tileAddr uint16
	if p.lcdc&0x10 != 0 {
		tileAddr = uint16(tileID) * 16
	} else {
		tileAddr = uint16(0x1000 + int(int8(tileID))*16)
	}

	lo := p.mem.ReadVRAM(tileAddr + uint16(py%8)*2)
	hi := p.mem.ReadVRAM(tileAddr + uint16(py%8)*2 + 1)
	bit := uint(7 - px%8)
	return (hi>>bit&1)<<1 | lo>>bit&1
}

// sprite is one OAM entry plus its index for priority tie-breaking.
type sprite struct {
	y, x, tile, flags byte
	index             int
}

func (p *PPU) renderSprites(bgIndex *[ScreenWidth]byte) {
	height := 8
	if p.lcdc&0x04 != 0 {
		height = 16
	}

	// Hardware scans OAM in order and keeps the first ten sprites
	// overlapping the line.
	var line []sprite
	for i := 0; i < spriteCount && len(line) < spritesPerLine; i++ {
		off := uint16(i * spriteEntrySize)
		s := sprite{
			y:     p.mem.ReadOAM(off),
			x:     p.mem.ReadOAM(off + 1),
			tile:  p.mem.ReadOAM(off + 2),
			flags: p.mem.ReadOAM(off + 3),
			index: i,
		}
		row := int(p.ly) + 16 - int(s.y)
		if row >= 0 && row < height {
			line = append(line, s)
		}
	}

	for x := 0; x < ScreenWidth; x++ {
		best := -1
		var bestColor byte
		for i, s := range line {
			col := x + 8 - int(s.x)
			if col < 0 || col >= 8 {
				continue
			}
			if best >= 0 && !wins(s, line[best]) {
				continue
			}
			color := p.spritePixel(s, col, height)
			if color == 0 {
				continue
			}
			best = i
			bestColor = color
		}
		if best < 0 {
			continue
		}
		s := line[best]
		if s.flags&0x80 != 0 && bgIndex[x] != 0 {
			continue // behind non-zero background
		}
		pal := p.obp0
		if s.flags&0x10 != 0 {
			pal = p.obp1
		}
		p.pixels[int(p.ly)*ScreenWidth+x] = shade(pal, bestColor)
	}
}

// wins reports whether sprite a takes priority over b: smaller X first,
// then earlier OAM index.
func wins(a, b sprite) bool {
	if a.x != b.x {
		return a.x < b.x
	}
	return a.index < b.index
}

func (p *PPU) spritePixel(s sprite, col, height int) byte {
	row := int(p.ly) + 16 - int(s.y)
	if s.flags&0x40 != 0 {
		row = height - 1 - row
	}
	if s.flags&0x20 != 0 {
		col = 7 - col
	}

	tile := s.tile
	if height == 16 {
		tile &= 0xFE
		if row >= 8 {
			tile |= 0x01
			row -= 8
		}
	}

	addr := uint16(tile)*16 + uint16(row)*2
	lo := p.mem.ReadVRAM(addr)
	hi := p.mem.ReadVRAM(addr + 1)
	bit := uint(7 - col)
	return (hi>>bit&1)<<1 | lo>>bit&1
}

// shade applies a palette register to a 2-bit color index.
func shade(palette, index byte) byte {
	return palette >> (2 * index) & 0x03
}
