package ppu

type State struct {
	LCDC, STAT, SCY, SCX, LY, LYC, BGP, OBP0, OBP1, WY, WX byte
	Mode                                                   byte
	Dot                                                    int
	WindowLine                                             byte
	StatLine                                               bool
	VBlankIRQ, StatIRQ, FrameComplete                      bool
	Pixels                                                 []byte
}

func (p *PPU) SaveState() State {
	fb := make([]byte, len(p.pixels))
	copy(fb, p.pixels[:])

	return State{
		p.lcdc, p.stat, p.scy, p.scx, p.ly, p.lyc, p.bgp, p.obp0, p.obp1, p.wy, p.wx,
		byte(p.mode), p.dot, p.windowLine, p.statLine,
		p.VBlankIRQ, p.StatIRQ, p.FrameComplete,
		fb,
	}
}

func (p *PPU) LoadState(s State) {
	p.lcdc, p.stat, p.scy, p.scx, p.ly, p.lyc, p.bgp, p.obp0, p.obp1, p.wy, p.wx = s.LCDC, s.STAT, s.SCY, s.SCX, s.LY, s.LYC, s.BGP, s.OBP0, s.OBP1, s.WY, s.WX
	p.mode, p.dot, p.windowLine, p.statLine = Mode(s.Mode), s.Dot, s.WindowLine, s.StatLine
	p.VBlankIRQ, p.StatIRQ, p.FrameComplete = s.VBlankIRQ, s.StatIRQ, s.FrameComplete

	if len(s.Pixels) == len(p.pixels) {
		copy(p.pixels[:], s.Pixels)
	}
}
