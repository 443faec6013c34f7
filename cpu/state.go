package cpu

type State struct {
	A, F, B, C, D, E, H, L   byte
	SP, PC                   uint16
	IME, IMEScheduled        bool
	Halted, Stopped, HaltBug bool
	Cycles                   uint64
}

func (c *CPU) SaveState() State {
	return State{
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L,
		c.SP, c.PC,
		c.IME, c.imeScheduled,
		c.halted, c.stopped, c.haltBug,
		c.Cycles,
	}
}

func (c *CPU) LoadState(s State) {
	c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L = s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L
	c.SP, c.PC = s.SP, s.PC
	c.IME, c.imeScheduled = s.IME, s.IMEScheduled
	c.halted, c.stopped, c.haltBug = s.Halted, s.Stopped, s.HaltBug
	c.Cycles = s.Cycles
}
