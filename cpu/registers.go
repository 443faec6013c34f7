package cpu

// Flag bits in the F register. The low nibble of F does not exist.
const (
	FlagZ byte = 0x80 // zero
	FlagN byte = 0x40 // subtraction
	FlagH byte = 0x20 // half carry
	FlagC byte = 0x10 // carry
)

// AF returns the A and F registers as a 16-bit pair.
func (c *CPU) AF() uint16 {
	return uint16(c.A)<<8 | uint16(c.F)
}

// SetAF stores a 16-bit value into the AF pair. The low nibble of F is
// not wired and always reads zero.
func (c *CPU) SetAF(v uint16) {
	c.A = byte(v >> 8)
	c.F = byte(v) & 0xF0
}

func (c *CPU) BC() uint16 {
	return uint16(c.B)<<8 | uint16(c.C)
}

func (c *CPU) SetBC(v uint16) {
	c.B = byte(v >> 8)
	c.C = byte(v)
}

func (c *CPU) DE() uint16 {
	return uint16(c.D)<<8 | uint16(c.E)
}

func (c *CPU) SetDE(v uint16) {
	c.D = byte(v >> 8)
	c.E = byte(v)
}

func (c *CPU) HL() uint16 {
	return uint16(c.H)<<8 | uint16(c.L)
}

func (c *CPU) SetHL(v uint16) {
	c.H = byte(v >> 8)
	c.L = byte(v)
}

func (c *CPU) flag(f byte) bool {
	return c.F&f != 0
}

func (c *CPU) setFlag(f byte, v bool) {
	if v {
		c.F |= f
	} else {
		c.F &^= f
	}
}
