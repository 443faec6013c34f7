package cpu

import "fmt"

// createCBLookupTable builds the 0xCB-prefixed instruction table: rotates
// and shifts in the first quarter, then BIT, RES and SET over every
// register slot. Cycle counts here are totals for the prefixed
// instruction.
func (c *CPU) createCBLookupTable() [256]Instruction {
	var table [256]Instruction
	ops := c.operands()

	shifts := []struct {
		name string
		fn   func(byte) byte
	}{
		{"RLC", c.rlc}, {"RRC", c.rrc}, {"RL", c.rl}, {"RR", c.rr},
		{"SLA", c.sla}, {"SRA", c.sra}, {"SWAP", c.swap}, {"SRL", c.srl},
	}
	for i, sh := range shifts {
		sh := sh
		for slot := 0; slot < 8; slot++ {
			cycles := 8
			if slot == memSlot {
				cycles = 16
			}
			r := ops[slot]
			table[i*8+slot] = Instruction{
				sh.name + " " + r.name,
				func() int { r.set(sh.fn(r.get())); return 0 },
				cycles,
			}
		}
	}

	for bit := 0; bit < 8; bit++ {
		mask := byte(1) << uint(bit)
		for slot := 0; slot < 8; slot++ {
			mask := mask
			r := ops[slot]

			bitCycles := 8
			writeCycles := 8
			if slot == memSlot {
				bitCycles = 12 // BIT only reads (HL)
				writeCycles = 16
			}

			table[0x40+bit*8+slot] = Instruction{
				fmt.Sprintf("BIT %d,%s", bit, r.name),
				func() int {
					c.setFlag(FlagZ, r.get()&mask == 0)
					c.setFlag(FlagN, false)
					c.setFlag(FlagH, true)
					return 0
				},
				bitCycles,
			}
			table[0x80+bit*8+slot] = Instruction{
				fmt.Sprintf("RES %d,%s", bit, r.name),
				func() int { r.set(r.get() &^ mask); return 0 },
				writeCycles,
			}
			table[0xC0+bit*8+slot] = Instruction{
				fmt.Sprintf("SET %d,%s", bit, r.name),
				func() int { r.set(r.get() | mask); return 0 },
				writeCycles,
			}
		}
	}

	return table
}

// Shift and rotate primitives. All set Z from the result; the A-register
// rotate opcodes outside the CB table override Z afterwards.

func (c *CPU) rlc(v byte) byte {
	r := v<<1 | v>>7
	c.setShiftFlags(r, v&0x80 != 0)
	return r
}

func (c *CPU) rrc(v byte) byte {
	r := v>>1 | v<<7
	c.setShiftFlags(r, v&0x01 != 0)
	return r
}

func (c *CPU) rl(v byte) byte {
	r := v << 1
	if c.flag(FlagC) {
		r |= 0x01
	}
	c.setShiftFlags(r, v&0x80 != 0)
	return r
}

func (c *CPU) rr(v byte) byte {
	r := v >> 1
	if c.flag(FlagC) {
		r |= 0x80
	}
	c.setShiftFlags(r, v&0x01 != 0)
	return r
}

func (c *CPU) sla(v byte) byte {
	r := v << 1
	c.setShiftFlags(r, v&0x80 != 0)
	return r
}

// sra shifts right keeping the sign bit.
func (c *CPU) sra(v byte) byte {
	r := v>>1 | v&0x80
	c.setShiftFlags(r, v&0x01 != 0)
	return r
}

func (c *CPU) swap(v byte) byte {
	r := v<<4 | v>>4
	c.setShiftFlags(r, false)
	return r
}

func (c *CPU) srl(v byte) byte {
	r := v >> 1
	c.setShiftFlags(r, v&0x01 != 0)
	return r
}

func (c *CPU) setShiftFlags(result byte, carry bool) {
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, carry)
}
