package cpu

import (
	"fmt"

	"github.com/meadori/dotmatrix/interrupt"
)

// Instruction represents an SM83 instruction. Operate returns the extra
// cycles consumed by a taken branch.
type Instruction struct {
	Name    string
	Operate func() int
	Cycles  int
}

// operand is one of the eight register slots shared by most opcode rows,
// in encoding order: B, C, D, E, H, L, (HL), A.
type operand struct {
	name string
	get  func() byte
	set  func(byte)
}

func (c *CPU) operands() [8]operand {
	return [8]operand{
		{"B", func() byte { return c.B }, func(v byte) { c.B = v }},
		{"C", func() byte { return c.C }, func(v byte) { c.C = v }},
		{"D", func() byte { return c.D }, func(v byte) { c.D = v }},
		{"E", func() byte { return c.E }, func(v byte) { c.E = v }},
		{"H", func() byte { return c.H }, func(v byte) { c.H = v }},
		{"L", func() byte { return c.L }, func(v byte) { c.L = v }},
		{"(HL)", func() byte { return c.bus.Read(c.HL()) }, func(v byte) { c.bus.Write(c.HL(), v) }},
		{"A", func() byte { return c.A }, func(v byte) { c.A = v }},
	}
}

const memSlot = 6 // index of (HL) in the operand table

func (c *CPU) createLookupTable() [256]Instruction {
	var table [256]Instruction
	set := func(op byte, name string, cycles int, fn func() int) {
		table[op] = Instruction{name, fn, cycles}
	}
	nop := func() int { return 0 }

	ops := c.operands()

	// LD r,r' block (0x40-0x7F); 0x76 is HALT.
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := byte(0x40 + dst*8 + src)
			if op == 0x76 {
				continue
			}
			cycles := 4
			if dst == memSlot || src == memSlot {
				cycles = 8
			}
			d, s := ops[dst], ops[src]
			set(op, "LD "+d.name+","+s.name, cycles, func() int {
				d.set(s.get())
				return 0
			})
		}
	}

	// ALU block (0x80-0xBF) and the immediate forms.
	alu := []struct {
		name string
		fn   func(byte)
	}{
		{"ADD", c.add}, {"ADC", c.adc}, {"SUB", c.sub}, {"SBC", c.sbc},
		{"AND", c.and}, {"XOR", c.xor}, {"OR", c.or}, {"CP", c.cp},
	}
	for i, a := range alu {
		a := a
		for src := 0; src < 8; src++ {
			cycles := 4
			if src == memSlot {
				cycles = 8
			}
			s := ops[src]
			set(byte(0x80+i*8+src), a.name+" "+s.name, cycles, func() int {
				a.fn(s.get())
				return 0
			})
		}
		set(byte(0xC6+i*8), a.name+" n", 8, func() int {
			a.fn(c.imm8())
			return 0
		})
	}

	// INC r, DEC r, LD r,n rows.
	for i := 0; i < 8; i++ {
		r := ops[i]
		cycles, ldCycles := 4, 8
		if i == memSlot {
			cycles, ldCycles = 12, 12
		}
		set(byte(0x04+i*8), "INC "+r.name, cycles, func() int {
			r.set(c.inc8(r.get()))
			return 0
		})
		set(byte(0x05+i*8), "DEC "+r.name, cycles, func() int {
			r.set(c.dec8(r.get()))
			return 0
		})
		set(byte(0x06+i*8), "LD "+r.name+",n", ldCycles, func() int {
			r.set(c.imm8())
			return 0
		})
	}

	// 16-bit register pair rows: BC, DE, HL, SP.
	pairs := []struct {
		name string
		get  func() uint16
		set  func(uint16)
	}{
		{"BC", c.BC, c.SetBC},
		{"DE", c.DE, c.SetDE},
		{"HL", c.HL, c.SetHL},
		{"SP", func() uint16 { return c.SP }, func(v uint16) { c.SP = v }},
	}
	for i, p := range pairs {
		p := p
		set(byte(0x01+i*0x10), "LD "+p.name+",nn", 12, func() int {
			p.set(c.imm16())
			return 0
		})
		set(byte(0x03+i*0x10), "INC "+p.name, 8, func() int {
			p.set(p.get() + 1)
			return 0
		})
		set(byte(0x09+i*0x10), "ADD HL,"+p.name, 8, func() int {
			c.addHL(p.get())
			return 0
		})
		set(byte(0x0B+i*0x10), "DEC "+p.name, 8, func() int {
			p.set(p.get() - 1)
			return 0
		})
	}

	// PUSH/POP rows: BC, DE, HL, AF.
	stackPairs := []struct {
		name string
		get  func() uint16
		set  func(uint16)
	}{
		{"BC", c.BC, c.SetBC},
		{"DE", c.DE, c.SetDE},
		{"HL", c.HL, c.SetHL},
		{"AF", c.AF, c.SetAF},
	}
	for i, p := range stackPairs {
		p := p
		set(byte(0xC5+i*0x10), "PUSH "+p.name, 16, func() int {
			c.push16(p.get())
			return 0
		})
		set(byte(0xC1+i*0x10), "POP "+p.name, 12, func() int {
			p.set(c.pop16())
			return 0
		})
	}

	// Indirect accumulator loads.
	set(0x02, "LD (BC),A", 8, func() int { c.bus.Write(c.BC(), c.A); return 0 })
	set(0x12, "LD (DE),A", 8, func() int { c.bus.Write(c.DE(), c.A); return 0 })
	set(0x22, "LD (HL+),A", 8, func() int { c.bus.Write(c.HL(), c.A); c.SetHL(c.HL() + 1); return 0 })
	set(0x32, "LD (HL-),A", 8, func() int { c.bus.Write(c.HL(), c.A); c.SetHL(c.HL() - 1); return 0 })
	set(0x0A, "LD A,(BC)", 8, func() int { c.A = c.bus.Read(c.BC()); return 0 })
	set(0x1A, "LD A,(DE)", 8, func() int { c.A = c.bus.Read(c.DE()); return 0 })
	set(0x2A, "LD A,(HL+)", 8, func() int { c.A = c.bus.Read(c.HL()); c.SetHL(c.HL() + 1); return 0 })
	set(0x3A, "LD A,(HL-)", 8, func() int { c.A = c.bus.Read(c.HL()); c.SetHL(c.HL() - 1); return 0 })

	// High-page and absolute accumulator loads.
	set(0xE0, "LDH (n),A", 12, func() int { c.bus.Write(0xFF00+uint16(c.imm8()), c.A); return 0 })
	set(0xF0, "LDH A,(n)", 12, func() int { c.A = c.bus.Read(0xFF00 + uint16(c.imm8())); return 0 })
	set(0xE2, "LD (C),A", 8, func() int { c.bus.Write(0xFF00+uint16(c.C), c.A); return 0 })
	set(0xF2, "LD A,(C)", 8, func() int { c.A = c.bus.Read(0xFF00 + uint16(c.C)); return 0 })
	set(0xEA, "LD (nn),A", 16, func() int { c.bus.Write(c.imm16(), c.A); return 0 })
	set(0xFA, "LD A,(nn)", 16, func() int { c.A = c.bus.Read(c.imm16()); return 0 })

	// Stack pointer specials.
	set(0x08, "LD (nn),SP", 20, func() int {
		addr := c.imm16()
		c.bus.Write(addr, byte(c.SP))
		c.bus.Write(addr+1, byte(c.SP>>8))
		return 0
	})
	set(0xF9, "LD SP,HL", 8, func() int { c.SP = c.HL(); return 0 })
	set(0xE8, "ADD SP,e", 16, func() int { c.SP = c.addSP(c.imm8()); return 0 })
	set(0xF8, "LD HL,SP+e", 12, func() int { c.SetHL(c.addSP(c.imm8())); return 0 })

	// Rotates on A; unlike the CB forms these always clear Z.
	set(0x07, "RLCA", 4, func() int { c.A = c.rlc(c.A); c.setFlag(FlagZ, false); return 0 })
	set(0x0F, "RRCA", 4, func() int { c.A = c.rrc(c.A); c.setFlag(FlagZ, false); return 0 })
	set(0x17, "RLA", 4, func() int { c.A = c.rl(c.A); c.setFlag(FlagZ, false); return 0 })
	set(0x1F, "RRA", 4, func() int { c.A = c.rr(c.A); c.setFlag(FlagZ, false); return 0 })

	set(0x27, "DAA", 4, func() int { c.daa(); return 0 })
	set(0x2F, "CPL", 4, func() int {
		c.A = ^c.A
		c.setFlag(FlagN, true)
		c.setFlag(FlagH, true)
		return 0
	})
	set(0x37, "SCF", 4, func() int {
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
		c.setFlag(FlagC, true)
		return 0
	})
	set(0x3F, "CCF", 4, func() int {
		c.setFlag(FlagN, false)
		c.setFlag(FlagH, false)
		c.setFlag(FlagC, !c.flag(FlagC))
		return 0
	})

	// Jumps, calls and returns. Condition order: NZ, Z, NC, C.
	conds := []struct {
		name string
		met  func() bool
	}{
		{"NZ", func() bool { return !c.flag(FlagZ) }},
		{"Z", func() bool { return c.flag(FlagZ) }},
		{"NC", func() bool { return !c.flag(FlagC) }},
		{"C", func() bool { return c.flag(FlagC) }},
	}
	set(0x18, "JR e", 12, func() int { c.jr(c.imm8()); return 0 })
	set(0xC3, "JP nn", 16, func() int { c.PC = c.imm16(); return 0 })
	set(0xE9, "JP HL", 4, func() int { c.PC = c.HL(); return 0 })
	set(0xCD, "CALL nn", 24, func() int {
		addr := c.imm16()
		c.push16(c.PC)
		c.PC = addr
		return 0
	})
	set(0xC9, "RET", 16, func() int { c.PC = c.pop16(); return 0 })
	set(0xD9, "RETI", 16, func() int {
		c.PC = c.pop16()
		c.IME = true
		return 0
	})
	for i, cond := range conds {
		cond := cond
		set(byte(0x20+i*8), "JR "+cond.name+",e", 8, func() int {
			e := c.imm8()
			if !cond.met() {
				return 0
			}
			c.jr(e)
			return 4
		})
		set(byte(0xC2+i*8), "JP "+cond.name+",nn", 12, func() int {
			addr := c.imm16()
			if !cond.met() {
				return 0
			}
			c.PC = addr
			return 4
		})
		set(byte(0xC4+i*8), "CALL "+cond.name+",nn", 12, func() int {
			addr := c.imm16()
			if !cond.met() {
				return 0
			}
			c.push16(c.PC)
			c.PC = addr
			return 12
		})
		set(byte(0xC0+i*8), "RET "+cond.name, 8, func() int {
			if !cond.met() {
				return 0
			}
			c.PC = c.pop16()
			return 12
		})
	}
	for i := 0; i < 8; i++ {
		target := uint16(i * 8)
		set(byte(0xC7+i*8), fmt.Sprintf("RST %02XH", target), 16, func() int {
			c.push16(c.PC)
			c.PC = target
			return 0
		})
	}

	// Interrupt and power control.
	set(0x00, "NOP", 4, nop)
	set(0xF3, "DI", 4, func() int {
		c.IME = false
		c.imeScheduled = false
		return 0
	})
	set(0xFB, "EI", 4, func() int {
		c.imeScheduled = true
		return 0
	})
	set(0x76, "HALT", 4, func() int {
		if !c.IME && c.interrupts.Pending() != interrupt.None {
			// HALT with IME off and an interrupt already pending is
			// skipped, and the next opcode fetch fails to advance PC.
			c.haltBug = true
			return 0
		}
		c.halted = true
		return 0
	})
	set(0x10, "STOP", 4, func() int {
		c.imm8() // STOP is encoded as two bytes
		c.stopped = true
		return 0
	})

	// Unassigned opcodes hang real hardware; treat them as four-cycle
	// no-ops so a runaway program cannot wedge the frame loop.
	for _, op := range []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		set(op, "??", 4, nop)
	}

	set(0xCB, "PREFIX", 0, func() int {
		in := c.cbLookup[c.imm8()]
		return in.Cycles + in.Operate()
	})

	return table
}

// jr applies a signed relative displacement to PC.
func (c *CPU) jr(e byte) {
	c.PC = uint16(int32(c.PC) + int32(int8(e)))
}

// 8-bit ALU. All of these read and write the accumulator and flags.

func (c *CPU) add(v byte) {
	r := uint16(c.A) + uint16(v)
	c.setFlag(FlagZ, byte(r) == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, c.A&0x0F+v&0x0F > 0x0F)
	c.setFlag(FlagC, r > 0xFF)
	c.A = byte(r)
}

func (c *CPU) adc(v byte) {
	var carry byte
	if c.flag(FlagC) {
		carry = 1
	}
	r := uint16(c.A) + uint16(v) + uint16(carry)
	c.setFlag(FlagZ, byte(r) == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, c.A&0x0F+v&0x0F+carry > 0x0F)
	c.setFlag(FlagC, r > 0xFF)
	c.A = byte(r)
}

func (c *CPU) sub(v byte) {
	c.A = c.subCommon(v, 0)
}

func (c *CPU) sbc(v byte) {
	var carry byte
	if c.flag(FlagC) {
		carry = 1
	}
	c.A = c.subCommon(v, carry)
}

// cp is SUB with the result discarded.
func (c *CPU) cp(v byte) {
	c.subCommon(v, 0)
}

func (c *CPU) subCommon(v, carry byte) byte {
	r := int16(c.A) - int16(v) - int16(carry)
	c.setFlag(FlagZ, byte(r) == 0)
	c.setFlag(FlagN, true)
	c.setFlag(FlagH, int16(c.A&0x0F)-int16(v&0x0F)-int16(carry) < 0)
	c.setFlag(FlagC, r < 0)
	return byte(r)
}

func (c *CPU) and(v byte) {
	c.A &= v
	c.setFlag(FlagZ, c.A == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, true)
	c.setFlag(FlagC, false)
}

func (c *CPU) xor(v byte) {
	c.A ^= v
	c.setFlag(FlagZ, c.A == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, false)
}

func (c *CPU) or(v byte) {
	c.A |= v
	c.setFlag(FlagZ, c.A == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, false)
}

// inc8 and dec8 leave the carry flag alone.

func (c *CPU) inc8(v byte) byte {
	r := v + 1
	c.setFlag(FlagZ, r == 0)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, v&0x0F == 0x0F)
	return r
}

func (c *CPU) dec8(v byte) byte {
	r := v - 1
	c.setFlag(FlagZ, r == 0)
	c.setFlag(FlagN, true)
	c.setFlag(FlagH, v&0x0F == 0)
	return r
}

// addHL adds a 16-bit value into HL; Z is untouched.
func (c *CPU) addHL(v uint16) {
	hl := c.HL()
	r := uint32(hl) + uint32(v)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, hl&0x0FFF+v&0x0FFF > 0x0FFF)
	c.setFlag(FlagC, r > 0xFFFF)
	c.SetHL(uint16(r))
}

// addSP adds a signed immediate to SP; H and C come from the unsigned
// low-byte addition, Z and N are always clear.
func (c *CPU) addSP(e byte) uint16 {
	offset := uint16(int16(int8(e)))
	r := c.SP + offset
	c.setFlag(FlagZ, false)
	c.setFlag(FlagN, false)
	c.setFlag(FlagH, c.SP&0x0F+offset&0x0F > 0x0F)
	c.setFlag(FlagC, c.SP&0xFF+offset&0xFF > 0xFF)
	return r
}

// daa adjusts A back to binary-coded decimal after an ADD or SUB.
func (c *CPU) daa() {
	a := c.A
	carry := c.flag(FlagC)
	var adjust byte
	if c.flag(FlagH) || (!c.flag(FlagN) && a&0x0F > 0x09) {
		adjust |= 0x06
	}
	if carry || (!c.flag(FlagN) && a > 0x99) {
		adjust |= 0x60
		carry = true
	}
	if c.flag(FlagN) {
		a -= adjust
	} else {
		a += adjust
	}
	c.A = a
	c.setFlag(FlagZ, a == 0)
	c.setFlag(FlagH, false)
	c.setFlag(FlagC, carry)
}
