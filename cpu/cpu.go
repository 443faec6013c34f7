package cpu

import "github.com/meadori/dotmatrix/interrupt"

// Bus defines the interface for the CPU to interact with the bus.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

// CPU represents the SM83 core.
type CPU struct {
	// Registers
	A, F byte
	B, C byte
	D, E byte
	H, L byte
	SP   uint16
	PC   uint16

	// Interrupt master enable. EI turns it on with a one-instruction
	// delay, tracked by imeScheduled.
	IME          bool
	imeScheduled bool

	halted  bool
	stopped bool
	haltBug bool

	// Total cycles executed since reset.
	Cycles uint64

	bus        Bus
	interrupts *interrupt.Controller

	lookup   [256]Instruction
	cbLookup [256]Instruction
}

// New creates a new CPU instance.
func New(bus Bus, interrupts *interrupt.Controller) *CPU {
	c := &CPU{bus: bus, interrupts: interrupts}
	c.lookup = c.createLookupTable()
	c.cbLookup = c.createCBLookupTable()
	c.Reset()
	return c
}

// Reset puts the registers into their state at the end of the boot ROM,
// with execution about to start at the cartridge entry point.
func (c *CPU) Reset() {
	c.A, c.F = 0x01, 0xB0
	c.B, c.C = 0x00, 0x13
	c.D, c.E = 0x00, 0xD8
	c.H, c.L = 0x01, 0x4D
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.IME = false
	c.imeScheduled = false
	c.halted = false
	c.stopped = false
	c.haltBug = false
	c.Cycles = 0
}

// Step services a pending interrupt or executes one instruction, and
// returns the number of cycles consumed.
func (c *CPU) Step() int {
	scheduled := c.imeScheduled

	if c.stopped {
		// STOP ends on joypad activity only; other sources stay pending
		// until the core is awake again, so an interrupt can never be
		// serviced into a still-stopped CPU.
		if c.interrupts.Flag()&(1<<uint(interrupt.Joypad)) == 0 {
			c.Cycles += 4
			return 4
		}
		c.stopped = false
	}

	if pending := c.interrupts.Pending(); pending != interrupt.None {
		// A pending interrupt always ends HALT, even with IME off; in
		// that case execution just falls through to the next
		// instruction without servicing.
		c.halted = false
		if c.IME {
			c.service(pending)
			c.Cycles += 20
			return 20
		}
	}

	if c.halted {
		c.Cycles += 4
		return 4
	}

	opcode := c.fetch()
	instr := c.lookup[opcode]
	cycles := instr.Cycles
	if instr.Operate != nil {
		cycles += instr.Operate()
	}

	// IME turns on only after the instruction following EI has run.
	if scheduled && c.imeScheduled {
		c.IME = true
		c.imeScheduled = false
	}

	c.Cycles += uint64(cycles)
	return cycles
}

// service transfers control to an interrupt vector: IME off, request bit
// cleared, PC pushed, jump.
func (c *CPU) service(s interrupt.Source) {
	c.IME = false
	c.imeScheduled = false
	c.interrupts.Clear(s)
	c.push16(c.PC)
	c.PC = s.Vector()
}

// fetch reads the next opcode. The halt bug makes the fetch after a
// failed HALT not advance PC, executing the following byte twice.
func (c *CPU) fetch() byte {
	op := c.bus.Read(c.PC)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.PC++
	}
	return op
}

func (c *CPU) imm8() byte {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) imm16() uint16 {
	lo := uint16(c.imm8())
	hi := uint16(c.imm8())
	return hi<<8 | lo
}

func (c *CPU) push16(v uint16) {
	c.SP--
	c.bus.Write(c.SP, byte(v>>8))
	c.SP--
	c.bus.Write(c.SP, byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.bus.Read(c.SP))
	c.SP++
	hi := uint16(c.bus.Read(c.SP))
	c.SP++
	return hi<<8 | lo
}

// Halted reports whether the CPU is in low-power HALT.
func (c *CPU) Halted() bool {
	return c.halted
}

// Stopped reports whether the CPU is in STOP.
func (c *CPU) Stopped() bool {
	return c.stopped
}
