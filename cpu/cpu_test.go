package cpu

import (
	"testing"

	"github.com/meadori/dotmatrix/interrupt"
)

type mockBus struct {
	ram [65536]byte
}

func (b *mockBus) Read(addr uint16) byte {
	return b.ram[addr]
}

func (b *mockBus) Write(addr uint16, data byte) {
	b.ram[addr] = data
}

func setupCPU() (*CPU, *mockBus, *interrupt.Controller) {
	bus := &mockBus{}
	ic := interrupt.New()
	c := New(bus, ic)
	return c, bus, ic
}

// load places a program at 0x0100, where execution starts after reset.
func load(bus *mockBus, program ...byte) {
	copy(bus.ram[0x0100:], program)
}

func TestResetState(t *testing.T) {
	c, _, _ := setupCPU()
	if c.AF() != 0x01B0 || c.BC() != 0x0013 || c.DE() != 0x00D8 || c.HL() != 0x014D {
		t.Errorf("register pairs = %04x %04x %04x %04x", c.AF(), c.BC(), c.DE(), c.HL())
	}
	if c.SP != 0xFFFE || c.PC != 0x0100 {
		t.Errorf("SP/PC = %04x/%04x, want fffe/0100", c.SP, c.PC)
	}
	if c.IME {
		t.Error("IME enabled after reset")
	}
}

func TestNOP(t *testing.T) {
	c, bus, _ := setupCPU()
	load(bus, 0x00)

	cycles := c.Step()
	if cycles != 4 {
		t.Errorf("NOP cycles = %d, want 4", cycles)
	}
	if c.PC != 0x0101 {
		t.Errorf("PC = %#04x, want 0x0101", c.PC)
	}
}

func TestLoadImmediate(t *testing.T) {
	c, bus, _ := setupCPU()
	load(bus, 0x3E, 0x42) // LD A,0x42

	if cycles := c.Step(); cycles != 8 {
		t.Errorf("LD A,n cycles = %d, want 8", cycles)
	}
	if c.A != 0x42 {
		t.Errorf("A = %#02x, want 0x42", c.A)
	}
}

func TestRegisterToRegisterLoad(t *testing.T) {
	c, bus, _ := setupCPU()
	c.B = 0x7F
	load(bus, 0x78) // LD A,B

	c.Step()
	if c.A != 0x7F {
		t.Errorf("A = %#02x, want 0x7F", c.A)
	}
}

func TestMemoryLoadThroughHL(t *testing.T) {
	c, bus, _ := setupCPU()
	c.SetHL(0xC000)
	bus.ram[0xC000] = 0x99
	load(bus, 0x7E) // LD A,(HL)

	if cycles := c.Step(); cycles != 8 {
		t.Errorf("LD A,(HL) cycles = %d, want 8", cycles)
	}
	if c.A != 0x99 {
		t.Errorf("A = %#02x, want 0x99", c.A)
	}
}

func TestAddFlags(t *testing.T) {
	c, bus, _ := setupCPU()
	c.A = 0x0F
	c.B = 0x01
	load(bus, 0x80) // ADD A,B

	c.Step()
	if c.A != 0x10 {
		t.Errorf("A = %#02x, want 0x10", c.A)
	}
	if !c.flag(FlagH) {
		t.Error("half carry not set on 0x0F + 0x01")
	}
	if c.flag(FlagZ) || c.flag(FlagN) || c.flag(FlagC) {
		t.Errorf("F = %#02x, want only H set", c.F)
	}
}

func TestAddCarryAndZero(t *testing.T) {
	c, bus, _ := setupCPU()
	c.A = 0xFF
	load(bus, 0xC6, 0x01) // ADD A,0x01

	c.Step()
	if c.A != 0x00 {
		t.Errorf("A = %#02x, want 0x00", c.A)
	}
	if !c.flag(FlagZ) || !c.flag(FlagH) || !c.flag(FlagC) {
		t.Errorf("F = %#02x, want Z, H and C set", c.F)
	}
}

func TestSubAndCompare(t *testing.T) {
	c, bus, _ := setupCPU()
	c.A = 0x10
	load(bus, 0xD6, 0x20) // SUB 0x20

	c.Step()
	if c.A != 0xF0 {
		t.Errorf("A = %#02x, want 0xF0", c.A)
	}
	if !c.flag(FlagN) || !c.flag(FlagC) {
		t.Errorf("F = %#02x, want N and C set on borrow", c.F)
	}

	c.A = 0x42
	load(bus, 0xFE, 0x42) // CP 0x42
	c.PC = 0x0100
	c.Step()
	if c.A != 0x42 {
		t.Error("CP modified the accumulator")
	}
	if !c.flag(FlagZ) {
		t.Error("CP of equal values did not set Z")
	}
}

func TestIncDecPreserveCarry(t *testing.T) {
	c, bus, _ := setupCPU()
	c.setFlag(FlagC, true)
	c.B = 0xFF
	load(bus, 0x04) // INC B

	c.Step()
	if c.B != 0x00 || !c.flag(FlagZ) || !c.flag(FlagH) {
		t.Errorf("INC B: B=%#02x F=%#02x", c.B, c.F)
	}
	if !c.flag(FlagC) {
		t.Error("INC clobbered the carry flag")
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, bus, _ := setupCPU()
	c.SetBC(0x1234)
	load(bus, 0xC5, 0xD1) // PUSH BC; POP DE

	c.Step()
	if c.SP != 0xFFFC {
		t.Errorf("SP after push = %#04x, want 0xFFFC", c.SP)
	}
	c.Step()
	if c.DE() != 0x1234 {
		t.Errorf("DE = %#04x, want 0x1234", c.DE())
	}
	if c.SP != 0xFFFE {
		t.Errorf("SP after pop = %#04x, want 0xFFFE", c.SP)
	}
}

func TestPopAFMasksLowNibble(t *testing.T) {
	c, bus, _ := setupCPU()
	c.SetBC(0x12FF)
	load(bus, 0xC5, 0xF1) // PUSH BC; POP AF

	c.Step()
	c.Step()
	if c.F != 0xF0 {
		t.Errorf("F = %#02x, want 0xF0 (low nibble unwired)", c.F)
	}
}

func TestJumpAndCall(t *testing.T) {
	c, bus, _ := setupCPU()
	load(bus, 0xC3, 0x00, 0xC0) // JP 0xC000

	if cycles := c.Step(); cycles != 16 {
		t.Errorf("JP cycles = %d, want 16", cycles)
	}
	if c.PC != 0xC000 {
		t.Errorf("PC = %#04x, want 0xC000", c.PC)
	}

	bus.ram[0xC000] = 0xCD // CALL 0xC100
	bus.ram[0xC001] = 0x00
	bus.ram[0xC002] = 0xC1
	bus.ram[0xC100] = 0xC9 // RET

	c.Step()
	if c.PC != 0xC100 {
		t.Errorf("PC after CALL = %#04x, want 0xC100", c.PC)
	}
	c.Step()
	if c.PC != 0xC003 {
		t.Errorf("PC after RET = %#04x, want 0xC003", c.PC)
	}
}

func TestConditionalBranchCycles(t *testing.T) {
	c, bus, _ := setupCPU()
	c.setFlag(FlagZ, false)
	load(bus, 0x28, 0x05) // JR Z,+5: not taken

	if cycles := c.Step(); cycles != 8 {
		t.Errorf("untaken JR cycles = %d, want 8", cycles)
	}
	if c.PC != 0x0102 {
		t.Errorf("PC = %#04x, want 0x0102", c.PC)
	}

	c.PC = 0x0100
	c.setFlag(FlagZ, true)
	if cycles := c.Step(); cycles != 12 {
		t.Errorf("taken JR cycles = %d, want 12", cycles)
	}
	if c.PC != 0x0107 {
		t.Errorf("PC = %#04x, want 0x0107", c.PC)
	}
}

func TestRelativeJumpBackward(t *testing.T) {
	c, bus, _ := setupCPU()
	load(bus, 0x18, 0xFE) // JR -2: tight loop back to itself

	c.Step()
	if c.PC != 0x0100 {
		t.Errorf("PC = %#04x, want 0x0100", c.PC)
	}
}

func TestCBBitOperations(t *testing.T) {
	c, bus, _ := setupCPU()
	c.B = 0x80
	load(bus, 0xCB, 0x78) // BIT 7,B

	if cycles := c.Step(); cycles != 8 {
		t.Errorf("BIT cycles = %d, want 8", cycles)
	}
	if c.flag(FlagZ) {
		t.Error("BIT 7 of 0x80 set Z")
	}

	load(bus, 0xCB, 0xB8) // RES 7,B
	c.PC = 0x0100
	c.Step()
	if c.B != 0x00 {
		t.Errorf("B after RES 7 = %#02x, want 0x00", c.B)
	}

	load(bus, 0xCB, 0xF8) // SET 7,B
	c.PC = 0x0100
	c.Step()
	if c.B != 0x80 {
		t.Errorf("B after SET 7 = %#02x, want 0x80", c.B)
	}
}

func TestCBSwap(t *testing.T) {
	c, bus, _ := setupCPU()
	c.A = 0xF1
	load(bus, 0xCB, 0x37) // SWAP A

	c.Step()
	if c.A != 0x1F {
		t.Errorf("A = %#02x, want 0x1F", c.A)
	}
}

func TestRotateAClearsZero(t *testing.T) {
	c, bus, _ := setupCPU()
	c.A = 0x80
	c.F = 0
	load(bus, 0x07) // RLCA

	c.Step()
	if c.A != 0x01 {
		t.Errorf("A = %#02x, want 0x01", c.A)
	}
	if !c.flag(FlagC) || c.flag(FlagZ) {
		t.Errorf("F = %#02x, want C set and Z clear", c.F)
	}
}

func TestDAAAfterAddition(t *testing.T) {
	c, bus, _ := setupCPU()
	c.A = 0x45
	c.B = 0x38
	load(bus, 0x80, 0x27) // ADD A,B; DAA

	c.Step()
	c.Step()
	if c.A != 0x83 {
		t.Errorf("A = %#02x, want 0x83", c.A)
	}
}

func TestInterruptService(t *testing.T) {
	c, bus, ic := setupCPU()
	load(bus, 0xFB, 0x00, 0x00) // EI; NOP; NOP
	ic.SetEnable(0x01)
	ic.Request(interrupt.VBlank)

	c.Step() // EI: IME not yet effective
	if c.IME {
		t.Error("IME on immediately after EI")
	}
	c.Step() // NOP; IME turns on after it
	if !c.IME {
		t.Error("IME not on one instruction after EI")
	}

	cycles := c.Step()
	if cycles != 20 {
		t.Errorf("interrupt service cycles = %d, want 20", cycles)
	}
	if c.PC != 0x0040 {
		t.Errorf("PC = %#04x, want 0x0040 (VBlank vector)", c.PC)
	}
	if c.IME {
		t.Error("IME still on during service")
	}
	if ic.Flag()&0x01 != 0 {
		t.Error("VBlank request bit not cleared by service")
	}

	// Return address on the stack is the instruction after the two NOPs.
	if got := uint16(bus.ram[0xFFFD])<<8 | uint16(bus.ram[0xFFFC]); got != 0x0102 {
		t.Errorf("pushed return address = %#04x, want 0x0102", got)
	}
}

func TestInterruptPriority(t *testing.T) {
	c, _, ic := setupCPU()
	c.IME = true
	ic.SetEnable(0x1F)
	ic.Request(interrupt.Timer)
	ic.Request(interrupt.VBlank)

	c.Step()
	if c.PC != 0x0040 {
		t.Errorf("PC = %#04x, want VBlank vector first", c.PC)
	}
	if ic.Flag()&(1<<uint(interrupt.Timer)) == 0 {
		t.Error("lower-priority request lost")
	}
}

func TestHaltWakesOnInterrupt(t *testing.T) {
	c, bus, ic := setupCPU()
	load(bus, 0x76, 0x00) // HALT; NOP
	ic.SetEnable(0x04)

	c.Step()
	if !c.Halted() {
		t.Fatal("CPU not halted")
	}
	for i := 0; i < 3; i++ {
		if cycles := c.Step(); cycles != 4 {
			t.Fatalf("halted step cycles = %d, want 4", cycles)
		}
	}
	if c.PC != 0x0101 {
		t.Errorf("PC advanced while halted: %#04x", c.PC)
	}

	// IME off: the interrupt ends HALT but is not serviced.
	ic.Request(interrupt.Timer)
	c.Step()
	if c.Halted() {
		t.Error("pending interrupt did not end HALT")
	}
	if c.PC != 0x0102 {
		t.Errorf("PC = %#04x, want 0x0102 (fell through to NOP)", c.PC)
	}
}

func TestHaltBug(t *testing.T) {
	c, bus, ic := setupCPU()
	// HALT with IME off and an interrupt already pending: the next
	// instruction byte is executed twice.
	load(bus, 0x76, 0x3C, 0x00) // HALT; INC A
	ic.SetEnable(0x04)
	ic.Request(interrupt.Timer)
	a := c.A

	c.Step() // HALT is skipped, PC stuck
	c.Step() // INC A, PC not advanced
	c.Step() // INC A again
	if c.A != a+2 {
		t.Errorf("A = %#02x, want %#02x (INC executed twice)", c.A, a+2)
	}
}

func TestStopWakesOnJoypad(t *testing.T) {
	c, bus, ic := setupCPU()
	load(bus, 0x10, 0x00, 0x00) // STOP; NOP

	c.Step()
	if !c.Stopped() {
		t.Fatal("CPU not stopped")
	}
	c.Step()
	if !c.Stopped() {
		t.Fatal("CPU woke without joypad activity")
	}

	ic.Request(interrupt.Joypad)
	c.Step()
	if c.Stopped() {
		t.Error("joypad request did not end STOP")
	}
}

func TestStopHoldsInterruptsUntilWake(t *testing.T) {
	c, bus, ic := setupCPU()
	load(bus, 0x10, 0x00, 0x00) // STOP; NOP
	c.IME = true
	ic.SetEnable(0xFF)

	c.Step()
	if !c.Stopped() {
		t.Fatal("CPU not stopped")
	}

	// An enabled, pending VBlank must not be serviced into a stopped
	// core.
	ic.Request(interrupt.VBlank)
	pc := c.PC
	c.Step()
	if !c.Stopped() {
		t.Fatal("VBlank request ended STOP")
	}
	if c.PC != pc {
		t.Errorf("PC = %#04x, want %#04x while stopped", c.PC, pc)
	}

	// Joypad activity wakes the core; the held VBlank wins priority and
	// is serviced on the same step.
	ic.Request(interrupt.Joypad)
	c.Step()
	if c.Stopped() {
		t.Fatal("joypad request did not end STOP")
	}
	if c.PC != 0x0040 {
		t.Errorf("PC = %#04x, want the VBlank vector 0x0040", c.PC)
	}
}

func TestAddSPFlags(t *testing.T) {
	c, bus, _ := setupCPU()
	c.SP = 0xFFF8
	load(bus, 0xE8, 0x08) // ADD SP,+8

	c.Step()
	if c.SP != 0x0000 {
		t.Errorf("SP = %#04x, want 0x0000", c.SP)
	}
	if !c.flag(FlagH) || !c.flag(FlagC) {
		t.Errorf("F = %#02x, want H and C from low-byte math", c.F)
	}
	if c.flag(FlagZ) {
		t.Error("ADD SP set Z")
	}
}

func TestLDHLSPPlusOffset(t *testing.T) {
	c, bus, _ := setupCPU()
	c.SP = 0xC000
	load(bus, 0xF8, 0xFE) // LD HL,SP-2

	c.Step()
	if c.HL() != 0xBFFE {
		t.Errorf("HL = %#04x, want 0xBFFE", c.HL())
	}
	if c.SP != 0xC000 {
		t.Error("LD HL,SP+e modified SP")
	}
}

func TestDISuppressesService(t *testing.T) {
	c, bus, ic := setupCPU()
	load(bus, 0xF3, 0x00) // DI; NOP
	c.IME = true
	ic.SetEnable(0x01)

	c.Step()
	ic.Request(interrupt.VBlank)
	c.Step()
	if c.PC == 0x0040 {
		t.Error("interrupt serviced with IME off")
	}
}

func TestEIThenDICancels(t *testing.T) {
	c, bus, ic := setupCPU()
	load(bus, 0xFB, 0xF3, 0x00) // EI; DI; NOP
	ic.SetEnable(0x01)
	ic.Request(interrupt.VBlank)

	c.Step()
	c.Step()
	if c.IME {
		t.Error("DI did not cancel the scheduled enable")
	}
	c.Step()
	if c.PC == 0x0040 {
		t.Error("interrupt serviced after EI; DI")
	}
}

func TestSaveLoadState(t *testing.T) {
	c, bus, ic := setupCPU()
	load(bus, 0x3E, 0x55, 0x76) // LD A,0x55; HALT
	c.Step()
	c.Step()
	s := c.SaveState()

	bus2 := &mockBus{}
	c2 := New(bus2, ic)
	c2.LoadState(s)
	if c2.A != 0x55 || c2.PC != c.PC || !c2.Halted() {
		t.Errorf("restored A/PC/halted = %#02x/%#04x/%v", c2.A, c2.PC, c2.Halted())
	}
}
