package timer

import "testing"

func TestCounterFrequencies(t *testing.T) {
	// One TIMA tick per falling edge of the selected divider bit.
	cases := []struct {
		tac     byte
		divisor int
	}{
		{0x04, 1024}, // freq 00, divider bit 9
		{0x05, 16},   // freq 01, divider bit 3
		{0x06, 64},   // freq 10, divider bit 5
		{0x07, 256},  // freq 11, divider bit 7
	}

	for _, c := range cases {
		tm := New()
		tm.Write(ControlAddress, c.tac)
		tm.Step(c.divisor * 10)
		if got := tm.Read(CounterAddress); got != 10 {
			t.Errorf("TAC %#02x: TIMA after %d cycles = %d, want 10", c.tac, c.divisor*10, got)
		}
		if tm.IRQ {
			t.Errorf("TAC %#02x: unexpected interrupt request", c.tac)
		}
	}
}

func TestDisabledCounterDoesNotTick(t *testing.T) {
	tm := New()
	tm.Write(ControlAddress, 0x01) // freq 01, enable clear
	tm.Step(1024)
	if got := tm.Read(CounterAddress); got != 0 {
		t.Errorf("TIMA with timer disabled = %d, want 0", got)
	}
}

func TestOverflowReloadDelay(t *testing.T) {
	tm := New()
	tm.Write(ControlAddress, 0x05)
	tm.Write(ModuloAddress, 0xAB)
	tm.Write(CounterAddress, 0xFF)
	tm.SetDivider(0x000F) // next increment is a falling edge of bit 3

	tm.Step(1)
	if got := tm.Read(CounterAddress); got != 0x00 {
		t.Fatalf("TIMA on overflow cycle = %#02x, want 0x00", got)
	}
	if tm.IRQ {
		t.Fatal("interrupt requested on the overflow cycle, want one cycle later")
	}

	tm.Step(1)
	if got := tm.Read(CounterAddress); got != 0xAB {
		t.Errorf("TIMA after reload delay = %#02x, want TMA 0xAB", got)
	}
	if !tm.IRQ {
		t.Error("interrupt not requested after the reload delay")
	}
}

func TestCounterWriteCancelsReload(t *testing.T) {
	tm := New()
	tm.Write(ControlAddress, 0x05)
	tm.Write(ModuloAddress, 0xAB)
	tm.Write(CounterAddress, 0xFF)
	tm.SetDivider(0x000F)

	tm.Step(1) // overflow, reload pending
	tm.Write(CounterAddress, 0x42)
	tm.Step(4)
	if got := tm.Read(CounterAddress); got != 0x42 {
		t.Errorf("TIMA after cancelled reload = %#02x, want 0x42", got)
	}
	if tm.IRQ {
		t.Error("interrupt requested after the reload was cancelled")
	}
}

func TestDividerWriteResetsAndMayTick(t *testing.T) {
	tm := New()
	tm.Write(ControlAddress, 0x05)
	tm.SetDivider(0x0008) // selected bit 3 is high
	tm.Step(1)            // prime the edge detector

	tm.Write(DividerAddress, 0x55)
	if got := tm.Divider(); got != 0 {
		t.Errorf("divider after DIV write = %#04x, want 0", got)
	}
	// Zeroing the divider dropped bit 3 from high to low: spurious tick.
	if got := tm.Read(CounterAddress); got != 1 {
		t.Errorf("TIMA after spurious edge = %d, want 1", got)
	}
}

func TestDividerReadIsHighByte(t *testing.T) {
	tm := New()
	tm.SetDivider(0xAB13)
	if got := tm.Read(DividerAddress); got != 0xAB {
		t.Errorf("DIV = %#02x, want 0xAB", got)
	}
}
