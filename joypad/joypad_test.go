package joypad

import "testing"

func TestNoGroupSelected(t *testing.T) {
	j := New()
	j.Write(0x30) // deselect both groups
	j.SetButton(A, true)
	if got := j.Read(); got != 0xFF {
		t.Errorf("Read() with nothing selected = %#02x, want 0xFF", got)
	}
}

func TestDirectionNibble(t *testing.T) {
	j := New()
	j.Write(0x20) // select directions (bit 4 low)
	j.SetButton(Down, true)
	j.SetButton(Right, true)
	// Low nibble: bit 3 down, bit 2 up, bit 1 left, bit 0 right, active low.
	if got := j.Read(); got != 0xE6 {
		t.Errorf("Read() = %#02x, want 0xE6", got)
	}
}

func TestActionNibble(t *testing.T) {
	j := New()
	j.Write(0x10) // select actions (bit 5 low)
	j.SetButton(A, true)
	j.SetButton(Start, true)
	// Low nibble: bit 3 start, bit 2 select, bit 1 B, bit 0 A, active low.
	if got := j.Read(); got != 0xD6 {
		t.Errorf("Read() = %#02x, want 0xD6", got)
	}
}

func TestInterruptOnSelectedEdge(t *testing.T) {
	j := New()
	j.Write(0x20) // directions selected
	j.SetButton(A, true)
	if j.IRQ {
		t.Error("interrupt raised for a button in the unselected group")
	}
	j.SetButton(Left, true)
	if !j.IRQ {
		t.Error("no interrupt for a selected press")
	}
	j.IRQ = false
	j.SetButton(Left, true) // held, not an edge
	if j.IRQ {
		t.Error("interrupt raised without a released-to-pressed edge")
	}
}
