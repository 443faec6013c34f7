package interrupt

import "testing"

func TestPriority(t *testing.T) {
	c := New()
	c.SetFlag(0x1F)
	c.SetEnable(0x1F)

	// With everything requested and enabled, VBlank wins.
	if got := c.Pending(); got != VBlank {
		t.Errorf("Pending() = %v, want VBlank", got)
	}

	// Servicing clears only the serviced bit.
	c.Clear(VBlank)
	if c.Flag()&0x1F != 0x1E {
		t.Errorf("IF after clearing VBlank = %#02x, want 0x1E", c.Flag()&0x1F)
	}
	if got := c.Pending(); got != LCDStat {
		t.Errorf("Pending() after VBlank = %v, want LCDStat", got)
	}
}

func TestPendingRequiresEnable(t *testing.T) {
	c := New()
	c.Request(Timer)
	if got := c.Pending(); got != None {
		t.Errorf("Pending() with IE clear = %v, want None", got)
	}
	c.SetEnable(1 << uint(Timer))
	if got := c.Pending(); got != Timer {
		t.Errorf("Pending() = %v, want Timer", got)
	}
}

func TestUpperBitsReadHigh(t *testing.T) {
	c := New()
	if c.Flag()&0xE0 != 0xE0 {
		t.Errorf("IF upper bits = %#02x, want set", c.Flag()&0xE0)
	}
	if c.Enable()&0xE0 != 0xE0 {
		t.Errorf("IE upper bits = %#02x, want set", c.Enable()&0xE0)
	}
	c.SetEnable(0xFF)
	if c.Enable() != 0xFF {
		t.Errorf("IE = %#02x, want 0xFF", c.Enable())
	}
}

func TestVectors(t *testing.T) {
	want := map[Source]uint16{
		VBlank:  0x0040,
		LCDStat: 0x0048,
		Timer:   0x0050,
		Serial:  0x0058,
		Joypad:  0x0060,
	}
	for s, addr := range want {
		if s.Vector() != addr {
			t.Errorf("%v vector = %#04x, want %#04x", s, s.Vector(), addr)
		}
	}
}
