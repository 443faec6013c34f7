package timer

// Register addresses on the bus.
const (
	DividerAddress = 0xFF04 // DIV
	CounterAddress = 0xFF05 // TIMA
	ModuloAddress  = 0xFF06 // TMA
	ControlAddress = 0xFF07 // TAC
)

// tacBit maps the TAC frequency field to the divider bit whose falling
// edge increments TIMA.
var tacBit = [4]uint{9, 3, 5, 7}

// Timer implements the DIV/TIMA/TMA/TAC block. The divider is a free
// running 16-bit counter incremented every clock cycle; the bus-visible
// DIV register is its high byte. TIMA increments on each falling edge of
// the TAC-selected divider bit while the TAC enable bit is set.
type Timer struct {
	divider uint16
	counter byte // TIMA
	modulo  byte // TMA
	control byte // TAC

	// Falling-edge detector input from the previous cycle.
	prevResult bool

	// TIMA overflowed last cycle; the reload from TMA and the interrupt
	// request happen one cycle later unless TIMA is written first.
	reloadPending bool

	// IRQ is set when the timer requests an interrupt. The bus transfers
	// it into IF and clears it.
	IRQ bool
}

// New creates a Timer with all registers zeroed.
func New() *Timer {
	return &Timer{}
}

// Step advances the timer by the given number of clock cycles.
func (t *Timer) Step(cycles int) {
	for i := 0; i < cycles; i++ {
		t.cycle()
	}
}

func (t *Timer) cycle() {
	if t.reloadPending {
		t.reloadPending = false
		t.counter = t.modulo
		t.IRQ = true
	}

	t.divider++
	t.detectEdge()
}

// detectEdge runs the falling-edge detector against the current divider
// value and ticks TIMA when the selected bit goes high to low.
func (t *Timer) detectEdge() {
	result := t.enabled() && t.divider&(1<<tacBit[t.control&0x03]) != 0
	if t.prevResult && !result {
		t.counter++
		if t.counter == 0 {
			t.reloadPending = true
		}
	}
	t.prevResult = result
}

func (t *Timer) enabled() bool {
	return t.control&0x04 != 0
}

// Read returns the bus-visible value of a timer register.
func (t *Timer) Read(addr uint16) byte {
	switch addr {
	case DividerAddress:
		return byte(t.divider >> 8)
	case CounterAddress:
		return t.counter
	case ModuloAddress:
		return t.modulo
	case ControlAddress:
		return 0xF8 | t.control
	}
	return 0xFF
}

// Write stores a timer register. A DIV write zeroes the whole internal
// 16-bit divider, which can itself produce a falling edge on the selected
// bit and tick TIMA. A TIMA write during the overflow reload window
// cancels the pending reload and interrupt.
func (t *Timer) Write(addr uint16, data byte) {
	switch addr {
	case DividerAddress:
		t.divider = 0
		t.detectEdge()
	case CounterAddress:
		t.counter = data
		t.reloadPending = false
	case ModuloAddress:
		t.modulo = data
	case ControlAddress:
		t.control = data & 0x07
		t.detectEdge()
	}
}

// Divider exposes the full internal divider for tests and savestates.
func (t *Timer) Divider() uint16 {
	return t.divider
}

// SetDivider overwrites the full internal divider and re-primes the edge
// detector, as if the divider had counted to the new value.
func (t *Timer) SetDivider(v uint16) {
	t.divider = v
	t.prevResult = t.enabled() && t.divider&(1<<tacBit[t.control&0x03]) != 0
}

type State struct {
	Divider                   uint16
	Counter, Modulo, Control  byte
	PrevResult, ReloadPending bool
	IRQ                       bool
}

func (t *Timer) SaveState() State {
	return State{t.divider, t.counter, t.modulo, t.control, t.prevResult, t.reloadPending, t.IRQ}
}

func (t *Timer) LoadState(s State) {
	t.divider, t.counter, t.modulo, t.control, t.prevResult, t.reloadPending, t.IRQ =
		s.Divider, s.Counter, s.Modulo, s.Control, s.PrevResult, s.ReloadPending, s.IRQ
}
