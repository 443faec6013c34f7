package joypad

// Address is the joypad register (P1/JOYP) on the bus.
const Address = 0xFF00

// Button identifies one of the eight physical buttons. The order matches
// the input stream used by the replay tooling.
type Button int

const (
	A Button = iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

// Joypad holds the host-visible button state and the 2-bit select nibble
// written by the program. Reads are active low: a pressed button in the
// selected group reads as 0.
type Joypad struct {
	buttons [8]bool

	selectDirections bool
	selectActions    bool

	// IRQ is set on a released-to-pressed edge of a selected button. The
	// bus transfers it into IF and clears it.
	IRQ bool
}

// New creates a Joypad with no buttons pressed and neither group selected.
func New() *Joypad {
	return &Joypad{}
}

// SetButton updates one button. A press while the button's group is
// selected requests the Joypad interrupt.
func (j *Joypad) SetButton(b Button, pressed bool) {
	if pressed && !j.buttons[b] && j.selected(b) {
		j.IRQ = true
	}
	j.buttons[b] = pressed
}

// SetButtons replaces the whole button state, raising the interrupt for
// any selected released-to-pressed edge.
func (j *Joypad) SetButtons(buttons [8]bool) {
	for b := A; b <= Right; b++ {
		j.SetButton(b, buttons[b])
	}
}

func (j *Joypad) selected(b Button) bool {
	if b <= Start {
		return j.selectActions
	}
	return j.selectDirections
}

// Write stores the select nibble. Only bits 4 and 5 are writable, both
// active low.
func (j *Joypad) Write(data byte) {
	j.selectDirections = data&0x10 == 0
	j.selectActions = data&0x20 == 0
}

// Read returns the register value: select bits as written, unused high
// bits set, and the selected group's buttons in the low nibble (pressed
// reads as 0). With no group selected the low nibble reads all high.
func (j *Joypad) Read() byte {
	data := byte(0xC0)
	if !j.selectDirections {
		data |= 0x10
	}
	if !j.selectActions {
		data |= 0x20
	}

	nibble := byte(0x0F)
	if j.selectActions {
		nibble &= j.groupNibble(A, B, Select, Start)
	}
	if j.selectDirections {
		nibble &= j.groupNibble(Right, Left, Up, Down)
	}
	return data | nibble
}

// groupNibble packs four buttons into the low nibble, bit 0 first,
// active low.
func (j *Joypad) groupNibble(b0, b1, b2, b3 Button) byte {
	nibble := byte(0x0F)
	for i, b := range [4]Button{b0, b1, b2, b3} {
		if j.buttons[b] {
			nibble &^= 1 << uint(i)
		}
	}
	return nibble
}

type State struct {
	Buttons                  [8]bool
	Directions, Actions, IRQ bool
}

func (j *Joypad) SaveState() State {
	return State{j.buttons, j.selectDirections, j.selectActions, j.IRQ}
}

func (j *Joypad) LoadState(s State) {
	j.buttons, j.selectDirections, j.selectActions, j.IRQ = s.Buttons, s.Directions, s.Actions, s.IRQ
}
