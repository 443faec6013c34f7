package interrupt

// Source identifies one of the five interrupt sources, in priority order.
// A lower value is a higher priority.
type Source int

const (
	VBlank Source = iota
	LCDStat
	Timer
	Serial
	Joypad

	None Source = -1
)

// Vector returns the fixed address the CPU jumps to when servicing the
// interrupt.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBLANK"
	case LCDStat:
		return "LCDSTAT"
	case Timer:
		return "TIMER"
	case Serial:
		return "SERIAL"
	case Joypad:
		return "JOYPAD"
	}
	return "NONE"
}

// Controller holds the interrupt flag (IF, $FF0F) and interrupt enable
// (IE, $FFFF) registers. Peripherals set request bits; the CPU clears them
// when it services an interrupt. Only the low five bits exist in hardware,
// the rest read back as 1.
type Controller struct {
	flag   byte
	enable byte
}

// New creates a Controller with no interrupts requested or enabled.
func New() *Controller {
	return &Controller{}
}

// Request sets the IF bit for the given source.
func (c *Controller) Request(s Source) {
	c.flag |= 1 << uint(s)
}

// Clear resets the IF bit for the given source.
func (c *Controller) Clear(s Source) {
	c.flag &^= 1 << uint(s)
}

// Pending returns the highest-priority source with both its request and
// enable bit set, or None.
func (c *Controller) Pending() Source {
	pending := c.flag & c.enable & 0x1F
	if pending == 0 {
		return None
	}
	for s := VBlank; s <= Joypad; s++ {
		if pending&(1<<uint(s)) != 0 {
			return s
		}
	}
	return None
}

// Flag returns the bus-visible IF value.
func (c *Controller) Flag() byte {
	return 0xE0 | c.flag
}

// SetFlag writes the IF register. Only the low five bits are stored.
func (c *Controller) SetFlag(data byte) {
	c.flag = data & 0x1F
}

// Enable returns the bus-visible IE value.
func (c *Controller) Enable() byte {
	return 0xE0 | c.enable
}

// SetEnable writes the IE register. Only the low five bits are stored.
func (c *Controller) SetEnable(data byte) {
	c.enable = data & 0x1F
}

type State struct {
	Flag, Enable byte
}

func (c *Controller) SaveState() State {
	return State{c.flag, c.enable}
}

func (c *Controller) LoadState(s State) {
	c.flag, c.enable = s.Flag, s.Enable
}
