// Package interaction models the discrete input state of a pressable
// widget as a deterministic transition table. The machine owns no
// rendering and emits exactly one outward signal: a completed press.
package interaction

// Mode is the widget's current interaction state.
type Mode int

const (
	Idle Mode = iota
	Hovered
	Focused
	Pressed
	Disabled
)

var modeNames = map[Mode]string{
	Idle:     "idle",
	Hovered:  "hovered",
	Focused:  "focused",
	Pressed:  "pressed",
	Disabled: "disabled",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// Event is an already-classified input event. Translating raw terminal
// input into these values, including the hit test behind
// PressEndInside/PressEndOutside, is the host's responsibility.
type Event int

const (
	PointerEnter Event = iota
	PointerLeave
	PressStart
	// PressEndInside is a release with the pointer still over the widget.
	PressEndInside
	// PressEndOutside is a release after the pointer dragged off the
	// widget; it cancels the press without activating.
	PressEndOutside
	FocusGained
	FocusLost
	Disable
	Enable
)

// Machine tracks the interaction mode of one widget. The zero value is
// an enabled machine in Idle.
type Machine struct {
	mode Mode

	// prePress remembers where a press started so a completed press can
	// return there instead of guessing.
	prePress Mode
}

// NewMachine returns a machine starting in Idle, or Disabled when
// enabled is false.
func NewMachine(enabled bool) *Machine {
	m := &Machine{}
	if !enabled {
		m.mode = Disabled
	}
	return m
}

// Mode returns the current interaction mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Handle applies one event and reports whether it completed a press over
// the widget (the activation signal). Events with no transition defined
// for the current mode leave the machine unchanged; that is never an
// error, since hosts forward whatever their input layer produces.
func (m *Machine) Handle(ev Event) bool {
	if m.mode == Disabled {
		if ev == Enable {
			m.mode = Idle
		}
		return false
	}
	if ev == Disable {
		m.mode = Disabled
		return false
	}

	switch m.mode {
	case Idle:
		switch ev {
		case FocusGained:
			m.mode = Focused
		case PointerEnter:
			m.mode = Hovered
		}

	case Hovered:
		switch ev {
		case PointerLeave:
			m.mode = Idle
		case FocusGained:
			m.mode = Focused
		case PressStart:
			m.prePress = Hovered
			m.mode = Pressed
		}

	case Focused:
		switch ev {
		case FocusLost:
			m.mode = Idle
		case PressStart:
			m.prePress = Focused
			m.mode = Pressed
		}

	case Pressed:
		switch ev {
		case PressEndInside:
			m.mode = m.prePress
			return true
		case PressEndOutside:
			m.mode = Idle
		}
	}

	return false
}
