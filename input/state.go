package input

import (
	"strconv"
	"strings"
)

// Directional holds the four flags of a directional cross. Any combination is
// representable, up and down at the same time included.
type Directional struct {
	Up, Down, Left, Right bool
}

// State is the full state of one virtual N64 controller. The zero value is
// the default state: nothing pressed, stick centered.
type State struct {
	A, B, Z, L, R, Start bool

	C Directional // C buttons
	D Directional // D-pad

	X, Y int8
}

func (s *State) field(b Button) *bool {
	switch b {
	case DRight:
		return &s.D.Right
	case DLeft:
		return &s.D.Left
	case DDown:
		return &s.D.Down
	case DUp:
		return &s.D.Up
	case Start:
		return &s.Start
	case Z:
		return &s.Z
	case B:
		return &s.B
	case A:
		return &s.A
	case CRight:
		return &s.C.Right
	case CLeft:
		return &s.C.Left
	case CDown:
		return &s.C.Down
	case CUp:
		return &s.C.Up
	case R:
		return &s.R
	case L:
		return &s.L
	}
	panic("input: invalid button " + b.String())
}

// Pressed reports whether b is pressed.
func (s State) Pressed(b Button) bool {
	return *s.field(b)
}

// Set presses or releases b.
func (s *State) Set(b Button, pressed bool) {
	*s.field(b) = pressed
}

// Axis returns the value of the given stick axis.
func (s State) Axis(a Axis) int8 {
	if a == AxisY {
		return s.Y
	}
	return s.X
}

// SetAxis sets the value of the given stick axis.
func (s *State) SetAxis(a Axis, v int8) {
	if a == AxisY {
		s.Y = v
	} else {
		s.X = v
	}
}

// String returns a compact description of s, for example "A + Start X=-5 Y=0".
func (s State) String() string {
	var sb strings.Builder
	for _, b := range Buttons() {
		if s.Pressed(b) {
			if sb.Len() != 0 {
				sb.WriteString(" + ")
			}
			sb.WriteString(b.String())
		}
	}
	if sb.Len() != 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString("X=")
	sb.WriteString(strconv.Itoa(int(s.X)))
	sb.WriteString(" Y=")
	sb.WriteString(strconv.Itoa(int(s.Y)))
	return sb.String()
}
