package input

import (
	"fmt"
	"strings"
)

// A Button identifies one of the boolean fields of a controller State. Its
// value is the bit position of that field in the wire value.
type Button uint8

const (
	DRight Button = iota
	DLeft
	DDown
	DUp
	Start
	Z
	B
	A
	CRight
	CLeft
	CDown
	CUp
	R
	L

	NumButtons
)

var buttonNames = [NumButtons]string{
	"D-Right", "D-Left", "D-Down", "D-Up",
	"Start", "Z", "B", "A",
	"C-Right", "C-Left", "C-Down", "C-Up",
	"R", "L",
}

func (b Button) String() string {
	if b >= NumButtons {
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
	return buttonNames[b]
}

// Mask returns the wire value bit of b.
func (b Button) Mask() uint32 {
	return 1 << b
}

// ParseButton returns the button named s. Matching is case-insensitive and
// the dash is optional ("cup", "C-Up" and "c-up" are all valid).
func ParseButton(s string) (Button, error) {
	norm := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "-", ""))
	}
	want := norm(s)
	for i, name := range buttonNames {
		if norm(name) == want {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", s)
}

// Buttons returns all buttons, in the order the user interfaces show them.
func Buttons() []Button {
	return []Button{
		A, B, Z, L, R, Start,
		CUp, CDown, CLeft, CRight,
		DUp, DDown, DLeft, DRight,
	}
}

// An Axis identifies one of the signed stick fields of a State.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Stick range. The user interfaces never go past these bounds but the codec
// accepts any int8.
const (
	AxisMin = -127
	AxisMax = 127
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// ParseAxis returns the axis named s ("x" or "y", case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(s) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}
