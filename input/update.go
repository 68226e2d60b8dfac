package input

import "fmt"

// An Update is a single field change of a State: a button press/release or a
// stick axis move.
type Update struct {
	IsAxis bool

	Button  Button
	Pressed bool

	Axis  Axis
	Value int8
}

// Press returns the update pressing (or releasing) b.
func Press(b Button, pressed bool) Update {
	return Update{Button: b, Pressed: pressed}
}

// Move returns the update setting stick axis a to v.
func Move(a Axis, v int8) Update {
	return Update{IsAxis: true, Axis: a, Value: v}
}

// Apply applies u to s.
func (u Update) Apply(s *State) {
	if u.IsAxis {
		s.SetAxis(u.Axis, u.Value)
		return
	}
	s.Set(u.Button, u.Pressed)
}

func (u Update) String() string {
	if u.IsAxis {
		return fmt.Sprintf("%s=%d", u.Axis, u.Value)
	}
	if u.Pressed {
		return u.Button.String() + "=on"
	}
	return u.Button.String() + "=off"
}

// Diff returns the updates that turn old into cur, buttons first.
func Diff(old, cur State) []Update {
	var ups []Update
	for _, b := range Buttons() {
		if p := cur.Pressed(b); p != old.Pressed(b) {
			ups = append(ups, Press(b, p))
		}
	}
	if cur.X != old.X {
		ups = append(ups, Move(AxisX, cur.X))
	}
	if cur.Y != old.Y {
		ups = append(ups, Move(AxisY, cur.Y))
	}
	return ups
}
