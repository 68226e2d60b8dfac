package joypad

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"tasinput/input"
)

// threshold for joystick axis to be considered as 'pressed'.
// goes from -32768 to 32767
const JoyAxisThreshold = 32000

// Stick values closer to the center than JoyAxisDeadZone read as 0.
const JoyAxisDeadZone = 4000

// Config holds the controller mappings, one per pad.
type Config struct {
	Pads []Mapping `toml:"pads"`
}

// Mapping associates the buttons and stick axes of a pad to game controller
// inputs. Buttons are keyed by name, as accepted by input.ParseButton.
type Mapping struct {
	Buttons map[string]Code `toml:"buttons"`
	X       Code            `toml:"x"`
	Y       Code            `toml:"y"`
}

// Check reports the first invalid entry of the configuration.
func (cfg Config) Check() error {
	for i, m := range cfg.Pads {
		if _, err := m.compile(); err != nil {
			return fmt.Errorf("joypad mapping %d: %w", i, err)
		}
	}
	return nil
}

// controller is the part of *sdl.GameController a mapping reads.
type controller interface {
	Button(btn sdl.GameControllerButton) byte
	Axis(axis sdl.GameControllerAxis) int16
}

type buttonCode struct {
	btn  input.Button
	code Code
}

// compiled is a validated Mapping.
type compiled struct {
	buttons []buttonCode
	x, y    Code
}

func (m Mapping) compile() (compiled, error) {
	var c compiled
	for name, code := range m.Buttons {
		b, err := input.ParseButton(name)
		if err != nil {
			return c, err
		}
		if code.Type == ControlNotSet {
			continue
		}
		c.buttons = append(c.buttons, buttonCode{btn: b, code: code})
	}
	for _, code := range []Code{m.X, m.Y} {
		if code.Type == ButtonCtrl {
			return c, fmt.Errorf("stick axis mapped to button %s", code.Name())
		}
	}
	c.x, c.y = m.X, m.Y
	return c, nil
}

// guids returns the GUIDs of the controllers used by the mapping.
func (c compiled) guids() []string {
	seen := make(map[string]bool)
	var guids []string
	add := func(code Code) {
		if code.Type != ControlNotSet && !seen[code.CtrlGUID] {
			seen[code.CtrlGUID] = true
			guids = append(guids, code.CtrlGUID)
		}
	}
	for _, bc := range c.buttons {
		add(bc.code)
	}
	add(c.x)
	add(c.y)
	return guids
}

// state samples the controllers and returns the corresponding pad state.
// lookup returns nil for unplugged controllers, whose inputs read as
// released/centered.
func (c compiled) state(lookup func(guid string) controller) input.State {
	var s input.State
	for _, bc := range c.buttons {
		if pressed(bc.code, lookup) {
			s.Set(bc.btn, true)
		}
	}
	s.X = stick(c.x, lookup)
	s.Y = stick(c.y, lookup)
	return s
}

func pressed(code Code, lookup func(string) controller) bool {
	ctrl := lookup(code.CtrlGUID)
	if ctrl == nil {
		return false
	}
	switch code.Type {
	case ButtonCtrl:
		return ctrl.Button(code.CtrlButton) != 0
	case AxisCtrl:
		v := int32(ctrl.Axis(code.CtrlAxis)) * int32(code.CtrlAxisDir)
		return v > JoyAxisThreshold
	}
	return false
}

func stick(code Code, lookup func(string) controller) int8 {
	if code.Type != AxisCtrl {
		return 0
	}
	ctrl := lookup(code.CtrlGUID)
	if ctrl == nil {
		return 0
	}
	v := scaleAxis(ctrl.Axis(code.CtrlAxis))
	if code.CtrlAxisDir < 0 {
		v = -v
	}
	return v
}

// scaleAxis maps a raw SDL axis value to [input.AxisMin, input.AxisMax].
func scaleAxis(v int16) int8 {
	if v > -JoyAxisDeadZone && v < JoyAxisDeadZone {
		return 0
	}
	return int8(int32(v) / 258)
}
