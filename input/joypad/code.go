package joypad

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

type ControlType uint8

const (
	ControlNotSet ControlType = iota
	ButtonCtrl
	AxisCtrl
)

func (t ControlType) String() string {
	switch t {
	case ButtonCtrl:
		return "joy button"
	case AxisCtrl:
		return "joy axis"
	}
	return "not set"
}

// A Code identifies a game controller button, or an axis and its direction.
type Code struct {
	CtrlGUID    string
	CtrlButton  sdl.GameControllerButton
	CtrlAxis    sdl.GameControllerAxis
	CtrlAxisDir int16

	Type ControlType
}

// Name returns an user-friendly name for the input code.
func (c Code) Name() string {
	switch c.Type {
	case ButtonCtrl:
		return sdl.GameControllerGetStringForButton(c.CtrlButton)
	case AxisCtrl:
		axis := sdl.GameControllerGetStringForAxis(c.CtrlAxis)
		if c.CtrlAxisDir >= 0 {
			axis += "+"
		} else {
			axis += "-"
		}
		return axis
	}
	return ""
}

func (c Code) MarshalText() ([]byte, error) {
	s := ""
	switch c.Type {
	case ButtonCtrl:
		s = fmt.Sprintf("joybtn %s %s", c.Name(), c.CtrlGUID)
	case AxisCtrl:
		s = fmt.Sprintf("joyaxis %s %s", c.Name(), c.CtrlGUID)
	}
	return []byte(s), nil
}

func (c *Code) UnmarshalText(text []byte) error {
	s := string(text)

	switch {
	case s == "":
		*c = Code{}

	case strings.HasPrefix(s, "joybtn"):
		str := ""
		if _, err := fmt.Sscanf(s, "joybtn %s %s", &str, &c.CtrlGUID); err != nil {
			return fmt.Errorf("malformed joybtn code: %s", s)
		}
		c.CtrlButton = sdl.GameControllerGetButtonFromString(str)
		if c.CtrlButton == sdl.CONTROLLER_BUTTON_INVALID {
			return fmt.Errorf("unrecognized button %q", str)
		}
		c.Type = ButtonCtrl

	case strings.HasPrefix(s, "joyaxis"):
		str := ""
		if _, err := fmt.Sscanf(s, "joyaxis %s %s", &str, &c.CtrlGUID); err != nil {
			return fmt.Errorf("malformed joyaxis code: %s", s)
		}
		switch {
		case strings.HasSuffix(str, "+"):
			c.CtrlAxisDir = 1
		case strings.HasSuffix(str, "-"):
			c.CtrlAxisDir = -1
		default:
			return fmt.Errorf("malformed axis direction: %s", str)
		}

		c.CtrlAxis = sdl.GameControllerGetAxisFromString(str[:len(str)-1])
		if c.CtrlAxis == sdl.CONTROLLER_AXIS_INVALID {
			return fmt.Errorf("unrecognized axis %q", str)
		}
		c.Type = AxisCtrl

	default:
		return fmt.Errorf("unrecognized input code: %s", s)
	}

	return nil
}
