package joypad

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"tasinput/plugin/log"
)

// ErrCaptureTimeout is returned by Capture when no input has been received.
var ErrCaptureTimeout = errors.New("no controller input received")

// Capture waits for the next game controller button press or axis motion and
// returns a Code identifying it. Must be called on the SDL main thread.
func Capture(timeout time.Duration) (Code, error) {
	var code Code

	if err := sdl.Init(sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS); err != nil {
		return code, fmt.Errorf("failed to initialize SDL: %s", err)
	}
	defer sdl.Quit()

	gamectrls := NewGameControllers()
	defer gamectrls.Close()

	// Drain the events queue before starting. This removes previous events
	// which could have been generated during the release of a joystick trigger
	// for example.
	drainEvents(200 * time.Millisecond)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		event := sdl.WaitEventTimeout(50)
		switch e := event.(type) {
		case sdl.QuitEvent:
			return code, ErrCaptureTimeout

		case sdl.ControllerDeviceEvent:
			gamectrls.UpdateDevices(e)

		case sdl.ControllerButtonEvent:
			if gamectrls.Get(e.Which) == nil {
				log.ModInput.WarnZ("controller not found").Int32("id", int32(e.Which)).End()
				continue
			}
			if e.Type == sdl.CONTROLLERBUTTONDOWN {
				code.Type = ButtonCtrl
				code.CtrlButton = sdl.GameControllerButton(e.Button)
				code.CtrlGUID = gamectrls.GetGUID(e.Which)
				return code, nil
			}

		case sdl.ControllerAxisEvent:
			if gamectrls.Get(e.Which) == nil {
				log.ModInput.WarnZ("controller not found").Int32("id", int32(e.Which)).End()
				continue
			}
			if e.Value < -JoyAxisThreshold || e.Value > JoyAxisThreshold {
				code.Type = AxisCtrl
				code.CtrlAxis = sdl.GameControllerAxis(e.Axis)
				code.CtrlAxisDir = axissign(e.Value)
				code.CtrlGUID = gamectrls.GetGUID(e.Which)
				return code, nil
			}
		}
	}
	return code, ErrCaptureTimeout
}

// Drain the events queue. But since some joystick axes are noisy, wait just
// long enough to drain 'actual' events, like for example the events generated
// when releasing a joystick trigger.
func drainEvents(maxwait time.Duration) {
	deadline := time.Now().Add(maxwait)
	for {
		if event := sdl.PollEvent(); event == nil {
			break
		}
		if time.Now().After(deadline) {
			break
		}
	}
}
