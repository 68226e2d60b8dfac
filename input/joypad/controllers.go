package joypad

import (
	"github.com/veandco/go-sdl2/sdl"

	"tasinput/plugin/log"
)

// GameControllers tracks the plugged game controllers. Its methods must be
// called on the SDL main thread.
type GameControllers struct {
	Guids map[string]*sdl.GameController         // GUID -> controller
	Ids   map[sdl.JoystickID]*sdl.GameController // joystick ID -> controller
}

// As soon as it's been created, UpdateDevices must be called for each
// controller device event in order to remain in sync.
func NewGameControllers() *GameControllers {
	gcs := GameControllers{
		Guids: make(map[string]*sdl.GameController),
		Ids:   make(map[sdl.JoystickID]*sdl.GameController),
	}
	for i := range sdl.NumJoysticks() {
		if sdl.IsGameController(i) {
			gcs.open(i)
		}
	}
	return &gcs
}

func (gcs *GameControllers) open(idx int) {
	c := sdl.GameControllerOpen(idx)
	if c == nil {
		log.ModInput.WarnZ("failed to open controller").Int("index", idx).End()
		return
	}
	joy := c.Joystick()
	guid := sdl.JoystickGetGUIDString(joy.GUID())
	id := joy.InstanceID()
	gcs.Guids[guid] = c
	gcs.Ids[id] = c

	log.ModInput.InfoZ("found controller").
		Int32("id", int32(id)).
		String("guid", guid).
		String("name", c.Name()).
		End()
}

// returns -1 for [-32768, 0) and 1 for [0, 32767]
func axissign(v int16) int16 {
	return int16(1 - 2*(uint16(v)>>15))
}

func (gcs *GameControllers) Get(id sdl.JoystickID) *sdl.GameController {
	return gcs.Ids[id]
}

func (gcs *GameControllers) GetGUID(id sdl.JoystickID) string {
	gc := gcs.Get(id)
	if gc == nil {
		return ""
	}
	return sdl.JoystickGetGUIDString(gc.Joystick().GUID())
}

// controller returns the controller with the given GUID, as a nil interface
// when it's not plugged.
func (gcs *GameControllers) controller(guid string) controller {
	if c, ok := gcs.Guids[guid]; ok {
		return c
	}
	return nil
}

func (gcs *GameControllers) UpdateDevices(e sdl.ControllerDeviceEvent) {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		gcs.open(int(e.Which))

	case sdl.CONTROLLERDEVICEREMOVED:
		c := gcs.Get(e.Which)
		if c == nil {
			log.ModInput.WarnZ("removed controller not found").
				Int32("id", int32(e.Which)).
				End()
			return
		}
		guid := sdl.JoystickGetGUIDString(c.Joystick().GUID())
		delete(gcs.Guids, guid)
		delete(gcs.Ids, e.Which)
		c.Close()

		log.ModInput.InfoZ("removed controller").
			Int32("id", int32(e.Which)).
			String("guid", guid).
			End()
	}
}

func (gcs *GameControllers) Close() {
	for _, c := range gcs.Guids {
		c.Close()
	}
	clear(gcs.Guids)
	clear(gcs.Ids)
}
