// Package joypad drives controller pads from physical game controllers, read
// through SDL.
//
// All SDL calls are made on the SDL main thread with sdl.Do, so the program
// must run inside sdl.Main.
package joypad

import (
	"fmt"
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"tasinput/input"
	"tasinput/plugin"
	"tasinput/plugin/log"
)

// Frontend starts drivers sampling the game controllers mapped to each pad,
// every period.
type Frontend struct {
	cfg    Config
	period time.Duration

	once    sync.Once
	initErr error
	ctrls   *GameControllers // only accessed on the SDL main thread
}

func New(cfg Config, period time.Duration) *Frontend {
	return &Frontend{cfg: cfg, period: period}
}

func (fe *Frontend) init() error {
	fe.once.Do(func() {
		sdl.Do(func() {
			if err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER); err != nil {
				fe.initErr = fmt.Errorf("failed to initialize SDL: %s", err)
				return
			}
			fe.ctrls = NewGameControllers()
		})
	})
	return fe.initErr
}

// Close releases the game controllers.
func (fe *Frontend) Close() {
	if fe.ctrls == nil {
		return
	}
	sdl.Do(func() {
		fe.ctrls.Close()
		sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
	})
}

func (fe *Frontend) Start(slot *plugin.Slot) (plugin.Driver, error) {
	if int(slot.Pad()) >= len(fe.cfg.Pads) {
		return nil, fmt.Errorf("no joypad mapping for %s", slot.Pad())
	}
	m, err := fe.cfg.Pads[slot.Pad()].compile()
	if err != nil {
		return nil, err
	}
	if err := fe.init(); err != nil {
		return nil, err
	}

	for _, guid := range m.guids() {
		var found bool
		sdl.Do(func() { found = fe.ctrls.controller(guid) != nil })
		if !found {
			log.ModInput.WarnZ("mapped controller not plugged").
				Stringer("pad", slot.Pad()).
				String("guid", guid).
				End()
		}
	}

	d := &driver{
		EventLoop: plugin.NewEventLoop(slot),
		fe:        fe,
		mapping:   m,
		done:      make(chan struct{}),
	}
	go d.run(slot.State())
	return d, nil
}

type driver struct {
	*plugin.EventLoop
	fe      *Frontend
	mapping compiled
	done    chan struct{}
}

func (d *driver) run(last input.State) {
	defer close(d.done)

	ticker := time.NewTicker(d.fe.period)
	defer ticker.Stop()

	for {
		select {
		case <-d.EventLoop.Done():
			return
		case <-ticker.C:
		}

		cur := d.fe.sample(d.mapping)
		for _, u := range input.Diff(last, cur) {
			if !d.Post(u) {
				return
			}
		}
		last = cur
	}
}

// sample pumps the SDL events and reads the pad state from the controllers.
func (fe *Frontend) sample(m compiled) input.State {
	var s input.State
	sdl.Do(func() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if e, ok := event.(sdl.ControllerDeviceEvent); ok {
				fe.ctrls.UpdateDevices(e)
			}
		}
		sdl.GameControllerUpdate()
		s = m.state(fe.ctrls.controller)
	})
	return s
}

func (d *driver) Wait() error {
	err := d.EventLoop.Wait()
	<-d.done
	return err
}
