package plugin

import (
	"sync"
	"sync/atomic"
	"time"

	"tasinput/plugin/log"
)

// Plugin is the host facing side of the input plugin. It owns the slot
// registry for the lifetime of a Startup/Shutdown session.
//
// GetKeys never waits on the lifecycle methods: it can be called at any time,
// from any goroutine, and answers with the default state when no registry or
// no slot exists.
type Plugin struct {
	mu      sync.Mutex
	started bool
	romOpen bool

	frontend    Frontend
	joinTimeout time.Duration

	reg atomic.Pointer[Registry]
}

// New returns a plugin whose pads are driven by drivers started by fe.
func New(fe Frontend, joinTimeout time.Duration) *Plugin {
	return &Plugin{frontend: fe, joinTimeout: joinTimeout}
}

// Startup initializes the plugin.
func (p *Plugin) Startup() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return ErrAlreadyInit
	}
	p.started = true
	p.reg.Store(NewRegistry(p.frontend, p.joinTimeout))

	log.ModPlugin.InfoZ("plugin started").End()
	return nil
}

// Shutdown tears down all pads and releases the registry.
func (p *Plugin) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return ErrNotInit
	}

	err := p.teardown()
	p.reg.Store(nil)
	p.started = false
	p.romOpen = false

	log.ModPlugin.InfoZ("plugin shut down").End()
	return err
}

// InitiateControllers activates the pads requested in mask, bit i requesting
// pad i.
func (p *Plugin) InitiateControllers(mask uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	reg := p.reg.Load()
	if reg == nil {
		return ErrNotInit
	}
	log.ModPlugin.InfoZ("initiate controllers").Hex8("mask", uint8(mask)).End()
	return reg.Initialize(mask)
}

// RomOpen marks the start of an emulation session.
func (p *Plugin) RomOpen() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return ErrNotInit
	}
	p.romOpen = true
	return nil
}

// RomClosed ends the emulation session, tearing down all pads. Calling it
// more than once is harmless.
func (p *Plugin) RomClosed() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.romOpen = false
	return p.teardown()
}

func (p *Plugin) teardown() error {
	reg := p.reg.Load()
	if reg == nil {
		return nil
	}
	err := reg.Teardown()
	if err != nil {
		log.ModPlugin.ErrorZ("teardown failed").Error("err", err).End()
	}
	return err
}

// GetKeys returns the wire value of the state of controller ctrl. An out of
// range ctrl is a host bug: it's logged and answered with the default state.
func (p *Plugin) GetKeys(ctrl int) uint32 {
	if ctrl < 0 || ctrl >= MaxPads {
		log.ModPlugin.WarnZ("GetKeys: invalid controller").Int("ctrl", ctrl).End()
		return 0
	}

	reg := p.reg.Load()
	if reg == nil {
		return 0
	}
	return reg.Keys(Pad(ctrl))
}

// Registry returns the current registry, nil outside of a
// Startup/Shutdown session.
func (p *Plugin) Registry() *Registry {
	return p.reg.Load()
}

// IsRomOpen reports whether an emulation session is in progress.
func (p *Plugin) IsRomOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.romOpen
}
