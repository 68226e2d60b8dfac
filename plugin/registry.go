package plugin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"tasinput/input"
	"tasinput/plugin/log"
)

// MaxPads is the number of controller ports of the host.
const MaxPads = 4

// Pad is a controller port index, in [0, MaxPads).
type Pad uint8

// Mask returns the bit requesting p in an Initialize pad mask.
func (p Pad) Mask() uint32 { return 1 << p }

func (p Pad) String() string { return fmt.Sprintf("pad%d", uint8(p)+1) }

// DefaultJoinTimeout bounds the time Teardown waits for each driver.
const DefaultJoinTimeout = 2 * time.Second

// A Slot owns the state of one active pad. Only its presentation driver writes
// it, through Apply.
type Slot struct {
	pad   Pad
	reg   *Registry
	state input.State

	drv    Driver
	closed bool // set under the guard once the driver has exited
}

// Pad returns the pad index of s.
func (s *Slot) Pad() Pad { return s.pad }

// Apply applies u to the slot state. It reports false, leaving the state
// untouched, once the slot has been torn down.
func (s *Slot) Apply(u input.Update) bool {
	s.reg.guard.Lock()
	defer s.reg.guard.Unlock()

	if s.closed {
		return false
	}
	u.Apply(&s.state)
	return true
}

// State returns a snapshot of the slot state.
func (s *Slot) State() input.State {
	s.reg.guard.Lock()
	defer s.reg.guard.Unlock()
	return s.state
}

// Registry is the fixed-size table of controller slots shared between the
// host polling thread and the presentation drivers.
//
// All reads and writes of the table and of the slots states happen under a
// single mutex, the exchange guard. Critical sections only copy or assign
// fields, polling never waits on a user interface.
type Registry struct {
	guard sync.Mutex
	slots [MaxPads]*Slot

	// lifecycle serializes Initialize and Teardown. It's never taken by the
	// polling or mutation paths.
	lifecycle sync.Mutex

	frontend    Frontend
	joinTimeout time.Duration
}

// NewRegistry returns an empty registry whose slots will be driven by
// drivers started with fe. A zero joinTimeout means DefaultJoinTimeout.
func NewRegistry(fe Frontend, joinTimeout time.Duration) *Registry {
	if joinTimeout <= 0 {
		joinTimeout = DefaultJoinTimeout
	}
	return &Registry{
		frontend:    fe,
		joinTimeout: joinTimeout,
	}
}

// Initialize creates and registers a slot, with its driver, for each pad
// requested in mask. Already active pads are left untouched. Pads whose
// driver failed to start are not registered, the returned error wraps
// ErrDriverStart.
func (r *Registry) Initialize(mask uint32) error {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	var errs []error
	for p := range Pad(MaxPads) {
		if mask&p.Mask() == 0 {
			continue
		}
		if r.isActive(p) {
			log.ModSlot.DebugZ("pad already active").Stringer("pad", p).End()
			continue
		}

		// Drivers are started outside of the guard, they may need it to
		// publish their first updates.
		s := &Slot{pad: p, reg: r}
		drv, err := r.frontend.Start(s)
		if err != nil {
			log.ModSlot.ErrorZ("failed to start driver").Stringer("pad", p).Error("err", err).End()
			r.guard.Lock()
			s.closed = true
			r.guard.Unlock()
			errs = append(errs, fmt.Errorf("%s: %w", p, err))
			continue
		}

		r.guard.Lock()
		s.drv = drv
		r.slots[p] = s
		r.guard.Unlock()

		log.ModSlot.InfoZ("pad active").Stringer("pad", p).End()
	}

	if len(errs) != 0 {
		return fmt.Errorf("%w: %w", ErrDriverStart, errors.Join(errs...))
	}
	return nil
}

func (r *Registry) isActive(p Pad) bool {
	r.guard.Lock()
	defer r.guard.Unlock()
	return r.slots[p] != nil
}

// Active returns the active pads, in increasing order.
func (r *Registry) Active() []Pad {
	r.guard.Lock()
	defer r.guard.Unlock()

	var pads []Pad
	for p, s := range r.slots {
		if s != nil {
			pads = append(pads, Pad(p))
		}
	}
	return pads
}

// Query returns a snapshot of the state of pad p, or the default state if p
// is not active or out of range.
func (r *Registry) Query(p Pad) input.State {
	if p >= MaxPads {
		return input.State{}
	}

	r.guard.Lock()
	defer r.guard.Unlock()

	if s := r.slots[p]; s != nil {
		return s.state
	}
	return input.State{}
}

// Keys returns the wire value of the state of pad p.
func (r *Registry) Keys(p Pad) uint32 {
	return input.Encode(r.Query(p))
}

// Mutate applies u to the state of pad p, bypassing its driver. It's meant
// for tests and host tooling; user interfaces post updates to their driver.
// It reports false if p is not active or out of range.
func (r *Registry) Mutate(p Pad, u input.Update) bool {
	if p >= MaxPads {
		return false
	}

	r.guard.Lock()
	defer r.guard.Unlock()

	s := r.slots[p]
	if s == nil || s.closed {
		return false
	}
	u.Apply(&s.state)
	return true
}

// Teardown stops every driver, waits for them to exit and then releases all
// slots. Slots are released even if some driver failed to exit in time; such
// failures are reported in the returned error, which wraps ErrJoinTimeout.
// Teardown is a no-op when no pad is active.
func (r *Registry) Teardown() error {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	r.guard.Lock()
	var active []*Slot
	for _, s := range r.slots {
		if s != nil {
			active = append(active, s)
		}
	}
	r.guard.Unlock()

	if len(active) == 0 {
		return nil
	}

	// Until the drivers have exited, slots stay registered and queries keep
	// seeing their last state.
	for _, s := range active {
		s.drv.Stop()
	}

	var g errgroup.Group
	for _, s := range active {
		g.Go(func() error { return r.join(s) })
	}
	err := g.Wait()

	r.guard.Lock()
	for _, s := range active {
		s.closed = true
		r.slots[s.pad] = nil
	}
	r.guard.Unlock()

	log.ModSlot.InfoZ("teardown done").Int("pads", len(active)).End()
	return err
}

func (r *Registry) join(s *Slot) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.joinTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.drv.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			log.ModSlot.WarnZ("driver exited with error").Stringer("pad", s.pad).Error("err", err).End()
		}
		return nil
	case <-ctx.Done():
		log.ModSlot.ErrorZ("driver join timeout").
			Stringer("pad", s.pad).
			Duration("timeout", r.joinTimeout).
			End()
		return fmt.Errorf("%s: %w", s.pad, ErrJoinTimeout)
	}
}
