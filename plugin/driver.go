package plugin

import (
	"sync"

	"tasinput/input"
	"tasinput/plugin/log"
)

// A Frontend starts presentation drivers, the user interfaces letting a user
// change the state of a slot.
type Frontend interface {
	// Start starts a driver for s. The driver must only modify the slot
	// state through s.Apply. If Start returns an error, s is discarded.
	Start(s *Slot) (Driver, error)
}

// A Driver is a running presentation driver.
type Driver interface {
	// Stop asks the driver to exit. It doesn't wait and may be called more
	// than once.
	Stop()

	// Wait blocks until the driver has exited. Once Wait returns, the driver
	// doesn't touch its slot anymore.
	Wait() error
}

// eventQueueLen is the number of updates an EventLoop buffers before Post
// blocks.
const eventQueueLen = 64

// EventLoop is a Driver applying the updates it receives, in order, to a
// slot. User interfaces post updates from their own threads and never touch
// the slot state directly.
type EventLoop struct {
	slot   *Slot
	events chan input.Update

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewEventLoop starts an event loop for s.
func NewEventLoop(s *Slot) *EventLoop {
	l := &EventLoop{
		slot:   s,
		events: make(chan input.Update, eventQueueLen),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *EventLoop) run() {
	defer close(l.done)
	for {
		select {
		case <-l.stop:
			return
		case u := <-l.events:
			// Stop has priority over pending updates.
			select {
			case <-l.stop:
				return
			default:
			}
			l.slot.Apply(u)
			log.ModSlot.DebugZ("update").Stringer("pad", l.slot.pad).Stringer("update", u).End()
		}
	}
}

// Post queues u. It reports false if the loop has been stopped, in which case
// u is dropped.
func (l *EventLoop) Post(u input.Update) bool {
	select {
	case <-l.stop:
		return false
	default:
	}

	select {
	case l.events <- u:
		return true
	case <-l.stop:
		return false
	}
}

// Slot returns the slot the loop applies updates to.
func (l *EventLoop) Slot() *Slot { return l.slot }

func (l *EventLoop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *EventLoop) Wait() error {
	<-l.done
	return nil
}

// Done returns a channel closed once the loop has exited.
func (l *EventLoop) Done() <-chan struct{} { return l.done }

// Headless is a Frontend without user interface: its drivers are bare event
// loops, pads only change through updates posted to them.
type Headless struct{}

func (Headless) Start(s *Slot) (Driver, error) {
	return NewEventLoop(s), nil
}
