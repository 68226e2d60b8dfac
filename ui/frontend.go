// Package ui shows each controller pad in its own GTK window.
package ui

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"tasinput/plugin"
	"tasinput/plugin/log"
)

// Frontend runs a single GTK main loop, started with the first pad and kept
// running for the lifetime of the process since GTK can't be initialized
// twice.
type Frontend struct {
	mu      sync.Mutex
	once    sync.Once
	initErr error
}

func New() *Frontend {
	return &Frontend{}
}

func (fe *Frontend) startMain() error {
	fe.once.Do(func() {
		ready := make(chan error)
		go func() {
			// GTK must always be called from the thread it's been
			// initialized on.
			runtime.LockOSThread()
			if err := gtk.InitCheck(nil); err != nil {
				ready <- err
				return
			}
			ready <- nil
			gtk.Main()
			log.ModUI.InfoZ("Exited gtk").End()
		}()
		fe.initErr = <-ready
	})
	if fe.initErr != nil {
		return fmt.Errorf("failed to initialize gtk: %w", fe.initErr)
	}
	return nil
}

func (fe *Frontend) Start(slot *plugin.Slot) (plugin.Driver, error) {
	fe.mu.Lock()
	defer fe.mu.Unlock()

	if err := fe.startMain(); err != nil {
		return nil, err
	}

	loop := plugin.NewEventLoop(slot)
	var pw *padWindow
	err := onMain(func() error {
		var err error
		pw, err = newPadWindow(slot.Pad(), slot.State(), loop.Post)
		return err
	})
	if err != nil {
		loop.Stop()
		loop.Wait()
		return nil, err
	}

	log.ModUI.DebugZ("pad window shown").Stringer("pad", slot.Pad()).End()
	return &driver{EventLoop: loop, win: pw, closed: make(chan struct{})}, nil
}

type driver struct {
	*plugin.EventLoop
	win *padWindow

	once   sync.Once
	closed chan struct{}
}

func (d *driver) Stop() {
	d.once.Do(func() {
		d.EventLoop.Stop()
		glib.IdleAdd(func() {
			d.win.Destroy()
			close(d.closed)
		})
	})
}

func (d *driver) Wait() error {
	err := d.EventLoop.Wait()
	<-d.closed
	return err
}
