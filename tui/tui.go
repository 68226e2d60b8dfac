// Package tui shows the controller pads in a terminal. All pads share one
// tview application, each pad being a form with a checkbox per button and a
// field per stick axis.
package tui

import (
	"errors"
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tasinput/input"
	"tasinput/plugin"
	"tasinput/plugin/log"
)

type Frontend struct {
	newScreen func() (tcell.Screen, error) // nil for the terminal

	// OnQuit, if set, is called when the user presses Ctrl-C.
	OnQuit func()

	mu   sync.Mutex
	app  *tview.Application
	root *tview.Flex
	done chan struct{} // closed when app.Run returns
	pads [plugin.MaxPads]*tview.Form
}

// New returns a Frontend drawing on the terminal.
func New() *Frontend {
	return &Frontend{}
}

// NewWithScreen returns a Frontend drawing on the screens returned by
// newScreen, one per application run.
func NewWithScreen(newScreen func() (tcell.Screen, error)) *Frontend {
	return &Frontend{newScreen: newScreen}
}

func (fe *Frontend) Start(slot *plugin.Slot) (plugin.Driver, error) {
	fe.mu.Lock()
	defer fe.mu.Unlock()

	if fe.app == nil {
		if err := fe.startApp(); err != nil {
			return nil, err
		}
	}

	loop := plugin.NewEventLoop(slot)
	form := newPadForm(slot.Pad(), slot.State(), loop.Post)
	fe.pads[slot.Pad()] = form

	root := fe.root
	app := fe.app
	app.QueueUpdateDraw(func() {
		root.AddItem(form, 0, 1, true)
		app.SetFocus(form)
	})

	log.ModUI.DebugZ("pad form added").Stringer("pad", slot.Pad()).End()
	return &driver{EventLoop: loop, fe: fe, pad: slot.Pad()}, nil
}

func (fe *Frontend) startApp() error {
	app := tview.NewApplication()
	if fe.newScreen != nil {
		screen, err := fe.newScreen()
		if err != nil {
			return err
		}
		app.SetScreen(screen)
	}

	root := tview.NewFlex()
	app.SetRoot(root, true)
	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyCtrlC {
			if fe.OnQuit != nil {
				go fe.OnQuit()
			}
			return nil
		}
		return ev
	})

	// The first queued update runs once the screen is set up.
	ready := make(chan struct{})
	app.QueueUpdate(func() { close(ready) })

	var runErr error
	done := make(chan struct{})
	go func() {
		runErr = app.Run()
		if runErr != nil {
			log.ModUI.ErrorZ("terminal ui exited").Error("err", runErr).End()
		}
		close(done)

		fe.mu.Lock()
		if fe.app == app {
			fe.app = nil
		}
		fe.mu.Unlock()
	}()

	select {
	case <-ready:
	case <-done:
		if runErr == nil {
			runErr = errors.New("terminal ui exited during startup")
		}
		return runErr
	}

	fe.app, fe.root, fe.done = app, root, done
	return nil
}

// remove removes the form of pad p and returns a channel closed when the
// application has exited, if it had to be stopped.
func (fe *Frontend) remove(p plugin.Pad) <-chan struct{} {
	fe.mu.Lock()
	defer fe.mu.Unlock()

	form := fe.pads[p]
	fe.pads[p] = nil
	if fe.app == nil || form == nil {
		return nil
	}

	for _, f := range fe.pads {
		if f != nil {
			root := fe.root
			fe.app.QueueUpdateDraw(func() { root.RemoveItem(form) })
			return nil
		}
	}

	// Last pad.
	fe.app.Stop()
	fe.app = nil
	return fe.done
}

type driver struct {
	*plugin.EventLoop
	fe  *Frontend
	pad plugin.Pad

	once    sync.Once
	appDone <-chan struct{}
}

func (d *driver) Stop() {
	d.once.Do(func() {
		d.EventLoop.Stop()
		d.appDone = d.fe.remove(d.pad)
	})
}

func (d *driver) Wait() error {
	err := d.EventLoop.Wait()
	if d.appDone != nil {
		<-d.appDone
	}
	return err
}

// newPadForm returns the form of a pad, initialized with state s. User changes
// are sent to post.
func newPadForm(p plugin.Pad, s input.State, post func(input.Update) bool) *tview.Form {
	form := tview.NewForm()
	form.SetBorder(true).SetTitle(" " + p.String() + " ")

	for _, b := range input.Buttons() {
		form.AddCheckbox(b.String(), s.Pressed(b), func(checked bool) {
			post(input.Press(b, checked))
		})
	}
	for _, a := range []input.Axis{input.AxisX, input.AxisY} {
		form.AddInputField(a.String(), strconv.Itoa(int(s.Axis(a))), 5, acceptAxis, func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				post(input.Move(a, int8(v)))
			}
		})
	}
	return form
}

// acceptAxis accepts partial or complete integers in the stick range.
func acceptAxis(text string, _ rune) bool {
	if text == "" || text == "-" {
		return true
	}
	v, err := strconv.Atoi(text)
	return err == nil && v >= input.AxisMin && v <= input.AxisMax
}
