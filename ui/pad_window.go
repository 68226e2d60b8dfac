package ui

import (
	"github.com/gotk3/gotk3/gtk"

	"tasinput/input"
	"tasinput/plugin"
)

const buttonColumns = 4

type padWindow struct {
	*gtk.Window
	checks [input.NumButtons]*gtk.CheckButton
	spins  [2]*gtk.SpinButton // indexed by input.Axis
}

// newPadWindow builds and shows the window of pad p, initialized with state
// s. User changes are sent to post. Must be called on the GTK main loop.
func newPadWindow(p plugin.Pad, s input.State, post func(input.Update) bool) (pw *padWindow, err error) {
	// Constructor errors panic, onMain reports them.
	win := mustT(gtk.WindowNew(gtk.WINDOW_TOPLEVEL))
	pw = &padWindow{Window: win}
	win.SetTitle("TAS Input - " + p.String())
	win.SetResizable(false)
	win.SetBorderWidth(8)

	grid := mustT(gtk.GridNew())
	grid.SetRowSpacing(4)
	grid.SetColumnSpacing(8)

	btns := input.Buttons()
	for i, b := range btns {
		cb := mustT(gtk.CheckButtonNewWithLabel(b.String()))
		cb.SetActive(s.Pressed(b))
		pw.checks[b] = cb
		cb.Connect("toggled", func(cb *gtk.CheckButton) {
			post(input.Press(b, cb.GetActive()))
		})
		grid.Attach(cb, i%buttonColumns, i/buttonColumns, 1, 1)
	}

	row := (len(btns) + buttonColumns - 1) / buttonColumns
	for i, a := range []input.Axis{input.AxisX, input.AxisY} {
		label := mustT(gtk.LabelNew(a.String()))
		spin := mustT(gtk.SpinButtonNewWithRange(input.AxisMin, input.AxisMax, 1))
		spin.SetValue(float64(s.Axis(a)))
		pw.spins[a] = spin
		spin.Connect("value-changed", func(sb *gtk.SpinButton) {
			post(input.Move(a, int8(sb.GetValueAsInt())))
		})
		grid.Attach(label, 0, row+i, 1, 1)
		grid.Attach(spin, 1, row+i, buttonColumns-1, 1)
	}

	win.Add(grid)

	// Pad windows live as long as their pad, closing them just hides them.
	win.Connect("delete-event", func() bool {
		win.Hide()
		return true
	})
	win.ShowAll()

	return pw, nil
}
