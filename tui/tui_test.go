package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/rivo/tview"

	"tasinput/input"
	"tasinput/plugin"
)

type recorder struct {
	ups []input.Update
}

func (r *recorder) post(u input.Update) bool {
	r.ups = append(r.ups, u)
	return true
}

func nop(tview.Primitive) {}

func typeText(field *tview.InputField, text string) {
	handler := field.InputHandler()
	for _, r := range text {
		handler(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), nop)
	}
}

func TestPadFormCheckboxes(t *testing.T) {
	var rec recorder
	form := newPadForm(0, input.State{B: true}, rec.post)

	if got := form.GetFormItemCount(); got != int(input.NumButtons)+2 {
		t.Fatalf("form has %d items, want %d", got, input.NumButtons+2)
	}

	toggle := func(label string) {
		cb := form.GetFormItemByLabel(label).(*tview.Checkbox)
		cb.InputHandler()(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), nop)
	}
	toggle("A")
	toggle("B")
	toggle("C-Left")
	toggle("A")

	want := []input.Update{
		input.Press(input.A, true),
		input.Press(input.B, false), // initially checked
		input.Press(input.CLeft, true),
		input.Press(input.A, false),
	}
	if diff := cmp.Diff(want, rec.ups); diff != "" {
		t.Fatalf("updates mismatch (-want +got):\n%s", diff)
	}
}

func TestPadFormAxisFields(t *testing.T) {
	var rec recorder
	form := newPadForm(1, input.State{Y: -12}, rec.post)

	y := form.GetFormItemByLabel("Y").(*tview.InputField)
	if got := y.GetText(); got != "-12" {
		t.Fatalf("Y field text = %q, want -12", got)
	}

	x := form.GetFormItemByLabel("X").(*tview.InputField)
	x.SetText("")
	typeText(x, "-5")

	y.SetText("")
	typeText(y, "999") // third digit is out of range

	want := []input.Update{
		input.Move(input.AxisX, -5),
		input.Move(input.AxisY, 9),
		input.Move(input.AxisY, 99),
	}
	if diff := cmp.Diff(want, rec.ups); diff != "" {
		t.Fatalf("updates mismatch (-want +got):\n%s", diff)
	}
	if got := y.GetText(); got != "99" {
		t.Fatalf("Y field text = %q, want 99", got)
	}
}

func TestAcceptAxis(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"-", true},
		{"0", true},
		{"127", true},
		{"-127", true},
		{"128", false},
		{"-128", false},
		{"1a", false},
		{"--1", false},
	}
	for _, tt := range tests {
		if got := acceptAxis(tt.text, 0); got != tt.want {
			t.Errorf("acceptAxis(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func simScreen() (tcell.Screen, error) {
	return tcell.NewSimulationScreen("UTF-8"), nil
}

func TestFrontend(t *testing.T) {
	fe := NewWithScreen(simScreen)
	reg := plugin.NewRegistry(fe, 5*time.Second)

	if err := reg.Initialize(0b0011); err != nil {
		t.Fatal(err)
	}
	fe.mu.Lock()
	form := fe.pads[1]
	fe.mu.Unlock()
	if form == nil {
		t.Fatal("no form for pad 1")
	}

	if err := reg.Teardown(); err != nil {
		t.Fatal(err)
	}

	fe.mu.Lock()
	app := fe.app
	fe.mu.Unlock()
	if app != nil {
		t.Fatal("application still set after last pad removal")
	}

	// The application is started again for a new session.
	if err := reg.Initialize(0b0100); err != nil {
		t.Fatal(err)
	}
	if err := reg.Teardown(); err != nil {
		t.Fatal(err)
	}
}

func TestFrontendScreenError(t *testing.T) {
	errNoTTY := errors.New("no tty")
	fe := NewWithScreen(func() (tcell.Screen, error) { return nil, errNoTTY })
	reg := plugin.NewRegistry(fe, 0)

	err := reg.Initialize(0b0001)
	if !errors.Is(err, plugin.ErrDriverStart) || !errors.Is(err, errNoTTY) {
		t.Fatalf("Initialize error = %v", err)
	}
	if got := reg.Active(); len(got) != 0 {
		t.Fatalf("Active() = %v, want none", got)
	}
}
