package ui

import (
	"os"
	"sync"
	"testing"
	"time"

	"tasinput/input"
	"tasinput/plugin"
)

// recorder keeps the drivers started by a Frontend.
type recorder struct {
	*Frontend

	mu   sync.Mutex
	drvs [plugin.MaxPads]*driver
}

func (r *recorder) Start(slot *plugin.Slot) (plugin.Driver, error) {
	drv, err := r.Frontend.Start(slot)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.drvs[slot.Pad()] = drv.(*driver)
	r.mu.Unlock()
	return drv, nil
}

func (r *recorder) window(p plugin.Pad) *padWindow {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drvs[p].win
}

func needDisplay(t *testing.T) {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		t.Skip("no display")
	}
}

func waitKeys(t *testing.T, reg *plugin.Registry, p plugin.Pad, want uint32) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for reg.Keys(p) != want {
		if time.Now().After(deadline) {
			t.Fatalf("Keys(%d) = %08x, want %08x", p, reg.Keys(p), want)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPadWindow(t *testing.T) {
	needDisplay(t)

	fe := &recorder{Frontend: New()}
	reg := plugin.NewRegistry(fe, 0)
	if err := reg.Initialize(0b0011); err != nil {
		t.Fatal(err)
	}

	pw := fe.window(1)
	err := onMain(func() error {
		pw.checks[input.A].SetActive(true)
		pw.spins[input.AxisX].SetValue(-5)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	waitKeys(t, reg, 1, 0x00FB0080)
	if got := reg.Keys(0); got != 0 {
		t.Errorf("Keys(0) = %08x, want 0", got)
	}

	// Spin buttons clamp to the stick range.
	onMain(func() error {
		pw.spins[input.AxisY].SetValue(-200)
		return nil
	})
	waitKeys(t, reg, 1, 0x81FB0080)

	if err := reg.Teardown(); err != nil {
		t.Fatal(err)
	}

	// Windows are gone, and GTK can host new ones.
	if err := reg.Initialize(0b0001); err != nil {
		t.Fatal(err)
	}
	if err := reg.Teardown(); err != nil {
		t.Fatal(err)
	}
}
