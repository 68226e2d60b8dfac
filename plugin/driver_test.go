package plugin

import (
	"testing"

	"tasinput/input"
)

func TestEventLoopStop(t *testing.T) {
	reg := NewRegistry(Headless{}, 0)
	s := &Slot{pad: 0, reg: reg}

	l := NewEventLoop(s)
	if !l.Post(input.Press(input.R, true)) {
		t.Fatal("Post on running loop returned false")
	}
	eventually(t, func() bool { return s.State().R })

	l.Stop()
	l.Stop() // no-op
	if err := l.Wait(); err != nil {
		t.Fatal(err)
	}
	if l.Post(input.Press(input.R, false)) {
		t.Fatal("Post on stopped loop returned true")
	}
	if !s.State().R {
		t.Fatal("update posted after Stop has been applied")
	}
}
