package plugin

import (
	"sync"
	"testing"
	"time"
)

// testFrontend starts event loops and keeps track of them so that tests can
// play the role of the user interface.
type testFrontend struct {
	mu     sync.Mutex
	loops  [MaxPads]*EventLoop
	starts int
	fail   map[Pad]error
}

func (fe *testFrontend) Start(s *Slot) (Driver, error) {
	fe.mu.Lock()
	defer fe.mu.Unlock()

	fe.starts++
	if err := fe.fail[s.Pad()]; err != nil {
		return nil, err
	}
	l := NewEventLoop(s)
	fe.loops[s.Pad()] = l
	return l, nil
}

func (fe *testFrontend) loop(p Pad) *EventLoop {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.loops[p]
}

func (fe *testFrontend) numStarts() int {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.starts
}

// stuckFrontend starts drivers which ignore Stop until release is closed.
type stuckFrontend struct {
	release chan struct{}
}

type stuckDriver struct {
	release chan struct{}
}

func (fe stuckFrontend) Start(s *Slot) (Driver, error) {
	return stuckDriver{release: fe.release}, nil
}

func (d stuckDriver) Stop() {}

func (d stuckDriver) Wait() error {
	<-d.release
	return nil
}

// eventually fails the test if cond doesn't become true in a reasonable time.
func eventually(tb testing.TB, cond func() bool) {
	tb.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			tb.Fatal("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}
