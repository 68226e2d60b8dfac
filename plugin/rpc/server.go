package rpc

import (
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"strconv"
	"sync"

	"tasinput/input"
	"tasinput/plugin"
)

// Server is a plugin.Frontend: each started driver is an event loop fed by
// the requests of remote clients.
type Server struct {
	l   net.Listener
	srv *rpc.Server

	mu    sync.Mutex
	loops [plugin.MaxPads]*plugin.EventLoop
}

// NewServer listens on localhost:port (any free port if 0) and serves pad
// requests until Close.
func NewServer(port int) (*Server, error) {
	s := &Server{srv: rpc.NewServer()}
	if err := s.srv.RegisterName(serviceName, &padProxy{s: s}); err != nil {
		return nil, fmt.Errorf("failed to register RPC service: %w", err)
	}

	l, err := net.Listen("tcp", "localhost:"+strconv.Itoa(port))
	if err != nil {
		return nil, err
	}
	s.l = l

	modRPC.InfoZ("rpc server listening").Int("port", s.Port()).End()
	go s.srv.Accept(l)
	return s, nil
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	return s.l.Addr().(*net.TCPAddr).Port
}

// Close stops accepting new connections.
func (s *Server) Close() error {
	return s.l.Close()
}

func (s *Server) Start(slot *plugin.Slot) (plugin.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := slot.Pad()
	if s.loops[p] != nil {
		return nil, fmt.Errorf("%s already has a driver", p)
	}
	loop := plugin.NewEventLoop(slot)
	s.loops[p] = loop
	return &driver{EventLoop: loop, s: s, pad: p}, nil
}

// loop returns the event loop of the given pad.
func (s *Server) loop(pad uint8) (*plugin.EventLoop, error) {
	if pad >= plugin.MaxPads {
		return nil, plugin.ErrInvalidPad
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if l := s.loops[pad]; l != nil {
		return l, nil
	}
	return nil, plugin.ErrNotActive
}

type driver struct {
	*plugin.EventLoop
	s   *Server
	pad plugin.Pad
}

// Stop unregisters the pad so that later requests fail, then stops the loop.
func (d *driver) Stop() {
	d.s.mu.Lock()
	if d.s.loops[d.pad] == d.EventLoop {
		d.s.loops[d.pad] = nil
	}
	d.s.mu.Unlock()

	d.EventLoop.Stop()
}

type padProxy struct {
	s *Server
}

func (pp *padProxy) post(pad uint8, u input.Update) error {
	l, err := pp.s.loop(pad)
	if err != nil {
		return err
	}
	if !l.Post(u) {
		return plugin.ErrNotActive
	}
	modRPC.DebugZ("posted").Int("pad", int(pad)).Stringer("update", u).End()
	return nil
}

func (pp *padProxy) Press(args PressArgs, _ *struct{}) error {
	btn, err := input.ParseButton(args.Button)
	if err != nil {
		return err
	}
	return pp.post(args.Pad, input.Press(btn, args.Pressed))
}

func (pp *padProxy) Move(args MoveArgs, _ *struct{}) error {
	axis, err := input.ParseAxis(args.Axis)
	if err != nil {
		return err
	}
	if args.Value < input.AxisMin {
		return errors.New("axis value out of range")
	}
	return pp.post(args.Pad, input.Move(axis, args.Value))
}

func (pp *padProxy) Keys(pad uint8, reply *uint32) error {
	l, err := pp.s.loop(pad)
	if err != nil {
		return err
	}
	*reply = input.Encode(l.Slot().State())
	return nil
}
