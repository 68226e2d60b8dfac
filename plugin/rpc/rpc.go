// Package rpc implements a presentation driver controlled from another
// process through net/rpc: a remote user interface, a test harness or a
// script can press buttons and move the stick of any active pad.
package rpc

import (
	"errors"
	"net"
	"net/rpc"

	"tasinput/plugin"
	"tasinput/plugin/log"
)

var modRPC = log.NewModule("rpc")

// service name under which pads are exposed.
const serviceName = "pad"

type PressArgs struct {
	Pad     uint8
	Button  string
	Pressed bool
}

type MoveArgs struct {
	Pad   uint8
	Axis  string
	Value int8
}

// UnusedPort returns a free TCP port on localhost.
func UnusedPort() int {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		panic("pickUnusedPort failed: " + err.Error())
	}
	port := l.Addr().(*net.TCPAddr).Port
	if err := l.Close(); err != nil {
		panic("pickUnusedPort failed: " + err.Error())
	}
	return port
}

// errors crossing the wire lose their identity, map them back to the
// plugin.Error they were built from.
func remoteError(err error) error {
	var serr rpc.ServerError
	if !errors.As(err, &serr) {
		return err
	}
	for _, perr := range []plugin.Error{plugin.ErrInvalidPad, plugin.ErrNotActive} {
		if string(serr) == perr.Error() {
			return perr
		}
	}
	return err
}
