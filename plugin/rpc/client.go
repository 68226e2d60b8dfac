package rpc

import (
	"fmt"
	"net/rpc"
	"strconv"
	"time"
)

type Client struct {
	client *rpc.Client
}

// NewClient connects to the server listening on localhost:port, retrying a
// few times to give a starting server the time to listen.
func NewClient(port int) (*Client, error) {
	var (
		client *rpc.Client
		err    error
	)
	const maxretries = 5
	for i := range maxretries {
		if client, err = rpc.Dial("tcp", "localhost:"+strconv.Itoa(port)); err == nil {
			break
		}
		modRPC.WarnZ("dial tcp failed").Error("err", err).Int("retry", i).End()
		time.Sleep(250 * time.Millisecond)
	}

	if client == nil {
		return nil, fmt.Errorf("dial failed max retries: %w", err)
	}

	return &Client{client: client}, nil
}

func (c *Client) Close() error {
	modRPC.DebugZ("closing rpc client").End()
	return c.client.Close()
}

// Press presses or releases the named button on the given pad.
func (c *Client) Press(pad uint8, button string, pressed bool) error {
	return call(c.client, serviceName+".Press", PressArgs{Pad: pad, Button: button, Pressed: pressed})
}

// Move sets the named stick axis ("x" or "y") of the given pad.
func (c *Client) Move(pad uint8, axis string, value int8) error {
	return call(c.client, serviceName+".Move", MoveArgs{Pad: pad, Axis: axis, Value: value})
}

// Keys returns the wire value of the current state of the given pad.
func (c *Client) Keys(pad uint8) (uint32, error) {
	return request[uint32](c.client, serviceName+".Keys", pad)
}

func call(client *rpc.Client, funcname string, args any) error {
	_, err := request[struct{}](client, funcname, args)
	return err
}

func request[T any](client *rpc.Client, funcname string, args any) (T, error) {
	var reply T
	if err := client.Call(funcname, args, &reply); err != nil {
		return reply, remoteError(err)
	}
	return reply, nil
}
