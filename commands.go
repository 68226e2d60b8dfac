package main

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/go-faster/jx"
	"github.com/veandco/go-sdl2/sdl"

	"tasinput/input"
	"tasinput/input/joypad"
	"tasinput/plugin/rpc"
)

func parseWire(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid wire value %q", s)
	}
	return uint32(v), nil
}

func decodeMain(args Decode, w io.Writer) error {
	var e jx.Encoder
	for _, str := range args.Values {
		v, err := parseWire(str)
		if err != nil {
			return err
		}
		s := input.Decode(v)
		if args.JSON {
			e.Reset()
			input.EncodeJSON(&e, s)
			fmt.Fprintf(w, "%s\n", e.Bytes())
			continue
		}
		fmt.Fprintf(w, "0x%08x  %s\n", v, s)
	}
	return nil
}

func encodeMain(args Encode, w io.Writer) error {
	var s input.State
	for _, name := range args.Press {
		b, err := input.ParseButton(name)
		if err != nil {
			return err
		}
		s.Set(b, true)
	}
	s.X, s.Y = args.X, args.Y
	fmt.Fprintf(w, "0x%08x\n", input.Encode(s))
	return nil
}

// parsePress parses BUTTON[=on|off].
func parsePress(s string) (input.Button, bool, error) {
	name, val, found := strings.Cut(s, "=")
	b, err := input.ParseButton(name)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return b, true, nil
	}
	switch strings.ToLower(val) {
	case "on", "true", "1":
		return b, true, nil
	case "off", "false", "0":
		return b, false, nil
	}
	return 0, false, fmt.Errorf("invalid button state %q, want on or off", val)
}

func dialHost(flags RPCFlags, cfg Config) (*rpc.Client, error) {
	port := flags.Port
	if port == 0 {
		port = cfg.RPC.Port
	}
	return rpc.NewClient(port)
}

func pressMain(args Press, cfg Config) error {
	b, pressed, err := parsePress(args.Button)
	if err != nil {
		return err
	}
	client, err := dialHost(args.RPCFlags, cfg)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.Press(args.Pad, b.String(), pressed)
}

func moveMain(args Move, cfg Config) error {
	a, err := input.ParseAxis(args.Axis)
	if err != nil {
		return err
	}
	if args.Value < input.AxisMin {
		return fmt.Errorf("axis value %d out of range [%d, %d]", args.Value, input.AxisMin, input.AxisMax)
	}
	client, err := dialHost(args.RPCFlags, cfg)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.Move(args.Pad, a.String(), args.Value)
}

func keysMain(args Keys, cfg Config, w io.Writer) error {
	client, err := dialHost(args.RPCFlags, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	v, err := client.Keys(args.Pad)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "0x%08x  %s\n", v, input.Decode(v))
	return nil
}

func captureMain(args Capture, w io.Writer) error {
	var (
		code joypad.Code
		err  error
	)
	sdl.Main(func() {
		code, err = joypad.Capture(args.Timeout)
	})
	if err != nil {
		return err
	}
	out, err := code.MarshalText()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", out)
	return nil
}

func version() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "(devel)"
	}
	return bi.Main.Version
}
