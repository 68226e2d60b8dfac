package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"tasinput/plugin/log"
)

type mode byte

const (
	hostMode    mode = iota // Run simulated emulator host
	decodeMode              // Decode wire values
	encodeMode              // Encode a controller state
	pressMode               // Press/release a button through rpc
	moveMode                // Move a stick axis through rpc
	keysMode                // Show the wire value of a pad through rpc
	captureMode             // Capture a game controller input code
	versionMode             // Show tasinput version
)

type (
	CLI struct {
		Host    Host    `cmd:"" help:"Run a simulated emulator host polling the controllers. (default command)" default:"true"`
		Decode  Decode  `cmd:"" help:"Decode controller wire values."`
		Encode  Encode  `cmd:"" help:"Encode a controller state into its wire value."`
		Press   Press   `cmd:"" help:"Press or release a button of a running host. (rpc frontend)"`
		Move    Move    `cmd:"" help:"Move a stick axis of a running host. (rpc frontend)"`
		Keys    Keys    `cmd:"" help:"Show the wire value of a pad of a running host. (rpc frontend)"`
		Capture Capture `cmd:"" help:"Print the code of the next game controller input, for joypad mappings."`
		Version Version `cmd:"" help:"Show tasinput version."`

		Log    logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`
		Config string     `help:"Configuration file." type:"path" placeholder:"FILE"`

		mode mode
	}

	Host struct {
		Frontend string   `name:"frontend" help:"${frontend_help}" enum:",tui,gtk,joypad,rpc,headless" default:""`
		Pads     uint8    `name:"pads" help:"Mask of the pads to initialize, overrides config." default:"0"`
		Record   *outfile `name:"record" help:"Write each polled state change as a JSON line." placeholder:"FILE|stdout|stderr"`
	}

	Decode struct {
		Values []string `arg:"" name:"value" help:"Wire values, in hex (0x prefix optional)."`
		JSON   bool     `name:"json" help:"Output JSON."`
	}

	Encode struct {
		Press []string `name:"press" help:"Pressed buttons." sep:","`
		X     int8     `name:"x" help:"Stick X axis, in [-127, 127]."`
		Y     int8     `name:"y" help:"Stick Y axis, in [-127, 127]."`
	}

	Press struct {
		RPCFlags
		Button string `arg:"" help:"Button name, optionally followed by =on or =off (default on)."`
	}

	Move struct {
		RPCFlags
		Axis  string `arg:"" help:"Stick axis, x or y."`
		Value int8   `arg:"" help:"Axis value, in [-127, 127]."`
	}

	Keys struct {
		RPCFlags
	}

	RPCFlags struct {
		Port int   `name:"port" help:"RPC port of the host, defaults to the configured one." default:"0"`
		Pad  uint8 `name:"pad" help:"Pad index, from 0 to 3." default:"0"`
	}

	Capture struct {
		Timeout time.Duration `name:"timeout" help:"Give up after this duration." default:"10s"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"frontend_help": "Presentation frontend (tui, gtk, joypad, rpc or headless), overrides config.",
	"log_help":      "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("tasinput"),
		kong.Description("Controller input plugin host and tools."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch ctx.Command() {
	case "host":
		cfg.mode = hostMode
	case "decode <value>":
		cfg.mode = decodeMode
	case "encode":
		cfg.mode = encodeMode
	case "press <button>":
		cfg.mode = pressMode
	case "move <axis> <value>":
		cfg.mode = moveMode
	case "keys":
		cfg.mode = keysMode
	case "capture":
		cfg.mode = captureMode
	case "version":
		cfg.mode = versionMode
	default:
		fatalf("unexpected command %q", ctx.Command())
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if ctx.Command() == "" || strings.HasPrefix(ctx.Command(), "host") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask struct {
	set bool
}

// Decode decodes a comma-separated list of module names and enables debug logs
// for them.
//
// Implements kong.MapperValue interface.
func (lm *logModMask) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	lm.set = true
	return applyLogModules(tok.Value.(string))
}

// applyLogModules enables debug logs for a comma-separated list of modules.
func applyLogModules(list string) error {
	lm, nolog, err := parseLogModules(list)
	if err != nil {
		return err
	}
	if nolog {
		log.Disable()
		return nil
	}
	log.EnableDebugModules(lm)
	return nil
}

// parseLogModules parses a comma-separated list of module names, 'all' or
// 'no'.
func parseLogModules(list string) (lm log.ModuleMask, nolog bool, err error) {
	allLogs := false

	for _, v := range strings.Split(list, ",") {
		switch v {
		case "":
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return 0, false, fmt.Errorf("unknown log module %s", v)
			}
			lm |= mod.Mask()
		}
	}

	if nolog {
		if allLogs {
			return 0, false, fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return 0, false, fmt.Errorf("cannot combine 'no' with other log modules")
		}
		return 0, true, nil
	}

	if allLogs {
		lm = log.ModuleMaskAll
	}
	return lm, false, nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
