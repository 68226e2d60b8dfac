package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-faster/jx"
	"github.com/veandco/go-sdl2/sdl"

	"tasinput/input"
	"tasinput/input/joypad"
	"tasinput/plugin"
	"tasinput/plugin/log"
	"tasinput/plugin/rpc"
	"tasinput/tui"
	"tasinput/ui"
)

// hostMain plays the role of the emulator: it loads the plugin, opens a rom
// and polls every controller once per frame until interrupted.
// cfgPath is the configuration file whose log modules are reloaded on change,
// empty to disable reloading.
func hostMain(args Host, cfg Config, cfgPath string) error {
	if args.Frontend != "" {
		cfg.General.Frontend = args.Frontend
	}
	if args.Pads != 0 {
		cfg.Host.Pads = args.Pads
	}
	if err := cfg.Check(); err != nil {
		return err
	}

	// SDL calls must happen on the main thread.
	if cfg.General.Frontend == "joypad" {
		var err error
		sdl.Main(func() { err = runHost(args, cfg, cfgPath) })
		return err
	}
	return runHost(args, cfg, cfgPath)
}

func runHost(args Host, cfg Config, cfgPath string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfgPath != "" {
		if err := watchLogConfig(ctx, cfgPath); err != nil {
			log.ModHost.WarnZ("not watching config").String("path", cfgPath).Error("err", err).End()
		}
	}

	var fe plugin.Frontend
	switch cfg.General.Frontend {
	case "tui":
		// The terminal belongs to the pads.
		log.SetOutput(io.Discard)
		tfe := tui.New()
		tfe.OnQuit = cancel
		fe = tfe
	case "gtk":
		fe = ui.New()
	case "joypad":
		jfe := joypad.New(cfg.Joypad, cfg.Host.FramePeriod())
		defer jfe.Close()
		fe = jfe
	case "rpc":
		srv, err := rpc.NewServer(cfg.RPC.Port)
		if err != nil {
			return fmt.Errorf("failed to start rpc server: %w", err)
		}
		defer srv.Close()
		fe = srv
	default:
		fe = plugin.Headless{}
	}

	p := plugin.New(fe, cfg.Host.JoinTimeout)
	if err := p.Startup(); err != nil {
		return err
	}
	defer p.Shutdown()

	if err := p.InitiateControllers(uint32(cfg.Host.Pads)); err != nil {
		// Pads whose driver started are usable.
		log.ModHost.ErrorZ("failed to initiate some controllers").Error("err", err).End()
	}
	if err := p.RomOpen(); err != nil {
		return err
	}

	h := newHost(p)
	if args.Record != nil {
		defer args.Record.Close()
		h.rec = args.Record
	}

	log.ModHost.InfoZ("polling controllers").
		String("frontend", cfg.General.Frontend).
		Duration("period", cfg.Host.FramePeriod()).
		End()

	ticker := time.NewTicker(cfg.Host.FramePeriod())
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			if err := h.poll(); err != nil {
				return fmt.Errorf("record: %w", err)
			}
		}
	}

	log.ModHost.InfoZ("closing rom").Int("frames", int(h.frame)).End()
	return p.RomClosed()
}

// host polls the plugin like an emulator does once per frame.
type host struct {
	p     *plugin.Plugin
	frame uint64
	last  [plugin.MaxPads]uint32

	rec io.Writer // nil when not recording
	enc jx.Encoder
}

func newHost(p *plugin.Plugin) *host {
	return &host{p: p}
}

// poll reads all controllers, logging and recording the ones that changed
// since the previous frame.
func (h *host) poll() error {
	defer func() { h.frame++ }()

	for ctrl := range plugin.MaxPads {
		keys := h.p.GetKeys(ctrl)
		if keys == h.last[ctrl] {
			continue
		}
		h.last[ctrl] = keys

		state := input.Decode(keys)
		log.ModHost.DebugZ("keys changed").
			Int("ctrl", ctrl).
			Hex32("keys", keys).
			Stringer("state", state).
			End()

		if h.rec != nil {
			if err := h.record(ctrl, keys, state); err != nil {
				return err
			}
		}
	}
	return nil
}

// record writes a JSON line such as:
//
//	{"frame":12,"pad":0,"keys":"0x00fb0080","state":{"a":true,...}}
func (h *host) record(ctrl int, keys uint32, state input.State) error {
	e := &h.enc
	e.Reset()
	e.ObjStart()
	e.FieldStart("frame")
	e.UInt64(h.frame)
	e.FieldStart("pad")
	e.Int(ctrl)
	e.FieldStart("keys")
	e.Str(fmt.Sprintf("0x%08x", keys))
	e.FieldStart("state")
	input.EncodeJSON(e, state)
	e.ObjEnd()

	_, err := h.rec.Write(append(e.Bytes(), '\n'))
	return err
}
