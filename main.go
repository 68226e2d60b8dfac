package main

import (
	"fmt"
	"os"
)

func main() {
	args := parseArgs(os.Args[1:])

	if args.mode == versionMode {
		fmt.Println("tasinput", version())
		return
	}

	cfg, err := LoadConfigOrDefault(args.Config)
	checkf(err, "failed to load configuration")

	// --log takes precedence over the configuration.
	var watchPath string
	if !args.Log.set {
		checkf(applyLogModules(cfg.General.Log), "invalid log modules in configuration")
		watchPath = configFile(args.Config)
	}

	switch args.mode {
	case hostMode:
		checkf(hostMain(args.Host, cfg, watchPath), "host error")
	case decodeMode:
		checkf(decodeMain(args.Decode, os.Stdout), "decode error")
	case encodeMode:
		checkf(encodeMain(args.Encode, os.Stdout), "encode error")
	case pressMode:
		checkf(pressMain(args.Press, cfg), "press error")
	case moveMode:
		checkf(moveMain(args.Move, cfg), "move error")
	case keysMode:
		checkf(keysMain(args.Keys, cfg, os.Stdout), "keys error")
	case captureMode:
		checkf(captureMain(args.Capture, os.Stdout), "capture error")
	}
}
