package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"tasinput/input/joypad"
	"tasinput/plugin"
	"tasinput/plugin/log"
)

type RPCConfig struct {
	Port int `toml:"port"`
}

type Config struct {
	plugin.Config
	RPC    RPCConfig     `toml:"rpc"`
	Joypad joypad.Config `toml:"joypad"`
}

const (
	cfgDirname  = "tasinput"
	cfgFilename = "config.toml"
)

var defaultConfig = Config{
	Config: plugin.DefaultConfig,
	RPC:    RPCConfig{Port: 6464},
}

// ConfigPath returns the path of the configuration file in the user config
// directory.
func ConfigPath() (string, error) {
	cfgdir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(cfgdir, cfgDirname, cfgFilename), nil
}

// LoadConfigOrDefault loads the configuration from path, or from the user
// config directory if path is empty. A missing file gives the default
// configuration, a malformed one is an error.
func LoadConfigOrDefault(path string) (Config, error) {
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			log.ModHost.WarnZ("no user config directory").Error("err", err).End()
			return defaultConfig, nil
		}
	}

	cfg := defaultConfig
	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = defaultConfig
	case err != nil:
		return cfg, fmt.Errorf("config %s: %w", path, err)
	default:
		if undec := md.Undecoded(); len(undec) != 0 {
			return cfg, fmt.Errorf("config %s: unknown keys %v", path, undec)
		}
	}

	if err := cfg.Check(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Joypad.Check(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// configFile returns path, or the default configuration file, if it exists.
func configFile(path string) string {
	if path == "" {
		var err error
		if path, err = ConfigPath(); err != nil {
			return ""
		}
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
