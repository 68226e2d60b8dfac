package plugin

import (
	"fmt"
	"slices"
	"time"

	"tasinput/plugin/log"
)

type Config struct {
	General GeneralConfig `toml:"general"`
	Host    HostConfig    `toml:"host"`
}

type GeneralConfig struct {
	// Frontend selects the presentation drivers: "tui", "gtk", "joypad",
	// "rpc" or "headless".
	Frontend string `toml:"frontend"`

	// Log is a comma-separated list of modules to enable debug logs for.
	Log string `toml:"log"`
}

type HostConfig struct {
	Pads        uint8         `toml:"pads"` // mask of pads to initialize
	FrameRate   int           `toml:"frame_rate"`
	JoinTimeout time.Duration `toml:"join_timeout"`
}

// Frontends lists the valid values of GeneralConfig.Frontend.
var Frontends = []string{"tui", "gtk", "joypad", "rpc", "headless"}

var DefaultConfig = Config{
	General: GeneralConfig{
		Frontend: "tui",
	},
	Host: HostConfig{
		Pads:        0b0001,
		FrameRate:   60,
		JoinTimeout: DefaultJoinTimeout,
	},
}

// Check replaces invalid values with their defaults and reports an error for
// the ones that can't be fixed.
func (cfg *Config) Check() error {
	if cfg.General.Frontend == "" {
		cfg.General.Frontend = DefaultConfig.General.Frontend
	}
	if !slices.Contains(Frontends, cfg.General.Frontend) {
		return fmt.Errorf("invalid frontend %q, valid values are %v", cfg.General.Frontend, Frontends)
	}
	if cfg.Host.Pads&^(1<<MaxPads-1) != 0 {
		log.ModPlugin.WarnZ("invalid pad mask, ignoring high pads").
			Hex8("pads", cfg.Host.Pads).
			Int("max", MaxPads).
			End()
		cfg.Host.Pads &= 1<<MaxPads - 1
	}
	if cfg.Host.FrameRate <= 0 {
		cfg.Host.FrameRate = DefaultConfig.Host.FrameRate
	}
	if cfg.Host.JoinTimeout <= 0 {
		cfg.Host.JoinTimeout = DefaultConfig.Host.JoinTimeout
	}
	return nil
}

// FramePeriod returns the time between two polls of the host.
func (hc HostConfig) FramePeriod() time.Duration {
	return time.Second / time.Duration(hc.FrameRate)
}
