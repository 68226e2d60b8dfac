package plugin

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
)

func TestConfigDecode(t *testing.T) {
	const text = `
[general]
frontend = "rpc"
log = "slot,rpc"

[host]
pads = 5
frame_rate = 50
join_timeout = "500ms"
`
	var cfg Config
	if _, err := toml.Decode(text, &cfg); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Check(); err != nil {
		t.Fatal(err)
	}

	want := Config{
		General: GeneralConfig{Frontend: "rpc", Log: "slot,rpc"},
		Host:    HostConfig{Pads: 5, FrameRate: 50, JoinTimeout: 500 * time.Millisecond},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.Host.FramePeriod(); got != 20*time.Millisecond {
		t.Errorf("FramePeriod() = %v, want 20ms", got)
	}
}

func TestConfigCheck(t *testing.T) {
	cfg := Config{Host: HostConfig{Pads: 0xF3}}
	if err := cfg.Check(); err != nil {
		t.Fatal(err)
	}
	want := Config{
		General: GeneralConfig{Frontend: "tui"},
		Host:    HostConfig{Pads: 0x3, FrameRate: 60, JoinTimeout: DefaultJoinTimeout},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	bad := Config{General: GeneralConfig{Frontend: "qt"}}
	if err := bad.Check(); err == nil {
		t.Fatal("Check should reject unknown frontend")
	}
}
