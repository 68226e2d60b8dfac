package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tasinput/plugin/log"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestReloadLogConfig(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)
	defer log.DisableDebugModules(log.ModuleMaskAll)

	path := filepath.Join(t.TempDir(), "config.toml")

	// Other goroutines keep logging while modules are reloaded.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
			}
			log.ModSlot.DebugZ("update").Int("pad", 0).End()
			log.ModHost.InfoZ("keys changed").End()
		}
	}()

	writeConfig(t, path, "[general]\nlog = \"slot,input\"\n")
	reloadLogConfig(path)
	if !log.ModSlot.Enabled(log.DebugLevel) || !log.ModInput.Enabled(log.DebugLevel) {
		t.Error("slot and input debug logs should be enabled")
	}

	writeConfig(t, path, "[general]\nlog = \"host\"\n")
	reloadLogConfig(path)
	if log.ModSlot.Enabled(log.DebugLevel) || !log.ModHost.Enabled(log.DebugLevel) {
		t.Error("only host debug logs should be enabled")
	}

	// Invalid configurations leave the modules untouched.
	writeConfig(t, path, "[general]\nlog = \"nosuchmodule\"\n")
	reloadLogConfig(path)
	writeConfig(t, path, "[general\n")
	reloadLogConfig(path)

	close(stop)
	<-done

	if !log.ModHost.Enabled(log.DebugLevel) {
		t.Error("host debug logs should still be enabled")
	}
}

func TestWatchLogConfig(t *testing.T) {
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)
	defer log.DisableDebugModules(log.ModuleMaskAll)

	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[general]\nlog = \"\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := watchLogConfig(ctx, path); err != nil {
		t.Fatal(err)
	}

	writeConfig(t, path, "[general]\nlog = \"ui\"\n")

	deadline := time.Now().Add(5 * time.Second)
	for !log.ModUI.Enabled(log.DebugLevel) {
		if time.Now().After(deadline) {
			t.Fatal("config change not applied")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
