package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"

	"tasinput/plugin/log"
)

// watchLogConfig reloads the configuration file whenever it's modified and
// applies its log modules, until ctx is done.
func watchLogConfig(ctx context.Context, path string) error {
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Editors often replace the file, watch its directory.
	if err := watcher.Watch(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var reload <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case <-reload:
				reload = nil
				reloadLogConfig(path)
			case ev := <-watcher.Event:
				if ev.Name == path && !ev.IsAttrib() && !ev.IsDelete() {
					reload = time.After(100 * time.Millisecond)
				}
			case err := <-watcher.Error:
				log.ModHost.WarnZ("config watcher").Error("err", err).End()
			}
		}
	}()
	return nil
}

func reloadLogConfig(path string) {
	cfg, err := LoadConfigOrDefault(path)
	if err != nil {
		log.ModHost.WarnZ("failed to reload config").Error("err", err).End()
		return
	}
	lm, nolog, err := parseLogModules(cfg.General.Log)
	if err != nil {
		log.ModHost.WarnZ("invalid log modules").Error("err", err).End()
		return
	}
	log.DisableDebugModules(log.ModuleMaskAll)
	if nolog {
		log.Disable()
		return
	}
	log.EnableDebugModules(lm)
	log.ModHost.InfoZ("log modules reloaded").String("log", cfg.General.Log).End()
}
