package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the sketch file must stay quiet before a re-render.
// Editors often write a file in several steps.
const settle = 100 * time.Millisecond

// watch renders the sketch once, then again after every change to it,
// until ctx is done. Render errors are logged and do not stop the loop.
func watch(ctx context.Context, cfg config, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory: saving by rename replaces the file's inode.
	path := filepath.Clean(cfg.sketch)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}

	once := func() {
		c, err := render(cfg)
		if err != nil {
			logger.Error("render failed", "sketch", path, "err", err)
			return
		}
		out := cfg
		out.show = false
		if err := present(ctx, c, out, logger); err != nil {
			logger.Error("output failed", "err", err)
		}
	}
	once()
	logger.Info("watching", "sketch", path)

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("sketch changed", "op", ev.Op.String())
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "err", err)
		case <-timer.C:
			once()
		}
	}
}
