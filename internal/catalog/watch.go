package catalog

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadCallback is called after a watcher-driven catalog reload with the new
// canonical list size.
type ReloadCallback func(count int)

// Watch starts an fsnotify watcher on the dataset file's directory and
// reloads the engine whenever the file changes, until ctx is cancelled.
// Events are debounced because editors and atomic-rename writers emit several
// per save. A reload that fails to parse keeps the previous canonical list.
func Watch(ctx context.Context, engine *Engine, datasetPath string, logger *slog.Logger, cb ReloadCallback) error {
	abs, err := filepath.Abs(datasetPath)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory, not the file: rename-replace saves would drop a
	// file-level watch.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("dataset", abs))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-reloadCh:
			records, loadErr := LoadFile(abs)
			if loadErr != nil {
				logger.Warn("watcher: reload failed, keeping previous catalog",
					slog.String("error", loadErr.Error()))
				continue
			}
			engine.Load(records)
			logger.Info("watcher: catalog reloaded", slog.Int("count", len(records)))
			if cb != nil {
				cb(len(records))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
