package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow batches bursts of directory events (editors often emit
// several per save) into a single onChange call.
const debounceWindow = 200 * time.Millisecond

// Watch starts an fsnotify watcher on dir and invokes onChange once the
// directory's contents settle after a change. Hidden entries are ignored,
// matching List. Watch blocks until ctx is cancelled and returns nil on a
// clean stop.
func Watch(ctx context.Context, dir string, logger *slog.Logger, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("storage: start watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("storage: watch %s: %w", dir, err)
	}
	logger.Debug("watcher: started", slog.String("dir", dir))

	// settleTimer debounces event bursts into one notification.
	var settleTimer *time.Timer
	var settleCh <-chan time.Time

	schedule := func() {
		if settleTimer == nil {
			settleTimer = time.NewTimer(debounceWindow)
			settleCh = settleTimer.C
			return
		}
		// Drain a fired, unconsumed timer before Reset; a stale tick
		// would notify twice for one burst.
		if !settleTimer.Stop() {
			select {
			case <-settleCh:
			default:
			}
		}
		settleTimer.Reset(debounceWindow)
	}

	for {
		select {
		case <-ctx.Done():
			if settleTimer != nil {
				settleTimer.Stop()
			}
			logger.Debug("watcher: stopped")
			return nil

		case <-settleCh:
			if onChange != nil {
				onChange()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if strings.HasPrefix(name, ".") {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("watcher: event",
				slog.String("name", name),
				slog.String("op", ev.Op.String()))
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
