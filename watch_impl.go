//go:build linux || darwin

package sdunit

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// watchDebounce coalesces the create/write event bursts editors and atomic
// renames produce into a single observation.
const watchDebounce = 10 * time.Millisecond

// WatchUnit watches the unit directory and reports changes to this
// service's unit file: creation, modification, and removal. Each event
// carries whether the file existed when the change settled, so callers can
// detect a descriptor being altered or removed behind their back.
//
// Watching is a read-only query and is not privilege-gated. The returned
// cleanup function stops the watch and waits for the watcher goroutine to
// exit; after it returns the event channel is closed.
func (s *Service) WatchUnit(ctx context.Context) (<-chan UnitEvent, WatchCleanupFunc, error) {
	unitPath := filepath.Join(s.UnitDir, s.UnitName())

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, &OpError{Op: OpWatch, Kind: KindIO, Path: s.UnitDir, Err: err}
	}

	if err := watcher.Add(s.UnitDir); err != nil {
		_ = watcher.Close()
		return nil, nil, &OpError{Op: OpWatch, Kind: KindIO, Path: s.UnitDir, Err: err}
	}

	ch := make(chan UnitEvent, 10)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
		close(ch)
	})

	cleanup := func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}

	var mu sync.Mutex
	var debouncer *time.Timer

	emit := func() {
		if sctx.IsStopping() {
			return
		}

		_, statErr := os.Stat(unitPath)
		ev := UnitEvent{Path: unitPath, Exists: statErr == nil}

		select {
		case ch <- ev:
		case <-sctx.Stopping():
		}
	}

	sctx.Go(func(sctx *stopper.Context) error {
		sctx.Defer(func() {
			mu.Lock()
			if debouncer != nil {
				debouncer.Stop()
			}
			mu.Unlock()
		})

		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if filepath.Base(event.Name) == s.UnitName() {
					mu.Lock()
					if debouncer != nil {
						debouncer.Stop()
					}
					debouncer = time.AfterFunc(watchDebounce, emit)
					mu.Unlock()
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil && !sctx.IsStopping() {
					select {
					case ch <- UnitEvent{Path: unitPath, Err: err}:
					case <-sctx.Stopping():
						return nil
					}
				}
			}
		}
		return nil
	})

	return ch, cleanup, nil
}
