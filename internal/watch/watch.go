// Package watch re-runs a calculation whenever its input file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ChangeFunc is invoked after the watched file settles.
type ChangeFunc func(ctx context.Context)

// Watcher monitors one file via its parent directory, so that editors which
// replace the file on save are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange ChangeFunc
	log      zerolog.Logger

	fsw *fsnotify.Watcher
}

// New starts watching path. Close the watcher by cancelling the context
// passed to Run.
func New(path string, debounce time.Duration, onChange ChangeFunc, log zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		log:      log,
		fsw:      fsw,
	}, nil
}

// Run delivers debounced change notifications until ctx is done.
// Callbacks run on the calling goroutine, one at a time.
func (w *Watcher) Run(ctx context.Context) {
	defer w.fsw.Close()

	name := filepath.Base(w.path)
	var (
		timer  *time.Timer
		firing <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			firing = timer.C

		case <-firing:
			firing = nil
			w.log.Info().Str("path", w.path).Msg("input changed, recalculating")
			w.onChange(ctx)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}
