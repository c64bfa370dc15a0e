// Package watch rebuilds the tree of a [rib.Holder] whenever its RIB file
// changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rib-format/go-rib"
	"github.com/rib-format/go-rib/debug"
)

type watchOpts struct {
	debounce time.Duration
	log      *slog.Logger
	notify   func(rib.Status, error)
}

type Option func(*watchOpts)

// Debounce waits d after the last change before rebuilding.
func Debounce(d time.Duration) Option {
	return func(o *watchOpts) { o.debounce = d }
}

func Logger(l *slog.Logger) Option {
	return func(o *watchOpts) { o.log = l }
}

// Notify calls f after every rebuild attempt with its outcome.
func Notify(f func(rib.Status, error)) Option {
	return func(o *watchOpts) { o.notify = f }
}

// Run builds path into h, then rebuilds it after each write until ctx is
// done.  A failed rebuild leaves the tree of h in place.  The directory of
// path is watched so that editors replacing the file are followed.
func Run(ctx context.Context, h *rib.Holder, path string, opts ...Option) error {
	o := &watchOpts{debounce: 100 * time.Millisecond, log: slog.Default()}
	for _, f := range opts {
		f(o)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	o.rebuild(h, abs)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if debug.Watch() {
				debug.Logf("watch: %s\n", ev)
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(o.debounce)
			} else {
				timer.Reset(o.debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			o.log.Error("watcher error", "path", abs, "error", err)
		case <-fire:
			fire = nil
			o.rebuild(h, abs)
		}
	}
}

func (o *watchOpts) rebuild(h *rib.Holder, path string) {
	st, err := h.Rebuild(path)
	if err != nil {
		o.log.Warn(st.String(), "path", path, "error", err)
	}
	if o.notify != nil {
		o.notify(st, err)
	}
}
