// Package dirwatch watches a single directory for file changes and
// delivers events only after a write has stabilized.
//
// Editors commonly save in several steps (truncate, write, rename, write
// again), which raw filesystem notifications surface as a burst of events
// per save. The watcher coalesces that burst: a path is reported once it
// has been quiescent for the configured quiet window, checked at the
// configured poll interval. Files already present when the watcher starts
// produce no events; initial state is the caller's concern.
package dirwatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Default stabilization timing.
const (
	defaultQuietWindow  = 500 * time.Millisecond
	defaultPollInterval = 100 * time.Millisecond
)

// Op classifies a stabilized change event.
type Op uint8

const (
	// OpWrite covers file creation and modification.
	OpWrite Op = iota
	// OpRemove covers file removal and renames away from the directory.
	OpRemove
)

// String returns the op name.
func (o Op) String() string {
	switch o {
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Event is a stabilized change notification for a single path.
type Event struct {
	Path string
	Op   Op
}

// Watcher delivers stabilized change events for one directory.
// Events are delivered serially on a single channel.
type Watcher struct {
	fw        *fsnotify.Watcher
	events    chan Event
	errs      chan error
	quiet     time.Duration
	poll      time.Duration
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithQuietWindow sets how long a path must stay quiescent before its
// change is reported. Defaults to 500ms.
func WithQuietWindow(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.quiet = d
		}
	}
}

// WithPollInterval sets how often pending paths are checked for
// quiescence. Defaults to 100ms.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.poll = d
		}
	}
}

// New creates a watcher subscribed to dir. The watcher is inert until
// Start is called.
func New(dir string, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("dirwatch: create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("dirwatch: watch %q: %w", dir, err)
	}

	w := &Watcher{
		fw:     fw,
		events: make(chan Event, 16),
		errs:   make(chan error, 1),
		quiet:  defaultQuietWindow,
		poll:   defaultPollInterval,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start launches the event loop. It returns immediately; events flow on
// Events until the context is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Events returns the stabilized event stream.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error stream of the underlying watcher.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and releases the filesystem subscription.
// Close is idempotent.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.events)

	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	// Paths with an observed write, keyed to the time it was last seen.
	pending := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			switch {
			case ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Write):
				pending[ev.Name] = time.Now()
			case ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename):
				// The file is gone; there is nothing to stabilize.
				delete(pending, ev.Name)
				if !w.emit(ctx, Event{Path: ev.Name, Op: OpRemove}) {
					return
				}
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}

		case now := <-ticker.C:
			for path, last := range pending {
				if now.Sub(last) < w.quiet {
					continue
				}
				delete(pending, path)
				if !w.emit(ctx, Event{Path: path, Op: OpWrite}) {
					return
				}
			}
		}
	}
}

// emit delivers an event, reporting false when the watcher is shutting
// down before delivery completes.
func (w *Watcher) emit(ctx context.Context, ev Event) bool {
	select {
	case w.events <- ev:
		return true
	case <-ctx.Done():
		return false
	case <-w.done:
		return false
	}
}
