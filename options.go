package lingo

import (
	"log/slog"
	"time"
)

// Option configures the loader.
type Option func(*Loader)

// WithDirectory sets the directory holding the language files.
// Required; New fails without it.
func WithDirectory(dir string) Option {
	return func(l *Loader) {
		if dir != "" {
			l.dir = dir
		}
	}
}

// WithDefaultLanguage sets the locale code expected to always be present.
// Its absence after the initial load is reported but not fatal.
// Defaults to "en_UK".
func WithDefaultLanguage(code string) Option {
	return func(l *Loader) {
		if code != "" {
			l.defaultLang = code
		}
	}
}

// WithFallbackLanguage sets the locale code served when a requested
// language has no loaded entry. Defaults to the default language.
func WithFallbackLanguage(code string) Option {
	return func(l *Loader) {
		if code != "" {
			l.fallbackLang = code
		}
	}
}

// WithExtensions restricts the recognized language file extensions.
// Defaults to .yaml, .yml, .json and .toml.
func WithExtensions(exts ...string) Option {
	return func(l *Loader) {
		if len(exts) > 0 {
			l.extensions = exts
		}
	}
}

// WithDebug enables debug logging, including diff reports for changed
// files when a reporter is configured.
func WithDebug(debug bool) Option {
	return func(l *Loader) {
		l.debug = debug
	}
}

// WithLogger sets the loader logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithEventHandler sets the handler receiving lifecycle notifications.
// The handler is invoked synchronously from the event-processing
// goroutine, so it must not block for long.
func WithEventHandler(fn func(Event)) Option {
	return func(l *Loader) {
		l.onEvent = fn
	}
}

// WithDiffReporter sets the formatter used to render content diffs in
// debug logs. Nil disables diff reporting.
func WithDiffReporter(fn DiffReporter) Option {
	return func(l *Loader) {
		l.diff = fn
	}
}

// WithEvictOnRemove controls what happens when a watched language file is
// deleted. When enabled, the store entry is evicted and EventRemoved
// fires; when disabled (the default) the last loaded content stays
// servable for the process lifetime.
func WithEvictOnRemove(evict bool) Option {
	return func(l *Loader) {
		l.evictOnRemove = evict
	}
}

// WithWatchWindow tunes the write-stabilization timing: quiet is how long
// a file must stay quiescent before its change is processed, poll is the
// check granularity. Defaults to 500ms and 100ms.
func WithWatchWindow(quiet, poll time.Duration) Option {
	return func(l *Loader) {
		if quiet > 0 {
			l.quietWindow = quiet
		}
		if poll > 0 {
			l.pollInterval = poll
		}
	}
}
