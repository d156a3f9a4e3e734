package lingo

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lingo/pkg/decoder"
	"github.com/dmitrymomot/lingo/pkg/dirwatch"
	"github.com/dmitrymomot/lingo/pkg/langstore"
	"github.com/dmitrymomot/lingo/pkg/langtree"
	"github.com/dmitrymomot/lingo/pkg/localecode"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

// DiffReporter renders a human-readable report of how a file's content
// changed. It is consulted only for debug logging; errors disable the
// report for that change.
type DiffReporter func(name, old, new string) (string, error)

// Loader watches a directory of language files, keeps parsed language
// trees in memory, and serves message lookups with fallback while files
// change underneath it.
//
// Configuration is validated in New and immutable afterwards. Filesystem
// events are processed one at a time on a single goroutine; read methods
// may be called concurrently from any goroutine.
type Loader struct {
	dir           string
	defaultLang   string
	fallbackLang  string
	extensions    []string
	debug         bool
	evictOnRemove bool
	quietWindow   time.Duration
	pollInterval  time.Duration

	log     *slog.Logger
	store   *langstore.Store
	onEvent func(Event)
	diff    DiffReporter

	watcher *dirwatch.Watcher
	wg      sync.WaitGroup

	mu      sync.Mutex
	started bool
}

// New creates a loader with the given options. It fails when no directory
// is configured or when the default or fallback language code does not
// match the ll_RR locale shape; a misconfigured loader is never returned
// in a half-usable state.
//
// The returned loader has not read anything yet; call Start (or Load) to
// populate it.
func New(opts ...Option) (*Loader, error) {
	l := &Loader{
		defaultLang: "en_UK",
		log:         logger.NewNope(),
		store:       langstore.New(),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.dir == "" {
		return nil, ErrNoDirectory
	}
	if !localecode.Valid(l.defaultLang) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDefaultLanguage, l.defaultLang)
	}
	if l.fallbackLang == "" {
		l.fallbackLang = l.defaultLang
	}
	if !localecode.Valid(l.fallbackLang) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFallbackLanguage, l.fallbackLang)
	}

	if len(l.extensions) == 0 {
		l.extensions = decoder.DefaultExtensions
	}
	l.extensions = slices.Clone(l.extensions)
	for i, ext := range l.extensions {
		l.extensions[i] = normalizeExt(ext)
	}

	return l, nil
}

// Load performs the initial bulk scan of the language directory. Files
// are processed in parallel; per-file failures (bad names, unreadable
// files, parse errors) are logged and skipped, never fatal. Load returns
// an error only when the directory itself cannot be read.
//
// Lifecycle events are not emitted for the initial state; consumers that
// subscribe before Load see only subsequent changes.
func (l *Loader) Load(ctx context.Context) error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("lingo: read language directory %q: %w", l.dir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			l.processFile(filepath.Join(l.dir, name), false, false)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if !l.store.Has(l.defaultLang) {
		l.log.Warn("default language missing after initial load",
			"language", l.defaultLang, "dir", l.dir)
	}
	l.log.Info("languages loaded", "count", l.store.Len(), "languages", l.store.Codes())

	return nil
}

// Start performs the initial bulk load and then begins watching the
// directory for changes. A failure to establish the watch is reported and
// the loader keeps serving the bulk-loaded state without hot reload; only
// a failed bulk load returns an error.
func (l *Loader) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return nil
	}
	l.started = true
	l.mu.Unlock()

	if err := l.Load(ctx); err != nil {
		return err
	}

	var watchOpts []dirwatch.Option
	if l.quietWindow > 0 {
		watchOpts = append(watchOpts, dirwatch.WithQuietWindow(l.quietWindow))
	}
	if l.pollInterval > 0 {
		watchOpts = append(watchOpts, dirwatch.WithPollInterval(l.pollInterval))
	}

	w, err := dirwatch.New(l.dir, watchOpts...)
	if err != nil {
		l.log.Error("language directory watch unavailable, hot reload disabled",
			"dir", l.dir, "error", err)
		return nil
	}

	l.mu.Lock()
	l.watcher = w
	l.mu.Unlock()

	w.Start(ctx)
	l.wg.Add(1)
	go l.consume(ctx, w)

	return nil
}

// Close stops the directory watch and waits for in-flight event handling
// to finish. Already-loaded languages remain servable.
func (l *Loader) Close() error {
	l.mu.Lock()
	w := l.watcher
	l.mu.Unlock()

	var err error
	if w != nil {
		err = w.Close()
	}
	l.wg.Wait()
	return err
}

// consume drains stabilized watch events one at a time.
func (l *Loader) consume(ctx context.Context, w *dirwatch.Watcher) {
	defer l.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events():
			if !ok {
				return
			}
			switch ev.Op {
			case dirwatch.OpWrite:
				l.processFile(ev.Path, true, false)
			case dirwatch.OpRemove:
				l.handleRemove(ev.Path)
			}

		case err, ok := <-w.Errors():
			if ok {
				l.log.Error("language directory watch error", "error", err)
			}
		}
	}
}

// processFile runs the per-file pipeline: extension filter, locale-code
// validation, raw content comparison, decode, atomic store replacement.
// With force set, the content comparison is skipped so the file is always
// reparsed. With emit set, a lifecycle event fires on success.
func (l *Loader) processFile(path string, emit, force bool) {
	if !l.recognized(filepath.Ext(path)) {
		l.log.Debug("skipping file with unrecognized extension", "file", path)
		return
	}

	code, ok := localecode.FromFilename(path)
	if !ok {
		l.log.Error("skipping file with invalid locale code name",
			"file", filepath.Base(path))
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		l.log.Error("read language file", "file", path, "error", err)
		return
	}

	prev, prevErr := l.store.Raw(code)
	existed := prevErr == nil

	if existed && !force && bytes.Equal(prev, raw) {
		l.log.Debug("language file content unchanged", "language", code)
		return
	}

	data, err := decoder.Decode(path, raw)
	if err != nil {
		// A previously loaded tree stays servable; a bad edit never
		// blanks out good translations.
		l.log.Error("parse language file", "file", path, "error", err)
		return
	}

	tree := langtree.Build(data)
	l.store.Set(code, tree, raw)

	if l.debug && l.diff != nil && existed {
		if report, derr := l.diff(filepath.Base(path), string(prev), string(raw)); derr == nil && report != "" {
			l.log.Debug("language file changed", "language", code, "diff", report)
		}
	}

	kind := EventAdded
	if existed {
		kind = EventUpdated
	}
	l.log.Info("language "+kind.String(), "language", code, "messages", tree.Len())

	if emit {
		l.emit(Event{Kind: kind, Code: code, Tree: tree})
	}
}

// handleRemove applies the configured file-removal policy.
func (l *Loader) handleRemove(path string) {
	code, ok := localecode.FromFilename(path)
	if !ok {
		return
	}

	if !l.evictOnRemove {
		l.log.Debug("language file removed, retaining loaded content", "language", code)
		return
	}
	if !l.store.Has(code) {
		return
	}

	l.store.Delete(code)
	l.log.Info("language removed", "language", code)
	l.emit(Event{Kind: EventRemoved, Code: code})
}

// Reload forces a reparse of the language file for code, bypassing the
// content-change check. The file is resolved by scanning the directory
// for a recognized extension; a missing file is a returned, non-fatal
// error and the stored entry is left untouched.
func (l *Loader) Reload(code string) error {
	if !localecode.Valid(code) {
		return fmt.Errorf("%w: %q", ErrInvalidLocaleCode, code)
	}

	path, err := l.findFile(code)
	if err != nil {
		return err
	}
	return l.ReloadFile(code, path)
}

// ReloadFile forces a reparse of an explicit file path into the entry for
// code. Read and parse failures are returned and leave the stored entry
// untouched.
func (l *Loader) ReloadFile(code, path string) error {
	if !localecode.Valid(code) {
		return fmt.Errorf("%w: %q", ErrInvalidLocaleCode, code)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("lingo: read language file %q: %w", path, err)
	}

	data, err := decoder.Decode(path, raw)
	if err != nil {
		return fmt.Errorf("lingo: reload %q: %w", code, err)
	}

	existed := l.store.Has(code)
	tree := langtree.Build(data)
	l.store.Set(code, tree, raw)

	kind := EventAdded
	if existed {
		kind = EventUpdated
	}
	l.log.Info("language "+kind.String(), "language", code, "messages", tree.Len(), "forced", true)
	l.emit(Event{Kind: kind, Code: code, Tree: tree})

	return nil
}

// findFile locates the language file for code by trying each recognized
// extension against the directory.
func (l *Loader) findFile(code string) (string, error) {
	for _, ext := range l.extensions {
		path := filepath.Join(l.dir, code+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q in %q", ErrNoLanguageFile, code, l.dir)
}

func (l *Loader) recognized(ext string) bool {
	return slices.Contains(l.extensions, normalizeExt(ext))
}

func (l *Loader) emit(ev Event) {
	if l.onEvent != nil {
		l.onEvent(ev)
	}
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}
