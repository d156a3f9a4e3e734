// Package lingo is a hot-reloading loader for directory-backed language
// resources. It watches a directory of language files (YAML, JSON or
// TOML, one file per locale), keeps parsed message trees in memory, and
// serves nested message lookups with fallback while the files change
// underneath a running process.
//
// Files are named by locale code: a two-letter lowercase language code,
// an underscore, and a two-letter uppercase region code, e.g. en_UK.json
// or de_DE.yml. Files that do not follow this convention are skipped with
// a logged error.
//
// # Quick Start
//
// Create a loader with lingo.New(), then Start() it to perform the
// initial bulk load and begin watching for changes:
//
//	loader, err := lingo.New(
//	    lingo.WithDirectory("./languages"),
//	    lingo.WithDefaultLanguage("en_UK"),
//	    lingo.WithFallbackLanguage("en_UK"),
//	    lingo.WithLogger(logger.New()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := loader.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer loader.Close()
//
//	msg := loader.Message("de_DE", "welcome.message", lingo.M{"user": "mia"})
//
// # Hot Reload
//
// Edits to a language file are picked up automatically once the write has
// stabilized (roughly half a second of quiescence, so multi-step editor
// saves produce a single reload). A rewrite with byte-identical content
// is a no-op; a file that no longer parses is reported and the previously
// loaded messages stay servable.
//
// # Lifecycle Events
//
// Subscribe to change notifications to re-render cached UI strings:
//
//	lingo.WithEventHandler(func(ev lingo.Event) {
//	    log.Printf("%s: %s", ev.Kind, ev.Code)
//	})
//
// EventAdded fires when a language file appears after startup,
// EventUpdated when loaded content is replaced, and EventRemoved when a
// file disappears and eviction on removal is enabled.
//
// # Missing Messages
//
// A message lookup that cannot be satisfied returns a displayable
// diagnostic naming the path and the requested language instead of an
// error, because lookup results commonly flow straight to end users:
//
//	loader.Message("en_UK", "welcome.nonexistent")
//	// Output: "missing translation: welcome.nonexistent (en_UK)"
package lingo
