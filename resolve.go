package lingo

import (
	"fmt"

	"github.com/dmitrymomot/lingo/pkg/langtree"
	"github.com/dmitrymomot/lingo/pkg/localecode"
)

// Language returns the loaded tree for code, or the fallback language's
// tree when code is invalid or not loaded. The fallback language is used
// here even when it differs from the default language. Returns nil when
// the fallback is not loaded either; a nil tree is safe to query and
// always misses.
func (l *Loader) Language(code string) *langtree.Tree {
	if localecode.Valid(code) {
		if tree, err := l.store.Get(code); err == nil {
			return tree
		}
	}
	if tree, err := l.store.Get(l.fallbackLang); err == nil {
		return tree
	}
	return nil
}

// Message resolves the dot-separated path in the language for code,
// applying fallback per Language. Placeholders of the form {{name}} are
// replaced from the given maps. A missing message yields a displayable
// diagnostic naming the path and the requested language instead of an
// error; callers may render it directly.
func (l *Loader) Message(code, path string, placeholders ...M) string {
	if msg, ok := l.Language(code).Lookup(path); ok {
		return ReplacePlaceholders(msg, mergePlaceholders(placeholders...))
	}
	return fmt.Sprintf("missing translation: %s (%s)", path, code)
}

// Has reports whether a language is loaded for code, without fallback.
func (l *Loader) Has(code string) bool {
	return l.store.Has(code)
}

// Languages returns the sorted locale codes currently loaded.
func (l *Loader) Languages() []string {
	return l.store.Codes()
}

// DefaultLanguage returns the configured default language code.
func (l *Loader) DefaultLanguage() string {
	return l.defaultLang
}

// FallbackLanguage returns the configured fallback language code.
func (l *Loader) FallbackLanguage() string {
	return l.fallbackLang
}
