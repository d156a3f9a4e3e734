// Package langstore holds parsed language trees keyed by locale code,
// together with the raw file content each tree was parsed from.
//
// The raw content is kept solely so callers can tell whether a subsequent
// filesystem event carries an actual content change; no-op writes are then
// skipped without a reparse. Entries are replaced wholesale under the
// lock, so a reader never observes a partially updated tree.
package langstore

import (
	"errors"
	"sort"
	"sync"

	"github.com/dmitrymomot/lingo/pkg/langtree"
)

// ErrNotFound is returned when no entry exists for a locale code.
var ErrNotFound = errors.New("langstore: language not found")

// entry pairs a parsed tree with the raw bytes it was parsed from.
type entry struct {
	tree *langtree.Tree
	raw  []byte
}

// Store is a concurrency-safe mapping from locale code to language data.
// The zero value is not usable; create instances with New.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New creates an empty store.
func New() *Store {
	return &Store{entries: make(map[string]entry)}
}

// Get returns the parsed tree for code.
// Returns ErrNotFound if the code has never been loaded.
func (s *Store) Get(code string) (*langtree.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[code]
	if !ok {
		return nil, ErrNotFound
	}
	return e.tree, nil
}

// Raw returns the raw file content the entry for code was parsed from.
// Callers must not modify the returned slice.
func (s *Store) Raw(code string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[code]
	if !ok {
		return nil, ErrNotFound
	}
	return e.raw, nil
}

// Set stores tree and raw for code, replacing any prior entry wholesale.
func (s *Store) Set(code string, tree *langtree.Tree, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[code] = entry{tree: tree, raw: raw}
}

// Has reports whether an entry exists for code.
func (s *Store) Has(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[code]
	return ok
}

// Delete removes the entry for code, if any.
func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, code)
}

// Codes returns the sorted locale codes with a stored entry.
func (s *Store) Codes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.entries))
	for code := range s.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
