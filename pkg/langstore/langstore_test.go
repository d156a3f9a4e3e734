package langstore_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/langstore"
	"github.com/dmitrymomot/lingo/pkg/langtree"
)

func tree(msg string) *langtree.Tree {
	return langtree.Build(map[string]any{"welcome": map[string]any{"message": msg}})
}

func TestStore(t *testing.T) {
	t.Parallel()

	t.Run("get returns ErrNotFound for unknown code", func(t *testing.T) {
		t.Parallel()
		s := langstore.New()
		_, err := s.Get("en_UK")
		require.ErrorIs(t, err, langstore.ErrNotFound)
		_, err = s.Raw("en_UK")
		require.ErrorIs(t, err, langstore.ErrNotFound)
		require.False(t, s.Has("en_UK"))
	})

	t.Run("set then get round-trips tree and raw", func(t *testing.T) {
		t.Parallel()
		s := langstore.New()
		want := tree("Hello")
		s.Set("en_UK", want, []byte("raw content"))

		got, err := s.Get("en_UK")
		require.NoError(t, err)
		require.Same(t, want, got)

		raw, err := s.Raw("en_UK")
		require.NoError(t, err)
		require.Equal(t, []byte("raw content"), raw)
		require.True(t, s.Has("en_UK"))
	})

	t.Run("set overwrites wholesale", func(t *testing.T) {
		t.Parallel()
		s := langstore.New()
		s.Set("en_UK", tree("old"), []byte("old"))
		replacement := tree("new")
		s.Set("en_UK", replacement, []byte("new"))

		got, err := s.Get("en_UK")
		require.NoError(t, err)
		require.Same(t, replacement, got)
		require.Equal(t, 1, s.Len())
	})

	t.Run("delete removes entry", func(t *testing.T) {
		t.Parallel()
		s := langstore.New()
		s.Set("en_UK", tree("x"), nil)
		s.Delete("en_UK")
		require.False(t, s.Has("en_UK"))

		// Deleting an absent code is a no-op.
		s.Delete("fr_FR")
	})

	t.Run("codes are sorted", func(t *testing.T) {
		t.Parallel()
		s := langstore.New()
		s.Set("fr_FR", tree("b"), nil)
		s.Set("de_DE", tree("c"), nil)
		s.Set("en_UK", tree("a"), nil)
		assert.Equal(t, []string{"de_DE", "en_UK", "fr_FR"}, s.Codes())
	})
}

func TestStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := langstore.New()
	s.Set("en_UK", tree("initial"), []byte("initial"))

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := range 100 {
				s.Set("en_UK", tree(fmt.Sprintf("writer %d-%d", i, j)), []byte("w"))
				s.Set(fmt.Sprintf("de_D%c", 'A'+byte(i)), tree("other"), nil)
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				if got, err := s.Get("en_UK"); err == nil {
					// A reader must always see a complete tree.
					_, ok := got.Lookup("welcome.message")
					assert.True(t, ok)
				}
				s.Codes()
				s.Has("en_UK")
			}
		}()
	}
	wg.Wait()
}
