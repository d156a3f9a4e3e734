package lingo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo"
)

func acceptLoader(t *testing.T) *lingo.Loader {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "en_UK.json", enContent)
	writeFile(t, dir, "fr_FR.yml", frContent)
	writeFile(t, dir, "de_DE.json", deContent)

	l := newLoader(t, dir)
	require.NoError(t, l.Load(t.Context()))
	return l
}

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	l := acceptLoader(t)

	t.Run("exact region match wins", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "de_DE", l.MatchAcceptLanguage("de-DE,en;q=0.8"))
	})

	t.Run("base language matches a loaded region", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "fr_FR", l.MatchAcceptLanguage("fr,en;q=0.5"))
	})

	t.Run("quality ordering decides between bases", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "fr_FR", l.MatchAcceptLanguage("de;q=0.6,fr;q=0.9"))
	})

	t.Run("no match falls back to default language", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "en_UK", l.MatchAcceptLanguage("ja-JP,ko;q=0.9"))
	})

	t.Run("empty header yields default language", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "en_UK", l.MatchAcceptLanguage(""))
	})

	t.Run("oversized header yields default language", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "en_UK", l.MatchAcceptLanguage(strings.Repeat("en,", 4096)))
	})

	t.Run("zero quality entries are ignored", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "en_UK", l.MatchAcceptLanguage("de;q=0"))
	})
}
