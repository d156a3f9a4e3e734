package localecode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lingo/pkg/localecode"
)

func TestValid(t *testing.T) {
	t.Parallel()

	valid := []string{"en_UK", "de_DE", "fr_FR", "pt_BR", "ja_JP"}
	for _, code := range valid {
		assert.True(t, localecode.Valid(code), code)
	}

	invalid := []string{
		"",
		"en",
		"en_",
		"en_uk",
		"EN_UK",
		"en-UK",
		"eng_UK",
		"en_UKX",
		"e1_UK",
		"en_U2",
		"en UK",
		" en_UK",
		"en_UK ",
	}
	for _, code := range invalid {
		assert.False(t, localecode.Valid(code), "%q should be invalid", code)
	}
}

func TestFromFilename(t *testing.T) {
	t.Parallel()

	t.Run("extracts code from simple filename", func(t *testing.T) {
		t.Parallel()
		code, ok := localecode.FromFilename("en_UK.json")
		require.True(t, ok)
		require.Equal(t, "en_UK", code)
	})

	t.Run("extracts code from full path", func(t *testing.T) {
		t.Parallel()
		code, ok := localecode.FromFilename("/srv/languages/fr_FR.yml")
		require.True(t, ok)
		require.Equal(t, "fr_FR", code)
	})

	t.Run("rejects non-conforming stem", func(t *testing.T) {
		t.Parallel()
		_, ok := localecode.FromFilename("bad-name.json")
		require.False(t, ok)
	})

	t.Run("rejects extensionless non-code", func(t *testing.T) {
		t.Parallel()
		_, ok := localecode.FromFilename("README")
		require.False(t, ok)
	})
}

func TestTag(t *testing.T) {
	t.Parallel()

	t.Run("converts to BCP 47 tag", func(t *testing.T) {
		t.Parallel()
		tag := localecode.Tag("de_DE")
		require.Equal(t, language.MustParse("de-DE"), tag)
	})

	t.Run("invalid code maps to Und", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, language.Und, localecode.Tag("not-a-code"))
	})
}
