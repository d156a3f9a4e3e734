// Package localecode validates and manipulates locale identifiers of the
// form ll_RR: a two-letter lowercase language code, an underscore, and a
// two-letter uppercase region code (e.g. "en_UK", "de_DE").
//
// This is the naming contract for language files: a file's locale code is
// its basename with the extension stripped, and anything that does not
// match the ll_RR shape is rejected at the boundary.
package localecode

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// codeLength is the exact length of a valid locale code ("xx_YY").
const codeLength = 5

// Valid reports whether code matches the ll_RR locale shape.
func Valid(code string) bool {
	if len(code) != codeLength || code[2] != '_' {
		return false
	}
	return isLower(code[0]) && isLower(code[1]) && isUpper(code[3]) && isUpper(code[4])
}

// FromFilename extracts the locale code from a language file name by
// stripping the directory and extension. The second return value is false
// when the resulting stem is not a valid locale code.
func FromFilename(name string) (string, bool) {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if !Valid(stem) {
		return "", false
	}
	return stem, true
}

// Tag converts a locale code to a BCP 47 language tag for interop with
// the golang.org/x/text ecosystem (e.g. "en_UK" becomes "en-UK").
// Invalid codes map to language.Und.
func Tag(code string) language.Tag {
	if !Valid(code) {
		return language.Und
	}
	tag, err := language.Parse(code[:2] + "-" + code[3:])
	if err != nil {
		return language.Und
	}
	return tag
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
