package lingo

import "errors"

var (
	// ErrNoDirectory indicates a loader constructed without a language directory.
	ErrNoDirectory = errors.New("lingo: language directory is required")

	// ErrInvalidDefaultLanguage indicates a default language code that does
	// not match the ll_RR locale shape.
	ErrInvalidDefaultLanguage = errors.New("lingo: invalid default language code")

	// ErrInvalidFallbackLanguage indicates a fallback language code that does
	// not match the ll_RR locale shape.
	ErrInvalidFallbackLanguage = errors.New("lingo: invalid fallback language code")

	// ErrInvalidLocaleCode indicates a locale code argument that does not
	// match the ll_RR locale shape.
	ErrInvalidLocaleCode = errors.New("lingo: invalid locale code")

	// ErrNoLanguageFile indicates that no file with a recognized extension
	// exists for the requested locale code.
	ErrNoLanguageFile = errors.New("lingo: no language file found")
)
