package lingo

import (
	"sort"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents abuse through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// acceptedTag is one parsed Accept-Language entry with its quality value.
type acceptedTag struct {
	tag     string
	quality float64
}

// MatchAcceptLanguage picks the best currently loaded language for an
// HTTP Accept-Language header (e.g. "en-GB,en;q=0.9,de;q=0.8"). Exact
// region matches win over base-language matches; entries are considered
// in descending quality order. Returns the default language when the
// header is empty or nothing matches.
func (l *Loader) MatchAcceptLanguage(header string) string {
	available := l.store.Codes()
	if header == "" || len(header) > maxAcceptLanguageLength || len(available) == 0 {
		return l.defaultLang
	}

	tags := parseAcceptLanguage(header)

	for _, t := range tags {
		for _, code := range available {
			if t.tag == normalizeLocale(code) {
				return code
			}
		}
	}

	for _, t := range tags {
		base, _, _ := strings.Cut(t.tag, "-")
		if base == "" {
			continue
		}
		for _, code := range available {
			lang, _, _ := strings.Cut(normalizeLocale(code), "-")
			if lang == base {
				return code
			}
		}
	}

	return l.defaultLang
}

// parseAcceptLanguage splits an Accept-Language header into tags sorted
// by descending quality. Malformed entries are skipped.
func parseAcceptLanguage(header string) []acceptedTag {
	parts := strings.Split(header, ",")
	tags := make([]acceptedTag, 0, len(parts))

	for _, part := range parts {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "*" {
			continue
		}

		quality := 1.0
		if params != "" {
			if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
				parsed, err := strconv.ParseFloat(strings.TrimSpace(q), 64)
				if err != nil || parsed < 0 || parsed > 1 {
					continue
				}
				quality = parsed
			}
		}
		if quality == 0 {
			continue
		}

		tags = append(tags, acceptedTag{tag: tag, quality: quality})
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].quality > tags[j].quality
	})
	return tags
}

// normalizeLocale converts a locale code to a lowercase BCP 47-style tag
// for comparison ("en_UK" becomes "en-uk").
func normalizeLocale(code string) string {
	return strings.ToLower(strings.ReplaceAll(code, "_", "-"))
}
