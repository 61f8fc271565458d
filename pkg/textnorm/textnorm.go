package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes raw user text for rule matching:
// lowercase, strip diacritics, replace punctuation with spaces,
// collapse whitespace runs, trim. Idempotent; empty in, empty out.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = stripCombiningMarks(text)
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripCombiningMarks decomposes to NFD and drops combining marks,
// turning "météo" into "meteo".
func stripCombiningMarks(text string) string {
	decomposed := norm.NFD.String(text)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
