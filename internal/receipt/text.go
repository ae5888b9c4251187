package receipt

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes combining marks so "João" becomes "Joao". The printer
// code page has no reliable glyphs for accented letters.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// cleanText prepares free text for embedding in a receipt line.
func cleanText(s string) string {
	s = StripAccents(strings.TrimSpace(s))
	// markup delimiters in data would be read as tags
	return strings.NewReplacer("<", "(", ">", ")", "[", "(", "]", ")").Replace(s)
}
