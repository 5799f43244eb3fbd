// Package textnorm provides the canonical text normalization used by every
// keyword matcher: case folding, accent stripping, and whitespace handling.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the input, strips accents/diacritics, replaces hyphens
// with spaces, and collapses whitespace runs to single spaces. The result is
// stable under repeated application: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return normalize(s, false)
}

// Squeeze applies Normalize and additionally removes all remaining whitespace.
// Used for name-in-text comparisons where token boundaries must not matter.
func Squeeze(s string) string {
	return normalize(s, true)
}

func normalize(s string, squeeze bool) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transform on valid UTF-8 cannot fail; fall back to the raw input
		// for anything pathological rather than dropping the text.
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = strings.ReplaceAll(folded, "-", " ")

	fields := strings.Fields(folded)
	if squeeze {
		return strings.Join(fields, "")
	}
	return strings.Join(fields, " ")
}
