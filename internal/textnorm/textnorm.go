// Package textnorm wraps the golang.org/x/text primitives the
// preprocessor needs: full-width-to-half-width folding and NFC
// composition. It exists as its own package, separate from the
// preprocess stage that calls it, the way the teacher keeps its own
// Unicode-composition concern (internal/azcase) apart from the
// higher-level pipeline stage that calls it.
package textnorm

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// FoldRune narrows a single full-width rune to its half-width
// equivalent. It is applied one rune at a time, rather than over a
// whole string via width.Fold.String, so callers can keep a 1:1 rune
// alignment with the input for span tracking; width.Fold's mapping is
// context-free per character, so the two are equivalent. Runes with no
// narrow form are returned unchanged.
func FoldRune(r rune) rune {
	folded, err := width.Fold.String(string(r))
	if err != nil {
		return r
	}
	fr, size := utf8.DecodeRuneInString(folded)
	if size != len(folded) || fr == utf8.RuneError {
		return r
	}
	return fr
}

// NFC composes s into Unicode Normalization Form C, recombining any
// decomposed sequences (e.g. combining diacritics) before the
// pipeline's whitespace scanning treats them as separate runes.
func NFC(s string) string {
	return norm.NFC.String(s)
}
