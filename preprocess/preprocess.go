// Package preprocess implements C1: normalizing raw input text before
// the grammar (C2) ever sees it.
//
// Width folding and full Unicode composition are delegated to
// golang.org/x/text, the ecosystem library the teacher's own
// internal/azcase package points to for exactly this ("For full NFC,
// preprocess with golang.org/x/text/unicode/norm externally") — see
// DESIGN.md. Traditional-to-Simplified folding is a static table, in
// the spirit of the teacher's internal/azcase hand-rolled replacement
// tables.
package preprocess

import (
	"strings"
	"unicode"

	"github.com/az-ai-labs/timenlp/internal/textnorm"
)

// Preprocess runs the fixed pipeline from spec.md §4.1:
//  1. full-width -> half-width folding (digits and punctuation)
//  2. upper -> lower (ASCII and general Unicode case folding)
//  3. traditional -> simplified Chinese, via a static table
//  4. NFC composition
//  5. whitespace-run collapse and trim
//
// Digit-word canonicalization ("二〇二〇", "两", "廿") is intentionally
// left to the grammar (C2), which needs the original span to report
// accurate tag positions — see spec.md §4.1 point 5.
func Preprocess(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return collapseWhitespace(textnorm.NFC(b.String()))
}

// foldRune applies width-folding, case-folding, and trad->simplified
// mapping to a single rune, in that order.
func foldRune(r rune) rune {
	r = textnorm.FoldRune(r)
	r = unicode.ToLower(r)
	if simplified, ok := traditionalToSimplified[r]; ok {
		r = simplified
	}
	return r
}

// collapseWhitespace collapses runs of whitespace to a single space
// and trims leading/trailing whitespace.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
