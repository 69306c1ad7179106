// Package nlp implements the text pipeline behind the chat assistant:
// diacritic-insensitive normalization, unit-aware amount extraction and
// one-shot parsing of free-text utterances into drafts.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// markSet selects the combining marks (Unicode category Mn) removed after
// decomposition, so "tiêu" folds to "tieu".
var markSet = runes.In(unicode.Mn)

// Normalize strips diacritics and lower-cases the input so keyword
// matching is accent- and case-insensitive. It is pure, total and
// idempotent; an empty string maps to an empty string. Safe to call from
// any number of goroutines.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	// The norm transformers carry per-use buffers, so the chain is built
	// per call instead of shared. Construction is cheap; only markSet is
	// stateless enough to live at package level.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(markSet), norm.NFC)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; fall back to
		// the raw input rather than dropping the utterance.
		out = s
	}
	return strings.ToLower(out)
}
