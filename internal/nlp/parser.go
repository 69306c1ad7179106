package nlp

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/FACorreiaa/finchat/internal/model"
)

// categoryTrigger is the fixed phrase (normalized form) that switches the
// one-shot parser into category-creation mode.
const categoryTrigger = "tao danh muc"

// ParseKind tags the variant carried by a ParseResult.
type ParseKind string

const (
	ParseTransaction ParseKind = "transaction"
	ParseCategory    ParseKind = "category"
)

// ParseResult is the outcome of one-shot parsing: exactly one of
// Transaction or Category is set, selected by Kind.
type ParseResult struct {
	Kind        ParseKind
	Transaction *model.DraftTransaction
	Category    *model.DraftCategory
}

// ParseNaturalInput produces a structured draft from a single unambiguous
// utterance. It returns false when the text is not a recognizable
// transaction or category request, in which case the dialog state machine
// takes over on the next turn.
func ParseNaturalInput(text string) (*ParseResult, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}
	normalized := Normalize(trimmed)

	// Category creation: "tạo danh mục <tên>". An empty remainder falls
	// through to transaction parsing instead of producing a nameless draft.
	if idx := strings.Index(normalized, categoryTrigger); idx >= 0 {
		if name := textAfter(trimmed, normalized, idx+len(categoryTrigger)); name != "" {
			return &ParseResult{
				Kind: ParseCategory,
				Category: &model.DraftCategory{
					Name:         name,
					Type:         model.TypeExpense,
					OriginalText: trimmed,
				},
			}, true
		}
	}

	tp, ok := InferType(trimmed)
	if !ok {
		tp = model.TypeExpense
	}

	amount, found := FindAmount(trimmed)
	if !found || amount.Value <= 0 {
		return nil, false
	}

	note := deriveNote(trimmed[:amount.Start]+trimmed[amount.End:], tp)
	if note == "" {
		note = model.DefaultNote
	}

	return &ParseResult{
		Kind: ParseTransaction,
		Transaction: &model.DraftTransaction{
			Type:         tp,
			Amount:       amount.Value,
			Note:         note,
			Date:         time.Now(),
			OriginalText: trimmed,
		},
	}, true
}

// textAfter maps a byte offset in the normalized text back onto the
// original and returns the trimmed remainder. Stripping combining marks
// turns each precomposed rune into exactly one base rune, so rune offsets
// line up between the two strings for NFC input.
func textAfter(original, normalized string, byteOff int) string {
	runeOff := utf8.RuneCountInString(normalized[:byteOff])
	orig := []rune(original)
	if runeOff >= len(orig) {
		return ""
	}
	return strings.TrimSpace(string(orig[runeOff:]))
}

// deriveNote removes recognized type markers and command glue from the
// remainder of an utterance, collapsing whitespace. Comparison happens on
// normalized words while the note keeps the user's original spelling.
func deriveNote(remainder string, tp model.TxType) string {
	stop := noteStopwords(tp)
	kept := make([]string, 0, 8)
	for _, w := range strings.Fields(remainder) {
		if _, skip := stop[Normalize(w)]; skip {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
