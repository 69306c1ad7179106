package nlp

import (
	"strings"

	"github.com/FACorreiaa/finchat/internal/model"
)

// Marker vocabularies drive transaction-type inference. Both the one-shot
// parser and the dialog state machine route through InferType so the two
// paths cannot drift apart. All entries are stored pre-normalized.
var (
	incomeMarkers = []string{
		"thu nhap", "them thu nhap", "tien ve",
		"thu", "nhan", "luong",
	}
	expenseMarkers = []string{
		"chi tieu", "them chi tieu", "thanh toan",
		"chi", "mua", "tra", "tieu", "ton",
	}

	// fillerWords are command verbs and glue words stripped alongside the
	// type markers when deriving a note from an utterance.
	fillerWords = []string{"them", "ghi", "cho", "toi", "vao", "tu", "tien", "nhap", "ve"}
)

// InferType classifies an utterance as income or expense from marker
// words. When markers of both types are present the expense reading wins;
// the second return is false when no marker matched at all.
func InferType(text string) (model.TxType, bool) {
	normalized := Normalize(text)
	switch {
	case hasMarker(normalized, expenseMarkers):
		return model.TypeExpense, true
	case hasMarker(normalized, incomeMarkers):
		return model.TypeIncome, true
	default:
		return "", false
	}
}

// hasMarker reports whether any marker occurs in the normalized text.
// Multi-word markers match as substrings; single-word markers must match
// a whole word so "chi" does not fire inside "chieu".
func hasMarker(normalized string, markers []string) bool {
	var words []string
	for _, m := range markers {
		if strings.Contains(m, " ") {
			if strings.Contains(normalized, m) {
				return true
			}
			continue
		}
		if words == nil {
			words = strings.Fields(normalized)
		}
		for _, w := range words {
			if w == m {
				return true
			}
		}
	}
	return false
}

// noteStopwords returns the normalized word set removed from an utterance
// when deriving its note, given the inferred transaction type.
func noteStopwords(tp model.TxType) map[string]struct{} {
	stop := make(map[string]struct{}, 16)
	for _, w := range fillerWords {
		stop[w] = struct{}{}
	}
	markers := expenseMarkers
	if tp == model.TypeIncome {
		markers = incomeMarkers
	}
	for _, m := range markers {
		for _, w := range strings.Fields(m) {
			stop[w] = struct{}{}
		}
	}
	return stop
}
