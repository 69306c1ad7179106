package nlp

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountRegex captures a numeric literal with an optional magnitude unit.
// Unit tokens: thousand ("k", "ngan", "ngàn") and million ("tr", "trieu",
// "triệu"). Diacritic variants are listed explicitly so the regex can run
// against the original, un-normalized text and report an exact span.
var amountRegex = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:(triệu|trieu|tr|ngàn|ngan|k)\b)?`)

const (
	multThousand = 1_000
	multMillion  = 1_000_000
)

// AmountMatch is a located amount inside an utterance. Start and End are
// byte offsets into the original text covering the full match, used by
// callers to strip the amount when deriving a note.
type AmountMatch struct {
	Value int64
	Start int
	End   int
	Unit  string // normalized unit token, empty when none
}

// FindAmount locates the amount in free text and normalizes it to base
// currency units. When the text contains several numbers, a number with a
// magnitude unit wins over a bare one ("chi 50k lúc 12h" reads 50000, not
// 12).
//
// Known limitation: a comma is always treated as a decimal separator, so
// "1,500" parses as 1.5 and not 1500. This mirrors the behavior users
// already rely on and must not be silently "fixed" into locale-aware
// grouping.
func FindAmount(text string) (AmountMatch, bool) {
	matches := amountRegex.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return AmountMatch{}, false
	}

	// Prefer the first match carrying a unit token.
	chosen := matches[0]
	for _, m := range matches {
		if m[4] != -1 {
			chosen = m
			break
		}
	}

	literal := strings.Replace(text[chosen[2]:chosen[3]], ",", ".", 1)
	value, err := decimal.NewFromString(literal)
	if err != nil {
		return AmountMatch{}, false
	}

	unit := ""
	if chosen[4] != -1 {
		unit = Normalize(text[chosen[4]:chosen[5]])
	}
	switch unit {
	case "k", "ngan":
		value = value.Mul(decimal.NewFromInt(multThousand))
	case "tr", "trieu":
		value = value.Mul(decimal.NewFromInt(multMillion))
	}

	return AmountMatch{
		Value: value.Round(0).IntPart(),
		Start: chosen[0],
		End:   chosen[1],
		Unit:  unit,
	}, true
}

// ParseAmount extracts a numeric quantity from free text and normalizes
// it to base currency units. Returns false when the text contains no
// recognizable number.
func ParseAmount(text string) (int64, bool) {
	m, ok := FindAmount(text)
	if !ok {
		return 0, false
	}
	return m.Value, true
}
