package intent

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/FACorreiaa/finchat/internal/nlp"
)

// commandPhrase pairs a chip label (shown to the user as typed-back text)
// with its normalized form used for ranking.
type commandPhrase struct {
	label string
	norm  string
}

var commandPhrases = []commandPhrase{
	{label: "Thêm chi tiêu"},
	{label: "Thêm thu nhập"},
	{label: "Xem báo cáo"},
	{label: "Tạo danh mục"},
	{label: "Tham gia thử thách"},
	{label: "Trợ giúp"},
}

func init() {
	for i := range commandPhrases {
		commandPhrases[i].norm = nlp.Normalize(commandPhrases[i].label)
	}
}

// SuggestCommands orders the fallback-menu chips by fuzzy similarity to
// the utterance, so a near-miss like "bao coa" still floats "Xem báo cáo"
// to the front. Phrases the input bears no resemblance to keep their
// default order after the ranked ones.
func SuggestCommands(text string, limit int) []string {
	normalized := nlp.Normalize(text)

	type ranked struct {
		label string
		rank  int
	}
	matched := make([]ranked, 0, len(commandPhrases))
	var rest []string

	for _, p := range commandPhrases {
		r := fuzzy.RankMatch(normalized, p.norm)
		if r < 0 {
			r = fuzzy.RankMatch(p.norm, normalized)
		}
		if r >= 0 {
			matched = append(matched, ranked{label: p.label, rank: r})
		} else {
			rest = append(rest, p.label)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].rank < matched[j].rank })

	out := make([]string, 0, limit)
	for _, m := range matched {
		out = append(out, m.label)
	}
	out = append(out, rest...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
