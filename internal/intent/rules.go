// Package intent classifies user utterances against a fixed rule table of
// keywords, synonyms and regex patterns, scored on diacritic-normalized
// text.
package intent

import "regexp"

// Name identifies a coarse-grained user goal.
type Name string

const (
	AddExpense     Name = "add_expense"
	AddIncome      Name = "add_income"
	Report         Name = "report"
	CreateCategory Name = "create_category"
	JoinChallenge  Name = "join_challenge"
	Help           Name = "help"
	Unknown        Name = "unknown"
)

// Rule scores one intent. Keywords weigh 2, synonyms 1 and each matching
// pattern 2. Keywords and synonyms may be written with diacritics; the
// classifier normalizes them at build time. Patterns run against the
// normalized utterance and must be written accent-free.
type Rule struct {
	Name     Name
	Keywords []string
	Synonyms []string
	Patterns []*regexp.Regexp
}

// DefaultRules is the static rule table, loaded once at process start.
// Ordering defines no precedence between rules; scores decide, and the
// first rule wins ties.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     AddExpense,
			Keywords: []string{"chi tiêu", "thêm chi tiêu", "mua"},
			Synonyms: []string{"chi", "trả tiền", "thanh toán", "tiêu", "tốn"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`^chi\b`),
				regexp.MustCompile(`^mua\b`),
			},
		},
		{
			Name:     AddIncome,
			Keywords: []string{"thu nhập", "thêm thu nhập", "lương"},
			Synonyms: []string{"thu", "nhận tiền", "tiền về"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`^thu\b`),
				regexp.MustCompile(`^nhan\b`),
			},
		},
		{
			Name:     Report,
			Keywords: []string{"báo cáo", "thống kê"},
			Synonyms: []string{"xem lại", "tổng kết", "tổng quan"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(tuan|thang)\s*(nay|truoc)`),
				regexp.MustCompile(`chi\s+het\s+bao\s+nhieu`),
			},
		},
		{
			Name:     CreateCategory,
			Keywords: []string{"tạo danh mục", "danh mục mới"},
			Synonyms: []string{"thêm danh mục", "danh mục"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`^tao\s+danh\s+muc`),
			},
		},
		{
			Name:     JoinChallenge,
			Keywords: []string{"thử thách", "tham gia thử thách"},
			Synonyms: []string{"tham gia", "join"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`thu\s*thach`),
			},
		},
		{
			Name:     Help,
			Keywords: []string{"trợ giúp", "hướng dẫn", "help"},
			Synonyms: []string{"giúp", "làm gì", "sử dụng"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`^(help|\?+)$`),
			},
		},
	}
}
