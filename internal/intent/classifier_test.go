package intent

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Detect(t *testing.T) {
	c := NewClassifier(DefaultRules())

	t.Run("empty input is unknown with zero score", func(t *testing.T) {
		for _, in := range []string{"", "   ", "\t\n"} {
			res := c.Detect(in)
			assert.Equal(t, Unknown, res.Name)
			assert.Equal(t, 0, res.Score)
		}
	})

	tests := []struct {
		input string
		want  Name
	}{
		{input: "thêm chi tiêu", want: AddExpense},
		{input: "chi tiền ăn sáng", want: AddExpense},
		{input: "mua vé xem phim", want: AddExpense},
		{input: "thêm thu nhập", want: AddIncome},
		{input: "thu nhập tháng này", want: AddIncome},
		{input: "xem báo cáo tháng này", want: Report},
		{input: "thống kê tháng này", want: Report},
		{input: "tạo danh mục mới", want: CreateCategory},
		{input: "tham gia thử thách tiết kiệm", want: JoinChallenge},
		{input: "trợ giúp", want: Help},
		{input: "hướng dẫn sử dụng", want: Help},
		{input: "help", want: Help},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := c.Detect(tt.input)
			assert.Equal(t, tt.want, res.Name, "score %d", res.Score)
			assert.GreaterOrEqual(t, res.Score, 2)
		})
	}

	t.Run("gibberish is unknown", func(t *testing.T) {
		res := c.Detect("xyzzy plugh")
		assert.Equal(t, Unknown, res.Name)
	})

	t.Run("accent-insensitive", func(t *testing.T) {
		assert.Equal(t, c.Detect("thêm thu nhập").Name, c.Detect("them thu nhap").Name)
	})
}

func TestClassifier_Threshold(t *testing.T) {
	rules := []Rule{
		{Name: "weak", Synonyms: []string{"bar"}},
		{Name: "strong", Keywords: []string{"baz"}},
	}
	c := NewClassifier(rules)

	t.Run("single synonym stays below threshold", func(t *testing.T) {
		res := c.Detect("bar")
		assert.Equal(t, Unknown, res.Name)
		assert.Equal(t, 1, res.Score)
	})

	t.Run("single keyword reaches threshold", func(t *testing.T) {
		res := c.Detect("baz")
		assert.Equal(t, Name("strong"), res.Name)
		assert.Equal(t, 2, res.Score)
	})
}

func TestClassifier_TieBreak(t *testing.T) {
	// Equal scores keep the earlier rule: the tracker only updates on a
	// strictly higher score.
	rules := []Rule{
		{Name: "first", Keywords: []string{"foo"}},
		{Name: "second", Keywords: []string{"foo"}},
	}
	c := NewClassifier(rules)

	res := c.Detect("foo")
	assert.Equal(t, Name("first"), res.Name)
	assert.Equal(t, 2, res.Score)
}

func TestClassifier_PatternScoring(t *testing.T) {
	rules := []Rule{
		{
			Name:     "patterned",
			Synonyms: []string{"qux"},
			Patterns: []*regexp.Regexp{regexp.MustCompile(`^qux\b`)},
		},
	}
	c := NewClassifier(rules)

	// Synonym (+1) plus pattern (+2) clears the threshold together.
	res := c.Detect("qux something")
	assert.Equal(t, Name("patterned"), res.Name)
	assert.Equal(t, 3, res.Score)
}

// One classifier instance is shared by every session, so Detect must
// return stable results under parallel callers. Run with -race.
func TestClassifier_ConcurrentDetect(t *testing.T) {
	c := NewClassifier(DefaultRules())

	inputs := []string{"thêm chi tiêu", "thêm thu nhập", "xem báo cáo tháng này", "trợ giúp"}
	wants := make([]Result, len(inputs))
	for i, in := range inputs {
		wants[i] = c.Detect(in)
	}

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 400; i++ {
				idx := (g + i) % len(inputs)
				if got := c.Detect(inputs[idx]); got != wants[idx] {
					t.Errorf("Detect(%q) = %+v, want %+v", inputs[idx], got, wants[idx])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSuggestCommands(t *testing.T) {
	t.Run("near-miss floats the closest command first", func(t *testing.T) {
		got := SuggestCommands("bao cao", 4)
		assert.Len(t, got, 4)
		assert.Equal(t, "Xem báo cáo", got[0])
	})

	t.Run("unrelated input keeps default order", func(t *testing.T) {
		got := SuggestCommands("xyzzy", 3)
		assert.Len(t, got, 3)
	})

	t.Run("limit respected", func(t *testing.T) {
		assert.Len(t, SuggestCommands("", 2), 2)
	})
}
