package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
		found bool
	}{
		{name: "thousand shorthand", input: "120k", want: 120_000, found: true},
		{name: "decimal million", input: "1.5tr", want: 1_500_000, found: true},
		{name: "full million unit", input: "2 triệu", want: 2_000_000, found: true},
		{name: "accent-free million unit", input: "2 trieu", want: 2_000_000, found: true},
		{name: "thousand with accent", input: "30 ngàn", want: 30_000, found: true},
		{name: "thousand accent-free", input: "30 ngan", want: 30_000, found: true},
		{name: "bare number", input: "5000", want: 5000, found: true},
		{name: "comma as decimal", input: "1,5tr", want: 1_500_000, found: true},
		{name: "uppercase unit", input: "120K", want: 120_000, found: true},
		{name: "embedded in sentence", input: "chi 50k ăn trưa", want: 50_000, found: true},
		{name: "no number", input: "không có số", found: false},
		{name: "empty", input: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseAmount_CommaAmbiguity(t *testing.T) {
	// The comma is always read as a decimal separator, so "1,500" means
	// 1.5 rounded, never 1500. Documented limitation, kept on purpose.
	got, ok := ParseAmount("1,500")
	require.True(t, ok)
	assert.Equal(t, int64(2), got)
}

func TestFindAmount(t *testing.T) {
	t.Run("reports match span", func(t *testing.T) {
		m, ok := FindAmount("chi 50k ăn trưa")
		require.True(t, ok)
		assert.Equal(t, "50k", "chi 50k ăn trưa"[m.Start:m.End])
		assert.Equal(t, "k", m.Unit)
	})

	t.Run("prefers number with unit over bare number", func(t *testing.T) {
		m, ok := FindAmount("ăn trưa lúc 12h hết 50k")
		require.True(t, ok)
		assert.Equal(t, int64(50_000), m.Value)
	})

	t.Run("unit must end at word boundary", func(t *testing.T) {
		// "120km" is a distance, not 120 thousand.
		m, ok := FindAmount("đi 120km")
		require.True(t, ok)
		assert.Equal(t, int64(120), m.Value)
		assert.Equal(t, "", m.Unit)
	})
}
