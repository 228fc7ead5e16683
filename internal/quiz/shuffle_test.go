package quiz

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleAnswers_ContainsEachAnswerOnce(t *testing.T) {
	incorrect := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		got := ShuffleAnswers("x", incorrect, nil)
		require.Len(t, got, 4)

		sorted := slices.Sorted(slices.Values(got))
		assert.Equal(t, []string{"a", "b", "c", "x"}, sorted)
	}
	assert.Equal(t, []string{"a", "b", "c"}, incorrect, "input must not be modified")
}

func TestShuffleAnswers_EveryPermutationReachable(t *testing.T) {
	seen := map[string]int{}
	for i := 0; i < 5000; i++ {
		seen[strings.Join(ShuffleAnswers("d", []string{"a", "b", "c"}, nil), "")]++
	}
	// 4! orderings, each expected ~208 times
	assert.Len(t, seen, 24)
}

func TestShuffleAnswers_DeterministicSource(t *testing.T) {
	// always picking index 0 rotates the last element to the front each step
	got := ShuffleAnswers("c", []string{"a", "b"}, func(int) int { return 0 })
	assert.Equal(t, []string{"b", "c", "a"}, got)

	assert.Equal(t, []string{"only"}, ShuffleAnswers("only", nil, nil))
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{7, 10, 70},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculatePercentage(tt.part, tt.total), "%d/%d", tt.part, tt.total)
	}
}
