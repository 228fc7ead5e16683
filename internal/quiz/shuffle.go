package quiz

import (
	"math"
	"math/rand/v2"
	"slices"
)

// ShuffleAnswers returns incorrect plus correct in uniformly random order
// (Fisher-Yates). intn must return a value in [0, n); nil uses math/rand/v2.
func ShuffleAnswers(correct string, incorrect []string, intn func(n int) int) []string {
	if intn == nil {
		intn = rand.IntN
	}
	out := append(slices.Clone(incorrect), correct)
	for i := len(out) - 1; i > 0; i-- {
		j := intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// CalculatePercentage is round(100*part/total), or 0 for an empty total.
func CalculatePercentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
