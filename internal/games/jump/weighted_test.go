package jump

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-jump/internal/core"
)

func TestPickWeightedDistribution(t *testing.T) {
	rng := core.NewRandom(42)
	weights := []Weighted[int]{{0, 1}, {1, 2}, {2, 3}, {3, 4}}

	const draws = 100000
	counts := make([]int, len(weights))
	for range draws {
		counts[PickWeighted(rng, weights)]++
	}

	expected := []float64{0.1, 0.2, 0.3, 0.4}
	for i, c := range counts {
		assert.InDelta(t, expected[i], float64(c)/draws, 0.01, "category %d", i)
	}
}

func TestPickWeightedSkipsZero(t *testing.T) {
	rng := core.NewRandom(7)
	weights := []Weighted[string]{{"never", 0}, {"a", 1}, {"negative", -3}, {"b", 1}}

	for range 1000 {
		got := PickWeighted(rng, weights)
		assert.Contains(t, []string{"a", "b"}, got)
	}
}

func TestPickWeightedNoWeightPanics(t *testing.T) {
	rng := core.NewRandom(1)
	assert.Panics(t, func() {
		PickWeighted(rng, []Weighted[int]{{1, 0}, {2, 0}})
	})
}

// fixedRandom returns the same float every time.
type fixedRandom float64

func (f fixedRandom) Float(max float64) float64           { return float64(f) * max }
func (f fixedRandom) FloatRange(min, max float64) float64 { return min + float64(f)*(max-min) }
func (f fixedRandom) IntRange(min, max int) int           { return min }

func TestPickWeightedBoundaries(t *testing.T) {
	weights := []Weighted[int]{{0, 1}, {1, 2}, {2, 3}, {3, 4}}

	tests := []struct {
		u        float64
		expected int
	}{
		{0.0, 0},   // select clamps to 1
		{0.1, 0},   // select 1
		{0.15, 1},  // select 2
		{0.3, 1},   // select 3
		{0.31, 2},  // select 4
		{0.6, 2},   // select 6
		{0.61, 3},  // select 7
		{0.999, 3}, // select 10
	}

	for _, tt := range tests {
		got := PickWeighted(fixedRandom(tt.u), weights)
		assert.Equal(t, tt.expected, got, "u=%v", tt.u)
	}
}
