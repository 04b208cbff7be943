package jump

import (
	"math"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// Weighted pairs a value with its relative frequency.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// PickWeighted draws a value with probability proportional to its weight.
// Non-positive weights are never picked. Panics if no weight is positive.
func PickWeighted[T any](r core.Random, weights []Weighted[T]) T {
	total := 0
	for _, w := range weights {
		if w.Weight > 0 {
			total += w.Weight
		}
	}
	if total <= 0 {
		panic("jump: weighted pick with no positive weight")
	}

	sel := int(math.Ceil(r.Float(1) * float64(total)))
	if sel < 1 {
		sel = 1
	}

	sum := 0
	for _, w := range weights {
		if w.Weight <= 0 {
			continue
		}
		sum += w.Weight
		if sum >= sel {
			return w.Value
		}
	}
	// Unreachable while Float(1) < 1
	return weights[len(weights)-1].Value
}
