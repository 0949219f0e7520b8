// Package rng wraps a single seeded pseudo-random source that is passed
// explicitly through every generator. Reproducibility depends on all draws
// going through one Rand in a fixed call order, so nothing in this repository
// uses the global math/rand state.
package rng

import (
	"math/rand"
	"time"
)

type Rand struct {
	r *rand.Rand
}

func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Intn(n int) int { return r.r.Intn(n) }

func (r *Rand) Float64() float64 { return r.r.Float64() }

func (r *Rand) NormFloat64() float64 { return r.r.NormFloat64() }

// IntBetween returns a uniform integer in [lo, hi], both ends inclusive.
func (r *Rand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Intn(hi-lo+1)
}

// FloatBetween returns a uniform float in [lo, hi).
func (r *Rand) FloatBetween(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Bool returns true with probability p.
func (r *Rand) Bool(p float64) bool { return r.r.Float64() < p }

// TimeBetween returns a uniform instant in [start, end]. If end is not after
// start, start is returned.
func (r *Rand) TimeBetween(start, end time.Time) time.Time {
	d := end.Sub(start)
	if d <= 0 {
		return start
	}
	return start.Add(time.Duration(r.r.Int63n(int64(d) + 1)))
}

// DateBetween is TimeBetween truncated to midnight UTC.
func (r *Rand) DateBetween(start, end time.Time) time.Time {
	t := r.TimeBetween(start, end).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Choice returns a uniformly drawn element of xs. xs must be non-empty.
func Choice[T any](r *Rand, xs []T) T {
	return xs[r.r.Intn(len(xs))]
}

// WeightedChoice draws one element of xs with the given relative weights.
// len(weights) must equal len(xs) and the weights must sum to a positive value.
func WeightedChoice[T any](r *Rand, xs []T, weights []float64) T {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := r.r.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return xs[i]
		}
	}
	return xs[len(xs)-1]
}

// Sample returns k distinct elements of xs drawn without replacement, in
// shuffled order. If k exceeds len(xs) the whole slice is returned (shuffled).
func Sample[T any](r *Rand, xs []T, k int) []T {
	if k > len(xs) {
		k = len(xs)
	}
	cp := make([]T, len(xs))
	copy(cp, xs)
	for i := 0; i < k; i++ {
		j := i + r.r.Intn(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:k]
}
