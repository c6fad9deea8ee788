// Package rng wraps a seeded math/rand source with the small set of draws
// the screensavers need: ranges, coin flips, colours, choices and shuffles.
package rng

import (
	"math/rand"

	"github.com/san-kum/screensavers/internal/gfx"
)

// Rand is not safe for concurrent use. The host owns one per session.
type Rand struct {
	r    *rand.Rand
	seed int64
}

func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed)), seed: seed}
}

func (r *Rand) Seed() int64 { return r.seed }

// Num returns a float uniformly distributed in [lo, hi).
func (r *Rand) Num(lo, hi float64) float64 {
	return r.r.Float64()*(hi-lo) + lo
}

// Int returns an integer uniformly distributed in [lo, hi], both inclusive.
func (r *Rand) Int(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.Intn(hi-lo+1)
}

// Chance reports true with probability percent/100.
func (r *Rand) Chance(percent float64) bool {
	return r.r.Float64()*100 <= percent
}

func (r *Rand) Color() gfx.Color {
	return gfx.RGB(uint8(r.r.Intn(256)), uint8(r.r.Intn(256)), uint8(r.r.Intn(256)))
}

// Choice returns a uniformly chosen element and false when items is empty.
func Choice[T any](r *Rand, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[r.r.Intn(len(items))], true
}

// Shuffle permutes items in place.
func Shuffle[T any](r *Rand, items []T) {
	r.r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
