package utils

import "time"

// seedHash derives a non-negative 31-based hash from the seed string.
// Accumulation wraps with 32-bit signed semantics; the wrap is what
// keeps the daily rotation identical across re-deploys, so it must not
// be widened.
func seedHash(s string) uint64 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	// widen before negating so MinInt32 maps to 2^31, not itself
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return uint64(v)
}

// seededRand returns an LCG in [0, 1) seeded from the string. A zero
// hash seeds as 1 to avoid the degenerate all-zero state.
func seededRand(seed string) func() float64 {
	x := seedHash(seed) & 0xFFFFFFFF
	if x == 0 {
		x = 1
	}
	return func() float64 {
		x = (x*1664525 + 1013904223) & 0xFFFFFFFF
		return float64(x) / 4294967296.0
	}
}

// ShuffleSeed returns a copy of items permuted by a Fisher-Yates shuffle
// driven by the seeded generator. Same seed, same permutation.
func ShuffleSeed[T any](items []T, seed string) []T {
	rand := seededRand(seed)
	a := make([]T, len(items))
	copy(a, items)
	for i := len(a) - 1; i > 0; i-- {
		j := int(rand() * float64(i+1))
		a[i], a[j] = a[j], a[i]
	}
	return a
}

// DailySeed builds the seed string for today's rotation: the UTC
// calendar date plus a discriminator so different sections rotate
// independently.
func DailySeed(suffix string) string {
	return time.Now().UTC().Format("2006-01-02") + ":" + suffix
}
