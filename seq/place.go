package seq

import "math"

// RNG is the minimal surface the whole engine needs from a random
// generator, so every stochastic choice — here and in packages ops and
// evolve — flows through one pluggable, injectable source (*rand.Rand
// satisfies it) instead of a package-level global.
type RNG interface {
	IntN(n int) int
	Float64() float64
}

// Place returns a uniformly random index in [0, n). Panics if n <= 0, the
// same contract as rand.IntN.
func Place(n int, rng RNG) int {
	return rng.IntN(n)
}

// WeightedPlace returns a random index in [0, len(weights)) where index i is
// chosen with probability proportional to ceil(weights[i]). Missing or
// negative mass contributes nothing; an all-zero weight vector falls back to
// a uniform choice over the full range.
func WeightedPlace(weights []float64, rng RNG) int {
	n := len(weights)
	total := 0.0
	masses := make([]float64, n)
	for i, w := range weights {
		m := math.Ceil(w)
		if m < 0 {
			m = 0
		}
		masses[i] = m
		total += m
	}
	if total <= 0 {
		return Place(n, rng)
	}

	r := rng.Float64() * total
	acc := 0.0
	for i, m := range masses {
		acc += m
		if r < acc {
			return i
		}
	}
	return n - 1
}

// WeightedPick indexes xs at a WeightedPlace-chosen position.
func WeightedPick[T any](xs []T, weights []float64, rng RNG) T {
	return xs[WeightedPlace(weights, rng)]
}

// PointsAround returns the subsequence of xs symmetric around center, of
// length 2r+1 where r = min(radius, center, len(xs)-center-1). The result is
// always odd-length and fully contained in xs.
func PointsAround[T any](xs []T, center, radius int) []T {
	r := radius
	if center < r {
		r = center
	}
	if rem := len(xs) - center - 1; rem < r {
		r = rem
	}
	if r < 0 {
		r = 0
	}
	lo := center - r
	hi := center + r + 1
	if lo < 0 {
		lo = 0
	}
	if hi > len(xs) {
		hi = len(xs)
	}
	return xs[lo:hi]
}

// HomologousPlace slides a window of 2r+1 elements, r = (len(exemplar)-1)/2,
// over haystack, tracking the running-minimum edit distance. Every index
// whose distance equals the running minimum *at the moment it was observed*
// is kept as a candidate (so a later improvement doesn't flush earlier
// candidates); a
// distance-0 window short-circuits immediately. The final choice is uniform
// over the collected candidates, or Place(len(haystack)) if haystack is too
// short to hold a full window.
func HomologousPlace(haystack, exemplar []Element, rng RNG) int {
	r := (len(exemplar) - 1) / 2
	lo := r
	hi := len(haystack) - r - 1

	if lo > hi {
		if len(haystack) == 0 {
			return 0
		}
		return Place(len(haystack), rng)
	}

	memo := newDistanceMemo()
	best := math.MaxInt
	var candidates []int

	for center := lo; center <= hi; center++ {
		window := haystack[center-r : center+r+1]
		d := memo.distance(window, exemplar)
		switch {
		case d == 0:
			return center
		case d < best:
			best = d
			candidates = append(candidates, center)
		case d == best:
			candidates = append(candidates, center)
		}
	}

	if len(candidates) == 0 {
		return Place(len(haystack), rng)
	}
	return candidates[rng.IntN(len(candidates))]
}
