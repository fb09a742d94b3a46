package seq

import (
	"math/rand/v2"
	"testing"
)

func strs(xs ...string) []Element {
	out := make([]Element, len(xs))
	for i, x := range xs {
		out[i] = Str(x)
	}
	return out
}

func TestEditDistanceKittenSitting(t *testing.T) {
	if got := EditDistance(strs("k", "i", "t", "t", "e", "n"), strs("s", "i", "t", "t", "i", "n", "g")); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := stringDistance("kitten", "sitting"); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
}

func TestEditDistanceSymmetricAndReflexive(t *testing.T) {
	a := strs("A", "B", "C")
	b := strs("B", "C", "D", "E")

	if EditDistance(a, a) != 0 {
		t.Fatalf("distance to self must be 0")
	}
	if EditDistance(a, b) != EditDistance(b, a) {
		t.Fatalf("edit distance must be symmetric")
	}
}

func TestEditDistanceTriangleInequality(t *testing.T) {
	a := strs("A", "B", "C")
	b := strs("A", "X", "C", "D")
	c := strs("A", "B", "C", "D", "E")

	ab := EditDistance(a, b)
	bc := EditDistance(b, c)
	ac := EditDistance(a, c)

	if ac > ab+bc {
		t.Fatalf("triangle inequality violated: ac=%d > ab+bc=%d", ac, ab+bc)
	}
}

func TestPointsAroundLengthAndBounds(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	cases := []struct{ center, radius, wantLen int }{
		{5, 4, 9},
		{1, 4, 3},  // r = min(4,1,8) = 1
		{9, 4, 1},  // r = min(4,9,0) = 0
		{0, 4, 1},
	}
	for _, c := range cases {
		got := PointsAround(xs, c.center, c.radius)
		if len(got) != c.wantLen {
			t.Errorf("center=%d radius=%d: want len %d, got %d (%v)", c.center, c.radius, c.wantLen, len(got), got)
		}
		if len(got)%2 != 1 {
			t.Errorf("center=%d radius=%d: result length must be odd, got %d", c.center, c.radius, len(got))
		}
	}
}

func TestHomologousPlaceStopsOnExactMatch(t *testing.T) {
	haystack := strs("X", "Y", "A", "B", "C", "Y", "X")
	exemplar := strs("A", "B", "C")

	rng := rand.New(rand.NewPCG(1, 2))
	if got := HomologousPlace(haystack, exemplar, rng); got != 3 {
		t.Fatalf("want index 3, got %d", got)
	}
}

func TestHomologousPlaceWithinBounds(t *testing.T) {
	haystack := strs("A", "B", "C", "D", "E", "F", "G", "H")
	exemplar := strs("Q", "R", "S")
	r := (len(exemplar) - 1) / 2

	rng := rand.New(rand.NewPCG(7, 9))
	for i := 0; i < 50; i++ {
		got := HomologousPlace(haystack, exemplar, rng)
		if got < r || got > len(haystack)-r-1 {
			t.Fatalf("index %d out of bounds [%d, %d]", got, r, len(haystack)-r-1)
		}
	}
}

func TestWeightedPlaceAllZeroFallsBackToUniform(t *testing.T) {
	weights := []float64{0, 0, 0, 0}
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 20; i++ {
		got := WeightedPlace(weights, rng)
		if got < 0 || got >= len(weights) {
			t.Fatalf("index %d out of range", got)
		}
	}
}

func TestWeightedPlaceRespectsMass(t *testing.T) {
	weights := []float64{0, 0, 10}
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 20; i++ {
		if got := WeightedPlace(weights, rng); got != 2 {
			t.Fatalf("expected only index 2 to have mass, got %d", got)
		}
	}
}
