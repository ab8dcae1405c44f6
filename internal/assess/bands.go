// Package assess scores writing samples on vocabulary, fluency, grammar,
// and structure and combines them into a single report.
//
// Every function in this package is pure: results depend only on the
// arguments, so an Engine may be shared across goroutines.
package assess

import "math"

const maxScore = 100

// band awards points when its predicate holds. Tables are evaluated top to
// bottom and the first match wins; the last row of every table matches all
// values.
type band struct {
	match  func(float64) bool
	points int
}

func award(v float64, table []band) int {
	for _, b := range table {
		if b.match(v) {
			return b.points
		}
	}
	return 0
}

func atLeast(lo float64) func(float64) bool {
	return func(v float64) bool { return v >= lo }
}

func atMost(hi float64) func(float64) bool {
	return func(v float64) bool { return v <= hi }
}

func equals(x float64) func(float64) bool {
	return func(v float64) bool { return v == x }
}

// closed is [lo, hi].
func closed(lo, hi float64) func(float64) bool {
	return func(v float64) bool { return v >= lo && v <= hi }
}

// rightOpen is [lo, hi).
func rightOpen(lo, hi float64) func(float64) bool {
	return func(v float64) bool { return v >= lo && v < hi }
}

// leftOpen is (lo, hi].
func leftOpen(lo, hi float64) func(float64) bool {
	return func(v float64) bool { return v > lo && v <= hi }
}

func either(a, b func(float64) bool) func(float64) bool {
	return func(v float64) bool { return a(v) || b(v) }
}

func always(float64) bool { return true }

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
