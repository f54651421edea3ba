// Package stats holds the numeric kernels shared by the analytics engines:
// NaN-skipping moments and pairwise-complete correlation in its pearson,
// spearman and kendall variants. All kernels are pure and allocation-light;
// a result that cannot be computed (too few valid observations, zero
// variance) is NaN, never zero.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of the non-NaN values, or NaN when there
// are none.
func Mean(xs []float64) float64 {
	sum, n := 0.0, 0
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		sum += x
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// StdDev returns the sample standard deviation (n-1 denominator) of the
// non-NaN values, or NaN when fewer than two are present.
func StdDev(xs []float64) float64 {
	mean := Mean(xs)
	if math.IsNaN(mean) {
		return math.NaN()
	}
	sum, n := 0.0, 0
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		d := x - mean
		sum += d * d
		n++
	}
	if n < 2 {
		return math.NaN()
	}
	return math.Sqrt(sum / float64(n-1))
}

// CompletePairs filters two equal-length slices down to the positions where
// both values are present.
func CompletePairs(x, y []float64) ([]float64, []float64) {
	cx := make([]float64, 0, len(x))
	cy := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		cx = append(cx, x[i])
		cy = append(cy, y[i])
	}
	return cx, cy
}

// Pearson returns the pairwise-complete Pearson correlation of x and y.
// Fewer than two complete pairs, or zero variance on either side, yields NaN.
func Pearson(x, y []float64) float64 {
	cx, cy := CompletePairs(x, y)
	return pearsonComplete(cx, cy)
}

// pearsonComplete assumes its inputs contain no NaN.
func pearsonComplete(x, y []float64) float64 {
	n := len(x)
	if n < 2 {
		return math.NaN()
	}
	mx, my := Mean(x), Mean(y)
	var cov, vx, vy float64
	for i := 0; i < n; i++ {
		dx, dy := x[i]-mx, y[i]-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(vx*vy)
}

// Spearman returns the pairwise-complete Spearman rank correlation: Pearson
// over midranks of the complete pairs.
func Spearman(x, y []float64) float64 {
	cx, cy := CompletePairs(x, y)
	if len(cx) < 2 {
		return math.NaN()
	}
	return pearsonComplete(Ranks(cx), Ranks(cy))
}

// KendallTauB returns the pairwise-complete Kendall tau-b correlation, the
// tie-adjusted variant. All-tied input on either side yields NaN.
func KendallTauB(x, y []float64) float64 {
	cx, cy := CompletePairs(x, y)
	n := len(cx)
	if n < 2 {
		return math.NaN()
	}

	var concordant, discordant, tiesX, tiesY float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := cx[i] - cx[j]
			dy := cy[i] - cy[j]
			switch {
			case dx == 0 && dy == 0:
				tiesX++
				tiesY++
			case dx == 0:
				tiesX++
			case dy == 0:
				tiesY++
			case dx*dy > 0:
				concordant++
			default:
				discordant++
			}
		}
	}

	n0 := float64(n*(n-1)) / 2
	denom := math.Sqrt((n0 - tiesX) * (n0 - tiesY))
	if denom == 0 {
		return math.NaN()
	}
	return (concordant - discordant) / denom
}

// Ranks assigns 1-based midranks to xs: tied values share the average of the
// ranks they span. The input must not contain NaN.
func Ranks(xs []float64) []float64 {
	n := len(xs)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return xs[order[a]] < xs[order[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && xs[order[j+1]] == xs[order[i]] {
			j++
		}
		// Positions i..j hold the same value; they share the midrank.
		mid := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = mid
		}
		i = j + 1
	}
	return ranks
}
