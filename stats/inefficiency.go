// Package stats provides statistical estimators for decorrelating
// free-energy simulation time series.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// minCutoffLag is the smallest lag at which a non-positive autocovariance
// terminates the accumulation. Below it, noise-driven sign flips at short
// lags would truncate the sum too early.
const minCutoffLag = 3

// StatisticalInefficiency computes the statistical inefficiency g of a
// scalar series: the number of correlated samples equivalent to one
// independent sample.
//
// g = 1 + 2*sum_t C(t)*(1 - t/N), where C(t) is the normalized
// autocovariance at lag t. The sum runs over increasing lags until the
// autocovariance estimate drops to or below zero past lag minCutoffLag.
// Degenerate inputs (fewer than three samples, zero variance) yield 1.0.
func StatisticalInefficiency(values []float64) float64 {
	n := len(values)
	if n < 3 {
		return 1.0
	}

	mean := stat.Mean(values, nil)
	dev := make([]float64, n)
	for i, v := range values {
		dev[i] = v - mean
	}

	// Population variance; zero for a constant series.
	sigma2 := floats.Dot(dev, dev) / float64(n)
	if sigma2 <= 0 {
		return 1.0
	}

	g := 1.0
	for t := 1; t < n-1; t++ {
		c := floats.Dot(dev[:n-t], dev[t:]) / (sigma2 * float64(n-t))
		if c <= 0 && t > minCutoffLag {
			break
		}
		g += 2.0 * c * (1.0 - float64(t)/float64(n))
	}

	if g < 1.0 {
		return 1.0
	}
	return g
}

// SubsampleIndices returns the row indices of an approximately independent
// subsample of n correlated samples with statistical inefficiency g.
//
// In conservative mode the spacing is rounded up to ceil(g) before striding,
// so the subsample count is never overestimated. Otherwise the effective
// sample count floor(n/g) is kept and indices are placed at real-valued
// spacing g, deduplicated after rounding.
func SubsampleIndices(n int, g float64, conservative bool) []int {
	if n <= 0 {
		return nil
	}
	if g < 1.0 {
		g = 1.0
	}

	if conservative {
		stride := int(math.Ceil(g))
		indices := make([]int, 0, n/stride+1)
		for i := 0; i < n; i += stride {
			indices = append(indices, i)
		}
		return indices
	}

	m := int(float64(n) / g)
	if m < 1 {
		m = 1
	}
	indices := make([]int, 0, m)
	prev := -1
	for i := 0; i < m; i++ {
		j := int(math.Round(float64(i) * g))
		if j >= n {
			break
		}
		if j != prev {
			indices = append(indices, j)
			prev = j
		}
	}
	return indices
}
