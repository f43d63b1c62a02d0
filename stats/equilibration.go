package stats

// EquilibrationResult represents the outcome of an equilibration search.
type EquilibrationResult struct {
	T0   int     // chosen start index (equilibration point)
	G    float64 // statistical inefficiency of the series from T0 onward
	NEff int     // effective number of uncorrelated samples from T0 onward
}

// DetectEquilibration searches candidate start offsets for the equilibration
// point of a series: the t0 whose suffix [t0:] yields the largest number of
// effective uncorrelated samples NEff(t0) = floor((N-t0)/g(t0)).
//
// Ties are resolved toward the later t0, discarding the most burn-in. Very
// short or flat series return the full series with g = 1.0.
func DetectEquilibration(values []float64) EquilibrationResult {
	n := len(values)
	if n < 4 || allEqual(values) {
		return EquilibrationResult{T0: 0, G: 1.0, NEff: n}
	}

	neffs := make([]int, n-1)
	gs := make([]float64, n-1)
	for t0 := 0; t0 < n-1; t0++ {
		g := StatisticalInefficiency(values[t0:])
		gs[t0] = g
		neffs[t0] = int(float64(n-t0) / g)
	}

	best := pickBestStart(neffs)
	return EquilibrationResult{T0: best, G: gs[best], NEff: neffs[best]}
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// pickBestStart returns the index of the maximum effective-sample count,
// preferring the later index on ties.
func pickBestStart(neffs []int) int {
	best := 0
	for i, neff := range neffs {
		if neff >= neffs[best] {
			best = i
		}
	}
	return best
}
