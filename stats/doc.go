// Package stats provides the statistical estimators behind decorrelation:
// statistical-inefficiency estimation, subsample index generation, and
// automatic equilibration detection.
//
// # Statistical Inefficiency
//
// Estimate how many consecutive correlated samples make up one effective
// independent sample:
//
//	g := stats.StatisticalInefficiency(series.Values)
//	// g >= 1.0; g == 1.0 for uncorrelated or degenerate input
//
// The estimator sums normalized autocovariances over increasing lags until
// the estimate becomes indistinguishable from noise (the windowed cutoff).
//
// # Subsampling
//
// Turn g into row indices of approximately independent samples:
//
//	// Conservative: stride = ceil(g), count never overestimated.
//	idx := stats.SubsampleIndices(n, g, true)
//
//	// Non-conservative: floor(n/g) samples at real-valued spacing.
//	idx := stats.SubsampleIndices(n, g, false)
//
// # Equilibration Detection
//
// Search all candidate start offsets for the one maximizing the number of
// effective uncorrelated samples in the remainder:
//
//	res := stats.DetectEquilibration(series.Values)
//	// res.T0 is the equilibration point, res.G the inefficiency of the
//	// suffix, res.NEff the effective sample count
//
// Flat or very short series degrade to T0=0, G=1 rather than fail.
package stats
