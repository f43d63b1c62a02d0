// Package godecorr decorrelates time-ordered samples from molecular-simulation
// free-energy calculations.
//
// GoDecorr takes the strongly autocorrelated time series produced at each
// lambda state of a free-energy simulation and reduces them to approximately
// independent observations, so that downstream statistical estimators report
// honest uncertainties. It covers bounded slicing, statistical-inefficiency
// subsampling, automatic equilibration detection, and per-state decorrelation
// of multi-state energy-difference and derivative tables.
//
// # Quick Start
//
// Subsample a table by the statistical inefficiency of a reference series:
//
//	ref := tbl.ConcatSeries(0) // first column as reference
//	sub, err := preprocess.StatisticalInefficiency(tbl, ref, nil)
//
// Detect the equilibration point first, then subsample:
//
//	sub, err := preprocess.EquilibriumDetection(tbl, ref, nil)
//
// Decorrelate a multi-state energy-difference table:
//
//	out, err := preprocess.DecorrelateUNK(unk, preprocess.MethodDE, true, false)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - table: tabular time-series data model (Table, Partition, Series, Attrs)
//   - units: energy-unit tags, validation, and conversion
//   - stats: statistical inefficiency and equilibration-point estimation
//   - preprocess: slicing, subsampling, and decorrelation operations
//
// # References
//
//   - Chodera, J. D. (2016). A Simple Method for Automated Equilibration
//     Detection in Molecular Simulations. J. Chem. Theory Comput. 12, 1799.
//   - Chodera, J. D., et al. (2007). Use of the Weighted Histogram Analysis
//     Method for the Analysis of Simulated and Parallel Tempering Simulations.
package godecorr
