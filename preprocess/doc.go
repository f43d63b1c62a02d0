// Package preprocess implements the decorrelation operations applied to
// free-energy simulation tables before estimation: slicing, subsampling by
// statistical inefficiency, automatic equilibration detection, and the
// higher-level decorrelation of multi-state tables.
//
// # Slicing
//
// Restrict a table to a time window and stride:
//
//	lower, upper := 1000.0, 34000.0
//	sliced, err := preprocess.Slicing(tbl, preprocess.SliceOptions{
//	    Lower: &lower, Upper: &upper, Step: 5,
//	})
//
// # Subsampling
//
// Subsample by the statistical inefficiency of a reference series:
//
//	ref := tbl.ConcatSeries(0)
//	sub, err := preprocess.StatisticalInefficiency(tbl, ref, nil)
//
// With no reference series the call degenerates to plain slicing. Options
// control bounds, stride, conservative rounding, duplicate handling, and
// sort enforcement; nil means DefaultOptions.
//
// # Equilibration Detection
//
// Search for the equilibration point first, then subsample from it:
//
//	sub, err := preprocess.EquilibriumDetection(tbl, ref, nil)
//
// # Decorrelation
//
// Decorrelate whole multi-state tables, one lambda state at a time:
//
//	out, err := preprocess.DecorrelateUNK(unk, preprocess.MethodDE, true, false)
//	out, err := preprocess.DecorrelateDHDL(dhdl, true, false)
//
// # Errors
//
// All operations fail fast with one of three sentinel errors, testable with
// errors.Is: ErrOrdering (disordered or duplicated time index), ErrValidation
// (reference series mismatch), ErrDomainMismatch (column structure cannot
// support the requested method). There is no partial-result mode.
package preprocess
