package preprocess

import (
	"fmt"
	"sort"

	"github.com/fepstack/godecorr/stats"
	"github.com/fepstack/godecorr/table"
)

// Options controls subsampling and equilibration detection.
type Options struct {
	Lower          *float64 // lower time bound (nil = open)
	Upper          *float64 // upper time bound (nil = open)
	Step           int      // pre-subsampling stride (0 or 1 = every row)
	Conservative   bool     // round the subsampling stride up from g
	DropDuplicates bool     // collapse duplicate times, last seen wins
	Sort           bool     // reorder by time instead of requiring order
}

// DefaultOptions returns the default subsampling configuration: no bounds,
// unit step, duplicate times dropped, sort enforcement on.
func DefaultOptions() *Options {
	return &Options{DropDuplicates: true}
}

// StatisticalInefficiency subsamples a table by the statistical inefficiency
// of a reference series, yielding approximately independent rows.
//
// The series, when given, must align with the table row-for-row: same
// length, same time coordinates (order ignored only when Sort is set),
// else ErrValidation. With no series the call degenerates to Slicing with
// the same bounds and step. Each lambda-state partition is processed
// independently and partitions are recombined in their original order.
func StatisticalInefficiency(t *table.Table, series *table.Series, opts *Options) (*table.Table, error) {
	return subsampleTable(t, series, opts, false)
}

// EquilibriumDetection generalizes StatisticalInefficiency by first
// searching each partition's reference series for the equilibration point,
// then subsampling from that point onward with the matching inefficiency.
// With no series the search runs on each partition's first column.
func EquilibriumDetection(t *table.Table, series *table.Series, opts *Options) (*table.Table, error) {
	return subsampleTable(t, series, opts, true)
}

func subsampleTable(t *table.Table, series *table.Series, opts *Options, detect bool) (*table.Table, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if series != nil {
		if err := validateSeries(t, series, opts.Sort); err != nil {
			return nil, err
		}
	}
	if series == nil && !detect {
		// Nothing to estimate: plain slicing, but the ordering and
		// duplicate policies still apply first.
		t2, err := applyOrderPolicy(t, opts)
		if err != nil {
			return nil, err
		}
		return Slicing(t2, SliceOptions{Lower: opts.Lower, Upper: opts.Upper, Step: opts.Step})
	}

	parts := make([]table.Partition, len(t.Parts))
	offset := 0
	for i := range t.Parts {
		p := t.Parts[i]
		n := p.Len()

		var sub *table.Series
		if series != nil {
			sub = series.Window(offset, offset+n)
		}
		offset += n

		p2, sub2, err := orderPartition(&p, sub, opts)
		if err != nil {
			return nil, err
		}

		part, err := subsamplePartition(p2, sub2, opts, detect)
		if err != nil {
			return nil, err
		}
		parts[i] = part
	}
	return t.WithParts(parts), nil
}

// subsamplePartition windows one ordered partition to the configured bounds
// and stride, then selects the decorrelated subset of its rows.
func subsamplePartition(p *table.Partition, sub *table.Series, opts *Options, detect bool) (table.Partition, error) {
	window := sliceIndices(p.Times, opts.Lower, opts.Upper, opts.Step)
	windowed := p.Select(window)

	var ref []float64
	if sub != nil {
		ref = sub.Select(window).Values
	} else {
		// Equilibration search without an external reference runs on the
		// partition's own first column.
		ref = windowed.Column(0).Values
	}

	n := windowed.Len()
	if !detect {
		g := stats.StatisticalInefficiency(ref)
		return windowed.Select(stats.SubsampleIndices(n, g, opts.Conservative)), nil
	}

	res := stats.DetectEquilibration(ref)
	indices := stats.SubsampleIndices(n-res.T0, res.G, opts.Conservative)
	for k := range indices {
		indices[k] += res.T0
	}
	return windowed.Select(indices), nil
}

// orderPartition enforces the duplicate and sort policies on a partition
// and its aligned sub-series, returning reordered copies. De-duplication
// runs first and tolerates disorder, so a duplicated-then-dropped table
// only has to be ordered after the drop. Table and series are each keyed by
// their own times, which realigns them by time once both are sorted.
func orderPartition(p *table.Partition, sub *table.Series, opts *Options) (*table.Partition, *table.Series, error) {
	if p.HasDuplicateTimes() {
		if !opts.DropDuplicates {
			return nil, nil, fmt.Errorf("%w: duplicate time coordinates in state %q", ErrOrdering, p.State)
		}
		deduped := p.Select(lastOccurrence(p.Times))
		p = &deduped
		if sub != nil {
			sub = sub.Select(lastOccurrence(sub.Times))
		}
	}

	if opts.Sort {
		sorted := p.Select(table.SortPerm(p.Times))
		p = &sorted
		if sub != nil {
			sub = sub.Select(table.SortPerm(sub.Times))
		}
	} else if !p.Sorted() {
		return nil, nil, fmt.Errorf("%w: time index not sorted ascending in state %q", ErrOrdering, p.State)
	}

	if sub != nil && sub.Len() != p.Len() {
		return nil, nil, fmt.Errorf("%w: series has %d samples for %d rows in state %q after ordering",
			ErrValidation, sub.Len(), p.Len(), p.State)
	}
	return p, sub, nil
}

// applyOrderPolicy runs orderPartition over every partition of a table.
func applyOrderPolicy(t *table.Table, opts *Options) (*table.Table, error) {
	parts := make([]table.Partition, len(t.Parts))
	for i := range t.Parts {
		p, _, err := orderPartition(&t.Parts[i], nil, opts)
		if err != nil {
			return nil, err
		}
		parts[i] = *p
	}
	return t.WithParts(parts), nil
}

// lastOccurrence returns the indices keeping the last occurrence of each
// time value, preserving the original relative order of the kept rows.
func lastOccurrence(times []float64) []int {
	last := make(map[float64]int, len(times))
	for i, tm := range times {
		last[tm] = i
	}
	keep := make([]int, 0, len(last))
	for i, tm := range times {
		if last[tm] == i {
			keep = append(keep, i)
		}
	}
	return keep
}

// validateSeries checks that a reference series matches the table's rows.
// Length and time coordinates must agree; ordering of the coordinates is
// ignored only when the caller asked for sorting.
func validateSeries(t *table.Table, series *table.Series, sortFirst bool) error {
	n := t.NumRows()
	if series.Len() != n {
		return fmt.Errorf("%w: series has %d samples, table has %d rows", ErrValidation, series.Len(), n)
	}

	tableTimes := make([]float64, 0, n)
	for i := range t.Parts {
		tableTimes = append(tableTimes, t.Parts[i].Times...)
	}
	seriesTimes := series.Times

	if sortFirst {
		tableTimes = sortedCopy(tableTimes)
		seriesTimes = sortedCopy(seriesTimes)
	}
	for i := range tableTimes {
		if tableTimes[i] != seriesTimes[i] {
			return fmt.Errorf("%w: time coordinate mismatch at row %d (%g vs %g)",
				ErrValidation, i, tableTimes[i], seriesTimes[i])
		}
	}
	return nil
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
