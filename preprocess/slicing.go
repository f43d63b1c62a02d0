package preprocess

import (
	"fmt"

	"github.com/fepstack/godecorr/table"
)

// SliceOptions bounds a slice operation. A nil bound leaves that side of the
// time window open; Step below 1 is treated as 1.
type SliceOptions struct {
	Lower *float64
	Upper *float64
	Step  int
}

// Slicing restricts a table to rows with time in [Lower, Upper] and then
// keeps every Step-th row, counting from the first row after filtering.
// Partitions are processed independently with shared bounds, and the result
// carries the input's metadata.
//
// The time index of every partition must be strictly increasing; slicing
// never tolerates disorder or duplicate times, because selecting rows from
// a disordered index would silently return the wrong samples.
func Slicing(t *table.Table, opts SliceOptions) (*table.Table, error) {
	parts := make([]table.Partition, len(t.Parts))
	for i := range t.Parts {
		p := &t.Parts[i]
		if !p.StrictlyIncreasing() {
			return nil, orderingErr(p)
		}
		parts[i] = p.Select(sliceIndices(p.Times, opts.Lower, opts.Upper, opts.Step))
	}
	return t.WithParts(parts), nil
}

// sliceIndices returns the row indices selected by the given bounds and
// step over a sorted time index.
func sliceIndices(times []float64, lower, upper *float64, step int) []int {
	if step < 1 {
		step = 1
	}
	indices := make([]int, 0, len(times))
	kept := 0
	for i, tm := range times {
		if lower != nil && tm < *lower {
			continue
		}
		if upper != nil && tm > *upper {
			break
		}
		if kept%step == 0 {
			indices = append(indices, i)
		}
		kept++
	}
	return indices
}

func orderingErr(p *table.Partition) error {
	if p.HasDuplicateTimes() {
		return fmt.Errorf("%w: duplicate time coordinates in state %q", ErrOrdering, p.State)
	}
	return fmt.Errorf("%w: time index not sorted ascending in state %q", ErrOrdering, p.State)
}
