package table

import (
	"fmt"
	"sort"

	"github.com/fepstack/godecorr/units"
)

// Kind identifies the column structure of a table.
type Kind int

const (
	// KindEnergyDiff marks a table whose columns are energy differences to
	// neighboring or reference lambda states (one column per state label).
	KindEnergyDiff Kind = iota
	// KindDerivative marks a table whose columns are derivatives of the
	// energy with respect to coupling-parameter components.
	KindDerivative
)

// String returns a human-readable name for the table kind.
func (k Kind) String() string {
	switch k {
	case KindEnergyDiff:
		return "energy-difference"
	case KindDerivative:
		return "derivative"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Attrs is the metadata record attached to every table. Transforms copy it
// onto their result; it is never aliased between independently transformed
// tables.
type Attrs struct {
	Temperature float64 // Kelvin
	EnergyUnit  string  // one of the units package tags
}

// Partition holds one lambda state's rows. Times are the row key; Rows is
// row-major with one slice per time coordinate and one entry per table
// column.
type Partition struct {
	State string
	Times []float64
	Rows  [][]float64
}

// Len returns the number of rows in the partition.
func (p *Partition) Len() int {
	return len(p.Times)
}

// Sorted reports whether the partition's times are non-decreasing.
func (p *Partition) Sorted() bool {
	return sort.Float64sAreSorted(p.Times)
}

// StrictlyIncreasing reports whether the partition's times are strictly
// increasing, which implies both sortedness and uniqueness.
func (p *Partition) StrictlyIncreasing() bool {
	for i := 1; i < len(p.Times); i++ {
		if p.Times[i] <= p.Times[i-1] {
			return false
		}
	}
	return true
}

// HasDuplicateTimes reports whether any time coordinate occurs more than
// once, regardless of row order.
func (p *Partition) HasDuplicateTimes() bool {
	seen := make(map[float64]struct{}, len(p.Times))
	for _, t := range p.Times {
		if _, ok := seen[t]; ok {
			return true
		}
		seen[t] = struct{}{}
	}
	return false
}

// Column extracts column j as a Series. The series shares no storage with
// the partition.
func (p *Partition) Column(j int) *Series {
	times := make([]float64, len(p.Times))
	copy(times, p.Times)
	values := make([]float64, len(p.Rows))
	for i, row := range p.Rows {
		values[i] = row[j]
	}
	return &Series{Times: times, Values: values}
}

// Select returns a new partition containing the rows at the given indices,
// in the given order. Row storage is copied, never shared.
func (p *Partition) Select(indices []int) Partition {
	out := Partition{
		State: p.State,
		Times: make([]float64, len(indices)),
		Rows:  make([][]float64, len(indices)),
	}
	for k, i := range indices {
		out.Times[k] = p.Times[i]
		row := make([]float64, len(p.Rows[i]))
		copy(row, p.Rows[i])
		out.Rows[k] = row
	}
	return out
}

// Copy creates a deep copy of the partition.
func (p *Partition) Copy() Partition {
	indices := make([]int, p.Len())
	for i := range indices {
		indices[i] = i
	}
	return p.Select(indices)
}

// Table is an ordered multi-state table keyed by (time, state). Parts holds
// one partition per lambda state in the original state enumeration order.
type Table struct {
	Kind    Kind
	Columns []string
	Parts   []Partition
	Attrs   Attrs
}

// New creates a table, validating column structure and metadata.
func New(kind Kind, columns []string, parts []Partition, attrs Attrs) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table must have at least one column")
	}
	if !units.IsValid(attrs.EnergyUnit) {
		return nil, fmt.Errorf("invalid energy unit %q; valid units: %s",
			attrs.EnergyUnit, units.ValidUnitsString())
	}
	for _, p := range parts {
		if len(p.Times) != len(p.Rows) {
			return nil, fmt.Errorf("state %q: %d times but %d rows",
				p.State, len(p.Times), len(p.Rows))
		}
		for i, row := range p.Rows {
			if len(row) != len(columns) {
				return nil, fmt.Errorf("state %q row %d: %d values for %d columns",
					p.State, i, len(row), len(columns))
			}
		}
	}
	return &Table{Kind: kind, Columns: columns, Parts: parts, Attrs: attrs}, nil
}

// NumRows returns the total row count across all partitions.
func (t *Table) NumRows() int {
	n := 0
	for i := range t.Parts {
		n += t.Parts[i].Len()
	}
	return n
}

// ColumnIndex returns the index of the column with the given label, or -1.
func (t *Table) ColumnIndex(label string) int {
	for i, c := range t.Columns {
		if c == label {
			return i
		}
	}
	return -1
}

// ConcatSeries extracts column j across all partitions, concatenated in
// partition order. The result aligns row-for-row with the table and is the
// usual way to build a reference series.
func (t *Table) ConcatSeries(j int) *Series {
	times := make([]float64, 0, t.NumRows())
	values := make([]float64, 0, t.NumRows())
	for i := range t.Parts {
		p := &t.Parts[i]
		times = append(times, p.Times...)
		for _, row := range p.Rows {
			values = append(values, row[j])
		}
	}
	return &Series{Times: times, Values: values, Name: t.columnName(j)}
}

func (t *Table) columnName(j int) string {
	if j >= 0 && j < len(t.Columns) {
		return t.Columns[j]
	}
	return ""
}

// Copy creates a deep copy of the table.
func (t *Table) Copy() *Table {
	columns := make([]string, len(t.Columns))
	copy(columns, t.Columns)
	parts := make([]Partition, len(t.Parts))
	for i := range t.Parts {
		parts[i] = t.Parts[i].Copy()
	}
	return &Table{Kind: t.Kind, Columns: columns, Parts: parts, Attrs: t.Attrs}
}

// WithParts returns a new table carrying the given partitions and this
// table's kind, columns, and metadata. It is the recombination step used by
// every per-state transform.
func (t *Table) WithParts(parts []Partition) *Table {
	columns := make([]string, len(t.Columns))
	copy(columns, t.Columns)
	return &Table{Kind: t.Kind, Columns: columns, Parts: parts, Attrs: t.Attrs}
}

// SortPerm returns the stable permutation that orders times ascending.
// Stability keeps the original relative order of duplicate times, so a
// last-seen-wins de-duplication after sorting picks the latest occurrence.
func SortPerm(times []float64) []int {
	perm := make([]int, len(times))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return times[perm[a]] < times[perm[b]]
	})
	return perm
}
