package preprocess

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fepstack/godecorr/table"
)

// Deterministic fixtures: an explicit LCG keeps test data identical across
// Go releases, unlike math/rand.

type lcg struct{ state uint64 }

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed}
}

// next returns a uniform value in [-0.5, 0.5).
func (r *lcg) next() float64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return float64(r.state>>11)/(1<<53) - 0.5
}

// ma1Values returns an MA(1) process with lag-one autocorrelation
// theta/(1+theta^2), so its statistical inefficiency sits safely in (1, 2]
// for moderate theta.
func ma1Values(n int, theta float64, seed uint64) []float64 {
	r := newLCG(seed)
	out := make([]float64, n)
	prev := 0.0
	for i := range out {
		w := r.next()
		out[i] = w + theta*prev
		prev = w
	}
	return out
}

// benchmarkUNK builds the deterministic reference fixture: a single-state
// energy-difference table of 4001 ordered, unique-time rows whose first
// column has statistical inefficiency in (1, 2].
func benchmarkUNK(t *testing.T) *table.Table {
	t.Helper()
	return unkTable(t, []string{"0.00"}, 4001, 7)
}

// unkTable builds an energy-difference table with the given states, n rows
// per state, and columns for every state plus derived neighbors.
func unkTable(t *testing.T, states []string, n int, seed uint64) *table.Table {
	t.Helper()

	columns := []string{"0.00", "0.50", "1.00"}
	parts := make([]table.Partition, len(states))
	for si, state := range states {
		base := ma1Values(n, 0.35, seed+uint64(si))
		times := make([]float64, n)
		rows := make([][]float64, n)
		for i := 0; i < n; i++ {
			times[i] = float64(i) * 10
			c := base[i]
			rows[i] = []float64{c, 1.5*c + 0.1, 2 * c}
		}
		parts[si] = table.Partition{State: state, Times: times, Rows: rows}
	}

	tbl, err := table.New(table.KindEnergyDiff, columns, parts,
		table.Attrs{Temperature: 300, EnergyUnit: "kT"})
	require.NoError(t, err)
	return tbl
}

// derivativeTable builds a single-state derivative table with one column.
func derivativeTable(t *testing.T, n int) *table.Table {
	t.Helper()

	values := ma1Values(n, 0.35, 13)
	times := make([]float64, n)
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		times[i] = float64(i) * 10
		rows[i] = []float64{values[i]}
	}

	tbl, err := table.New(table.KindDerivative, []string{"coul-lambda"},
		[]table.Partition{{State: "0.00", Times: times, Rows: rows}},
		table.Attrs{Temperature: 300, EnergyUnit: "kT"})
	require.NoError(t, err)
	return tbl
}

// reversedTable returns a copy of tbl with every partition's rows reversed,
// giving a strictly decreasing time index.
func reversedTable(tbl *table.Table) *table.Table {
	out := tbl.Copy()
	for i := range out.Parts {
		p := &out.Parts[i]
		indices := make([]int, p.Len())
		for k := range indices {
			indices[k] = p.Len() - 1 - k
		}
		out.Parts[i] = p.Select(indices)
	}
	return out
}

// selfConcatTable returns a copy of tbl with every partition concatenated
// with itself, duplicating every time coordinate.
func selfConcatTable(tbl *table.Table) *table.Table {
	out := tbl.Copy()
	for i := range out.Parts {
		p := &out.Parts[i]
		indices := make([]int, 0, 2*p.Len())
		for k := 0; k < p.Len(); k++ {
			indices = append(indices, k)
		}
		for k := 0; k < p.Len(); k++ {
			indices = append(indices, k)
		}
		out.Parts[i] = p.Select(indices)
	}
	return out
}

// halfSwappedTable returns a copy of tbl with the halves of every partition
// swapped: sorted within each half, unsorted overall, no duplicates.
func halfSwappedTable(tbl *table.Table) *table.Table {
	out := tbl.Copy()
	for i := range out.Parts {
		p := &out.Parts[i]
		half := p.Len() / 2
		indices := make([]int, 0, p.Len())
		for k := half; k < p.Len(); k++ {
			indices = append(indices, k)
		}
		for k := 0; k < half; k++ {
			indices = append(indices, k)
		}
		out.Parts[i] = p.Select(indices)
	}
	return out
}

func fptr(v float64) *float64 { return &v }
