package preprocess

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/fepstack/godecorr/table"
)

// Method selects how the reference series for decorrelating an
// energy-difference table is built from each state's columns.
type Method string

const (
	// MethodDHDL uses the energy difference to the adjacent state only.
	MethodDHDL Method = "dhdl"
	// MethodDHDLAll sums the energy differences to all neighboring states.
	MethodDHDLAll Method = "dhdl_all"
	// MethodDE sums the absolute energy differences to all non-self states.
	MethodDE Method = "dE"
)

// DecorrelateUNK decorrelates a multi-state energy-difference table. For
// each lambda state a scalar reference series is built according to method,
// the state's rows are passed through equilibration detection and
// subsampling, and the surviving rows of all states are recombined in the
// original state order.
//
// Tables whose column structure cannot support the method -- derivative
// tables, single-column tables, or states with no matching column -- fail
// with ErrDomainMismatch.
func DecorrelateUNK(t *table.Table, method Method, dropDuplicates, sortByTime bool) (*table.Table, error) {
	if t.Kind != table.KindEnergyDiff {
		return nil, fmt.Errorf("%w: decorrelation method %q needs an energy-difference table, got %s",
			ErrDomainMismatch, method, t.Kind)
	}
	if len(t.Columns) < 2 {
		return nil, fmt.Errorf("%w: method %q needs neighbor-state columns, table has %d column",
			ErrDomainMismatch, method, len(t.Columns))
	}

	series, err := unkReference(t, method)
	if err != nil {
		return nil, err
	}

	slog.Info("decorrelating energy differences",
		"method", string(method), "states", len(t.Parts), "rows", t.NumRows())

	out, err := EquilibriumDetection(t, series, &Options{
		DropDuplicates: dropDuplicates,
		Sort:           sortByTime,
	})
	if err != nil {
		return nil, err
	}
	logStateCounts(t, out)
	return out, nil
}

// DecorrelateDHDL decorrelates a multi-state derivative table. The
// reference series for each state is the row-sum of its derivative columns,
// which collapses multi-component coupling parameters to one scalar.
func DecorrelateDHDL(t *table.Table, dropDuplicates, sortByTime bool) (*table.Table, error) {
	series := rowSumReference(t)

	slog.Info("decorrelating derivatives", "states", len(t.Parts), "rows", t.NumRows())

	out, err := EquilibriumDetection(t, series, &Options{
		DropDuplicates: dropDuplicates,
		Sort:           sortByTime,
	})
	if err != nil {
		return nil, err
	}
	logStateCounts(t, out)
	return out, nil
}

// unkReference builds the reference series for an energy-difference table,
// concatenated across partitions in table row order.
func unkReference(t *table.Table, method Method) (*table.Series, error) {
	times := make([]float64, 0, t.NumRows())
	values := make([]float64, 0, t.NumRows())

	for i := range t.Parts {
		p := &t.Parts[i]
		j := t.ColumnIndex(p.State)
		if j < 0 {
			return nil, fmt.Errorf("%w: state %q has no matching energy-difference column",
				ErrDomainMismatch, p.State)
		}

		times = append(times, p.Times...)
		for _, row := range p.Rows {
			v, err := referenceValue(row, j, method)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return &table.Series{Times: times, Values: values, Name: string(method)}, nil
}

// referenceValue computes one reference sample from a row of energy
// differences, given the state's own column index j.
func referenceValue(row []float64, j int, method Method) (float64, error) {
	switch method {
	case MethodDHDL:
		// Difference to the adjacent state; the last state falls back to
		// its previous neighbor.
		if j == len(row)-1 {
			return row[j] - row[j-1], nil
		}
		return row[j+1] - row[j], nil
	case MethodDHDLAll:
		return floats.Sum(row) - float64(len(row))*row[j], nil
	case MethodDE:
		sum := 0.0
		for k, v := range row {
			if k != j {
				sum += math.Abs(v - row[j])
			}
		}
		return sum, nil
	default:
		return 0, fmt.Errorf("unknown decorrelation method %q", method)
	}
}

// rowSumReference builds a reference series from per-row column sums.
func rowSumReference(t *table.Table) *table.Series {
	times := make([]float64, 0, t.NumRows())
	values := make([]float64, 0, t.NumRows())
	for i := range t.Parts {
		p := &t.Parts[i]
		times = append(times, p.Times...)
		for _, row := range p.Rows {
			values = append(values, floats.Sum(row))
		}
	}
	return &table.Series{Times: times, Values: values, Name: "dH/dl"}
}

func logStateCounts(in, out *table.Table) {
	for i := range out.Parts {
		kept := out.Parts[i].Len()
		total := in.Parts[i].Len()
		slog.Debug("state decorrelated",
			"state", out.Parts[i].State, "kept", kept, "rows", total)
		if kept < 50 {
			slog.Warn("few samples survive decorrelation; uncertainty estimates may be unreliable",
				"state", out.Parts[i].State, "kept", kept)
		}
	}
}
