package table

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Series represents a scalar time series: one value per simulation-time
// coordinate. It serves as the reference series for subsampling decisions.
type Series struct {
	Times  []float64
	Values []float64
	Name   string
}

// NewSeries creates a series from times and values.
func NewSeries(times, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, errors.New("times and values must have the same length")
	}
	return &Series{Times: times, Values: values}, nil
}

// Len returns the number of samples in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the unbiased sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// Sum returns the sum of all values.
func (s *Series) Sum() float64 {
	return floats.Sum(s.Values)
}

// Window returns a copy of the series restricted to index range [start, end).
// Bounds are clamped to the series length.
func (s *Series) Window(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Name: s.Name}
	}

	times := make([]float64, end-start)
	copy(times, s.Times[start:end])
	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	return &Series{Times: times, Values: values, Name: s.Name}
}

// Select returns a new series containing the samples at the given indices,
// in the given order.
func (s *Series) Select(indices []int) *Series {
	out := &Series{
		Times:  make([]float64, len(indices)),
		Values: make([]float64, len(indices)),
		Name:   s.Name,
	}
	for k, i := range indices {
		out.Times[k] = s.Times[i]
		out.Values[k] = s.Values[i]
	}
	return out
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	times := make([]float64, len(s.Times))
	copy(times, s.Times)
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{Times: times, Values: values, Name: s.Name}
}
