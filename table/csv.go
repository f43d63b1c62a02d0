package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	Kind        Kind    // table kind to construct (default: KindEnergyDiff)
	Temperature float64 // Kelvin (default: 300)
	EnergyUnit  string  // energy-unit tag (default: "kT")
	Delimiter   rune    // field delimiter (default: ',')
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		Kind:        KindEnergyDiff,
		Temperature: 300,
		EnergyUnit:  "kT",
		Delimiter:   ',',
	}
}

// LoadCSV loads a table from a CSV file. The expected layout is a header row
// "time,state,<column labels...>" followed by one row per sample. Rows are
// grouped into partitions by state label in first-appearance order.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a table from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	if len(header) < 3 || header[0] != "time" || header[1] != "state" {
		return nil, errors.New(`CSV header must start with "time,state" followed by column labels`)
	}
	columns := make([]string, len(header)-2)
	copy(columns, header[2:])

	var parts []Partition
	partIdx := make(map[string]int)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("row has %d fields, header has %d", len(record), len(header))
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", record[0], err)
		}
		state := record[1]
		row := make([]float64, len(columns))
		for j := range columns {
			v, err := strconv.ParseFloat(record[j+2], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q in column %s: %w",
					record[j+2], columns[j], err)
			}
			row[j] = v
		}

		i, ok := partIdx[state]
		if !ok {
			i = len(parts)
			partIdx[state] = i
			parts = append(parts, Partition{State: state})
		}
		parts[i].Times = append(parts[i].Times, t)
		parts[i].Rows = append(parts[i].Rows, row)
	}

	if len(parts) == 0 {
		return nil, errors.New("no data rows found in CSV")
	}

	return New(opts.Kind, columns, parts, Attrs{
		Temperature: opts.Temperature,
		EnergyUnit:  opts.EnergyUnit,
	})
}

// SaveCSV saves a table to a CSV file in the layout LoadCSV reads.
func SaveCSV(t *Table, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return WriteCSV(t, writer)
}

// WriteCSV writes a table to an io.Writer in CSV form.
func WriteCSV(t *Table, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{"time", "state"}, t.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for i := range t.Parts {
		p := &t.Parts[i]
		for k, tm := range p.Times {
			record[0] = strconv.FormatFloat(tm, 'f', -1, 64)
			record[1] = p.State
			for j, v := range p.Rows[k] {
				record[j+2] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
