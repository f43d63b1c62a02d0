// Package table provides the tabular time-series data model shared by all
// decorrelation operations.
//
// This package includes the Table type for multi-state simulation output,
// the Series type for scalar reference series, and functions for CSV loading
// and energy-unit conversion.
//
// # Creating a Table
//
// Build an energy-difference table with one partition per lambda state:
//
//	tbl, err := table.New(table.KindEnergyDiff,
//	    []string{"0.00", "0.50", "1.00"},
//	    []table.Partition{part0, part1},
//	    table.Attrs{Temperature: 300, EnergyUnit: units.KT})
//
// # Metadata
//
// Every table carries Attrs (temperature in Kelvin and an energy-unit tag).
// All transforms in this library copy Attrs onto their result; no transform
// drops or aliases metadata.
//
// # Reference Series
//
// Extract a scalar column spanning all partitions in partition order:
//
//	ref := tbl.ConcatSeries(0)
//
// # Loading from CSV
//
// Load tables from CSV files with a "time,state,<columns...>" header:
//
//	opts := table.DefaultCSVOptions()
//	opts.Kind = table.KindDerivative
//	tbl, err := table.LoadCSV("dhdl.csv", opts)
//
// # Unit Conversion
//
// Convert a whole table between energy units using its own temperature:
//
//	kj, err := table.ToUnit(tbl, units.KJPerMol)
package table
