package table

import (
	"github.com/fepstack/godecorr/units"
)

// ToUnit converts every value in the table to the target energy unit using
// the table's own temperature, returning a new table with updated metadata.
// The input is not modified.
func ToUnit(t *Table, unit string) (*Table, error) {
	if t.Attrs.EnergyUnit == unit {
		return t.Copy(), nil
	}

	out := t.Copy()
	for i := range out.Parts {
		p := &out.Parts[i]
		for _, row := range p.Rows {
			for j, v := range row {
				converted, err := units.Convert(v, t.Attrs.EnergyUnit, unit, t.Attrs.Temperature)
				if err != nil {
					return nil, err
				}
				row[j] = converted
			}
		}
	}
	out.Attrs.EnergyUnit = unit
	return out, nil
}
