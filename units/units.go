// Package units provides shared constants, validation, and conversion for
// energy units attached to free-energy simulation tables.
package units

import "fmt"

// Unit constants
const (
	KT         = "kT"
	KJPerMol   = "kJ/mol"
	KcalPerMol = "kcal/mol"
)

// Physical constants used for conversions.
const (
	// GasConstantKJ is the molar gas constant R in kJ/(mol*K).
	GasConstantKJ = 8.31446261815324e-3
	// KJPerKcal is the number of kJ in one thermochemical kcal.
	KJPerKcal = 4.184
)

// ValidUnits contains all valid energy unit values
var ValidUnits = []string{KT, KJPerMol, KcalPerMol}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// ValidUnitsString returns a comma-separated string of valid units for error messages
func ValidUnitsString() string {
	return "kT, kJ/mol, kcal/mol"
}

// Convert converts an energy value between units. Conversions to and from
// thermal-energy units (kT) require the temperature in Kelvin at which the
// samples were generated.
func Convert(value float64, from, to string, temperatureK float64) (float64, error) {
	if !IsValid(from) {
		return 0, fmt.Errorf("unknown energy unit %q; valid units: %s", from, ValidUnitsString())
	}
	if !IsValid(to) {
		return 0, fmt.Errorf("unknown energy unit %q; valid units: %s", to, ValidUnitsString())
	}
	if from == to {
		return value, nil
	}
	if (from == KT || to == KT) && temperatureK <= 0 {
		return 0, fmt.Errorf("temperature %g K is not positive; cannot convert %s to %s",
			temperatureK, from, to)
	}

	// Normalize to kJ/mol, then convert to the target unit.
	kj := value
	switch from {
	case KT:
		kj = value * GasConstantKJ * temperatureK
	case KcalPerMol:
		kj = value * KJPerKcal
	}

	switch to {
	case KT:
		return kj / (GasConstantKJ * temperatureK), nil
	case KcalPerMol:
		return kj / KJPerKcal, nil
	default:
		return kj, nil
	}
}
