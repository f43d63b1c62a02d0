package preprocess

import "errors"

// Sentinel errors returned by the operations in this package. Call sites
// wrap them with context; match with errors.Is.
var (
	// ErrOrdering reports a time index that is not sorted ascending, or
	// contains duplicate time coordinates, when the active sort and
	// duplicate policies do not permit it.
	ErrOrdering = errors.New("time index disordered or duplicated")

	// ErrValidation reports a reference series whose length or time
	// coordinates do not match the table it decorrelates.
	ErrValidation = errors.New("reference series does not match table")

	// ErrDomainMismatch reports a decorrelation method applied to a table
	// whose column structure cannot support it.
	ErrDomainMismatch = errors.New("table columns do not support method")
)
