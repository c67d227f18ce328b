package exiobasegwp

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sector identifies one column of the input-output system: a region code
// paired with an economic sector name.
type Sector struct {
	Region string
	Name   string
}

// IOSystem holds the parsed multi-regional input-output tables. The columns
// of A, S and L share the same (region, sector) labels in the same order;
// the pipeline trusts the loader on this and never reindexes.
type IOSystem struct {
	// Sectors labels the columns of A, S and L in dataset order.
	Sectors []Sector
	// Flows labels the rows of S in dataset order.
	Flows []string
	// A is the technology coefficient matrix: direct input requirement
	// per unit of sector output.
	A *mat.Dense
	// S is the satellite intensity matrix, one row per environmental flow.
	S *mat.Dense
	// L is the Leontief inverse, nil until CalcL has run.
	L *mat.Dense
}

// FlowIndex returns the row position of the named flow in S.
func (sys *IOSystem) FlowIndex(name string) (int, bool) {
	for i, flow := range sys.Flows {
		if flow == name {
			return i, true
		}
	}
	return 0, false
}

var (
	// ErrMissingFlow reports a configured greenhouse-gas flow that is absent
	// from the satellite matrix row index.
	ErrMissingFlow = errors.New("flow not found in satellite matrix")

	// ErrDimensionMismatch reports an intensity row whose length disagrees
	// with the Leontief inverse indexing.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
