package exiobasegwp

import (
	"fmt"

	"github.com/afk-codze/exiobase3-gwp-calculation/internal/must"
	"gonum.org/v1/gonum/mat"
)

// Multipliers holds one supply-chain GWP100 multiplier per (region, sector):
// the total direct plus indirect emissions embodied in one unit of that
// sector's final demand, in the dataset's native units.
type Multipliers struct {
	Sectors []Sector
	Values  []float64
}

// ComputeMultipliers multiplies the aggregated intensity row by the Leontief
// inverse. Standard floating point semantics apply: NaN and Inf coming from
// the dataset propagate into the result.
func ComputeMultipliers(row *IntensityRow, l *mat.Dense) (*Multipliers, error) {
	must.Assert(len(row.Sectors) == len(row.Values), "intensity row labels and values diverged")

	rows, cols := l.Dims()
	if len(row.Values) != rows {
		return nil, fmt.Errorf("%w: intensity row has %d values, leontief inverse has %d rows", ErrDimensionMismatch, len(row.Values), rows)
	}

	m := mat.NewDense(1, cols, nil)
	m.Mul(mat.NewDense(1, len(row.Values), row.Values), l)

	return &Multipliers{
		Sectors: row.Sectors,
		Values:  mat.Row(nil, 0, m),
	}, nil
}
