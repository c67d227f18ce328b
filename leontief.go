package exiobasegwp

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CalcL derives the Leontief inverse L = (I - A)⁻¹ and stores it on the
// system. L gives the total output required economy-wide, direct and
// indirect, per unit of final demand. A is left untouched.
func (sys *IOSystem) CalcL() error {
	n, cols := sys.A.Dims()
	if n != cols {
		return fmt.Errorf("technology matrix is not square: %dx%d", n, cols)
	}

	ia := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -sys.A.At(i, j)
			if i == j {
				v++
			}
			ia.Set(i, j, v)
		}
	}

	l := mat.NewDense(n, n, nil)
	if err := l.Inverse(ia); err != nil {
		cond, ok := err.(mat.Condition)
		if !ok || math.IsInf(float64(cond), 1) {
			return fmt.Errorf("failed to invert (I - A): %w", err)
		}
		slog.Warn("(I - A) is ill conditioned, multipliers may be inaccurate", "condition", float64(cond))
	}

	sys.L = l
	return nil
}
