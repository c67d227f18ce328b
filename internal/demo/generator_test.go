package demo_test

import (
	"math"
	"testing"

	exiobasegwp "github.com/afk-codze/exiobase3-gwp-calculation"
	"github.com/afk-codze/exiobase3-gwp-calculation/internal/demo"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorIsDeterministic(t *testing.T) {
	a := demo.NewGenerator(2, 3).IOSystem()
	b := demo.NewGenerator(2, 3).IOSystem()

	assert.Equal(t, a.Sectors, b.Sectors)
	assert.Equal(t, a.A.RawMatrix().Data, b.A.RawMatrix().Data)
	assert.Equal(t, a.S.RawMatrix().Data, b.S.RawMatrix().Data)
}

func TestGeneratedSystemComputesEndToEnd(t *testing.T) {
	sys := demo.NewGenerator(3, 2).IOSystem()

	assert.NoError(t, sys.CalcL())

	row, err := exiobasegwp.AR5.Aggregate(sys)
	assert.NoError(t, err)

	multipliers, err := exiobasegwp.ComputeMultipliers(row, sys.L)
	assert.NoError(t, err)
	assert.Len(t, multipliers.Values, len(sys.Sectors))

	for j, v := range multipliers.Values {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "multiplier %d is not finite", j)
		// multipliers include at least the direct intensities
		assert.GreaterOrEqual(t, v, row.Values[j])
	}
}
