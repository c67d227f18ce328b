package exiobasegwp_test

import (
	"testing"

	exiobasegwp "github.com/afk-codze/exiobase3-gwp-calculation"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// toySystem is a one region, two sector economy with known matrices.
func toySystem() *exiobasegwp.IOSystem {
	return &exiobasegwp.IOSystem{
		Sectors: []exiobasegwp.Sector{
			{Region: "AT", Name: "Production of electricity by coal"},
			{Region: "AT", Name: "Construction"},
		},
		Flows: []string{
			"CO2 - combustion - air",
			"CH4 - combustion - air",
			"N2O - combustion - air",
			"SF6 - air",
		},
		A: mat.NewDense(2, 2, []float64{
			0.1, 0.2,
			0.3, 0.4,
		}),
		S: mat.NewDense(4, 2, []float64{
			2, 1,
			1, 0,
			0, 0,
			5, 5,
		}),
	}
}

func TestAggregateWeightedSum(t *testing.T) {
	row, err := exiobasegwp.AR5.Aggregate(toySystem())
	assert.NoError(t, err)
	assert.Equal(t, "Global Warming (GWP100)", row.Name)

	// 2*1 + 1*28 + 0*265
	assert.Equal(t, 30.0, row.Values[0])
	assert.Equal(t, 1.0, row.Values[1])
}

func TestAggregateKeepsColumnIndexing(t *testing.T) {
	sys := toySystem()
	row, err := exiobasegwp.AR5.Aggregate(sys)
	assert.NoError(t, err)
	assert.Equal(t, sys.Sectors, row.Sectors)
	assert.Len(t, row.Values, len(sys.Sectors))
}

func TestAggregateIsLinear(t *testing.T) {
	sys := toySystem()
	row, err := exiobasegwp.AR5.Aggregate(sys)
	assert.NoError(t, err)

	scaled := toySystem()
	scaled.S.Scale(3, scaled.S)
	scaledRow, err := exiobasegwp.AR5.Aggregate(scaled)
	assert.NoError(t, err)

	for j := range row.Values {
		assert.InDelta(t, 3*row.Values[j], scaledRow.Values[j], 1e-9)
	}
}

func TestAggregateMissingFlow(t *testing.T) {
	sys := toySystem()
	sys.Flows[1] = "CH4 - agriculture - air"

	row, err := exiobasegwp.AR5.Aggregate(sys)
	assert.ErrorIs(t, err, exiobasegwp.ErrMissingFlow)
	assert.ErrorContains(t, err, "CH4 - combustion - air")
	assert.Nil(t, row)
}

func TestAggregateExtraFlow(t *testing.T) {
	factors := exiobasegwp.AR5.With("SF6 - air", 23500)

	row, err := factors.Aggregate(toySystem())
	assert.NoError(t, err)
	assert.Equal(t, 30.0+5*23500, row.Values[0])

	// the base set stays untouched
	assert.Len(t, exiobasegwp.AR5, 3)
	_, found := exiobasegwp.AR5["SF6 - air"]
	assert.False(t, found)
}

func TestFlowIndex(t *testing.T) {
	sys := toySystem()

	i, found := sys.FlowIndex("N2O - combustion - air")
	assert.True(t, found)
	assert.Equal(t, 2, i)

	_, found = sys.FlowIndex("HFC - air")
	assert.False(t, found)
}
