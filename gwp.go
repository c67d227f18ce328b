package exiobasegwp

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// GWPFactors maps a satellite flow name to its GWP100 characterization
// factor in kg CO2-eq per kg emitted. Factor sets are treated as immutable:
// use With to derive extended copies.
type GWPFactors map[string]float64

// AR5 holds the IPCC Fifth Assessment Report 100-year factors for the three
// combustion greenhouse-gas flows of EXIOBASE 3.
var AR5 = GWPFactors{
	"CO2 - combustion - air": 1,
	"CH4 - combustion - air": 28,
	"N2O - combustion - air": 265,
}

// AR6 holds the Sixth Assessment Report revision of the same factors.
var AR6 = GWPFactors{
	"CO2 - combustion - air": 1,
	"CH4 - combustion - air": 29.8,
	"N2O - combustion - air": 273,
}

// With returns a copy of the factor set extended with an additional flow,
// for example SF6 or an HFC. The receiver is left untouched.
func (factors GWPFactors) With(flow string, factor float64) GWPFactors {
	extended := make(GWPFactors, len(factors)+1)
	maps.Copy(extended, factors)
	extended[flow] = factor
	return extended
}

// IntensityRow is a single aggregated environmental intensity row sharing
// the satellite matrix column indexing.
type IntensityRow struct {
	Name    string
	Sectors []Sector
	Values  []float64
}

// Aggregate sums the configured flow rows of the satellite matrix, each
// weighted by its characterization factor, into one GWP100 intensity row.
// Every configured flow must exist in the satellite row index; an absent
// flow aborts the aggregation rather than being zero-filled.
func (factors GWPFactors) Aggregate(sys *IOSystem) (*IntensityRow, error) {
	_, cols := sys.S.Dims()

	row := &IntensityRow{
		Name:    "Global Warming (GWP100)",
		Sectors: sys.Sectors,
		Values:  make([]float64, cols),
	}

	for _, flow := range slices.Sorted(maps.Keys(factors)) {
		i, found := sys.FlowIndex(flow)
		if !found {
			if closest := closestFlows(flow, sys.Flows); len(closest) > 0 {
				return nil, fmt.Errorf("%w: %q (closest flows in dataset: %s)", ErrMissingFlow, flow, strings.Join(closest, ", "))
			}
			return nil, fmt.Errorf("%w: %q", ErrMissingFlow, flow)
		}

		factor := factors[flow]
		slog.Debug("adding flow to aggregated row", "flow", flow, "factor", factor)
		for j := 0; j < cols; j++ {
			row.Values[j] += factor * sys.S.At(i, j)
		}
	}

	return row, nil
}

// closestFlows fuzzy matches the gas part of a missing flow name against the
// satellite row index to help diagnosing dataset naming drift.
func closestFlows(flow string, flows []string) []string {
	gas, _, _ := strings.Cut(flow, " ")
	ranks := fuzzy.RankFindNormalizedFold(gas, flows)
	sort.Sort(ranks)

	suggestions := make([]string, 0, 3)
	for i := 0; i < len(ranks) && i < 3; i++ {
		suggestions = append(suggestions, ranks[i].Target)
	}
	return suggestions
}
