package exiobasegwp_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	exiobasegwp "github.com/afk-codze/exiobase3-gwp-calculation"

	"github.com/stretchr/testify/assert"
)

func toyMultipliers(t *testing.T) *exiobasegwp.Multipliers {
	sys := toySystem()
	assert.NoError(t, sys.CalcL())

	row, err := exiobasegwp.AR5.Aggregate(sys)
	assert.NoError(t, err)

	multipliers, err := exiobasegwp.ComputeMultipliers(row, sys.L)
	assert.NoError(t, err)

	return multipliers
}

func TestWriteCSV(t *testing.T) {
	multipliers := toyMultipliers(t)

	buf := new(bytes.Buffer)
	assert.NoError(t, multipliers.WriteCSV(buf))

	records, err := csv.NewReader(buf).ReadAll()
	assert.NoError(t, err)
	assert.Equal(t, []string{"region", "sector", "GWP100 [kg CO2-eq/unit output]"}, records[0])
	assert.Len(t, records, 1+len(multipliers.Sectors))

	seen := make(map[exiobasegwp.Sector]bool)
	for i, record := range records[1:] {
		assert.Equal(t, multipliers.Sectors[i].Region, record[0])
		assert.Equal(t, multipliers.Sectors[i].Name, record[1])
		seen[exiobasegwp.Sector{Region: record[0], Name: record[1]}] = true
	}
	assert.Len(t, seen, len(multipliers.Sectors))
}

func TestExport(t *testing.T) {
	multipliers := toyMultipliers(t)
	path := filepath.Join(t.TempDir(), "exiobase_gwp_factors.csv")

	assert.NoError(t, multipliers.Export(path))

	raw, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "region,sector,GWP100 [kg CO2-eq/unit output]\n")
}

func TestExportUnwritablePath(t *testing.T) {
	multipliers := toyMultipliers(t)
	path := filepath.Join(t.TempDir(), "does", "not", "exist.csv")

	assert.Error(t, multipliers.Export(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
