// Package demo builds a small deterministic toy economy in the EXIOBASE 3
// layout. It backs the -demo.enabled mode and the parser tests.
package demo

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	exiobasegwp "github.com/afk-codze/exiobase3-gwp-calculation"
	"github.com/afk-codze/exiobase3-gwp-calculation/internal/must"
	"gonum.org/v1/gonum/mat"
)

var demoRegions = []string{"AT", "BE", "DE", "FR", "IT", "NL", "PL", "ES"}

var demoSectors = []string{
	"Cultivation of paddy rice",
	"Mining of coal and lignite",
	"Manufacture of basic iron and steel",
	"Production of electricity by coal",
	"Construction",
	"Air transport services",
}

var demoFlows = []string{
	"CO2 - combustion - air",
	"CH4 - combustion - air",
	"N2O - combustion - air",
	"SF6 - air",
	"NOx - combustion - air",
}

// Generator produces a fictive input-output system with the given number of
// regions and sectors per region. The same dimensions always yield the same
// numbers.
type Generator struct {
	regions int
	sectors int
}

func NewGenerator(regions, sectors int) *Generator {
	must.Assert(regions > 0 && regions <= len(demoRegions), "unsupported demo region count")
	must.Assert(sectors > 0 && sectors <= len(demoSectors), "unsupported demo sector count")

	return &Generator{regions: regions, sectors: sectors}
}

// IOSystem generates the toy economy. Technology coefficients are kept small
// enough that every column sums below one, so (I - A) stays invertible.
func (g *Generator) IOSystem() *exiobasegwp.IOSystem {
	rnd := rand.New(rand.NewPCG(2922, uint64(g.regions*len(demoSectors)+g.sectors)))

	n := g.regions * g.sectors
	columns := make([]exiobasegwp.Sector, 0, n)
	for r := 0; r < g.regions; r++ {
		for s := 0; s < g.sectors; s++ {
			columns = append(columns, exiobasegwp.Sector{Region: demoRegions[r], Name: demoSectors[s]})
		}
	}

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, 0.8*rnd.Float64()/float64(n))
		}
	}

	s := mat.NewDense(len(demoFlows), n, nil)
	for i := range demoFlows {
		for j := 0; j < n; j++ {
			s.Set(i, j, rnd.Float64())
		}
	}

	return &exiobasegwp.IOSystem{
		Sectors: columns,
		Flows:   demoFlows,
		A:       a,
		S:       s,
	}
}

// WriteDataset materializes the toy economy under dir in the on-disk layout
// the parser expects: A.txt, satellite/S.txt and metadata.json.
func (g *Generator) WriteDataset(dir string) error {
	sys := g.IOSystem()

	index := make([][]string, len(sys.Sectors))
	for i, sector := range sys.Sectors {
		index[i] = []string{sector.Region, sector.Name}
	}
	if err := writeTable(filepath.Join(dir, "A.txt"), sys.Sectors, index, sys.A); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, "satellite"), 0o755); err != nil {
		return err
	}
	index = make([][]string, len(sys.Flows))
	for i, flow := range sys.Flows {
		index[i] = []string{flow}
	}
	if err := writeTable(filepath.Join(dir, "satellite", "S.txt"), sys.Sectors, index, sys.S); err != nil {
		return err
	}

	metadata := fmt.Sprintf("{%q: %q, %q: %q, %q: %q, %q: 2922}\n",
		"name", "demo", "system", "pxp", "version", "v0", "year")
	return os.WriteFile(filepath.Join(dir, "metadata.json"), []byte(metadata), 0o644)
}

func writeTable(path string, columns []exiobasegwp.Sector, index [][]string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	w.Comma = '\t'

	filler := make([]string, len(index[0]))
	regions := append([]string{}, filler...)
	sectors := append([]string{}, filler...)
	for _, column := range columns {
		regions = append(regions, column.Region)
		sectors = append(sectors, column.Name)
	}
	records := [][]string{regions, sectors}
	for i, cells := range index {
		record := append([]string{}, cells...)
		for j := 0; j < len(columns); j++ {
			record = append(record, strconv.FormatFloat(m.At(i, j), 'g', -1, 64))
		}
		records = append(records, record)
	}

	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
