// Package exiobase parses a pre-extracted EXIOBASE 3 dataset directory into
// in-memory input-output tables.
//
// The expected layout is the one shipped with the IOT_* releases: a
// tab-separated technology matrix A.txt at the dataset root and the satellite
// intensity matrix under satellite/S.txt. Both tables carry the same two
// header lines listing the region codes then the sector names of every
// column. A keys its data lines by their own (region, sector) cells, S by the
// flow name.
package exiobase

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	exiobasegwp "github.com/afk-codze/exiobase3-gwp-calculation"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Metadata describes the dataset release, read from the optional
// metadata.json shipped alongside the tables.
type Metadata struct {
	Name    string `mapstructure:"name"`
	System  string `mapstructure:"system"`
	Version string `mapstructure:"version"`
	Year    string `mapstructure:"year"`
}

// Parse loads the technology and satellite matrices from dir. Both files are
// read concurrently. Any unreadable or malformed file aborts the load; the
// underlying error is surfaced unmodified.
func Parse(dir string) (*exiobasegwp.IOSystem, error) {
	if meta, err := ReadMetadata(dir); err == nil {
		slog.Info("parsing exiobase dataset", "dir", dir, "system", meta.System, "version", meta.Version, "year", meta.Year)
	} else {
		slog.Info("parsing exiobase dataset", "dir", dir)
	}

	var a, s *table

	errg := new(errgroup.Group)
	errg.Go(func() (err error) {
		a, err = readTable(filepath.Join(dir, "A.txt"), 2)
		return err
	})
	errg.Go(func() (err error) {
		s, err = readTable(filepath.Join(dir, "satellite", "S.txt"), 1)
		return err
	})
	if err := errg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dataset in %s: %w", dir, err)
	}

	n := len(a.columns)
	if len(a.index) != n {
		return nil, fmt.Errorf("technology matrix is not square: %d rows for %d columns", len(a.index), n)
	}
	if len(s.columns) != n {
		return nil, fmt.Errorf("satellite matrix has %d columns, technology matrix has %d", len(s.columns), n)
	}
	for j, column := range s.columns {
		if column != a.columns[j] {
			return nil, fmt.Errorf("satellite column %d is %s/%s, technology matrix has %s/%s",
				j, column.Region, column.Name, a.columns[j].Region, a.columns[j].Name)
		}
	}

	flows := make([]string, len(s.index))
	for i, cells := range s.index {
		flows[i] = cells[0]
	}

	slog.Info("dataset parsed", "sectors", n, "flows", len(flows))

	return &exiobasegwp.IOSystem{
		Sectors: a.columns,
		Flows:   flows,
		A:       mat.NewDense(n, n, a.data),
		S:       mat.NewDense(len(flows), n, s.data),
	}, nil
}

// ReadMetadata decodes the optional metadata.json at the dataset root.
func ReadMetadata(dir string) (*Metadata, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode metadata.json: %w", err)
	}

	meta := new(Metadata)
	if err := mapstructure.WeakDecode(fields, meta); err != nil {
		return nil, fmt.Errorf("failed to decode metadata.json: %w", err)
	}

	return meta, nil
}

// table is one tab-separated matrix file: column labels from the two header
// lines, the leading index cells of every data line, and the values in row
// major order.
type table struct {
	columns []exiobasegwp.Sector
	index   [][]string
	data    []float64
}

func readTable(path string, indexCols int) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	base := filepath.Base(path)

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	regions, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read region header: %w", base, err)
	}
	sectors, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read sector header: %w", base, err)
	}
	if len(regions) != len(sectors) {
		return nil, fmt.Errorf("%s: region header has %d fields, sector header has %d", base, len(regions), len(sectors))
	}
	if len(regions) <= indexCols {
		return nil, fmt.Errorf("%s: no data columns", base)
	}

	t := new(table)
	for j := indexCols; j < len(regions); j++ {
		t.columns = append(t.columns, exiobasegwp.Sector{Region: regions[j], Name: sectors[j]})
	}

	fields := indexCols + len(t.columns)
	for line := 3; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", base, line, err)
		}
		if len(record) != fields {
			return nil, fmt.Errorf("%s:%d: expected %d fields, got %d", base, line, fields, len(record))
		}

		t.index = append(t.index, record[:indexCols])
		for _, cell := range record[indexCols:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", base, line, err)
			}
			t.data = append(t.data, v)
		}
	}

	if len(t.index) == 0 {
		return nil, fmt.Errorf("%s: no data rows", base)
	}

	return t, nil
}
