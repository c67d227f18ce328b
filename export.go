package exiobasegwp

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// WriteCSV serializes the multipliers with a two-level (region, sector) key
// and a single value column.
func (m *Multipliers) WriteCSV(w io.Writer) error {
	csvw := csv.NewWriter(w)

	if err := csvw.Write([]string{"region", "sector", "GWP100 [kg CO2-eq/unit output]"}); err != nil {
		return err
	}

	for i, sector := range m.Sectors {
		record := []string{sector.Region, sector.Name, strconv.FormatFloat(m.Values[i], 'g', -1, 64)}
		if err := csvw.Write(record); err != nil {
			return err
		}
	}

	csvw.Flush()
	return csvw.Error()
}

// Export writes the multipliers to path, overwriting any previous file.
// Filesystem errors are surfaced unmodified, there is no retry.
func (m *Multipliers) Export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := m.WriteCSV(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	slog.Info("saved gwp100 multipliers", "path", path, "rows", len(m.Values))
	return nil
}
