// Package scenariostore loads the precomputed buffer scenario table from CSV.
// The table is produced by an offline analysis job; it is read once at
// startup and cached for the process lifetime.
package scenariostore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/getaroundlab/pricing/core/scenario"
)

// required CSV columns; revenue_blocked_ratio is optional.
var requiredColumns = []string{
	"scope",
	"buffer_hours",
	"blocked_ratio",
	"conflicts_resolved_ratio",
	"conflict_ratio",
	"n_rentals",
}

// Find resolves the scenario file over the fixed search path:
// <dir>/processed/<file>, <dir>/<file>, then <file> relative to the working
// directory.
func Find(dir, file string) (string, error) {
	candidates := []string{
		filepath.Join(dir, "processed", file),
		filepath.Join(dir, file),
		file,
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("scenario file %q not found under %q or the working directory", file, dir)
}

// Load resolves and parses the scenario table. It returns the table together
// with the path it was read from.
func Load(dir, file string) (*scenario.Table, string, error) {
	path, err := Find(dir, file)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	table, err := LoadReader(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return table, path, nil
}

// LoadReader parses scenario rows from CSV data.
func LoadReader(r io.Reader) (*scenario.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	revenueIdx, hasRevenue := cols["revenue_blocked_ratio"]

	var rows []scenario.Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row := scenario.Row{Scope: strings.TrimSpace(record[cols["scope"]])}
		if row.Scope == "" {
			return nil, fmt.Errorf("line %d: empty scope", line)
		}
		if row.BufferHours, err = parseInt(record[cols["buffer_hours"]]); err != nil {
			return nil, fmt.Errorf("line %d: buffer_hours: %w", line, err)
		}
		if row.BufferHours < 0 {
			return nil, fmt.Errorf("line %d: negative buffer_hours", line)
		}
		if row.BlockedRatio, err = parseRatio(record[cols["blocked_ratio"]]); err != nil {
			return nil, fmt.Errorf("line %d: blocked_ratio: %w", line, err)
		}
		if row.ConflictsResolvedRatio, err = parseRatio(record[cols["conflicts_resolved_ratio"]]); err != nil {
			return nil, fmt.Errorf("line %d: conflicts_resolved_ratio: %w", line, err)
		}
		if row.ConflictRatio, err = parseRatio(record[cols["conflict_ratio"]]); err != nil {
			return nil, fmt.Errorf("line %d: conflict_ratio: %w", line, err)
		}
		if row.NRentals, err = parseInt(record[cols["n_rentals"]]); err != nil {
			return nil, fmt.Errorf("line %d: n_rentals: %w", line, err)
		}
		if hasRevenue {
			cell := strings.TrimSpace(record[revenueIdx])
			// Empty cells and pandas NaN markers mean the revenue join was
			// not available for this scope.
			if cell != "" && !strings.EqualFold(cell, "nan") {
				v, err := parseRatio(cell)
				if err != nil {
					return nil, fmt.Errorf("line %d: revenue_blocked_ratio: %w", line, err)
				}
				row.RevenueBlockedRatio = &v
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no scenario rows")
	}
	return scenario.NewTable(rows), nil
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseRatio(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("ratio %v outside [0,1]", v)
	}
	return v, nil
}
