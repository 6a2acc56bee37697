package panel

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Reserved (non-indicator) column names, matched case-insensitively.
const (
	colCountry = "country"
	colRegion  = "region"
	colYear    = "year"
	colMapID   = "id"
)

// LoadCSV reads a panel CSV into an immutable Dataset.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	return FromRecords(records)
}

// FromRecords builds a Dataset from already-parsed CSV records, header first.
// The header must carry Country, Region and Year columns; every other column
// except an optional map "id" column is treated as a numeric indicator.
// Blank or non-numeric indicator cells become missing observations.
func FromRecords(records [][]string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV has no rows")
	}

	header := records[0]
	countryIdx, regionIdx, yearIdx, mapIDIdx := -1, -1, -1, -1
	type indCol struct {
		name string
		idx  int
	}
	var indCols []indCol

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colCountry:
			countryIdx = i
		case colRegion:
			regionIdx = i
		case colYear:
			yearIdx = i
		case colMapID:
			mapIDIdx = i
		default:
			indCols = append(indCols, indCol{name: strings.TrimSpace(name), idx: i})
		}
	}
	if countryIdx < 0 || yearIdx < 0 {
		return nil, fmt.Errorf("CSV header is missing Country or Year column")
	}
	if len(indCols) == 0 {
		return nil, fmt.Errorf("CSV has no indicator columns")
	}

	rows := make([]Row, 0, len(records)-1)
	for lineNo, rec := range records[1:] {
		if countryIdx >= len(rec) || yearIdx >= len(rec) {
			continue // short row, skip
		}
		year, err := strconv.Atoi(strings.TrimSpace(rec[yearIdx]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad year %q: %w", lineNo+2, rec[yearIdx], err)
		}

		row := Row{
			Country: strings.TrimSpace(rec[countryIdx]),
			Year:    year,
			Values:  make(map[string]float64, len(indCols)),
		}
		if regionIdx >= 0 && regionIdx < len(rec) {
			row.Region = strings.TrimSpace(rec[regionIdx])
		}
		if mapIDIdx >= 0 && mapIDIdx < len(rec) {
			row.MapID = strings.TrimSpace(rec[mapIDIdx])
		}
		for _, c := range indCols {
			if c.idx >= len(rec) {
				continue
			}
			cell := strings.TrimSpace(rec[c.idx])
			if cell == "" {
				continue // null observation
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				row.Values[c.name] = v
			}
		}
		rows = append(rows, row)
	}

	indicators := make([]string, len(indCols))
	for i, c := range indCols {
		indicators[i] = c.name
	}
	return New(rows, indicators), nil
}
