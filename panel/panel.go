// Package panel holds the immutable panel dataset the rest of the app reads:
// one row per (country, year) with a sparse map of indicator observations.
// The dataset is loaded once at startup and never mutated afterwards.
package panel

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// Row is a single (country, year) observation. A missing key in Values means
// the indicator was not observed for that country/year.
type Row struct {
	Country string
	Region  string
	Year    int
	MapID   string // numeric world-map feature id, empty when the source has none
	Values  map[string]float64
}

// Value returns the observation for an indicator and whether it exists.
func (r Row) Value(indicator string) (float64, bool) {
	v, ok := r.Values[indicator]
	return v, ok
}

// Has reports whether the indicator was observed on this row.
func (r Row) Has(indicator string) bool {
	_, ok := r.Values[indicator]
	return ok
}

// Dataset is the loaded panel. Rows and Indicators are read-only after New.
type Dataset struct {
	Rows       []Row
	Indicators []string // column order from the source header
	MinYear    int
	MaxYear    int
	Version    uint64 // content hash, used as the cache identity of this load

	countries  map[string]bool
	indicators map[string]bool
}

// New builds a Dataset from rows and the discovered indicator list, computing
// the country set, the year bounds and the content hash.
func New(rows []Row, indicators []string) *Dataset {
	d := &Dataset{
		Rows:       rows,
		Indicators: indicators,
		countries:  make(map[string]bool),
		indicators: make(map[string]bool, len(indicators)),
	}
	for _, ind := range indicators {
		d.indicators[ind] = true
	}

	h := fnv.New64a()
	for i, r := range rows {
		if i == 0 || r.Year < d.MinYear {
			d.MinYear = r.Year
		}
		if i == 0 || r.Year > d.MaxYear {
			d.MaxYear = r.Year
		}
		d.countries[r.Country] = true

		h.Write([]byte(r.Country))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(r.Year)))
		h.Write([]byte{0})
		// hash values in indicator order so equal content hashes equal
		for _, ind := range indicators {
			if v, ok := r.Values[ind]; ok {
				h.Write([]byte(strconv.FormatFloat(v, 'g', -1, 64)))
			}
			h.Write([]byte{0})
		}
	}
	d.Version = h.Sum64()
	return d
}

// HasIndicator reports whether name is one of the numeric indicator columns.
func (d *Dataset) HasIndicator(name string) bool {
	return d.indicators[name]
}

// HasCountry reports whether the dataset contains any row for the country.
func (d *Dataset) HasCountry(name string) bool {
	return d.countries[name]
}

// CountryNames returns all countries, sorted.
func (d *Dataset) CountryNames() []string {
	names := make([]string, 0, len(d.countries))
	for c := range d.countries {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}

// MatchCountries resolves a list of user-entered names against the known
// countries, case-insensitively. Unknown names are dropped.
func (d *Dataset) MatchCountries(names []string) []string {
	lower := make(map[string]string, len(d.countries))
	for c := range d.countries {
		lower[strings.ToLower(c)] = c
	}
	var out []string
	for _, n := range names {
		if c, ok := lower[strings.ToLower(strings.TrimSpace(n))]; ok {
			out = append(out, c)
		}
	}
	return out
}

// YearRange returns the first and last year in which the indicator has at
// least one observation. ok is false when it was never observed.
func (d *Dataset) YearRange(indicator string) (first, last int, ok bool) {
	for _, r := range d.Rows {
		if !r.Has(indicator) {
			continue
		}
		if !ok || r.Year < first {
			first = r.Year
		}
		if !ok || r.Year > last {
			last = r.Year
		}
		ok = true
	}
	return first, last, ok
}

// ValueRange returns the global [min, max] of the indicator across every
// country and year. This is what fixed axes during animation are derived from.
func (d *Dataset) ValueRange(indicator string) (min, max float64, ok bool) {
	for _, r := range d.Rows {
		v, has := r.Value(indicator)
		if !has {
			continue
		}
		if !ok || v < min {
			min = v
		}
		if !ok || v > max {
			max = v
		}
		ok = true
	}
	return min, max, ok
}
