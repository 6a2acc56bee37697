// Package engine is the reactive chart-state core: it derives filtered views
// from the panel dataset, turns them into declarative chart specs, translates
// brush selections back into country filters, and drives the year animation.
// One session owns one FilterState; nothing in here is shared across sessions.
package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/andareed/worldviz/panel"
)

// FilterState is the snapshot of every user-facing input that affects a
// recompute. Handlers copy and adjust it; nothing downstream mutates it.
type FilterState struct {
	XIndicator string
	YIndicator string
	XLog       bool
	YLog       bool
	Year       int

	// SelectedCountries is kept sorted and deduplicated (see SetCountries)
	// so that equal memberships produce equal cache keys. Empty = all.
	SelectedCountries []string
}

// Population is the fixed size channel of the bubble chart.
const Population = "Population, total"

// DefaultFilter mirrors the reference defaults: 6th and 10th indicator on the
// axes, log x, most recent year capped at 2015.
func DefaultFilter(ds *panel.Dataset) FilterState {
	f := FilterState{XLog: true, Year: 2015}
	if len(ds.Indicators) > 5 {
		f.XIndicator = ds.Indicators[5]
	} else if len(ds.Indicators) > 0 {
		f.XIndicator = ds.Indicators[0]
	}
	if len(ds.Indicators) > 9 {
		f.YIndicator = ds.Indicators[9]
	} else {
		f.YIndicator = f.XIndicator
	}
	if f.Year > ds.MaxYear {
		f.Year = ds.MaxYear
	}
	if f.Year < ds.MinYear {
		f.Year = ds.MinYear
	}
	return f
}

// SetCountries replaces the country filter, normalizing to a sorted,
// deduplicated slice.
func (f *FilterState) SetCountries(names []string) {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	f.SelectedCountries = out
}

// CountrySet returns the filter membership as a lookup set.
func (f FilterState) CountrySet() map[string]bool {
	set := make(map[string]bool, len(f.SelectedCountries))
	for _, c := range f.SelectedCountries {
		set[c] = true
	}
	return set
}

// Validate checks the state against the dataset's invariants.
func (f FilterState) Validate(ds *panel.Dataset) error {
	if !ds.HasIndicator(f.XIndicator) {
		return &InvalidIndicatorError{Indicator: f.XIndicator}
	}
	if !ds.HasIndicator(f.YIndicator) {
		return &InvalidIndicatorError{Indicator: f.YIndicator}
	}
	if f.Year < ds.MinYear || f.Year > ds.MaxYear {
		return fmt.Errorf("year %d: %w [%d, %d]", f.Year, ErrYearOutOfRange, ds.MinYear, ds.MaxYear)
	}
	for _, c := range f.SelectedCountries {
		if !ds.HasCountry(c) {
			return fmt.Errorf("unknown country %q", c)
		}
	}
	return nil
}

// Key is the deterministic cache-key fragment for this state. Two states with
// the same visible inputs always key the same.
func (f FilterState) Key() string {
	var b strings.Builder
	b.WriteString(f.XIndicator)
	b.WriteByte('|')
	b.WriteString(f.YIndicator)
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(f.XLog))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(f.YLog))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(f.Year))
	b.WriteByte('|')
	b.WriteString(strings.Join(f.SelectedCountries, ","))
	return b.String()
}
