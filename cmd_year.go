package main

import (
	"github.com/andareed/worldviz/logging"
)

// scrubYear moves the year slider by delta, clamped to the dataset range.
// A direct scrub is the one event that persists the year into the session
// store, and that persisted value is what Stop later restores.
func (m *model) scrubYear(delta int) {
	year := m.filter.Year + delta
	if year < m.ds.MinYear {
		year = m.ds.MinYear
	}
	if year > m.ds.MaxYear {
		year = m.ds.MaxYear
	}
	if year == m.filter.Year {
		return
	}
	m.filter.Year = year
	m.store.SetYear(m.sessionID, year)
	logging.Debugf("year scrub: %d", year)
	m.recompute()
}
