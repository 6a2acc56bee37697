package main

import (
	"github.com/andareed/worldviz/logging"
)

// cycleIndicator advances one axis to the next indicator column, wrapping at
// the end of the discovered list.
func (m *model) cycleIndicator(idx *int, field *string) {
	if len(m.ds.Indicators) == 0 {
		return
	}
	*idx = (*idx + 1) % len(m.ds.Indicators)
	*field = m.ds.Indicators[*idx]
	logging.Debugf("axis change: %s", *field)
	m.recompute()
}
