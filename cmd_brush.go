package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/worldviz/engine"
	"github.com/andareed/worldviz/logging"
)

// The brush walks the points of the bubble chart with a cursor; space
// gathers points, enter commits them as a selection event. The committed
// event carries x/y/size constraints per point, the same payload shape a
// graphical renderer would report for a multi-encoding brush.

func (m *model) enterBrushMode() (tea.Model, tea.Cmd) {
	if len(m.view) == 0 {
		return m, m.startNotice("Nothing to brush: view is empty", "warn", noticeDuration)
	}
	m.currentMode = modeBrush
	m.cursor = 0
	m.brushed = make(map[int]bool)
	m.brushActive = true
	logging.Debug("entering mode: brush")
	return m, nil
}

func (m *model) handleBrushKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l", "down", "j":
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}
	case " ":
		if m.brushed[m.cursor] {
			delete(m.brushed, m.cursor)
		} else {
			m.brushed[m.cursor] = true
		}
	case "enter":
		return m.commitBrush()
	case "esc":
		m.currentMode = modeView
		m.brushed = make(map[int]bool)
		m.brushActive = false
	}
	return m, nil
}

// commitBrush translates the gathered points into a country set and feeds it
// to the connected scatterplot. One-way propagation: the bubble chart's own
// filter state is untouched.
func (m *model) commitBrush() (tea.Model, tea.Cmd) {
	ev := m.selectionEvent()
	m.currentMode = modeView

	if ev.Empty() {
		// no constraints: leave the previous selection alone
		m.brushed = make(map[int]bool)
		m.brushActive = false
		return m, m.startNotice("Empty brush", "info", noticeDuration)
	}

	countries := engine.Translate(ev, m.view, m.filter)
	m.brushActive = false
	if len(countries) == 0 {
		return m, m.startNotice("No match for brush", "warn", noticeDuration)
	}

	m.scatterCountries = countries
	m.recomputeScatter()
	logging.Infof("brush matched %d countries", len(countries))
	return m, m.startNotice("Match found!", "success", noticeDuration)
}

// selectionEvent builds the renderer-shaped payload for the gathered points.
func (m *model) selectionEvent() engine.SelectionEvent {
	if len(m.brushed) == 0 {
		return engine.SelectionEvent{}
	}
	multi := &engine.MultiSelection{}
	for idx := range m.brushed {
		if idx < 0 || idx >= len(m.view) {
			continue
		}
		r := m.view[idx]
		constraint := make(map[string]float64, 3)
		if v, ok := r.Value(m.filter.XIndicator); ok {
			constraint[m.filter.XIndicator] = v
		}
		if v, ok := r.Value(m.filter.YIndicator); ok {
			constraint[m.filter.YIndicator] = v
		}
		if v, ok := r.Value(engine.Population); ok {
			constraint[engine.Population] = v
		}
		multi.Or = append(multi.Or, constraint)
	}
	return engine.SelectionEvent{Multi: multi}
}
