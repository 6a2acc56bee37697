package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/worldviz/logging"
)

func (m *model) handleCountriesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "enter":
		names := strings.Split(m.countryInput.Value(), ",")
		matched := m.ds.MatchCountries(names)
		m.filter.SetCountries(matched)
		m.currentMode = modeView
		m.countryInput.Blur()
		m.recompute()
		logging.Debugf("country filter: %v", matched)
		if len(matched) == 0 && strings.TrimSpace(m.countryInput.Value()) != "" {
			return m, m.startNotice("No matching countries", "warn", noticeDuration)
		}
		return m, nil
	case "esc":
		m.currentMode = modeView
		m.countryInput.Blur()
		return m, nil
	default:
		m.countryInput, cmd = m.countryInput.Update(msg)
		return m, cmd
	}
}
