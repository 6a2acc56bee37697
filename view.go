package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/worldviz/engine"
	"github.com/andareed/worldviz/logging"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	contentW := m.terminalWidth - 6
	if contentW < 40 {
		contentW = 40
	}

	parts := []string{m.headerView()}

	chartH := m.terminalHeight - 14
	if m.showTable {
		chartH -= tableMaxRows + 3
	}
	if m.scatterSpec != nil {
		chartH = chartH/2 - 2
	}
	if chartH < 8 {
		chartH = 8
	}

	parts = append(parts, renderBubble(
		m.bubbleSpec, m.view,
		m.brushed, m.brushActive,
		m.cursor, m.currentMode == modeBrush,
		contentW-4, chartH,
	))

	if m.scatterSpec != nil {
		parts = append(parts, titleStyle.Render("Connected scatterplot: "+strings.Join(m.scatterCountries, ", ")))
		parts = append(parts, renderScatter(m.scatterSpec, m.scatterRows, contentW-4, chartH))
	}

	if m.showTable {
		parts = append(parts, m.tableView())
	}

	if m.currentMode == modeCountries {
		parts = append(parts, inputStyle.Render(m.countryInput.View()))
	}

	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) headerView() string {
	year := fmt.Sprintf("Year: %d", m.filter.Year)
	if m.yearLabel != "" && m.anim.Status() == engine.AnimRunning {
		year = m.yearLabel + " ▶"
	}

	axes := fmt.Sprintf("x: %s%s   y: %s%s",
		m.filter.XIndicator, logSuffix(m.filter.XLog),
		m.filter.YIndicator, logSuffix(m.filter.YLog),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("World Development Indicators — "+m.dataName),
		sidebarStyle.Render(axes),
		sidebarStyle.Render(year+"  "+m.countryFilterLabel()),
	)
}

func logSuffix(log bool) string {
	if log {
		return dimStyle.Render(" [log]")
	}
	return ""
}

func (m *model) countryFilterLabel() string {
	if len(m.filter.SelectedCountries) == 0 {
		return dimStyle.Render("countries: all")
	}
	return dimStyle.Render("countries: " + strings.Join(m.filter.SelectedCountries, ", "))
}

func (m *model) footerView(width int) string {
	logging.Debugf("footerView mode=%d", m.currentMode)
	styles := DefaultFooterStyles()

	st := FooterState{
		Mode:      m.currentMode,
		FileName:  m.dataName,
		Rows:      len(m.view),
		Brushed:   len(m.brushed),
		Animation: m.anim.Status().String(),
		Legend:    "(q quit · x/y axes · X/Y log · [/] year · c countries · b brush · a/s animate/stop · t table · w snapshot)",
	}
	if m.noticeMsg != "" {
		st.StatusMessage = m.noticeMsg
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d specs=%d key=%s",
			m.terminalWidth, m.terminalHeight, m.cache.Len(), m.filter.Key())
	}

	return RenderFooter(width, st, styles)
}
