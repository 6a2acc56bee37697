package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type FooterState struct {
	Mode mode

	FileName string

	Rows      int
	Brushed   int
	Animation string

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	FileNameFG lipgloss.Color
	TextFG     lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		FileNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func modeLabel(m mode) string {
	switch m {
	case modeCountries:
		return "[COUNTRIES]"
	case modeBrush:
		return "[BRUSH]"
	default:
		return "[VIEW]"
	}
}

// RenderFooter renders the 2-line footer: a control bar with the mode pill
// and counters, then a status/legend line.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}

	bar := lipgloss.NewStyle().Background(styles.BarBG)
	pill := lipgloss.NewStyle().Background(styles.ModePillBG).Foreground(styles.ModePillFG).Padding(0, 1)
	file := bar.Foreground(styles.FileNameFG)
	text := bar.Foreground(styles.TextFG)

	right := fmt.Sprintf(" Rows %d", st.Rows)
	if st.Brushed > 0 {
		right += fmt.Sprintf(" · Brushed %d", st.Brushed)
	}
	if st.Animation != "" && st.Animation != "idle" {
		right += " · anim " + st.Animation
	}

	left := pill.Render(modeLabel(st.Mode)) + file.Render(" "+st.FileName)
	gap := width - lipgloss.Width(left) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	line1 := left + bar.Render(padRight("", gap)) + text.Render(right)

	status := st.StatusMessage
	if status == "" {
		status = st.Legend
	}
	line2 := lipgloss.NewStyle().Foreground(styles.LegendFG).Render(truncate(status, width))

	return line1 + "\n" + line2
}

func padRight(s string, w int) string {
	for runewidth.StringWidth(s) < w {
		s += " "
	}
	return s
}
