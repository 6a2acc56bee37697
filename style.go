package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	sidebarFGColor   = "#c0c0c0"
	sidebarDimColor  = "#707070"
	axisLabelColor   = "#9a9a9a"
	dimmedMarkColor  = "#6c6c6c" // marks outside an active brush
	cursorBGColor    = "#f5c542"
	cursorFGColor    = "#000000"
)

var (
	appstyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)

	sidebarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(sidebarFGColor))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(sidebarDimColor))
	axisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(axisLabelColor))

	chartStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	tableArea  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)

	inputStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color(cursorBGColor)).Foreground(lipgloss.Color(cursorFGColor))
)

// regionPalette colors bubble marks by region. Unknown regions fall through
// to the default.
var regionPalette = map[string]lipgloss.Color{
	"East Asia & Pacific":        lipgloss.Color("#58a6ff"),
	"Europe & Central Asia":      lipgloss.Color("#7ee787"),
	"Latin America & Caribbean":  lipgloss.Color("#ffa657"),
	"Middle East & North Africa": lipgloss.Color("#d2a8ff"),
	"North America":              lipgloss.Color("#f85149"),
	"South Asia":                 lipgloss.Color("#ff7b72"),
	"Sub-Saharan Africa":         lipgloss.Color("#d29922"),
}

var defaultRegionColor = lipgloss.Color("#8b949e")

// countryPalette cycles per-country colors on the connected scatterplot.
var countryPalette = []lipgloss.Color{
	lipgloss.Color("#58a6ff"),
	lipgloss.Color("#7ee787"),
	lipgloss.Color("#ffa657"),
	lipgloss.Color("#d2a8ff"),
	lipgloss.Color("#f85149"),
	lipgloss.Color("#ff7b72"),
	lipgloss.Color("#d29922"),
	lipgloss.Color("#a5d6ff"),
}

func regionColor(region string) lipgloss.Color {
	if c, ok := regionPalette[region]; ok {
		return c
	}
	return defaultRegionColor
}

// Raw SGR helpers for per-cell chart coloring. Styling every grid cell
// through lipgloss.Render is far too slow; emitting sequences directly is
// cheap and resets cleanly per cell.
func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func resetSeq() string {
	return termenv.CSI + "0m"
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
