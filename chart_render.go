package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/worldviz/engine"
	"github.com/andareed/worldviz/panel"
)

// The renderer is a ChartSpec consumer: it reads fields and scales off the
// spec and draws the rows it was handed into a character grid. It never
// reaches back into the engine or the filter state.

// axis maps field values onto one grid dimension.
type axis struct {
	min, max float64
	log      bool
}

// axisFromScale builds an axis from a scale spec, deriving the domain from
// the given values when the spec carries none (per-frame policy).
func axisFromScale(s *engine.Scale, values []float64) axis {
	a := axis{}
	if s != nil && s.Type == engine.ScaleLog {
		a.log = true
	}

	if s != nil && len(s.Domain) == 2 {
		a.min, a.max = s.Domain[0], s.Domain[1]
	} else if len(values) > 0 {
		a.min, a.max = values[0], values[0]
		for _, v := range values[1:] {
			if v < a.min {
				a.min = v
			}
			if v > a.max {
				a.max = v
			}
		}
	}

	if a.log {
		// log axes need a positive domain; fall back to the smallest
		// positive value, or to linear when there is none
		if a.min <= 0 {
			smallest := math.Inf(1)
			for _, v := range values {
				if v > 0 && v < smallest {
					smallest = v
				}
			}
			if math.IsInf(smallest, 1) {
				a.log = false
			} else {
				a.min = smallest
			}
		}
	}
	return a
}

// frac maps a value into [0, 1] along the axis.
func (a axis) frac(v float64) float64 {
	lo, hi := a.min, a.max
	if a.log {
		if v <= 0 {
			return 0
		}
		v, lo, hi = math.Log(v), math.Log(lo), math.Log(hi)
	}
	if hi <= lo {
		return 0.5
	}
	f := (v - lo) / (hi - lo)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return f
}

func (a axis) label() string {
	scale := ""
	if a.log {
		scale = " (log)"
	}
	return fmt.Sprintf("%s – %s%s", fmtAxis(a.min), fmtAxis(a.max), scale)
}

func fmtAxis(v float64) string {
	return fmt.Sprintf("%.3g", v)
}

// grid is a character canvas with (0,0) bottom-left in data space.
type grid struct {
	cells [][]string
	w, h  int
}

func newGrid(w, h int) *grid {
	cells := make([][]string, h)
	for i := range cells {
		cells[i] = make([]string, w)
	}
	return &grid{cells: cells, w: w, h: h}
}

func (g *grid) set(x, y int, s string) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	// screen row 0 is the top
	g.cells[g.h-1-y][x] = s
}

func (g *grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == "" {
				b.WriteByte(' ')
			} else {
				b.WriteString(cell)
			}
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// sizeMarkers bucket the size channel into four glyphs.
var sizeMarkers = []string{".", "o", "O", "@"}

func sizeMarker(f float64) string {
	idx := int(f * float64(len(sizeMarkers)))
	if idx >= len(sizeMarkers) {
		idx = len(sizeMarkers) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sizeMarkers[idx]
}

// renderBubble draws a bubble spec. brushed/cursor mirror what a graphical
// renderer does with the spec's selection condition: marks outside an active
// brush take the condition's neutral fallback color.
func renderBubble(spec *engine.ChartSpec, rows []panel.Row, brushed map[int]bool, brushActive bool, cursor int, showCursor bool, w, h int) string {
	if spec == nil || len(rows) == 0 {
		return dimStyle.Render("(empty chart)")
	}

	xField := spec.Encodings[engine.ChanX].Field
	yField := spec.Encodings[engine.ChanY].Field
	sizeField := spec.Encodings[engine.ChanSize].Field
	colorField := spec.Encodings[engine.ChanColor].Field

	xAxis := axisFromScale(spec.Encodings[engine.ChanX].Scale, fieldValues(rows, xField))
	yAxis := axisFromScale(spec.Encodings[engine.ChanY].Scale, fieldValues(rows, yField))
	sizeAxis := axisFromScale(spec.Encodings[engine.ChanSize].Scale, fieldValues(rows, sizeField))

	g := newGrid(w, h)
	for i, r := range rows {
		xv, _ := r.Value(xField)
		yv, _ := r.Value(yField)
		x := int(math.Round(xAxis.frac(xv) * float64(w-1)))
		y := int(math.Round(yAxis.frac(yv) * float64(h-1)))

		marker := "o"
		if sv, ok := r.Value(sizeField); ok {
			marker = sizeMarker(sizeAxis.frac(sv))
		}

		color := regionColor(rowField(r, colorField))
		if brushActive && !brushed[i] {
			color = lipgloss.Color(dimmedMarkColor)
		}

		cell := fgSeq(color) + marker + resetSeq()
		if showCursor && i == cursor {
			cell = cursorStyle.Render(marker)
		}
		g.set(x, y, cell)
	}

	return framedChart(g, xField+" "+axisStyle.Render(xAxis.label()), yField+" "+axisStyle.Render(yAxis.label()))
}

// renderScatter draws a connected-scatterplot spec: one year-ordered polyline
// per country, colored by country.
func renderScatter(spec *engine.ChartSpec, rows []panel.Row, w, h int) string {
	if spec == nil || len(rows) == 0 {
		return ""
	}

	xField := spec.Encodings[engine.ChanX].Field
	yField := spec.Encodings[engine.ChanY].Field

	xAxis := axisFromScale(spec.Encodings[engine.ChanX].Scale, fieldValues(rows, xField))
	yAxis := axisFromScale(spec.Encodings[engine.ChanY].Scale, fieldValues(rows, yField))

	byCountry := make(map[string][]panel.Row)
	for _, r := range rows {
		byCountry[r.Country] = append(byCountry[r.Country], r)
	}
	countries := make([]string, 0, len(byCountry))
	for c := range byCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	g := newGrid(w, h)
	for ci, country := range countries {
		series := byCountry[country]
		// order channel: connect points year by year
		sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })

		color := countryPalette[ci%len(countryPalette)]
		prevX, prevY := -1, -1
		for _, r := range series {
			xv, _ := r.Value(xField)
			yv, _ := r.Value(yField)
			x := int(math.Round(xAxis.frac(xv) * float64(w-1)))
			y := int(math.Round(yAxis.frac(yv) * float64(h-1)))
			if prevX >= 0 {
				drawSegment(g, prevX, prevY, x, y, fgSeq(color)+"·"+resetSeq())
			}
			g.set(x, y, fgSeq(color)+"o"+resetSeq())
			prevX, prevY = x, y
		}
	}

	legend := make([]string, 0, len(countries))
	for ci, c := range countries {
		legend = append(legend, lipgloss.NewStyle().Foreground(countryPalette[ci%len(countryPalette)]).Render("o "+c))
	}

	chart := framedChart(g, xField+" "+axisStyle.Render(xAxis.label()), yField+" "+axisStyle.Render(yAxis.label()))
	return chart + "\n" + strings.Join(legend, "  ")
}

// drawSegment rasterizes a line between two grid points (Bresenham).
func drawSegment(g *grid, x0, y0, x1, y1 int, cell string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			break
		}
		if !(x == x0 && y == y0) {
			g.set(x, y, cell)
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func framedChart(g *grid, xLabel, yLabel string) string {
	body := chartStyle.Render(g.String())
	return lipgloss.JoinVertical(lipgloss.Left,
		axisStyle.Render("y: ")+yLabel,
		body,
		axisStyle.Render("x: ")+xLabel,
	)
}

func fieldValues(rows []panel.Row, field string) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		if v, ok := r.Value(field); ok {
			out = append(out, v)
		}
	}
	return out
}

// rowField resolves a nominal field off a row. Only the fields the two chart
// shapes encode are needed here.
func rowField(r panel.Row, field string) string {
	switch field {
	case "Region":
		return r.Region
	case "Country":
		return r.Country
	default:
		return ""
	}
}
