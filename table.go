package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// A small data-table drawer over the current filtered view, toggled with
// `t`. Column sizing follows a role/weight scheme: the country column gets
// the space, numeric columns stay narrow.

type ColumnRole int

const (
	RoleNormal ColumnRole = iota
	RolePrimary
	RoleNumeric
)

type ColumnMeta struct {
	Name  string
	Role  ColumnRole
	Width int
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func (m *model) tableColumns() []ColumnMeta {
	return []ColumnMeta{
		{Name: "Country", Role: RolePrimary, Width: 24},
		{Name: "Region", Role: RoleNormal, Width: 22},
		{Name: "Year", Role: RoleNumeric, Width: 6},
		{Name: m.filter.XIndicator, Role: RoleNumeric, Width: 14},
		{Name: m.filter.YIndicator, Role: RoleNumeric, Width: 14},
	}
}

const tableMaxRows = 8

func (m *model) tableView() string {
	cols := m.tableColumns()

	var cells []string
	for _, c := range cols {
		cells = append(cells, cellStyle.Width(c.Width).Render(c.Name))
	}
	header := titleStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	lines := []string{header}
	for i, r := range m.view {
		if i >= tableMaxRows {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("… %d more rows", len(m.view)-tableMaxRows)))
			break
		}
		xv, _ := r.Value(m.filter.XIndicator)
		yv, _ := r.Value(m.filter.YIndicator)
		vals := []string{
			r.Country,
			r.Region,
			fmt.Sprintf("%d", r.Year),
			fmtAxis(xv),
			fmtAxis(yv),
		}
		var rowCells []string
		for j, c := range cols {
			rowCells = append(rowCells, cellStyle.Width(c.Width).Render(truncate(vals[j], c.Width-2)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, rowCells...))
	}

	return tableArea.Render(strings.Join(lines, "\n"))
}

func truncate(s string, w int) string {
	if w <= 0 || len(s) <= w {
		return s
	}
	if w <= 1 {
		return s[:w]
	}
	return s[:w-1] + "…"
}
