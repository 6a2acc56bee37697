package engine

import (
	"github.com/andareed/worldviz/panel"
)

// Shared fixtures: a small three-country, three-year panel plus helpers for
// building sparse datasets.

const (
	indGDP     = "GDP"
	indLifeExp = "LifeExp"
)

func row(country, region string, year int, values map[string]float64) panel.Row {
	return panel.Row{Country: country, Region: region, Year: year, Values: values}
}

func testDataset() *panel.Dataset {
	rows := []panel.Row{
		row("Aland", "North", 2010, map[string]float64{indGDP: 8, indLifeExp: 70, Population: 1000}),
		row("Aland", "North", 2011, map[string]float64{indGDP: 9, indLifeExp: 71, Population: 1010}),
		row("Aland", "North", 2012, map[string]float64{indGDP: 10, indLifeExp: 72, Population: 1020}),

		row("Borduria", "South", 2010, map[string]float64{indGDP: 18, indLifeExp: 60, Population: 5000}),
		row("Borduria", "South", 2011, map[string]float64{indGDP: 19, indLifeExp: 61, Population: 5100}),
		row("Borduria", "South", 2012, map[string]float64{indGDP: 20, indLifeExp: 62, Population: 5200}),

		row("Cadia", "North", 2010, map[string]float64{indGDP: 8, indLifeExp: 75, Population: 300}),
		row("Cadia", "North", 2011, map[string]float64{indGDP: 9, indLifeExp: 76, Population: 310}),
		// Cadia 2012 is missing LifeExp: must drop out of 2012 views
		row("Cadia", "North", 2012, map[string]float64{indGDP: 10, Population: 320}),
	}
	return panel.New(rows, []string{indGDP, indLifeExp, Population})
}

func testFilter() FilterState {
	return FilterState{
		XIndicator: indGDP,
		YIndicator: indLifeExp,
		XLog:       true,
		Year:       2012,
	}
}

// sparseDataset builds a dataset where each indicator is observed only in
// the given year ranges.
func sparseDataset(xYears, yYears [2]int) *panel.Dataset {
	var rows []panel.Row
	min, max := xYears[0], xYears[1]
	if yYears[0] < min {
		min = yYears[0]
	}
	if yYears[1] > max {
		max = yYears[1]
	}
	for y := min; y <= max; y++ {
		values := map[string]float64{Population: 100}
		if y >= xYears[0] && y <= xYears[1] {
			values[indGDP] = float64(y)
		}
		if y >= yYears[0] && y <= yYears[1] {
			values[indLifeExp] = float64(y) / 2
		}
		rows = append(rows, row("Aland", "North", y, values))
	}
	return panel.New(rows, []string{indGDP, indLifeExp, Population})
}
