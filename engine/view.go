package engine

import (
	"github.com/andareed/worldviz/panel"
)

// BuildView derives the filtered row set a chart is computed from: rows of
// the filter's year with both axis indicators observed, restricted to the
// selected countries when any are selected. Pure: identical (dataset,
// filter) inputs always yield the same rows in dataset order.
func BuildView(ds *panel.Dataset, f FilterState) ([]panel.Row, error) {
	if err := f.Validate(ds); err != nil {
		return nil, err
	}

	selected := f.CountrySet()
	var view []panel.Row
	for _, r := range ds.Rows {
		if r.Year != f.Year {
			continue
		}
		if len(selected) > 0 && !selected[r.Country] {
			continue
		}
		if !r.Has(f.XIndicator) || !r.Has(f.YIndicator) {
			continue
		}
		view = append(view, r)
	}
	return view, nil
}
