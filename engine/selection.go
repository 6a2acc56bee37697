package engine

import (
	"sort"

	"github.com/andareed/worldviz/panel"
)

// SelectionEvent is the raw payload a renderer emits when the user brushes a
// chart carrying a SelectionDef: a disjunction of point constraints, each a
// field→value map for the channels that were brushed.
type SelectionEvent struct {
	Multi *MultiSelection `json:"vlMulti,omitempty"`
}

// MultiSelection is the disjunction body of a multi-encoding brush.
type MultiSelection struct {
	Or []map[string]float64 `json:"or"`
}

// Empty reports whether the event carries no active constraints.
func (e SelectionEvent) Empty() bool {
	return e.Multi == nil || len(e.Multi.Or) == 0
}

// Translate maps a brush event into the set of countries it selects, by
// joining the constraints back to the current view.
//
// The join keys on the x-channel value ONLY: it collects every x-field value
// across the constraints and returns the countries whose current x value is a
// member. y and size constraints are ignored, so unrelated points sharing an
// x value are swept in together. Values absent from the view select nothing.
func Translate(ev SelectionEvent, view []panel.Row, f FilterState) []string {
	if ev.Empty() {
		return nil
	}

	xValues := make(map[float64]bool)
	for _, constraint := range ev.Multi.Or {
		if v, ok := constraint[f.XIndicator]; ok {
			xValues[v] = true
		}
	}
	if len(xValues) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var countries []string
	for _, r := range view {
		v, ok := r.Value(f.XIndicator)
		if !ok || !xValues[v] {
			continue
		}
		if !seen[r.Country] {
			seen[r.Country] = true
			countries = append(countries, r.Country)
		}
	}
	sort.Strings(countries)
	return countries
}
