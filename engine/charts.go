package engine

import (
	"github.com/andareed/worldviz/panel"
)

// Chart canvas defaults, carried on every spec.
const (
	chartWidth  = 800
	chartHeight = 500
)

// brushSelection is the name renderers report brush events under.
const brushSelection = "brush"

// neutralColor paints marks outside an active brush selection.
const neutralColor = "lightgray"

// BuildBubbleSpec produces the primary bubble chart spec for a filtered view:
// x/y on the chosen indicators, size by population, color by region with
// marks outside the attached brush selection dimmed. With ScaleGlobal the
// axis and size domains are fixed to the full dataset so animated frames stay
// comparable; with ScalePerFrame the renderer derives them from the view.
func BuildBubbleSpec(ds *panel.Dataset, view []panel.Row, f FilterState, policy ScalePolicy) (*ChartSpec, error) {
	if err := f.Validate(ds); err != nil {
		return nil, err
	}
	if len(view) == 0 {
		return nil, ErrEmptyView
	}

	xScale := axisScale(f.XLog)
	yScale := axisScale(f.YLog)
	sizeScale := &Scale{Range: []float64{30, 3000}, Zero: false}

	if policy == ScaleGlobal {
		xScale.Domain = globalDomain(ds, f.XIndicator)
		yScale.Domain = globalDomain(ds, f.YIndicator)
		sizeScale.Domain = globalDomain(ds, Population)
	}

	sel := &SelectionDef{
		Name:      brushSelection,
		Type:      "multi",
		Encodings: []string{ChanX, ChanY, ChanSize},
	}

	return &ChartSpec{
		Mark:     MarkCircle,
		MarkOpts: MarkOpts{Opacity: 0.7, Stroke: "black", StrokeWidth: 1},
		Encodings: map[string]Encoding{
			ChanX:    {Field: f.XIndicator, Type: TypeQuantitative, Scale: xScale},
			ChanY:    {Field: f.YIndicator, Type: TypeQuantitative, Scale: yScale},
			ChanSize: {Field: Population, Type: TypeQuantitative, Scale: sizeScale},
			ChanColor: {
				Field: "Region",
				Type:  TypeNominal,
				Condition: &ColorCondition{
					Selection: brushSelection,
					Field:     "Region",
					Type:      TypeNominal,
					Value:     neutralColor,
				},
			},
			ChanTooltip: {Field: "Country", Type: TypeNominal},
		},
		Selection: sel,
		Width:     chartWidth,
		Height:    chartHeight,
	}, nil
}

// BuildConnectedScatterSpec produces the secondary chart: one year-ordered
// line per country across ALL years, same log/linear axis policy as the
// bubble chart. The filter's year is deliberately ignored here.
func BuildConnectedScatterSpec(ds *panel.Dataset, f FilterState, countries []string) (*ChartSpec, error) {
	if err := f.Validate(ds); err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, ErrEmptyView
	}

	return &ChartSpec{
		Mark:     MarkLine,
		MarkOpts: MarkOpts{Point: true},
		Encodings: map[string]Encoding{
			ChanX:       {Field: f.XIndicator, Type: TypeQuantitative, Scale: axisScale(f.XLog)},
			ChanY:       {Field: f.YIndicator, Type: TypeQuantitative, Scale: axisScale(f.YLog)},
			ChanColor:   {Field: "Country", Type: TypeNominal},
			ChanOrder:   {Field: "Year", Type: TypeOrdinal},
			ChanTooltip: {Fields: []string{"Country", "Year"}, Type: TypeNominal},
		},
		Width:  chartWidth,
		Height: chartHeight,
	}, nil
}

// ScatterRows selects the rows a connected scatterplot is drawn from: every
// year for the given countries where both axis indicators are observed.
func ScatterRows(ds *panel.Dataset, f FilterState, countries []string) []panel.Row {
	set := make(map[string]bool, len(countries))
	for _, c := range countries {
		set[c] = true
	}
	var rows []panel.Row
	for _, r := range ds.Rows {
		if !set[r.Country] {
			continue
		}
		if !r.Has(f.XIndicator) || !r.Has(f.YIndicator) {
			continue
		}
		rows = append(rows, r)
	}
	return rows
}

// BuildChoroplethSpec produces the static world-map illustration: geoshape
// features joined to view rows on the shared map id, colored by indicator.
// Not part of the interactive loop.
func BuildChoroplethSpec(view []panel.Row, indicator string) (*ChartSpec, error) {
	if len(view) == 0 {
		return nil, ErrEmptyView
	}

	return &ChartSpec{
		Mark:     MarkGeoshape,
		MarkOpts: MarkOpts{Stroke: "white"},
		Encodings: map[string]Encoding{
			ChanColor: {Field: indicator, Type: TypeQuantitative},
		},
		Lookup:     &LookupTransform{Key: "id", Field: "id"},
		Projection: "equirectangular",
		Width:      chartWidth,
		Height:     chartHeight,
		Title:      indicator,
	}, nil
}

func axisScale(log bool) *Scale {
	if log {
		return &Scale{Type: ScaleLog, Zero: false}
	}
	return &Scale{Zero: false}
}

// globalDomain returns the dataset-wide [min, max] for an indicator, or nil
// when it was never observed (the renderer then falls back to the view).
func globalDomain(ds *panel.Dataset, indicator string) []float64 {
	min, max, ok := ds.ValueRange(indicator)
	if !ok {
		return nil
	}
	return []float64{min, max}
}
