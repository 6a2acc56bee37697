package engine

// ChartSpec is a declarative, renderer-independent chart description. It is a
// pure value: equal inputs to the builders produce structurally equal specs,
// which is what lets the cache hand out shared instances.
type ChartSpec struct {
	Mark      string              `json:"mark"`
	MarkOpts  MarkOpts            `json:"markOpts"`
	Encodings map[string]Encoding `json:"encodings"`
	Selection *SelectionDef       `json:"selection,omitempty"`
	Lookup    *LookupTransform    `json:"lookup,omitempty"`

	Projection string `json:"projection,omitempty"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      string `json:"title,omitempty"`
}

// Mark types, only the shapes this app draws.
const (
	MarkCircle   = "circle"
	MarkLine     = "line"
	MarkGeoshape = "geoshape"
)

// Encoding channels.
const (
	ChanX       = "x"
	ChanY       = "y"
	ChanSize    = "size"
	ChanColor   = "color"
	ChanTooltip = "tooltip"
	ChanOrder   = "order"
)

// Field types.
const (
	TypeQuantitative = "quantitative"
	TypeNominal      = "nominal"
	TypeOrdinal      = "ordinal"
)

// Scale types.
const (
	ScaleLinear = "linear"
	ScaleLog    = "log"
)

// MarkOpts are mark-level drawing options.
type MarkOpts struct {
	Opacity     float64 `json:"opacity,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Point       bool    `json:"point,omitempty"` // line marks: draw a point at each vertex
}

// Encoding binds a field to a channel.
type Encoding struct {
	Field string `json:"field"`
	Type  string `json:"type"`
	Scale *Scale `json:"scale,omitempty"`

	// Condition dims marks that fall outside the named selection.
	Condition *ColorCondition `json:"condition,omitempty"`

	// Fields is set instead of Field for multi-field tooltips.
	Fields []string `json:"fields,omitempty"`
}

// Scale describes how field values map onto a channel. A nil Domain means the
// renderer derives it from the data it is given (per-frame behavior).
type Scale struct {
	Type   string    `json:"type,omitempty"`
	Domain []float64 `json:"domain,omitempty"` // [min, max] when explicit
	Range  []float64 `json:"range,omitempty"`  // size channel output range
	Zero   bool      `json:"zero"`
}

// ColorCondition colors marks inside the selection by Field and paints the
// rest with the fallback Value.
type ColorCondition struct {
	Selection string `json:"selection"`
	Field     string `json:"field"`
	Type      string `json:"type"`
	Value     string `json:"value"` // fallback for marks outside the selection
}

// SelectionDef asks the renderer to attach an interactive multi-selection
// over the listed channels and report brush events against it.
type SelectionDef struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"` // "multi"
	Encodings []string `json:"encodings"`
}

// LookupTransform joins map-feature ids to rows on a shared key field, used
// by the choropleth.
type LookupTransform struct {
	Key   string `json:"key"`   // feature-side field
	Field string `json:"field"` // row-side field carrying the same id
}

// ScalePolicy picks how axis domains are computed.
type ScalePolicy int

const (
	// ScalePerFrame derives domains from the current view only. Axes rescale
	// every year, which is fine for a static chart.
	ScalePerFrame ScalePolicy = iota
	// ScaleGlobal fixes domains to the full dataset across all years, so an
	// animated sequence keeps comparable axes.
	ScaleGlobal
)

func (p ScalePolicy) String() string {
	if p == ScaleGlobal {
		return "global"
	}
	return "perframe"
}
