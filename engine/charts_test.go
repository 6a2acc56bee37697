package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBubbleSpecEncodings(t *testing.T) {
	ds := testDataset()
	f := testFilter()
	view, err := BuildView(ds, f)
	require.NoError(t, err)

	spec, err := BuildBubbleSpec(ds, view, f, ScalePerFrame)
	require.NoError(t, err)

	assert.Equal(t, MarkCircle, spec.Mark)
	assert.Equal(t, indGDP, spec.Encodings[ChanX].Field)
	assert.Equal(t, indLifeExp, spec.Encodings[ChanY].Field)
	assert.Equal(t, TypeQuantitative, spec.Encodings[ChanX].Type)

	// xLog=true → log scale on x, linear y
	assert.Equal(t, ScaleLog, spec.Encodings[ChanX].Scale.Type)
	assert.Empty(t, spec.Encodings[ChanY].Scale.Type)

	size := spec.Encodings[ChanSize]
	assert.Equal(t, Population, size.Field)
	assert.Equal(t, []float64{30, 3000}, size.Scale.Range)

	color := spec.Encodings[ChanColor]
	assert.Equal(t, "Region", color.Field)
	require.NotNil(t, color.Condition)
	assert.Equal(t, "lightgray", color.Condition.Value)

	require.NotNil(t, spec.Selection)
	assert.Equal(t, "multi", spec.Selection.Type)
	assert.Equal(t, []string{ChanX, ChanY, ChanSize}, spec.Selection.Encodings)

	assert.Equal(t, "Country", spec.Encodings[ChanTooltip].Field)
}

func TestBubbleSpecScalePolicy(t *testing.T) {
	ds := testDataset()
	f := testFilter()

	// Global: domains fixed to the full dataset, identical across years
	f.Year = 2010
	v2010, err := BuildView(ds, f)
	require.NoError(t, err)
	global2010, err := BuildBubbleSpec(ds, v2010, f, ScaleGlobal)
	require.NoError(t, err)

	f.Year = 2012
	v2012, err := BuildView(ds, f)
	require.NoError(t, err)
	global2012, err := BuildBubbleSpec(ds, v2012, f, ScaleGlobal)
	require.NoError(t, err)

	assert.Equal(t,
		global2010.Encodings[ChanX].Scale.Domain,
		global2012.Encodings[ChanX].Scale.Domain)
	assert.Equal(t, []float64{8, 20}, global2010.Encodings[ChanX].Scale.Domain)
	assert.Equal(t, []float64{300, 5200}, global2010.Encodings[ChanSize].Scale.Domain)

	// PerFrame: no explicit domain, the renderer derives it per view
	perFrame, err := BuildBubbleSpec(ds, v2012, f, ScalePerFrame)
	require.NoError(t, err)
	assert.Nil(t, perFrame.Encodings[ChanX].Scale.Domain)
	assert.Nil(t, perFrame.Encodings[ChanY].Scale.Domain)
}

func TestBuildBubbleSpecDeterministic(t *testing.T) {
	ds := testDataset()
	f := testFilter()
	view, err := BuildView(ds, f)
	require.NoError(t, err)

	a, err := BuildBubbleSpec(ds, view, f, ScaleGlobal)
	require.NoError(t, err)
	b, err := BuildBubbleSpec(ds, view, f, ScaleGlobal)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestBuildBubbleSpecEmptyView(t *testing.T) {
	ds := testDataset()
	f := testFilter()

	_, err := BuildBubbleSpec(ds, nil, f, ScalePerFrame)
	assert.ErrorIs(t, err, ErrEmptyView)
}

func TestBuildConnectedScatterSpec(t *testing.T) {
	ds := testDataset()
	f := testFilter()
	f.YLog = true

	spec, err := BuildConnectedScatterSpec(ds, f, []string{"Aland", "Cadia"})
	require.NoError(t, err)

	assert.Equal(t, MarkLine, spec.Mark)
	assert.True(t, spec.MarkOpts.Point)
	assert.Equal(t, "Country", spec.Encodings[ChanColor].Field)
	assert.Equal(t, "Year", spec.Encodings[ChanOrder].Field)
	assert.Equal(t, ScaleLog, spec.Encodings[ChanX].Scale.Type)
	assert.Equal(t, ScaleLog, spec.Encodings[ChanY].Scale.Type)
	assert.Equal(t, []string{"Country", "Year"}, spec.Encodings[ChanTooltip].Fields)

	_, err = BuildConnectedScatterSpec(ds, f, nil)
	assert.ErrorIs(t, err, ErrEmptyView)
}

func TestScatterRowsSpanAllYears(t *testing.T) {
	ds := testDataset()
	f := testFilter() // year 2012 must be ignored here

	rows := ScatterRows(ds, f, []string{"Cadia"})
	// Cadia 2012 lacks LifeExp, so only 2010 and 2011 qualify
	require.Len(t, rows, 2)
	assert.Equal(t, 2010, rows[0].Year)
	assert.Equal(t, 2011, rows[1].Year)
}

func TestBuildChoroplethSpec(t *testing.T) {
	ds := testDataset()
	f := testFilter()
	view, err := BuildView(ds, f)
	require.NoError(t, err)

	spec, err := BuildChoroplethSpec(view, "CO2 emissions (kt)")
	require.NoError(t, err)
	assert.Equal(t, MarkGeoshape, spec.Mark)
	assert.Equal(t, "equirectangular", spec.Projection)
	require.NotNil(t, spec.Lookup)
	assert.Equal(t, "id", spec.Lookup.Key)
	assert.Equal(t, "CO2 emissions (kt)", spec.Encodings[ChanColor].Field)

	_, err = BuildChoroplethSpec(nil, "CO2 emissions (kt)")
	assert.ErrorIs(t, err, ErrEmptyView)
}
