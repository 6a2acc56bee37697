package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateJoinsOnXValues(t *testing.T) {
	ds := testDataset()
	f := testFilter()
	f.Year = 2010 // Aland GDP=8, Borduria GDP=18, Cadia GDP=8

	view, err := BuildView(ds, f)
	require.NoError(t, err)

	ev := SelectionEvent{Multi: &MultiSelection{Or: []map[string]float64{
		{indGDP: 8, indLifeExp: 70, Population: 1000},
	}}}

	// The join keys on the x value only, so Cadia (same GDP, different
	// LifeExp and Population) is swept in alongside Aland.
	countries := Translate(ev, view, f)
	assert.Equal(t, []string{"Aland", "Cadia"}, countries)
}

func TestTranslateEmptyEvent(t *testing.T) {
	ds := testDataset()
	f := testFilter()
	view, err := BuildView(ds, f)
	require.NoError(t, err)

	assert.Empty(t, Translate(SelectionEvent{}, view, f))
	assert.Empty(t, Translate(SelectionEvent{Multi: &MultiSelection{}}, view, f))
}

func TestTranslateNoMatchIsNotAnError(t *testing.T) {
	ds := testDataset()
	f := testFilter()
	view, err := BuildView(ds, f)
	require.NoError(t, err)

	// x value that exists nowhere in the view
	ev := SelectionEvent{Multi: &MultiSelection{Or: []map[string]float64{
		{indGDP: 999},
	}}}
	assert.Empty(t, Translate(ev, view, f))

	// constraints that never mention the x field select nothing either
	ev = SelectionEvent{Multi: &MultiSelection{Or: []map[string]float64{
		{indLifeExp: 72},
	}}}
	assert.Empty(t, Translate(ev, view, f))
}

func TestTranslateMergesConstraints(t *testing.T) {
	ds := testDataset()
	f := testFilter()
	f.Year = 2011

	view, err := BuildView(ds, f)
	require.NoError(t, err)

	ev := SelectionEvent{Multi: &MultiSelection{Or: []map[string]float64{
		{indGDP: 9},
		{indGDP: 19},
	}}}
	countries := Translate(ev, view, f)
	assert.Equal(t, []string{"Aland", "Borduria", "Cadia"}, countries)
}
