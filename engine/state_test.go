package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCountriesNormalizes(t *testing.T) {
	var f FilterState
	f.SetCountries([]string{"Borduria", "Aland", "Borduria", ""})
	assert.Equal(t, []string{"Aland", "Borduria"}, f.SelectedCountries)
}

func TestFilterKeyDeterministic(t *testing.T) {
	a := testFilter()
	a.SetCountries([]string{"Borduria", "Aland"})
	b := testFilter()
	b.SetCountries([]string{"Aland", "Borduria", "Aland"})

	assert.Equal(t, a.Key(), b.Key())

	b.Year = 2010
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestValidate(t *testing.T) {
	ds := testDataset()

	f := testFilter()
	require.NoError(t, f.Validate(ds))

	f = testFilter()
	f.YIndicator = "Bogus"
	var invErr *InvalidIndicatorError
	require.ErrorAs(t, f.Validate(ds), &invErr)

	f = testFilter()
	f.Year = 2050
	require.ErrorIs(t, f.Validate(ds), ErrYearOutOfRange)

	f = testFilter()
	f.SetCountries([]string{"Atlantis"})
	require.Error(t, f.Validate(ds))
}

func TestDefaultFilterClampsYear(t *testing.T) {
	ds := testDataset() // 2010-2012
	f := DefaultFilter(ds)
	assert.Equal(t, 2012, f.Year)
	assert.True(t, f.XLog)
	require.NoError(t, f.Validate(ds))
}
