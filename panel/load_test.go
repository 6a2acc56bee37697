package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecords(t *testing.T) {
	records := [][]string{
		{"Country", "Region", "Year", "id", "GDP per capita", "Life expectancy"},
		{"Aland", "North", "2000", "8", "1200.5", "71.2"},
		{"Aland", "North", "2001", "8", "", "71.9"},
		{"Borduria", "South", "2000", "112", "..", "64"},
	}

	ds, err := FromRecords(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"GDP per capita", "Life expectancy"}, ds.Indicators)
	require.Len(t, ds.Rows, 3)

	r := ds.Rows[0]
	assert.Equal(t, "Aland", r.Country)
	assert.Equal(t, "North", r.Region)
	assert.Equal(t, 2000, r.Year)
	assert.Equal(t, "8", r.MapID)
	v, ok := r.Value("GDP per capita")
	require.True(t, ok)
	assert.Equal(t, 1200.5, v)

	// blank and non-numeric cells are null observations, not zeros
	assert.False(t, ds.Rows[1].Has("GDP per capita"))
	assert.False(t, ds.Rows[2].Has("GDP per capita"))
	assert.True(t, ds.Rows[2].Has("Life expectancy"))
}

func TestFromRecordsHeaderCaseInsensitive(t *testing.T) {
	records := [][]string{
		{"country", "YEAR", "GDP"},
		{"Aland", "2000", "5"},
	}
	ds, err := FromRecords(records)
	require.NoError(t, err)
	assert.Equal(t, []string{"GDP"}, ds.Indicators)
	assert.Empty(t, ds.Rows[0].Region)
}

func TestFromRecordsErrors(t *testing.T) {
	_, err := FromRecords(nil)
	assert.Error(t, err)

	// missing year column
	_, err = FromRecords([][]string{{"Country", "GDP"}, {"Aland", "5"}})
	assert.Error(t, err)

	// no indicator columns at all
	_, err = FromRecords([][]string{{"Country", "Year"}, {"Aland", "2000"}})
	assert.Error(t, err)

	// a malformed year is a load error, not a null
	_, err = FromRecords([][]string{
		{"Country", "Year", "GDP"},
		{"Aland", "20o0", "5"},
	})
	assert.Error(t, err)
}

func TestFromRecordsSkipsShortRows(t *testing.T) {
	records := [][]string{
		{"Country", "Year", "GDP"},
		{"Aland"},
		{"Borduria", "2001", "7"},
	}
	ds, err := FromRecords(records)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "Borduria", ds.Rows[0].Country)
}
