package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeYearStore struct {
	year int
	ok   bool
}

func (s fakeYearStore) Year() (int, bool) { return s.year, s.ok }

func TestAnimationRangeIsIntersection(t *testing.T) {
	// x observed 1965-2018, y observed 1960-2015
	ds := sparseDataset([2]int{1965, 2018}, [2]int{1960, 2015})
	a := NewAnimationController(ds, NewSpecCache(), fakeYearStore{})

	f := testFilter()
	f.Year = ds.MinYear
	require.NoError(t, a.Start(f))

	run := a.Run()
	assert.Equal(t, 1965, run.First)
	assert.Equal(t, 2015, run.Last)
	assert.Equal(t, 1965, run.Current)
	assert.Equal(t, AnimRunning, run.Status)
}

func TestAnimationEmptyRange(t *testing.T) {
	ds := sparseDataset([2]int{1960, 1970}, [2]int{1980, 1990})
	a := NewAnimationController(ds, NewSpecCache(), fakeYearStore{})

	f := testFilter()
	f.Year = ds.MinYear
	err := a.Start(f)
	require.ErrorIs(t, err, ErrEmptyRange)
	assert.Equal(t, AnimIdle, a.Status())
}

func TestAnimationTerminatesAfterExactStepCount(t *testing.T) {
	ds := testDataset() // both indicators observed 2010-2012, 2012 via Aland/Borduria
	a := NewAnimationController(ds, NewSpecCache(), fakeYearStore{})

	f := testFilter()
	require.NoError(t, a.Start(f))
	run := a.Run()
	wantSteps := run.Last - run.First + 1

	steps := 0
	years := []int{}
	for a.Status() == AnimRunning {
		res, err := a.Step(&f)
		require.NoError(t, err)
		steps++
		years = append(years, res.Year)
		require.LessOrEqual(t, res.Year, run.Last)
	}

	assert.Equal(t, wantSteps, steps)
	assert.Equal(t, AnimCompleted, a.Status())
	assert.Equal(t, []int{2010, 2011, 2012}, years)

	// a further step is a misuse
	_, err := a.Step(&f)
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestAnimationStepEmitsGlobalSpec(t *testing.T) {
	ds := testDataset()
	a := NewAnimationController(ds, NewSpecCache(), fakeYearStore{})

	f := testFilter()
	require.NoError(t, a.Start(f))

	res, err := a.Step(&f)
	require.NoError(t, err)
	require.NotNil(t, res.Spec)
	assert.Equal(t, "Year: 2010", res.Label)
	assert.Equal(t, 2010, f.Year, "step commits the frame year into the filter")
	// global policy → fixed domains on the emitted spec
	assert.Equal(t, []float64{8, 20}, res.Spec.Encodings[ChanX].Scale.Domain)
}

func TestAnimationStopRestoresPersistedYear(t *testing.T) {
	ds := testDataset()
	// the user scrubbed to 2011 before starting the run
	a := NewAnimationController(ds, NewSpecCache(), fakeYearStore{year: 2011, ok: true})

	f := testFilter()
	require.NoError(t, a.Start(f))

	_, err := a.Step(&f) // 2010
	require.NoError(t, err)
	assert.Equal(t, 2010, f.Year)

	// Stop restores the persisted year, not the frame the run reached.
	spec, err := a.Stop(&f)
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, 2011, f.Year)
	assert.Equal(t, AnimStopped, a.Status())
}

func TestAnimationStopWithoutPersistedYearKeepsFilter(t *testing.T) {
	ds := testDataset()
	a := NewAnimationController(ds, NewSpecCache(), fakeYearStore{})

	f := testFilter()
	require.NoError(t, a.Start(f))
	_, err := a.Step(&f)
	require.NoError(t, err)

	_, err = a.Stop(&f)
	require.NoError(t, err)
	assert.Equal(t, 2010, f.Year)
}

func TestAnimationStopOnlyWhenRunning(t *testing.T) {
	ds := testDataset()
	a := NewAnimationController(ds, NewSpecCache(), fakeYearStore{})

	f := testFilter()
	_, err := a.Stop(&f)
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestAnimationReset(t *testing.T) {
	ds := testDataset()
	a := NewAnimationController(ds, NewSpecCache(), fakeYearStore{})

	f := testFilter()
	require.NoError(t, a.Start(f))
	for a.Status() == AnimRunning {
		_, err := a.Step(&f)
		require.NoError(t, err)
	}
	a.Reset()
	assert.Equal(t, AnimIdle, a.Status())
	require.NoError(t, a.Start(f))
}
