package engine

import (
	"errors"
	"fmt"

	"github.com/andareed/worldviz/panel"
)

// AnimationStatus is the controller's lifecycle state.
type AnimationStatus int

const (
	AnimIdle AnimationStatus = iota
	AnimRunning
	AnimStopped
	AnimCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimRunning:
		return "running"
	case AnimStopped:
		return "stopped"
	case AnimCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// AnimationRun is a snapshot of the current run for display.
type AnimationRun struct {
	First   int
	Last    int
	Current int
	Status  AnimationStatus
}

// YearStore is the slice of session-persisted state the controller reads on
// Stop: the last year the user committed by scrubbing the slider.
type YearStore interface {
	Year() (int, bool)
}

// StepResult is what one animation step emits. Spec is nil for a year whose
// view is empty; that is a valid frame, rendered as an empty chart.
type StepResult struct {
	Spec  *ChartSpec
	Year  int
	Label string
	Done  bool
}

// AnimationController owns the bounded year sequence of one animation run.
// It is cooperative and synchronous: each Step runs to completion before the
// caller observes the next event, so a Stop request lands between steps.
type AnimationController struct {
	ds    *panel.Dataset
	cache *SpecCache
	store YearStore

	status  AnimationStatus
	first   int
	last    int
	current int
}

func NewAnimationController(ds *panel.Dataset, cache *SpecCache, store YearStore) *AnimationController {
	return &AnimationController{ds: ds, cache: cache, store: store}
}

// Start computes the animated year range as the intersection of the years in
// which each axis indicator has at least one observation, then transitions to
// Running. ErrEmptyRange when the ranges never overlap.
func (a *AnimationController) Start(f FilterState) error {
	if err := f.Validate(a.ds); err != nil {
		return err
	}

	xFirst, xLast, xOK := a.ds.YearRange(f.XIndicator)
	yFirst, yLast, yOK := a.ds.YearRange(f.YIndicator)
	if !xOK || !yOK {
		return ErrEmptyRange
	}

	first := xFirst
	if yFirst > first {
		first = yFirst
	}
	last := xLast
	if yLast < last {
		last = yLast
	}
	if first > last {
		return ErrEmptyRange
	}

	a.first, a.last, a.current = first, last, first
	a.status = AnimRunning
	return nil
}

// Step advances one frame: commits the current year into the filter, builds
// the bubble spec with fixed global scales, and moves on. After the last
// year the controller transitions to Completed.
func (a *AnimationController) Step(f *FilterState) (StepResult, error) {
	if a.status != AnimRunning {
		return StepResult{}, ErrNotRunning
	}

	f.Year = a.current
	res := StepResult{
		Year:  a.current,
		Label: fmt.Sprintf("Year: %d", a.current),
	}

	spec, err := a.cache.Bubble(a.ds, *f, ScaleGlobal)
	switch {
	case err == nil:
		res.Spec = spec
	case errors.Is(err, ErrEmptyView):
		// empty frame, keep going
	default:
		return StepResult{}, err
	}

	a.current++
	if a.current > a.last {
		a.status = AnimCompleted
		res.Done = true
	}
	return res, nil
}

// Stop cancels a running animation. The filter's year is restored from the
// session-persisted value when one exists, NOT the year the run had reached,
// and one final global-scale frame is emitted.
func (a *AnimationController) Stop(f *FilterState) (*ChartSpec, error) {
	if a.status != AnimRunning {
		return nil, ErrNotRunning
	}
	a.status = AnimStopped

	if a.store != nil {
		if y, ok := a.store.Year(); ok {
			f.Year = y
		}
	}

	spec, err := a.cache.Bubble(a.ds, *f, ScaleGlobal)
	if errors.Is(err, ErrEmptyView) {
		return nil, nil
	}
	return spec, err
}

// Reset returns a finished controller to Idle so a new run can start.
func (a *AnimationController) Reset() {
	a.status = AnimIdle
	a.first, a.last, a.current = 0, 0, 0
}

// Run returns a snapshot of the current run.
func (a *AnimationController) Run() AnimationRun {
	return AnimationRun{First: a.first, Last: a.last, Current: a.current, Status: a.status}
}

// Status returns the controller state.
func (a *AnimationController) Status() AnimationStatus { return a.status }
