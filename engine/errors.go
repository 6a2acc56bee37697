package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to the UI as notices. None of them are fatal to
// the session: an empty view renders as an empty chart, an empty animation
// range refuses to start the run.
var (
	ErrEmptyView      = errors.New("no rows match the current filter")
	ErrEmptyRange     = errors.New("selected indicators have no overlapping years")
	ErrYearOutOfRange = errors.New("year outside the dataset range")
	ErrNotRunning     = errors.New("animation is not running")
)

// InvalidIndicatorError reports a selected field that is not one of the
// dataset's numeric indicator columns.
type InvalidIndicatorError struct {
	Indicator string
}

func (e *InvalidIndicatorError) Error() string {
	return fmt.Sprintf("invalid indicator %q", e.Indicator)
}
