package main

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/worldviz/engine"
	"github.com/andareed/worldviz/logging"
)

// Animation pacing lives here, not in the engine: one engine Step per tick,
// so a stop keypress is always observed between steps, never inside one.

func (m *model) animTick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return animTickMsg{} })
}

func (m *model) startAnimation() (tea.Model, tea.Cmd) {
	if m.anim.Status() == engine.AnimRunning {
		return m, nil
	}
	m.anim.Reset()
	if err := m.anim.Start(m.filter); err != nil {
		if errors.Is(err, engine.ErrEmptyRange) {
			return m, m.startNotice("No overlapping years for these indicators", "error", noticeDuration)
		}
		return m, m.startNotice(err.Error(), "error", noticeDuration)
	}
	run := m.anim.Run()
	logging.Infof("animation started: %d-%d", run.First, run.Last)
	return m, m.animTick()
}

func (m *model) handleAnimTick() (tea.Model, tea.Cmd) {
	if m.anim.Status() != engine.AnimRunning {
		return m, nil // stale tick after a stop
	}

	res, err := m.anim.Step(&m.filter)
	if err != nil {
		return m, m.startNotice(err.Error(), "error", noticeDuration)
	}

	m.applyFrame(res.Spec)
	m.yearLabel = res.Label

	if res.Done {
		m.anim.Reset()
		return m, m.startNotice("Animation complete", "success", noticeDuration)
	}
	return m, m.animTick()
}

func (m *model) stopAnimation() (tea.Model, tea.Cmd) {
	if m.anim.Status() != engine.AnimRunning {
		return m, nil
	}
	spec, err := m.anim.Stop(&m.filter)
	if err != nil {
		return m, m.startNotice(err.Error(), "error", noticeDuration)
	}
	m.applyFrame(spec)
	m.yearLabel = ""
	logging.Infof("animation stopped, year restored to %d", m.filter.Year)
	return m, m.startNotice("Stopped", "info", noticeDuration)
}

// applyFrame installs an animation frame: the emitted spec plus the matching
// view rows for the renderer. A nil spec is an empty frame.
func (m *model) applyFrame(spec *engine.ChartSpec) {
	m.bubbleSpec = spec
	view, err := engine.BuildView(m.ds, m.filter)
	if err != nil {
		logging.Infof("applyFrame: %v", err)
		return
	}
	m.view = view
	m.brushed = make(map[int]bool)
	m.brushActive = false
}
