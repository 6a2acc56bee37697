package main

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/worldviz/dialogs"
	"github.com/andareed/worldviz/engine"
	"github.com/andareed/worldviz/logging"
	"github.com/andareed/worldviz/panel"
	"github.com/andareed/worldviz/session"
)

type mode int

const (
	modeView mode = iota
	modeCountries
	modeBrush
)

// model is the one logical owner of the session: every user-intent event
// lands here, adjusts the FilterState, and triggers exactly the downstream
// recompute it needs. Nothing else mutates session state.
type model struct {
	ds        *panel.Dataset
	store     *session.Store
	sessionID string

	filter engine.FilterState
	cache  *engine.SpecCache
	anim   *engine.AnimationController

	// indicator cycling positions, kept in step with filter.X/YIndicator
	xIdx int
	yIdx int

	// derived state, rebuilt by recompute()
	view        []panel.Row
	bubbleSpec  *engine.ChartSpec
	scatterSpec *engine.ChartSpec
	scatterRows []panel.Row

	// brush state: view indices the user has gathered, and the countries the
	// last committed brush translated to (drives the connected scatterplot)
	cursor           int
	brushed          map[int]bool
	brushActive      bool
	scatterCountries []string

	currentMode  mode
	countryInput textinput.Model
	showTable    bool
	activeDialog dialogs.Dialog

	delay     time.Duration
	yearLabel string

	terminalWidth  int
	terminalHeight int
	ready          bool

	noticeMsg  string
	noticeType string
	noticeSeq  int

	dataName string
}

type animTickMsg struct{}

func newModel(ds *panel.Dataset, store *session.Store, delay time.Duration, dataName string) *model {
	cache := engine.NewSpecCache()
	id := store.Open()

	ci := textinput.New()
	ci.Placeholder = "Countries (comma separated)..."
	ci.CharLimit = 156
	ci.Width = 50

	filter := engine.DefaultFilter(ds)
	if y, ok := store.Year(id); ok {
		filter.Year = y
	}

	m := &model{
		ds:           ds,
		store:        store,
		sessionID:    id,
		filter:       filter,
		cache:        cache,
		anim:         engine.NewAnimationController(ds, cache, session.Bound{Store: store, ID: id}),
		brushed:      make(map[int]bool),
		countryInput: ci,
		delay:        delay,
		dataName:     dataName,
	}
	m.syncIndicatorIndices()
	m.recompute()
	return m
}

func (m *model) syncIndicatorIndices() {
	for i, ind := range m.ds.Indicators {
		if ind == m.filter.XIndicator {
			m.xIdx = i
		}
		if ind == m.filter.YIndicator {
			m.yIdx = i
		}
	}
}

// recompute rebuilds everything derived from the current FilterState. It is
// idempotent: calling it twice with the same state lands on the same specs
// (the cache hands back the same instances).
func (m *model) recompute() {
	logging.Debugf("recompute: %s", m.filter.Key())

	view, err := engine.BuildView(m.ds, m.filter)
	if err != nil {
		logging.Infof("recompute: %v", err)
		m.noticeMsg = noticeText(err.Error(), "error")
		m.noticeType = "error"
		return
	}
	m.view = view

	// the brush gathers view indices; any recompute invalidates them
	m.brushed = make(map[int]bool)
	m.brushActive = false
	if m.cursor >= len(view) {
		m.cursor = 0
	}

	spec, err := m.cache.Bubble(m.ds, m.filter, engine.ScalePerFrame)
	switch {
	case err == nil:
		m.bubbleSpec = spec
	case errors.Is(err, engine.ErrEmptyView):
		m.bubbleSpec = nil // empty chart is a valid render state
	default:
		m.noticeMsg = noticeText(err.Error(), "error")
		m.noticeType = "error"
		return
	}

	m.recomputeScatter()
}

// recomputeScatter rebuilds only the secondary chart from the last brush
// translation. Filter propagation is one-way: brush → scatter, never back.
func (m *model) recomputeScatter() {
	if len(m.scatterCountries) == 0 {
		m.scatterSpec = nil
		m.scatterRows = nil
		return
	}
	spec, err := m.cache.ConnectedScatter(m.ds, m.filter, m.scatterCountries)
	if err != nil {
		logging.Infof("scatter recompute: %v", err)
		m.scatterSpec = nil
		m.scatterRows = nil
		return
	}
	m.scatterSpec = spec
	m.scatterRows = engine.ScatterRows(m.ds, m.filter, m.scatterCountries)
}

func (m *model) Init() tea.Cmd {
	logging.Infof("worldviz: initialised with %d rows, %d indicators", len(m.ds.Rows), len(m.ds.Indicators))
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.activeDialog, cmd = m.activeDialog.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.ready = true
		return m, nil
	case animTickMsg:
		return m.handleAnimTick()
	case clearNoticeMsg:
		if msg.id == m.noticeSeq {
			m.noticeMsg = ""
			m.noticeType = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentMode {
	case modeView:
		return m.handleViewModeKey(msg)
	case modeCountries:
		return m.handleCountriesKey(msg)
	case modeBrush:
		return m.handleBrushKey(msg)
	}
	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "x":
		m.cycleIndicator(&m.xIdx, &m.filter.XIndicator)
	case "y":
		m.cycleIndicator(&m.yIdx, &m.filter.YIndicator)
	case "X":
		m.filter.XLog = !m.filter.XLog
		m.recompute()
	case "Y":
		m.filter.YLog = !m.filter.YLog
		m.recompute()

	case "[", "left":
		m.scrubYear(-1)
	case "]", "right":
		m.scrubYear(1)

	case "c":
		m.currentMode = modeCountries
		m.countryInput.SetValue("")
		m.countryInput.Focus()
		logging.Debug("entering mode: countries")
	case "C":
		m.filter.SetCountries(nil)
		m.recompute()
		return m, m.startNotice("Country filter cleared", "info", noticeDuration)

	case "b":
		return m.enterBrushMode()
	case "B":
		m.scatterCountries = nil
		m.recomputeScatter()
		return m, m.startNotice("Brush cleared", "info", noticeDuration)

	case "a":
		return m.startAnimation()
	case "s":
		return m.stopAnimation()

	case "t":
		m.showTable = !m.showTable

	case "w":
		return m.writeSnapshot()

	case "?":
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
	}
	return m, nil
}
