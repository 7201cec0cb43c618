// Package panel composes the brightness panel: one expandable row per
// display, a header, a help overlay and the global key handling.
package panel

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lumen/internal/bridge"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	"github.com/alexisbeaulieu97/lumen/internal/ui/components"
)

const (
	defaultWidth     = 60
	brightnessStep   = 5
	revealFrames     = 6
	revealFrameDelay = 30 * time.Millisecond
)

// Options configures a Model.
type Options struct {
	Bridge    *bridge.Bridge
	Listeners []Listener
	// HostWatch, when set, is started with the panel and ends it when it
	// returns transport.HostExitedMsg.
	HostWatch tea.Cmd
	Logger    *logger.Logger
	Width     int
}

// Model is the panel's Bubble Tea model
type Model struct {
	// Core data
	bridge    *bridge.Bridge
	listeners []Listener
	hostWatch tea.Cmd
	log       *logger.Logger

	// Rows
	rows    []*monitorRow
	visible []int
	cursor  int
	version uint64

	// UI state
	keys      KeyMap
	help      help.Model
	filter    textinput.Model
	filtering bool
	showHelp  bool
	helpText  string
	status    *components.Alert

	// Reveal animation
	revealStarted bool
	revealFrame   int
	revealed      bool

	// Dimensions
	width    int
	height   int
	maxWidth int
}

// NewModel creates a panel bound to opts.Bridge.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter displays"
	ti.CharLimit = 64

	m := Model{
		bridge:    opts.Bridge,
		listeners: opts.Listeners,
		hostWatch: opts.HostWatch,
		log:       log.With("panel"),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		filter:    ti,
		maxWidth:  width,
	}

	// Bootstrap monitors are already in the state; show them without
	// waiting for the host to republish.
	if len(m.bridge.State().Monitors()) > 0 {
		m.rebuild()
	}
	m.revealStarted = m.bridge.Document().Visible
	return m
}

// Init starts the bridge handshake, the listeners and the host watch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.bridge.Init()}
	for i, l := range m.listeners {
		cmds = append(cmds, listenCmd(l, i))
	}
	if m.hostWatch != nil {
		cmds = append(cmds, m.hostWatch)
	}
	if m.revealStarted && !m.revealed {
		cmds = append(cmds, revealTickCmd(1, revealFrameDelay))
	}
	return tea.Batch(cmds...)
}

// rebuild syncs rows with the state and makes the panel visible. Reaching
// here means monitor data arrived, from the host or the demo path.
func (m *Model) rebuild() {
	st := m.bridge.State()
	focusedID := m.focusedID()

	m.rows = syncRows(m.rows, st.Monitors(), st)
	m.version = st.Version()
	m.applyFilter()

	m.cursor = 0
	for i, idx := range m.visible {
		if m.rows[idx].id == focusedID {
			m.cursor = i
			break
		}
	}
	m.refocus()

	m.bridge.MarkVisible()
}

// applyFilter recomputes which rows are shown.
func (m *Model) applyFilter() {
	m.visible = filterRows(m.rows, m.filter.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// refocus gives focus to the row under the cursor and takes it from the rest.
func (m *Model) refocus() {
	current := m.focusedRow()
	for _, r := range m.rows {
		if r == current {
			r.option.Focus()
		} else {
			r.option.Blur()
		}
	}
}

func (m *Model) focusedRow() *monitorRow {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.rows[m.visible[m.cursor]]
}

func (m *Model) focusedID() string {
	if r := m.focusedRow(); r != nil {
		return r.id
	}
	return ""
}

func (m Model) panelWidth() int {
	if m.width > 0 && m.width < m.maxWidth {
		return m.width
	}
	return m.maxWidth
}

func (m Model) renderContext() components.RenderContext {
	theme := components.DefaultTheme().WithAccent(m.bridge.Document().AccentColor)
	ctx := components.DefaultContext().WithTheme(theme).WithWidth(m.panelWidth())
	ctx.Log = m.log
	return ctx
}

// Rows returns the display ids in render order.
func (m Model) Rows() []string {
	out := make([]string, 0, len(m.visible))
	for _, idx := range m.visible {
		out = append(out, m.rows[idx].id)
	}
	return out
}

// Option returns the row for a display id.
func (m Model) Option(id string) (*components.Option, bool) {
	for _, r := range m.rows {
		if r.id == id {
			return r.option, true
		}
	}
	return nil, false
}

// Revealed reports whether the reveal animation has finished.
func (m Model) Revealed() bool {
	return m.revealed
}
