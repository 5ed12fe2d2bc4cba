package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"yeardots/internal/config"
	"yeardots/internal/debug"
	"yeardots/internal/grid"
	"yeardots/internal/settings"
	"yeardots/internal/ui"
)

// frameDelay is the animation frame interval (~30 fps).
const frameDelay = 33 * time.Millisecond

// State represents the current UI state.
type State int

const (
	StateGrid State = iota
	StateAccent
	StateHelp
)

// Model is the main application model. It owns the settings store and
// the renderer and drives the clock and rollover ticks.
type Model struct {
	cfg      *config.Config
	store    *settings.Store
	renderer *ui.Renderer

	// State
	state        State
	showSettings bool
	status       string

	// Clock cache: the view only changes when these strings change
	clockText string
	dateText  string

	// Rollover detection
	curYear int
	curDay  int

	// Animation
	frameTime time.Time

	// Accent picker
	accentInput   textinput.Model
	accentCursor  int
	accentMatches []ui.NamedColor

	// UI
	width  int
	height int
	keys   KeyMap

	// Injectable clock for tests
	now func() time.Time
}

// New creates a new Model. The store's apply callback is wired to the
// renderer here, so every settings apply rebuilds the palette the
// renderer reads on its next frame.
func New(cfg *config.Config, store *settings.Store) Model {
	renderer := ui.NewRenderer(store)
	store.SetOnApply(func(s settings.Settings) {
		renderer.ApplyPalette(ui.BuildPalette(cfg, s))
	})
	store.Apply()

	accentInput := textinput.New()
	accentInput.Placeholder = "filter colors or type #rrggbb"
	accentInput.CharLimit = 30

	m := Model{
		cfg:           cfg,
		store:         store,
		renderer:      renderer,
		keys:          KeyMapFromConfig(&cfg.Keys),
		state:         StateGrid,
		accentInput:   accentInput,
		accentMatches: ui.AccentPresets,
		now:           time.Now,
	}

	t := m.now()
	m.curYear = t.Year()
	m.curDay = grid.DayOfYear(t)
	m.renderer.BuildGrid(m.curYear, m.curDay)
	m.clockText = ui.FormatClock(t)
	m.dateText = ui.FormatDate(t)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{clockTick()}
	if m.store.Get().GlowEnabled {
		m.renderer.Start(m.now())
		cmds = append(cmds, frameTick())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.renderer.Resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		m.frameTime = time.Time(msg)
		if m.renderer.Running() {
			return m, frameTick()
		}
		return m, nil

	case ClockTickMsg:
		return m.handleClockTick(time.Time(msg))

	case tea.KeyMsg:
		// Handle quit globally
		if key.Matches(msg, m.keys.Quit) && m.state == StateGrid {
			m.renderer.Stop()
			return m, tea.Quit
		}
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleClockTick updates the clock text and performs the midnight
// rollover check. Both run on the same 1-second tick.
func (m Model) handleClockTick(t time.Time) (tea.Model, tea.Cmd) {
	if c := ui.FormatClock(t); c != m.clockText {
		m.clockText = c
	}
	if d := ui.FormatDate(t); d != m.dateText {
		m.dateText = d
	}

	// Local date changed: rebuild the grid wholesale
	if t.Year() != m.curYear || grid.DayOfYear(t) != m.curDay {
		debug.Log("date rollover: %d-%d -> %d-%d", m.curYear, m.curDay, t.Year(), grid.DayOfYear(t))
		m.curYear = t.Year()
		m.curDay = grid.DayOfYear(t)
		m.renderer.BuildGrid(m.curYear, m.curDay)
	}

	return m, clockTick()
}

// handleKeyPress handles key presses based on current state.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateGrid:
		return m.handleGridKeys(msg)
	case StateAccent:
		return m.handleAccentKeys(msg)
	case StateHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

// handleGridKeys handles key presses in the main grid view.
func (m Model) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Theme):
		m.setStatus(m.store.ToggleTheme())

	case key.Matches(msg, m.keys.Accent):
		m.state = StateAccent
		m.accentInput.Reset()
		m.accentInput.Focus()
		m.accentCursor = 0
		m.accentMatches = ui.AccentPresets
		return m, textinput.Blink

	case key.Matches(msg, m.keys.DotBig):
		m.setStatus(m.store.SetDotSize(m.store.Get().DotSize + settings.DotSizeStep))

	case key.Matches(msg, m.keys.DotSmall):
		m.setStatus(m.store.SetDotSize(m.store.Get().DotSize - settings.DotSizeStep))

	case key.Matches(msg, m.keys.Glow):
		enable := !m.store.Get().GlowEnabled
		m.setStatus(m.store.SetGlow(enable))
		return m, m.syncAnimation()

	case key.Matches(msg, m.keys.Clock):
		m.setStatus(m.store.SetShowClock(!m.store.Get().ShowClock))

	case key.Matches(msg, m.keys.Reset):
		m.setStatus(m.store.Reset())
		return m, m.syncAnimation()

	case key.Matches(msg, m.keys.Settings):
		m.showSettings = !m.showSettings

	case key.Matches(msg, m.keys.Help):
		m.state = StateHelp
	}
	return m, nil
}

// syncAnimation starts or stops the frame loop to match the glow
// setting. Start resets the elapsed-time origin.
func (m *Model) syncAnimation() tea.Cmd {
	glow := m.store.Get().GlowEnabled
	switch {
	case glow && !m.renderer.Running():
		m.renderer.Start(m.now())
		return frameTick()
	case !glow && m.renderer.Running():
		m.renderer.Stop()
	}
	return nil
}

// handleAccentKeys handles key presses in the accent picker. Letters go
// to the filter input, so navigation is on the arrow keys only.
func (m Model) handleAccentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateGrid
		m.accentInput.Blur()
		return m, nil

	case tea.KeyUp:
		if m.accentCursor > 0 {
			m.accentCursor--
		}
		return m, nil

	case tea.KeyDown:
		if m.accentCursor < len(m.accentMatches)-1 {
			m.accentCursor++
		}
		return m, nil

	case tea.KeyEnter:
		hex := m.pickedAccent()
		if hex == "" {
			return m, nil
		}
		m.setStatus(m.store.SetAccent(hex))
		m.state = StateGrid
		m.accentInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.accentInput, cmd = m.accentInput.Update(msg)
	m.applyAccentFilter()
	return m, cmd
}

// pickedAccent resolves the picker selection: a literal hex value typed
// into the filter wins over the highlighted preset.
func (m Model) pickedAccent() string {
	typed := strings.TrimSpace(m.accentInput.Value())
	if strings.HasPrefix(typed, "#") && settings.ValidAccent(typed) {
		return typed
	}
	if len(m.accentMatches) > 0 && m.accentCursor < len(m.accentMatches) {
		return m.accentMatches[m.accentCursor].Hex
	}
	return ""
}

// presetSource implements fuzzy.Source for accent preset matching.
type presetSource []ui.NamedColor

func (p presetSource) String(i int) string {
	return p[i].Name
}

func (p presetSource) Len() int {
	return len(p)
}

// applyAccentFilter filters presets based on current filter input using
// fuzzy matching.
func (m *Model) applyAccentFilter() {
	filter := m.accentInput.Value()
	if filter == "" || strings.HasPrefix(filter, "#") {
		m.accentMatches = ui.AccentPresets
	} else {
		matches := fuzzy.FindFrom(filter, presetSource(ui.AccentPresets))

		m.accentMatches = nil
		for _, match := range matches {
			m.accentMatches = append(m.accentMatches, ui.AccentPresets[match.Index])
		}
	}

	// Ensure cursor is in bounds
	if m.accentCursor >= len(m.accentMatches) {
		m.accentCursor = len(m.accentMatches) - 1
	}
	if m.accentCursor < 0 {
		m.accentCursor = 0
	}
}

// handleHelpKeys handles key presses in the help view.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	m.state = StateGrid
	return m, nil
}

// setStatus records an operation error for the status line, clearing
// any previous one on success.
func (m *Model) setStatus(err error) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

// Commands

func frameTick() tea.Cmd {
	return tea.Tick(frameDelay, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return ClockTickMsg(t) })
}
