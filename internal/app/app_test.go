package app

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"yeardots/internal/config"
	"yeardots/internal/grid"
	"yeardots/internal/settings"
	"yeardots/internal/ui"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := settings.NewStore(filepath.Join(t.TempDir(), "state.json"))
	return New(config.DefaultConfig(), store)
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if m.state != StateGrid {
		t.Errorf("Expected initial state StateGrid, got %d", m.state)
	}

	now := time.Now()
	if m.curYear != now.Year() {
		t.Errorf("Expected current year %d, got %d", now.Year(), m.curYear)
	}
	if m.curDay != grid.DayOfYear(now) {
		t.Errorf("Expected current day %d, got %d", grid.DayOfYear(now), m.curDay)
	}

	g := m.renderer.Grid()
	if g.DayCount() != grid.DaysInYear(now.Year()) {
		t.Errorf("Expected full grid at startup, got %d cells", g.DayCount())
	}

	if m.clockText == "" || m.dateText == "" {
		t.Error("Expected clock and date text to be set at startup")
	}
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)

	newModel, _ := m.Update(keyMsg('t'))
	m = newModel.(Model)
	if got := m.store.Get().Theme; got != settings.ThemeLight {
		t.Errorf("Expected light theme after toggle, got %q", got)
	}

	newModel, _ = m.Update(keyMsg('t'))
	m = newModel.(Model)
	if got := m.store.Get().Theme; got != settings.ThemeDark {
		t.Errorf("Expected dark theme after second toggle, got %q", got)
	}
}

func TestDotSizeKeys(t *testing.T) {
	m := newTestModel(t)
	start := m.store.Get().DotSize

	newModel, _ := m.Update(keyMsg('+'))
	m = newModel.(Model)
	if got := m.store.Get().DotSize; got != start+settings.DotSizeStep {
		t.Errorf("Expected dot size %v, got %v", start+settings.DotSizeStep, got)
	}

	newModel, _ = m.Update(keyMsg('-'))
	m = newModel.(Model)
	if got := m.store.Get().DotSize; got != start {
		t.Errorf("Expected dot size back at %v, got %v", start, got)
	}
}

func TestGlowToggleControlsAnimation(t *testing.T) {
	m := newTestModel(t)
	m.Init()

	if !m.renderer.Running() {
		t.Fatal("Expected animation running with default glow on")
	}

	newModel, _ := m.Update(keyMsg('G'))
	m = newModel.(Model)
	if m.store.Get().GlowEnabled {
		t.Error("Expected glow off after toggle")
	}
	if m.renderer.Running() {
		t.Error("Expected animation stopped with glow off")
	}

	newModel, cmd := m.Update(keyMsg('G'))
	m = newModel.(Model)
	if !m.renderer.Running() {
		t.Error("Expected animation restarted with glow on")
	}
	if cmd == nil {
		t.Error("Expected a frame tick command when animation restarts")
	}
}

func TestFrameMsgReschedulesWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m.renderer.Start(time.Now())

	_, cmd := m.Update(FrameMsg(time.Now()))
	if cmd == nil {
		t.Error("Expected next frame to be scheduled while running")
	}

	m.renderer.Stop()
	_, cmd = m.Update(FrameMsg(time.Now()))
	if cmd != nil {
		t.Error("Expected no frame scheduling after Stop")
	}
}

func TestClockTickUpdatesText(t *testing.T) {
	m := newTestModel(t)

	ts := time.Date(m.curYear, time.June, 15, 14, 7, 0, 0, time.Local)
	// Avoid a simultaneous rollover in this test
	m.curDay = grid.DayOfYear(ts)

	newModel, cmd := m.Update(ClockTickMsg(ts))
	m = newModel.(Model)

	if m.clockText != "14:07" {
		t.Errorf("Expected clock '14:07', got %q", m.clockText)
	}
	if cmd == nil {
		t.Error("Expected the clock tick to reschedule itself")
	}
}

func TestMidnightRollover(t *testing.T) {
	m := newTestModel(t)

	// Pretend the model was built yesterday
	yesterday := time.Now().AddDate(0, 0, -1)
	m.curYear = yesterday.Year()
	m.curDay = grid.DayOfYear(yesterday)
	m.renderer.BuildGrid(m.curYear, m.curDay)

	now := time.Now()
	newModel, _ := m.Update(ClockTickMsg(now))
	m = newModel.(Model)

	if m.curDay != grid.DayOfYear(now) {
		t.Errorf("Expected rollover to day %d, got %d", grid.DayOfYear(now), m.curDay)
	}
	if got := m.renderer.Grid().Today; got != grid.DayOfYear(now) {
		t.Errorf("Expected grid rebuilt for day %d, got %d", grid.DayOfYear(now), got)
	}
}

func TestAccentPickerFlow(t *testing.T) {
	m := newTestModel(t)

	newModel, _ := m.Update(keyMsg('a'))
	m = newModel.(Model)
	if m.state != StateAccent {
		t.Fatalf("Expected StateAccent after 'a', got %d", m.state)
	}

	// Filter narrows the preset list
	newModel, _ = m.Update(keyMsg('m'))
	m = newModel.(Model)
	newModel, _ = m.Update(keyMsg('i'))
	m = newModel.(Model)
	if len(m.accentMatches) == 0 {
		t.Fatal("Expected at least one preset matching 'mi'")
	}
	if len(m.accentMatches) >= len(ui.AccentPresets) {
		t.Errorf("Expected filter to narrow presets, still %d", len(m.accentMatches))
	}

	picked := m.accentMatches[m.accentCursor].Hex
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	if m.state != StateGrid {
		t.Errorf("Expected StateGrid after enter, got %d", m.state)
	}
	if got := m.store.Get().AccentColor; got != picked {
		t.Errorf("Expected accent %q, got %q", picked, got)
	}
}

func TestAccentPickerLiteralHex(t *testing.T) {
	m := newTestModel(t)

	newModel, _ := m.Update(keyMsg('a'))
	m = newModel.(Model)
	for _, r := range "#a1b2c3" {
		newModel, _ = m.Update(keyMsg(r))
		m = newModel.(Model)
	}
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)

	if got := m.store.Get().AccentColor; got != "#a1b2c3" {
		t.Errorf("Expected literal hex accent, got %q", got)
	}
}

func TestAccentPickerCancel(t *testing.T) {
	m := newTestModel(t)
	before := m.store.Get().AccentColor

	newModel, _ := m.Update(keyMsg('a'))
	m = newModel.(Model)
	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = newModel.(Model)

	if m.state != StateGrid {
		t.Errorf("Expected StateGrid after esc, got %d", m.state)
	}
	if m.store.Get().AccentColor != before {
		t.Error("Accent changed despite cancel")
	}
}

func TestSettingsPanelToggle(t *testing.T) {
	m := newTestModel(t)

	newModel, _ := m.Update(keyMsg('s'))
	m = newModel.(Model)
	if !m.showSettings {
		t.Error("Expected settings panel shown after 's'")
	}

	newModel, _ = m.Update(keyMsg('s'))
	m = newModel.(Model)
	if m.showSettings {
		t.Error("Expected settings panel hidden after second 's'")
	}
}

func TestResetKey(t *testing.T) {
	m := newTestModel(t)

	newModel, _ := m.Update(keyMsg('t'))
	m = newModel.(Model)
	newModel, _ = m.Update(keyMsg('+'))
	m = newModel.(Model)

	newModel, _ = m.Update(keyMsg('R'))
	m = newModel.(Model)

	if m.store.Get() != settings.Default() {
		t.Errorf("Expected defaults after reset, got %+v", m.store.Get())
	}
}

func TestHelpState(t *testing.T) {
	m := newTestModel(t)

	newModel, _ := m.Update(keyMsg('?'))
	m = newModel.(Model)
	if m.state != StateHelp {
		t.Errorf("Expected StateHelp after '?', got %d", m.state)
	}

	newModel, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = newModel.(Model)
	if m.state != StateGrid {
		t.Errorf("Expected StateGrid after closing help, got %d", m.state)
	}
}

func TestViewRenders(t *testing.T) {
	m := newTestModel(t)
	m.width = 80
	m.height = 40

	if v := m.View(); v == "" {
		t.Error("Expected non-empty grid view")
	}

	m.state = StateAccent
	if v := m.View(); v == "" {
		t.Error("Expected non-empty accent picker view")
	}

	m.state = StateHelp
	if v := m.View(); v == "" {
		t.Error("Expected non-empty help view")
	}
}
