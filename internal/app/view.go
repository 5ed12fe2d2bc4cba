package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yeardots/internal/grid"
	"yeardots/internal/settings"
	"yeardots/internal/ui"
)

var baseStyle = lipgloss.NewStyle().Padding(1, 2)

// View renders the UI.
func (m Model) View() string {
	switch m.state {
	case StateAccent:
		return baseStyle.Render(m.viewAccentPicker())
	case StateHelp:
		return baseStyle.Render(m.viewHelp())
	default:
		return baseStyle.Render(m.viewGrid())
	}
}

// viewGrid renders the main screen: clock, grid, status, and the
// settings panel when toggled on.
func (m Model) viewGrid() string {
	pal := m.renderer.Palette()
	s := m.store.Get()

	var b strings.Builder

	b.WriteString(pal.Title.Render(fmt.Sprintf("%d", m.curYear)))
	b.WriteString("\n")

	if s.ShowClock {
		b.WriteString(pal.Text.Render(m.clockText))
		b.WriteString("  ")
		b.WriteString(pal.Muted.Render(m.dateText))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(ui.WeekdayHeader(pal.Muted))
	b.WriteString("\n")
	b.WriteString(m.renderer.Frame(m.frameTime))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(pal.Error.Render("Error: "+m.status) + "\n")
	} else {
		total := grid.DaysInYear(m.curYear)
		b.WriteString(pal.Muted.Render(fmt.Sprintf("day %d/%d", m.curDay, total)) + "\n")
	}

	if m.showSettings {
		b.WriteString("\n" + m.viewSettingsPanel(pal, s))
	}

	b.WriteString("\n" + pal.Muted.Render("t theme • a accent • +/- dots • G glow • c clock • s settings • ? help • q quit"))

	return b.String()
}

// viewSettingsPanel renders the current settings values.
func (m Model) viewSettingsPanel(pal ui.Palette, s settings.Settings) string {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	rows := []string{
		fmt.Sprintf("theme       %s", s.Theme),
		fmt.Sprintf("accent      %s %s", pal.Selected.Render("●"), s.AccentColor),
		fmt.Sprintf("dot size    %.2f", s.DotSize),
		fmt.Sprintf("glow        %s", onOff(s.GlowEnabled)),
		fmt.Sprintf("clock       %s", onOff(s.ShowClock)),
	}

	panel := pal.Muted.Render("SETTINGS") + "\n" + pal.Text.Render(strings.Join(rows, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(pal.Accent.Hex())).
		Padding(0, 1).
		Render(panel)
}

// viewAccentPicker renders the accent color picker.
func (m Model) viewAccentPicker() string {
	pal := m.renderer.Palette()

	var b strings.Builder
	b.WriteString(pal.Title.Render("ACCENT COLOR") + "\n\n")
	b.WriteString(m.accentInput.View() + "\n\n")

	if len(m.accentMatches) == 0 {
		b.WriteString(pal.Muted.Render("No matching colors") + "\n")
	}

	for i, c := range m.accentMatches {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render("●")
		line := fmt.Sprintf("%s %-10s %s", swatch, c.Name, pal.Muted.Render(c.Hex))
		if i == m.accentCursor {
			line = pal.Selected.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + pal.Muted.Render("↑/↓ select • enter apply • esc cancel"))
	return b.String()
}

// viewHelp renders the help screen.
func (m Model) viewHelp() string {
	pal := m.renderer.Palette()

	bindings := []struct {
		keys string
		desc string
	}{
		{m.keys.Theme.Help().Key, "toggle dark/light theme"},
		{m.keys.Accent.Help().Key, "pick accent color"},
		{m.keys.DotBig.Help().Key + "/" + m.keys.DotSmall.Help().Key, "grow/shrink dots"},
		{m.keys.Glow.Help().Key, "toggle today's glow"},
		{m.keys.Clock.Help().Key, "show/hide clock"},
		{m.keys.Settings.Help().Key, "show/hide settings panel"},
		{m.keys.Reset.Help().Key, "reset settings to defaults"},
		{m.keys.Quit.Help().Key, "quit"},
	}

	var b strings.Builder
	b.WriteString(pal.Title.Render("YEARDOTS") + "\n\n")
	b.WriteString(pal.Text.Render("One dot per day; past, today, and future each get their own color.") + "\n\n")
	for _, bind := range bindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n", pal.Selected.Render(fmt.Sprintf("%-8s", bind.keys)), pal.Text.Render(bind.desc)))
	}
	b.WriteString("\n" + pal.Muted.Render("press any key to close"))
	return b.String()
}
