// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"yeardots/internal/config"
	"yeardots/internal/settings"
)

// themeColors are the raw hex values a palette is built from.
type themeColors struct {
	background string
	past       string
	future     string
	text       string
	muted      string
}

// Built-in themes. The config file can override individual entries.
var builtinThemes = map[settings.Theme]themeColors{
	settings.ThemeDark: {
		background: "#101018",
		past:       "#3a3f58",
		future:     "#1f2335",
		text:       "#c8d0f0",
		muted:      "#565f89",
	},
	settings.ThemeLight: {
		background: "#e8e9ef",
		past:       "#9aa2c8",
		future:     "#c6cade",
		text:       "#363c5c",
		muted:      "#8189ad",
	},
}

// Palette is the active style set. Rebuilt wholesale on every settings
// apply; the renderer reads it live, so a theme change needs no grid
// rebuild. Dot cells keep raw colors because the glow blends them per
// frame; chrome gets ready-made styles.
type Palette struct {
	Theme settings.Theme

	Background colorful.Color
	PastDot    colorful.Color
	FutureDot  colorful.Color
	Accent     colorful.Color

	Text     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
}

// BuildPalette derives the full style set from the active theme, the
// config file overrides for that theme, and the user's accent color.
func BuildPalette(cfg *config.Config, s settings.Settings) Palette {
	colors := builtinThemes[s.Theme]

	var override config.ThemeConfig
	if cfg != nil {
		if s.Theme == settings.ThemeLight {
			override = cfg.Themes.Light
		} else {
			override = cfg.Themes.Dark
		}
	}

	pick := func(overrideHex, builtinHex string) colorful.Color {
		if overrideHex != "" {
			if c, err := colorful.Hex(overrideHex); err == nil {
				return c
			}
		}
		c, _ := colorful.Hex(builtinHex)
		return c
	}

	accent, err := colorful.Hex(s.AccentColor)
	if err != nil {
		accent, _ = colorful.Hex(settings.Default().AccentColor)
	}

	return Palette{
		Theme:      s.Theme,
		Background: pick(override.Background, colors.background),
		PastDot:    pick(override.Past, colors.past),
		FutureDot:  pick(override.Future, colors.future),
		Accent:     accent,
		Text:       styleFor(pick(override.Text, colors.text)),
		Muted:      styleFor(pick(override.Muted, colors.muted)),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Title:      styleFor(accent).Bold(true),
		Selected:   styleFor(accent).Bold(true),
	}
}

func styleFor(c colorful.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}
