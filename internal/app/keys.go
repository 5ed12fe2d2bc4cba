package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"yeardots/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Settings controls
	Theme    key.Binding
	Accent   key.Binding
	DotBig   key.Binding
	DotSmall key.Binding
	Glow     key.Binding
	Clock    key.Binding
	Reset    key.Binding
	Settings key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Accent: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "accent"),
		),
		DotBig: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger dots"),
		),
		DotSmall: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller dots"),
		),
		Glow: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "glow"),
		),
		Clock: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clock"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Theme != "" {
		km.Theme = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Theme)...),
			key.WithHelp(cfg.Theme, "theme"),
		)
	}
	if cfg.Accent != "" {
		km.Accent = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Accent)...),
			key.WithHelp(cfg.Accent, "accent"),
		)
	}
	if cfg.DotBig != "" {
		km.DotBig = key.NewBinding(
			key.WithKeys(parseKeys(cfg.DotBig)...),
			key.WithHelp(cfg.DotBig, "bigger dots"),
		)
	}
	if cfg.DotSmall != "" {
		km.DotSmall = key.NewBinding(
			key.WithKeys(parseKeys(cfg.DotSmall)...),
			key.WithHelp(cfg.DotSmall, "smaller dots"),
		)
	}
	if cfg.Glow != "" {
		km.Glow = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Glow)...),
			key.WithHelp(cfg.Glow, "glow"),
		)
	}
	if cfg.Clock != "" {
		km.Clock = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Clock)...),
			key.WithHelp(cfg.Clock, "clock"),
		)
	}
	if cfg.Reset != "" {
		km.Reset = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Reset)...),
			key.WithHelp(cfg.Reset, "reset"),
		)
	}
	if cfg.Settings != "" {
		km.Settings = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Settings)...),
			key.WithHelp(cfg.Settings, "settings"),
		)
	}
	if cfg.Help != "" {
		km.Help = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "help"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(parseKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
