// Package settings manages persistent user settings.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme selects one of the built-in palettes.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Dot size bounds. Sizes outside this range render either invisibly
// small or wider than one terminal cell.
const (
	MinDotSize  = 0.5
	MaxDotSize  = 2.5
	DotSizeStep = 0.25
)

// Settings is the user state persisted between sessions. The JSON keys
// form the storage contract; every field always has a value (missing
// keys fall back to defaults on load).
type Settings struct {
	Theme       Theme   `json:"theme"`
	AccentColor string  `json:"accentColor"`
	DotSize     float64 `json:"dotSize"`
	GlowEnabled bool    `json:"glowEnabled"`
	ShowClock   bool    `json:"showClock"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Theme:       ThemeDark,
		AccentColor: "#4cc9f0",
		DotSize:     1.0,
		GlowEnabled: true,
		ShowClock:   true,
	}
}

// ValidAccent reports whether s parses as a hex color.
func ValidAccent(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// ClampDotSize pulls v into the supported range.
func ClampDotSize(v float64) float64 {
	if v < MinDotSize {
		return MinDotSize
	}
	if v > MaxDotSize {
		return MaxDotSize
	}
	return v
}

// StatePath returns the path to the state file.
// Uses ~/.local/state/yeardots/state.json (XDG style) on Unix systems.
func StatePath() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, "yeardots", "state.json")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".local", "state", "yeardots", "state.json")
	}
	// Fallback for systems without HOME
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "yeardots", "state.json")
}

func (t Theme) valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// normalize repairs fields a hand-edited state file may have broken.
func (s *Settings) normalize() error {
	if !s.Theme.valid() {
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	if !ValidAccent(s.AccentColor) {
		return fmt.Errorf("invalid accent color %q", s.AccentColor)
	}
	s.DotSize = ClampDotSize(s.DotSize)
	return nil
}
