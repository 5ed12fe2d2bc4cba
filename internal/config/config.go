// Package config handles the yeardots config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the yeardots configuration. It covers appearance
// overrides and keybindings; runtime settings (theme choice, accent,
// dot size) live in the state file managed by internal/settings.
type Config struct {
	Themes ThemesConfig `toml:"themes"`
	Keys   KeysConfig   `toml:"keys"`
}

// ThemesConfig holds per-theme palette overrides.
type ThemesConfig struct {
	Dark  ThemeConfig `toml:"dark"`
	Light ThemeConfig `toml:"light"`
}

// ThemeConfig overrides individual palette colors. Empty fields keep
// the built-in color. All values are hex strings like "#1a1b26".
type ThemeConfig struct {
	// Terminal background the dots are blended against
	Background string `toml:"background"`

	// Color of dots for days already gone
	Past string `toml:"past"`

	// Color of dots for days still to come
	Future string `toml:"future"`

	// Clock and date text
	Text string `toml:"text"`

	// Dimmed chrome: weekday header, status line, help
	Muted string `toml:"muted"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Theme    string `toml:"theme"`
	Accent   string `toml:"accent"`
	DotBig   string `toml:"dot_bigger"`
	DotSmall string `toml:"dot_smaller"`
	Glow     string `toml:"glow"`
	Clock    string `toml:"clock"`
	Reset    string `toml:"reset"`
	Settings string `toml:"settings"`
	Help     string `toml:"help"`
	Quit     string `toml:"quit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Themes: ThemesConfig{
			Dark:  ThemeConfig{},
			Light: ThemeConfig{},
		},
		Keys: KeysConfig{
			Theme:    "t",
			Accent:   "a",
			DotBig:   "+,=",
			DotSmall: "-,_",
			Glow:     "G",
			Clock:    "c",
			Reset:    "R",
			Settings: "s",
			Help:     "?",
			Quit:     "q,ctrl+c",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/yeardots/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "yeardots", "config.toml")
	}
	// Default to ~/.config on Unix (including macOS)
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "yeardots", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "yeardots", "config.toml")
	}
	return filepath.Join(configDir, "yeardots", "config.toml")
}

// IsFirstRun returns true if no config file exists.
func IsFirstRun() bool {
	_, err := os.Stat(ConfigPath())
	return os.IsNotExist(err)
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Unmarshal directly into default config.
	// go-toml/v2 only overwrites fields present in the TOML file,
	// preserving defaults for unspecified fields.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// CreateDefaultConfigFile creates a default config file with comments.
func CreateDefaultConfigFile() error {
	path := ConfigPath()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content := generateDefaultConfigContent()
	return os.WriteFile(path, []byte(content), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# yeardots configuration\n")
	b.WriteString("# Runtime settings (theme, accent, dot size, glow, clock) are managed\n")
	b.WriteString("# in-app and stored separately; this file overrides palettes and keys.\n\n")

	b.WriteString("[themes.dark]\n")
	b.WriteString("# Hex color overrides; omit a key to keep the built-in color.\n")
	b.WriteString("# background = \"#16161e\"\n")
	b.WriteString("# past = \"#3b4261\"\n")
	b.WriteString("# future = \"#565f89\"\n")
	b.WriteString("# text = \"#c0caf5\"\n")
	b.WriteString("# muted = \"#565f89\"\n\n")

	b.WriteString("[themes.light]\n")
	b.WriteString("# background = \"#e1e2e7\"\n")
	b.WriteString("# past = \"#a8aecb\"\n")
	b.WriteString("# future = \"#9099c0\"\n")
	b.WriteString("# text = \"#343b58\"\n")
	b.WriteString("# muted = \"#848cb5\"\n\n")

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# theme = %q\n", cfg.Keys.Theme)
	fmt.Fprintf(&b, "# accent = %q\n", cfg.Keys.Accent)
	fmt.Fprintf(&b, "# dot_bigger = %q\n", cfg.Keys.DotBig)
	fmt.Fprintf(&b, "# dot_smaller = %q\n", cfg.Keys.DotSmall)
	fmt.Fprintf(&b, "# glow = %q\n", cfg.Keys.Glow)
	fmt.Fprintf(&b, "# clock = %q\n", cfg.Keys.Clock)
	fmt.Fprintf(&b, "# reset = %q\n", cfg.Keys.Reset)
	fmt.Fprintf(&b, "# settings = %q\n", cfg.Keys.Settings)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	checkHex := func(theme, field, value string) {
		if value == "" {
			return
		}
		if _, err := colorful.Hex(value); err != nil {
			warnings = append(warnings, fmt.Sprintf("Invalid color for themes.%s.%s: %s (expected hex like #rrggbb)", theme, field, value))
		}
	}

	for _, theme := range []struct {
		name string
		cfg  ThemeConfig
	}{
		{"dark", c.Themes.Dark},
		{"light", c.Themes.Light},
	} {
		checkHex(theme.name, "background", theme.cfg.Background)
		checkHex(theme.name, "past", theme.cfg.Past)
		checkHex(theme.name, "future", theme.cfg.Future)
		checkHex(theme.name, "text", theme.cfg.Text)
		checkHex(theme.name, "muted", theme.cfg.Muted)
	}

	return warnings
}
