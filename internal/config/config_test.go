package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Keys.Theme != "t" {
		t.Errorf("Expected theme key 't', got %q", cfg.Keys.Theme)
	}

	if cfg.Keys.Quit != "q,ctrl+c" {
		t.Errorf("Expected quit key 'q,ctrl+c', got %q", cfg.Keys.Quit)
	}

	if cfg.Themes.Dark.Background != "" {
		t.Errorf("Expected no dark background override by default, got %q", cfg.Themes.Dark.Background)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantWarning bool
	}{
		{
			name:        "default config is valid",
			config:      DefaultConfig(),
			wantWarning: false,
		},
		{
			name: "valid hex overrides",
			config: &Config{
				Themes: ThemesConfig{
					Dark: ThemeConfig{Background: "#16161e", Past: "#3b4261"},
				},
			},
			wantWarning: false,
		},
		{
			name: "invalid hex value",
			config: &Config{
				Themes: ThemesConfig{
					Dark: ThemeConfig{Past: "not-a-color"},
				},
			},
			wantWarning: true,
		},
		{
			name: "missing hash prefix",
			config: &Config{
				Themes: ThemesConfig{
					Light: ThemeConfig{Text: "343b58"},
				},
			},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.Validate()
			if tt.wantWarning && len(warnings) == 0 {
				t.Error("Expected warnings, got none")
			}
			if !tt.wantWarning && len(warnings) > 0 {
				t.Errorf("Expected no warnings, got %v", warnings)
			}
		})
	}
}

func TestLoadFromPathMissing(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got error: %v", err)
	}
	if cfg.Keys.Help != "?" {
		t.Errorf("Expected default help key '?', got %q", cfg.Keys.Help)
	}
}

func TestLoadFromPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[themes.dark]
past = "#ff0000"

[keys]
theme = "T"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Themes.Dark.Past != "#ff0000" {
		t.Errorf("Expected dark past override '#ff0000', got %q", cfg.Themes.Dark.Past)
	}
	if cfg.Keys.Theme != "T" {
		t.Errorf("Expected theme key override 'T', got %q", cfg.Keys.Theme)
	}
	// Unspecified fields keep defaults
	if cfg.Keys.Quit != "q,ctrl+c" {
		t.Errorf("Expected default quit key, got %q", cfg.Keys.Quit)
	}
}

func TestFirstRunCreatesDefaultConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if !IsFirstRun() {
		t.Fatal("Expected first run with an empty config dir")
	}

	if err := CreateDefaultConfigFile(); err != nil {
		t.Fatalf("CreateDefaultConfigFile failed: %v", err)
	}
	if IsFirstRun() {
		t.Error("Expected IsFirstRun to be false after creating the config file")
	}

	// The generated file is all comments, so loading it yields defaults.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed on generated config: %v", err)
	}
	if cfg.Keys.Theme != DefaultConfig().Keys.Theme {
		t.Errorf("Generated config changed theme key: got %q", cfg.Keys.Theme)
	}
	if len(cfg.Validate()) != 0 {
		t.Errorf("Generated config produced warnings: %v", cfg.Validate())
	}
}

func TestLoadFromPathInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is not toml ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("Expected error for invalid TOML, got nil")
	}
}
