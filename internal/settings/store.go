package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"yeardots/internal/debug"
)

// Store owns the settings state: one instance is constructed at startup
// and handed to the components that need it. Reads and writes happen on
// the event loop; the file lock guards against a second running instance.
type Store struct {
	path  string
	state Settings

	// Side-effect propagation. Apply pushes the full state through
	// onApply regardless of which field changed; the revision counter
	// lets consumers cheaply detect that a re-apply happened.
	onApply     func(Settings)
	revision    int
	lastApplied Settings
	applied     bool
}

// NewStore creates a store for the given state file path.
func NewStore(path string) *Store {
	return &Store{path: path, state: Default()}
}

// SetOnApply registers the change-notification callback invoked by
// Apply. Registering replaces any previous callback.
func (s *Store) SetOnApply(fn func(Settings)) {
	s.onApply = fn
}

// Get returns a copy of the current settings.
func (s *Store) Get() Settings {
	return s.state
}

// Revision returns how many times Apply has taken effect.
func (s *Store) Revision() int {
	return s.revision
}

// Load merges persisted state over defaults. A missing file yields pure
// defaults; an unreadable or corrupt file is a loud failure with no
// partial recovery.
func (s *Store) Load() error {
	defer debug.Timed("settings load")()

	s.state = Default()

	fileLock := flock.New(s.path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return fmt.Errorf("locking state file: %w", err)
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading state file: %w", err)
	}

	// Unmarshal over defaults so missing keys keep their default value.
	if err := json.Unmarshal(data, &s.state); err != nil {
		return fmt.Errorf("parsing state file %s: %w", s.path, err)
	}
	if err := s.state.normalize(); err != nil {
		return fmt.Errorf("state file %s: %w", s.path, err)
	}

	return nil
}

// Save persists the current state, then re-applies side effects.
func (s *Store) Save() error {
	defer debug.Timed("settings save")()

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	fileLock := flock.New(s.path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("locking state file: %w", err)
	}
	defer fileLock.Unlock()

	// Write atomically: write to temp file then rename
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return err
	}

	s.Apply()
	return nil
}

// Apply pushes the full current state through the registered callback.
// A second call with unchanged state is a no-op.
func (s *Store) Apply() {
	if s.applied && s.state == s.lastApplied {
		return
	}
	s.revision++
	s.lastApplied = s.state
	s.applied = true
	if s.onApply != nil {
		s.onApply(s.state)
	}
}

// SetTheme sets the theme and saves.
func (s *Store) SetTheme(t Theme) error {
	if !t.valid() {
		return fmt.Errorf("unknown theme %q", t)
	}
	s.state.Theme = t
	return s.Save()
}

// ToggleTheme flips between dark and light and saves.
func (s *Store) ToggleTheme() error {
	if s.state.Theme == ThemeDark {
		return s.SetTheme(ThemeLight)
	}
	return s.SetTheme(ThemeDark)
}

// SetAccent sets the accent color and saves. Invalid hex is rejected
// and the state left unchanged.
func (s *Store) SetAccent(hex string) error {
	if !ValidAccent(hex) {
		return fmt.Errorf("invalid accent color %q", hex)
	}
	s.state.AccentColor = hex
	return s.Save()
}

// SetDotSize sets the dot size, clamped to the supported range, and saves.
func (s *Store) SetDotSize(size float64) error {
	s.state.DotSize = ClampDotSize(size)
	return s.Save()
}

// SetGlow sets glow visibility and saves.
func (s *Store) SetGlow(enabled bool) error {
	s.state.GlowEnabled = enabled
	return s.Save()
}

// SetShowClock sets clock visibility and saves.
func (s *Store) SetShowClock(show bool) error {
	s.state.ShowClock = show
	return s.Save()
}

// Reset restores defaults and saves.
func (s *Store) Reset() error {
	s.state = Default()
	return s.Save()
}
