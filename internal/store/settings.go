package store

import (
	"fmt"

	"github.com/mcncl/jsonsmith/internal/errors"
)

// Theme names the color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings are display preferences. Command-line defaults come from the
// config file, not from here.
type Settings struct {
	Theme      Theme `json:"theme" yaml:"theme"`
	FontSize   int   `json:"fontSize" yaml:"font_size"`
	AutoFormat bool  `json:"autoFormat" yaml:"auto_format"`
	IndentSize int   `json:"indentSize" yaml:"indent_size"`
}

// DefaultSettings returns the settings used when none are stored.
func DefaultSettings() Settings {
	return Settings{
		Theme:      ThemeDark,
		FontSize:   14,
		AutoFormat: false,
		IndentSize: 2,
	}
}

// SettingsUpdate is a partial update; nil fields are left unchanged.
type SettingsUpdate struct {
	Theme      *Theme
	FontSize   *int
	AutoFormat *bool
	IndentSize *int
}

// Validate reports the first invalid preference.
func (s Settings) Validate() error {
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		return fmt.Errorf("theme must be %q or %q, got %q", ThemeLight, ThemeDark, s.Theme)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %d", s.FontSize)
	}
	if s.IndentSize < 0 || s.IndentSize > 10 {
		return fmt.Errorf("indent size must be between 0 and 10, got %d", s.IndentSize)
	}
	return nil
}

// Settings returns the stored settings, or the defaults when none are
// stored or the stored blob cannot be read.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings()
}

func (s *Store) settings() Settings {
	settings := DefaultSettings()
	s.load(SettingsKey, &settings)
	return settings
}

// UpdateSettings merges update into the stored settings.
func (s *Store) UpdateSettings(update SettingsUpdate) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings := s.settings()
	if update.Theme != nil {
		settings.Theme = *update.Theme
	}
	if update.FontSize != nil {
		settings.FontSize = *update.FontSize
	}
	if update.AutoFormat != nil {
		settings.AutoFormat = *update.AutoFormat
	}
	if update.IndentSize != nil {
		settings.IndentSize = *update.IndentSize
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, errors.NewStorageError(fmt.Sprintf("invalid settings: %v", err), err)
	}

	if err := s.save(SettingsKey, settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// ResetSettings stores the default settings.
func (s *Store) ResetSettings() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(SettingsKey, DefaultSettings())
}
