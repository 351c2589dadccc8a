package state

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultIncrement = 10
	MinIncrement     = 1
	MaxIncrement     = 100

	DefaultRecentFiles      = 5
	MaxSupportedRecentFiles = 20
)

// Theme names the colour scheme used when showing source.
type Theme string

const (
	ThemeDark       Theme = "Dark"
	ThemeDefaultAlt Theme = "Default_Alt"
	ThemeDefault    Theme = "Default"
	ThemeDruid      Theme = "Druid"
	ThemeEclipse    Theme = "Eclipse"
	ThemeIdea       Theme = "Idea"
	ThemeMonokai    Theme = "Monokai"
	ThemeVS         Theme = "VS"
)

// Themes lists every supported theme.
var Themes = []Theme{
	ThemeDark, ThemeDefaultAlt, ThemeDefault, ThemeDruid,
	ThemeEclipse, ThemeIdea, ThemeMonokai, ThemeVS,
}

// ParseTheme matches name against Themes ignoring case.
func ParseTheme(name string) (Theme, bool) {
	for _, th := range Themes {
		if strings.EqualFold(string(th), strings.TrimSpace(name)) {
			return th, true
		}
	}
	return ThemeDefault, false
}

// Settings is the persisted user configuration.
type Settings struct {
	Increment      int      `toml:"increment"`
	Theme          Theme    `toml:"theme"`
	Spellcheck     bool     `toml:"spellcheck"`
	ShowInvisibles bool     `toml:"show_invisibles"`
	MaxRecentFiles int      `toml:"max_recent_files"`
	RecentFiles    []string `toml:"recent_files"` // most recent first
}

// Default returns the settings used when no settings file exists.
func Default() Settings {
	return Settings{
		Increment:      DefaultIncrement,
		Theme:          ThemeDefault,
		Spellcheck:     true,
		ShowInvisibles: false,
		MaxRecentFiles: DefaultRecentFiles,
	}
}

// ValidIncrement reports whether n is an allowed line number increment.
func ValidIncrement(n int) bool {
	return n >= MinIncrement && n <= MaxIncrement
}

// Normalize brings out-of-range values back into range.
func (s *Settings) Normalize() {
	switch {
	case s.Increment < MinIncrement:
		s.Increment = DefaultIncrement
	case s.Increment > MaxIncrement:
		s.Increment = MaxIncrement
	}

	if th, ok := ParseTheme(string(s.Theme)); ok {
		s.Theme = th
	} else {
		s.Theme = ThemeDefault
	}

	switch {
	case s.MaxRecentFiles < 1:
		s.MaxRecentFiles = DefaultRecentFiles
	case s.MaxRecentFiles > MaxSupportedRecentFiles:
		s.MaxRecentFiles = MaxSupportedRecentFiles
	}

	var recent []string
	for _, f := range s.RecentFiles {
		if f != "" && !slices.Contains(recent, f) {
			recent = append(recent, f)
		}
	}
	if len(recent) > s.MaxRecentFiles {
		recent = recent[:s.MaxRecentFiles]
	}
	s.RecentFiles = recent
}

// AddRecentFile moves path to the front of the recent files list.
func (s *Settings) AddRecentFile(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	recent := []string{path}
	for _, f := range s.RecentFiles {
		if f != path {
			recent = append(recent, f)
		}
	}
	s.RecentFiles = recent
	s.Normalize()
}

// Set assigns a setting from its TOML key and a string value.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "increment":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("increment must be a number: %w", err)
		}
		if !ValidIncrement(n) {
			return fmt.Errorf("increment must be between %d and %d, got %d", MinIncrement, MaxIncrement, n)
		}
		s.Increment = n
	case "theme":
		th, ok := ParseTheme(value)
		if !ok {
			return fmt.Errorf("unknown theme %q", value)
		}
		s.Theme = th
	case "spellcheck":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("spellcheck must be true or false: %w", err)
		}
		s.Spellcheck = b
	case "show_invisibles":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("show_invisibles must be true or false: %w", err)
		}
		s.ShowInvisibles = b
	case "max_recent_files":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_recent_files must be a number: %w", err)
		}
		s.MaxRecentFiles = n
		s.Normalize()
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// SaveToFile writes the settings as TOML, creating the directory if needed.
func (s *Settings) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings folder: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}

// LoadFromFile reads settings from a TOML file. A missing file yields the
// defaults. Keys absent from the file keep their default values.
func LoadFromFile(path string) (*Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &s, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	s.Normalize()
	return &s, nil
}
