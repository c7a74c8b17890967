package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/countdown/internal/countdown"
	"github.com/ensigniasec/countdown/internal/validate"
)

// DefaultPath is where the config lives unless --config says otherwise.
const DefaultPath = "~/.config/countdown/config.yaml"

// Preset is one configured one-click duration. Duration uses the same grammar as
// the free-text field, e.g. "90" or "1:30".
type Preset struct {
	Label    string `yaml:"label" validate:"required"`
	Duration string `yaml:"duration" validate:"required,countdown_duration"`
}

// Settings is the structure of the config file.
type Settings struct {
	Mode    string   `yaml:"mode" validate:"omitempty,oneof=wallclock counter"`
	Bell    bool     `yaml:"bell"`
	Presets []Preset `yaml:"presets" validate:"required,min=1,dive"`
}

// File handles loading and saving the config file.
type File struct {
	Path string
	Data Settings
}

// DefaultPresets returns the stock one-click durations.
func DefaultPresets() []Preset {
	return []Preset{
		{Label: "Five seconds", Duration: "5"},
		{Label: "Half minute", Duration: "30"},
		{Label: "Minute", Duration: "1:00"},
		{Label: "Minute and a half", Duration: "1:30"},
		{Label: "Two minutes", Duration: "2:00"},
	}
}

// Defaults returns the settings written on first use.
func Defaults() Settings {
	return Settings{
		Mode:    countdown.ModeWallClock.String(),
		Bell:    true,
		Presets: DefaultPresets(),
	}
}

// NewFile returns the config at path, or defaults when the file does not exist yet.
func NewFile(path string) (*File, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	f := &File{Path: expandedPath, Data: Defaults()}
	if err := f.Load(); err != nil {
		// A missing file just means defaults.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return f, nil
}

// NewOrExisting returns the existing config, or writes the defaults to disk and
// returns them when no file exists yet.
func NewOrExisting(path string) (*File, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	_, statErr := os.Stat(expandedPath)
	switch {
	case statErr == nil:
		return NewFile(path)
	case errors.Is(statErr, os.ErrNotExist):
		f, err := NewFile(path)
		if err != nil {
			return nil, err
		}
		if err := f.Save(); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, statErr
	}
}

// Load reads the file and repairs invalid values in place.
func (f *File) Load() error {
	logrus.Debug("Loading config file from: ", f.Path)
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("parse %s: %w", f.Path, err)
	}
	f.Data = s

	if err := validate.Struct(f.Data); err != nil && f.heal() {
		if err := f.Save(); err != nil {
			return err
		}
	}
	return nil
}

// heal replaces invalid values with defaults and reports whether anything changed.
func (f *File) heal() bool {
	changed := false
	if validate.Var(f.Data.Mode, "omitempty,oneof=wallclock counter") != nil {
		logrus.Warnf("Invalid mode %q in config; using %s.", f.Data.Mode, countdown.ModeWallClock)
		f.Data.Mode = countdown.ModeWallClock.String()
		changed = true
	}

	kept := f.Data.Presets[:0]
	for _, p := range f.Data.Presets {
		if err := validate.Struct(p); err != nil {
			logrus.Warnf("Dropping invalid preset %q (%q) from config.", p.Label, p.Duration)
			changed = true
			continue
		}
		kept = append(kept, p)
	}
	f.Data.Presets = kept
	if len(f.Data.Presets) == 0 {
		logrus.Warn("No valid presets in config; restoring defaults.")
		f.Data.Presets = DefaultPresets()
		changed = true
	}
	return changed
}

// Save writes the settings to the file.
func (f *File) Save() error {
	logrus.Debug("Saving config file to: ", f.Path)
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(f.Data)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o600)
}

// Mode returns the configured timing strategy.
func (f *File) Mode() (countdown.Mode, error) {
	return countdown.ParseMode(f.Data.Mode)
}

// Presets converts the configured presets into countdown presets.
func (f *File) Presets() ([]countdown.Preset, error) {
	out := make([]countdown.Preset, 0, len(f.Data.Presets))
	for _, p := range f.Data.Presets {
		seconds, err := countdown.ParseDuration(p.Duration)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", p.Label, err)
		}
		out = append(out, countdown.Preset{Label: p.Label, Seconds: seconds})
	}
	return out, nil
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
