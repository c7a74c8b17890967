package presets

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/countdown/internal/config"
	"github.com/ensigniasec/countdown/internal/countdown"
)

// Manager handles the logic for the presets commands.
type Manager struct {
	File *config.File
}

// NewManager creates a new Manager backed by the config file at path.
func NewManager(configPath string) (*Manager, error) {
	f, err := config.NewFile(configPath)
	if err != nil {
		return nil, err
	}

	return &Manager{File: f}, nil
}

// View prints the configured presets to the provided writer.
func (m *Manager) View(w io.Writer) {
	if len(m.File.Data.Presets) == 0 {
		fmt.Fprintln(w, "No presets configured.")
		return
	}

	for i, p := range m.File.Data.Presets {
		seconds, err := countdown.ParseDuration(p.Duration)
		if err != nil {
			fmt.Fprintf(w, "%d. %s (invalid: %v)\n", i+1, p.Label, err)
			continue
		}
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, p.Label, countdown.FormatSeconds(seconds))
	}
}

// Add appends a preset. The duration uses the free-text grammar.
func (m *Manager) Add(label, duration string) error {
	logrus.Debugf("Adding preset: label=%s, duration=%s", label, duration)
	if label == "" {
		return fmt.Errorf("%w: label is empty", countdown.ErrBadPreset)
	}
	if _, err := countdown.ParseDuration(duration); err != nil {
		return fmt.Errorf("preset %q: %w", label, err)
	}
	m.File.Data.Presets = append(m.File.Data.Presets, config.Preset{Label: label, Duration: duration})
	return m.File.Save()
}

// Reset restores the default presets.
func (m *Manager) Reset() error {
	logrus.Debug("Resetting presets")
	m.File.Data.Presets = config.DefaultPresets()
	return m.File.Save()
}
