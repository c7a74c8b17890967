package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/ensigniasec/countdown/internal/countdown"
)

// Options configures the timer panels shared by the TUI and headless runs.
type Options struct {
	Presets []countdown.Preset
	Mode    countdown.Mode
	// Timers is the number of independent panels; values below 1 mean 1.
	Timers int
	Bell   bool
	// Out receives the bell, and the label lines in headless runs.
	Out io.Writer
}

// panel is one independent timer with its clock, preset buttons and text entry.
type panel struct {
	id      string
	timer   *countdown.Timer
	sched   *teaScheduler
	clock   *clockLabel
	presets []*button
	field   *inputField
	start   *button
	bell    *bell
	left    *remainingBar

	// focus indexes presets, then the field, then the start control.
	focus   int
	width   int
	status  string
	expired bool
}

func newPanel(opts Options) (*panel, error) {
	id := uuid.NewString()
	p := &panel{
		id:    id,
		sched: newTeaScheduler(id),
		clock: &clockLabel{},
		field: newInputField(),
		start: &button{label: startLabel, enabled: true},
		bell:  &bell{w: opts.Out, enabled: opts.Bell},
	}

	bindings := make([]countdown.PresetBinding, 0, len(opts.Presets))
	for _, pr := range opts.Presets {
		b := &button{label: pr.Label, enabled: true}
		p.presets = append(p.presets, b)
		bindings = append(bindings, countdown.PresetBinding{Preset: pr, Trigger: b})
	}

	t, err := countdown.New(p.sched, p.clock, bindings,
		countdown.WithMode(opts.Mode),
		countdown.WithAlerter(p.bell),
		countdown.WithTextStart(p.field, p.start),
		countdown.WithID(id),
	)
	if err != nil {
		return nil, err
	}
	p.timer = t
	p.width = uniformWidth(p)
	p.left = newRemainingBar(p.width)
	return p, nil
}

func (p *panel) fieldSlot() int { return len(p.presets) }
func (p *panel) startSlot() int { return len(p.presets) + 1 }
func (p *panel) slots() int     { return len(p.presets) + 2 }

// Model is the root Bubble Tea model.
type Model struct {
	panels   []*panel
	active   int
	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel builds one panel per requested timer, all sharing the preset list.
func NewModel(opts Options) (Model, error) {
	n := opts.Timers
	if n < 1 {
		n = 1
	}
	m := Model{keys: newKeyMap(), help: help.New()}
	for i := range n {
		p, err := newPanel(opts)
		if err != nil {
			m.shutdown()
			return Model{}, fmt.Errorf("timer %d: %w", i+1, err)
		}
		m.panels = append(m.panels, p)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// shutdown tears down every timer, cancelling outstanding ticks.
func (m Model) shutdown() {
	for _, p := range m.panels {
		p.timer.Destroy()
	}
}

func (m Model) panelByID(id string) *panel {
	for _, p := range m.panels {
		if p.id == id {
			return p
		}
	}
	return nil
}

// rejectionText is the one-line status shown under the field for a bad duration.
func rejectionText(err error) string {
	switch {
	case errors.Is(err, countdown.ErrZeroDuration):
		return "Duration must be longer than 0:00"
	case errors.Is(err, countdown.ErrSyntax):
		return "Use seconds or m:ss"
	default:
		return err.Error()
	}
}
