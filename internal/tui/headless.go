package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/ensigniasec/countdown/internal/countdown"
)

// StartRequest picks what a headless run counts down: a preset by index when
// UsePreset is set, otherwise the free text.
type StartRequest struct {
	Text      string
	Preset    int
	UsePreset bool
}

// headlessModel drives a single timer without a renderer and quits once it
// settles back to idle.
type headlessModel struct {
	timer *countdown.Timer
	sched *teaScheduler
}

func (m headlessModel) Init() tea.Cmd { return m.sched.drain() }

func (m headlessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	x, ok := msg.(fireMsg)
	if !ok {
		return m, nil
	}
	m.sched.fire(x.Seq)
	if !m.timer.Running() {
		return m, tea.Quit
	}
	return m, m.sched.drain()
}

func (m headlessModel) View() string { return "" }

// RunHeadless counts down without a terminal UI, printing each label change to
// opts.Out. A rejected duration rings the bell and is returned before any
// countdown starts.
func RunHeadless(ctx context.Context, opts Options, req StartRequest) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	id := uuid.NewString()
	sched := newTeaScheduler(id)

	bindings := make([]countdown.PresetBinding, 0, len(opts.Presets))
	for _, p := range opts.Presets {
		bindings = append(bindings, countdown.PresetBinding{Preset: p})
	}
	t, err := countdown.New(sched, &lineDisplay{w: opts.Out, last: countdown.IdleText}, bindings,
		countdown.WithMode(opts.Mode),
		countdown.WithAlerter(&bell{w: opts.Out, enabled: opts.Bell}),
		countdown.WithID(id),
	)
	if err != nil {
		return err
	}
	defer t.Destroy()

	if req.UsePreset {
		if req.Preset < 0 || req.Preset >= len(opts.Presets) {
			return fmt.Errorf("preset %d does not exist (have %d)", req.Preset+1, len(opts.Presets))
		}
		t.StartPreset(req.Preset)
	} else if err := t.StartText(req.Text); err != nil {
		return err
	}

	p := tea.NewProgram(headlessModel{timer: t, sched: sched},
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
	_, err = p.Run()
	return err
}
