package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Run starts the interactive Bubble Tea program and blocks until the user quits
// or ctx is cancelled. Every timer is destroyed before Run returns.
func Run(ctx context.Context, opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stderr
	}
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer model.shutdown()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err = p.Run()
	return err
}
