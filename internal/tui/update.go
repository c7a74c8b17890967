package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { // nolint:ireturn
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		// The footer truncates to the terminal width.
		m.help.Width = x.Width
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(x)
		return m, cmd

	case fireMsg:
		p := m.panelByID(x.Owner)
		if p == nil {
			return m, nil
		}
		return m, p.fire(x.Seq)
	}

	// Anything else (cursor blink) belongs to the focused text field.
	p := m.panels[m.active]
	if p.focus == p.fieldSlot() && p.field.enabled {
		var cmd tea.Cmd
		p.field.input, cmd = p.field.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// fire runs a due tick and re-arms focus once the panel settles back to idle.
func (p *panel) fire(seq uint64) tea.Cmd {
	wasRunning := p.timer.Running()
	if !p.sched.fire(seq) {
		return nil
	}
	if wasRunning && !p.timer.Running() {
		p.expired = true
	}
	return tea.Batch(p.sched.drain(), p.syncFocus())
}
