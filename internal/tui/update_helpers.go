package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/countdown/internal/countdown"
)

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) { // nolint:ireturn
	p := m.panels[m.active]

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.NextPanel):
		return m.switchPanel(1)
	case key.Matches(msg, m.keys.PrevPanel):
		return m.switchPanel(-1)
	}

	// The text field swallows printable keys, so global letter bindings are off here.
	if p.focus == p.fieldSlot() {
		return m, p.handleFieldKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		return m, p.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		return m, p.moveFocus(1)
	case key.Matches(msg, m.keys.Press):
		return m, p.press()
	case key.Matches(msg, m.keys.Preset):
		n := int(msg.Runes[0] - '1')
		if n < len(p.presets) {
			return m, p.startPreset(n)
		}
	}
	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.shutdown()
	m.quitting = true
	return m, tea.Quit
}

// switchPanel moves keyboard focus to another timer panel.
func (m Model) switchPanel(delta int) (Model, tea.Cmd) {
	n := len(m.panels)
	if n < 2 {
		return m, nil
	}
	m.panels[m.active].field.input.Blur()
	m.active = (m.active + delta + n) % n
	return m, m.panels[m.active].syncFocus()
}

func (p *panel) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		return p.startText()
	case tea.KeyUp:
		return p.moveFocus(-1)
	case tea.KeyDown, tea.KeyEsc:
		return p.moveFocus(1)
	}
	if !p.field.enabled {
		return nil
	}
	var cmd tea.Cmd
	p.field.input, cmd = p.field.input.Update(msg)
	return cmd
}

func (p *panel) moveFocus(delta int) tea.Cmd {
	n := p.slots()
	if p.focus == p.fieldSlot() {
		p.field.input.Blur()
	}
	p.focus = (p.focus + delta + n) % n
	return p.syncFocus()
}

// syncFocus gives the text field keyboard focus when it is selected and enabled.
func (p *panel) syncFocus() tea.Cmd {
	if p.focus == p.fieldSlot() && p.field.enabled && !p.field.input.Focused() {
		return p.field.input.Focus()
	}
	return nil
}

// press activates whichever control has focus. The field commits like Start.
func (p *panel) press() tea.Cmd {
	if p.focus < len(p.presets) {
		return p.startPreset(p.focus)
	}
	return p.startText()
}

// startPreset ignores disabled buttons; the timer would reject a double start.
func (p *panel) startPreset(i int) tea.Cmd {
	if !p.presets[i].enabled {
		return nil
	}
	p.status = ""
	p.expired = false
	p.timer.StartPreset(i)
	p.left.total = p.timer.Presets()[i].Seconds
	return p.sched.drain()
}

// startText starts from the field contents. Rejected input keeps the text so it
// can be corrected.
func (p *panel) startText() tea.Cmd {
	if !p.start.enabled {
		return nil
	}
	text := p.field.input.Value()
	if err := p.timer.StartText(text); err != nil {
		p.status = rejectionText(err)
		return nil
	}
	p.left.total, _ = countdown.ParseDuration(text)
	p.status = ""
	p.expired = false
	return p.sched.drain()
}
