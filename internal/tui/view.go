package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	cols := make([]string, 0, len(m.panels))
	for i, p := range m.panels {
		col := renderPanel(p, i == m.active)
		if i > 0 {
			col = lipgloss.NewStyle().MarginLeft(panelGap).Render(col)
		}
		cols = append(cols, col)
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// uniformWidth is the widest natural width of any control in the panel. Every
// control renders at this width so the column does not resize as the clock changes.
func uniformWidth(p *panel) int {
	widest := naturalWidth(p.clock.text)
	for _, b := range p.presets {
		widest = max(widest, naturalWidth(b.label))
	}
	widest = max(widest, naturalWidth(p.start.label))
	// The field reserves one extra cell for the cursor.
	widest = max(widest, fieldWidth+1+2*buttonPadding)
	return widest
}

func naturalWidth(s string) int {
	return lipgloss.Width(s) + 2*buttonPadding
}

func renderPanel(p *panel, active bool) string {
	w := p.width
	lines := make([]string, 0, p.slots()+3)

	clock := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorClockFg)).
		Background(lipgloss.Color(colorClockBg)).
		Bold(true).
		Align(lipgloss.Center).
		Width(w)
	lines = append(lines, clock.Render(p.clock.text))
	lines = append(lines, p.left.view(p.clock.text))

	for i, b := range p.presets {
		lines = append(lines, renderButton(b, active && p.focus == i, w))
	}
	lines = append(lines, renderField(p.field, active && p.focus == p.fieldSlot(), w))
	lines = append(lines, renderButton(p.start, active && p.focus == p.startSlot(), w))

	switch {
	case p.status != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(colorError)).Width(w).Render(p.status))
	case p.expired:
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(colorAlert)).Bold(true).Width(w).Render("Time's up!"))
	}

	border := lipgloss.Color(colorMuted)
	if active {
		border = lipgloss.Color(colorFocus)
	}
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border)
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderButton(b *button, focused bool, width int) string {
	style := lipgloss.NewStyle().Padding(0, buttonPadding).Width(width)
	if b.enabled {
		style = style.Foreground(lipgloss.Color(colorButtonFg)).Background(lipgloss.Color(colorButtonBg))
	} else {
		style = style.Foreground(lipgloss.Color(colorDisabledFg)).Background(lipgloss.Color(colorDisabledBg))
	}
	if focused {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(b.label)
}

func renderField(f *inputField, focused bool, width int) string {
	style := lipgloss.NewStyle().Padding(0, buttonPadding).Width(width)
	if !f.enabled {
		style = style.Foreground(lipgloss.Color(colorDisabledFg)).Background(lipgloss.Color(colorDisabledBg))
		return style.Render(f.input.Value())
	}
	if focused {
		style = style.Underline(true)
	}
	return style.Render(f.input.View())
}
