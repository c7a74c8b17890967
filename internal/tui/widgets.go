package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ensigniasec/countdown/internal/countdown"
)

// button is a start-affordance rendered as one labelled row.
type button struct {
	label   string
	enabled bool
}

func (b *button) SetEnabled(enabled bool) { b.enabled = enabled }

// inputField is the free-text duration entry. The timer locks it while running.
type inputField struct {
	input   textinput.Model
	enabled bool
}

func newInputField() *inputField {
	ti := textinput.New()
	ti.Placeholder = fieldPlaceholder
	ti.Prompt = ""
	ti.CharLimit = fieldCharLimit
	ti.Width = fieldWidth
	return &inputField{input: ti, enabled: true}
}

func (f *inputField) SetEnabled(enabled bool) {
	f.enabled = enabled
	if !enabled {
		f.input.Blur()
	}
}

// clockLabel holds the text the timer pushes to the display.
type clockLabel struct{ text string }

func (c *clockLabel) SetText(text string) { c.text = text }

// remainingBar shows the share of the last started duration still on the clock.
type remainingBar struct {
	bar   progress.Model
	total int
}

func newRemainingBar(width int) *remainingBar {
	return &remainingBar{bar: progress.New(
		progress.WithSolidFill(colorFocus),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)}
}

func (r *remainingBar) view(clock string) string {
	if r.total <= 0 {
		return r.bar.ViewAs(0)
	}
	// The idle label parses as a zero duration.
	left, err := countdown.ParseDuration(clock)
	if err != nil {
		left = 0
	}
	return r.bar.ViewAs(float64(left) / float64(r.total))
}

// bell rings the terminal bell and counts alerts for the view.
type bell struct {
	w       io.Writer
	enabled bool
	rung    int
}

func (b *bell) Alert() {
	b.rung++
	if b.enabled && b.w != nil {
		_, _ = io.WriteString(b.w, bellSequence)
	}
}

// lineDisplay prints every label change on its own line for headless runs.
// Repeats of the last printed text are dropped.
type lineDisplay struct {
	w    io.Writer
	last string
}

func (d *lineDisplay) SetText(text string) {
	if text == d.last {
		return
	}
	d.last = text
	_, _ = fmt.Fprintln(d.w, text)
}
