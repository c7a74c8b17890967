package tui

// Package-level constants to avoid magic numbers and improve readability.
const (
	fieldPlaceholder = "m:ss"
	fieldCharLimit   = 12
	fieldWidth       = 8
	startLabel       = "Start"
	bellSequence     = "\a"

	// buttonPadding is the horizontal padding on each side of a button label.
	buttonPadding = 1
	// panelGap separates side-by-side timer panels.
	panelGap = 2
)

// Colors follow the classic widget fallback: white on blue buttons, black on white clock.
const (
	colorButtonFg   = "15"
	colorButtonBg   = "27"
	colorClockFg    = "0"
	colorClockBg    = "15"
	colorDisabledFg = "244"
	colorDisabledBg = "236"
	colorFocus      = "69"
	colorError      = "196"
	colorMuted      = "241"
	colorAlert      = "208"
)
