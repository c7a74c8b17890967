package countdown

import (
	"errors"
	"fmt"
)

// Sentinel errors. ErrSyntax and ErrZeroDuration reject free-text input;
// ErrBadPreset rejects a preset list handed to New or the presets command.
var (
	ErrSyntax       = errors.New("syntax error")
	ErrZeroDuration = errors.New("zero duration")
	ErrBadPreset    = errors.New("invalid preset")
)

// maxSeconds bounds each digit run and the total. It fits a 32-bit int and, as
// nanoseconds, a time.Duration.
const maxSeconds = 1 << 30

// Preset is a fixed one-click start option.
type Preset struct {
	Label   string
	Seconds int
}

// ParseDuration converts free text into a positive number of seconds.
//
// A bare digit run is seconds. A single ':' turns the digits seen so far into
// minutes and starts a new seconds run. Seconds after the colon are not range
// checked, so "1:99" is 159 seconds. Empty components count as zero.
func ParseDuration(text string) (int, error) {
	var minutes, seconds int
	sawColon := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			seconds = seconds*10 + int(r-'0')
			if seconds >= maxSeconds {
				return 0, fmt.Errorf("%w: %q is too large", ErrSyntax, text)
			}
		case r == ':':
			if sawColon {
				return 0, fmt.Errorf("%w: more than one ':' in %q", ErrSyntax, text)
			}
			sawColon = true
			minutes, seconds = seconds, 0
		default:
			return 0, fmt.Errorf("%w: invalid character %q in %q", ErrSyntax, r, text)
		}
	}

	// Checked before multiplying so minutes*60 cannot overflow a 32-bit int.
	if minutes > (maxSeconds-1-seconds)/60 {
		return 0, fmt.Errorf("%w: %q is too large", ErrSyntax, text)
	}
	total := minutes*60 + seconds
	if total == 0 {
		return 0, fmt.Errorf("%w: %q", ErrZeroDuration, text)
	}
	return total, nil
}

// FormatSeconds renders s as M:SS with unpadded minutes.
func FormatSeconds(s int) string {
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
