//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package countdown

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{600, "10:00"},
		{3725, "62:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.in), "FormatSeconds(%d)", tt.in)
	}
}

func TestParseDuration_Accepted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"5", 5},
		{"99", 99},
		{"007", 7},
		{"1:30", 90},
		{"1:99", 159},
		{"0:05", 5},
		{":5", 5},
		{"2:", 120},
		{"10:00", 600},
	}
	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseDuration_RoundTrip(t *testing.T) {
	t.Parallel()

	for m := 0; m <= 12; m++ {
		for s := 0; s < 60; s++ {
			if m*60+s == 0 {
				continue
			}
			in := fmt.Sprintf("%d:%02d", m, s)
			got, err := ParseDuration(in)
			require.NoError(t, err, in)
			require.Equal(t, m*60+s, got, in)
		}
	}
}

func TestParseDuration_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want error
	}{
		{"", ErrZeroDuration},
		{"0", ErrZeroDuration},
		{"0:00", ErrZeroDuration},
		{":", ErrZeroDuration},
		{"1:2:3", ErrSyntax},
		{"0:0:5", ErrSyntax},
		{"12a", ErrSyntax},
		{" 5", ErrSyntax},
		{"-5", ErrSyntax},
		{"1.5", ErrSyntax},
		{"99999999999999999999", ErrSyntax},
		{"200000000:00", ErrSyntax},
		{"17895697:04", ErrSyntax},
		{"1073741823:00", ErrSyntax},
	}
	for _, tt := range tests {
		_, err := ParseDuration(tt.in)
		require.Error(t, err, "input %q", tt.in)
		assert.ErrorIs(t, err, tt.want, "input %q", tt.in)
	}
}

func TestParseDuration_LargestAccepted(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"17895697:03", "1073741823", "17895696:63"} {
		got, err := ParseDuration(in)
		require.NoError(t, err, in)
		assert.Equal(t, maxSeconds-1, got, in)
	}
}
