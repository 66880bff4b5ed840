package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeValue(t *testing.T) {
	tests := []struct {
		raw     string
		minutes int
	}{
		{"00:00", 0},
		{"08:30", 510},
		{"09:05", 545},
		{"22:00", 1320},
		{"23:59", 1439},
		// Hours past 24:00 denote post-midnight closing times and keep
		// their raw minute count.
		{"24:00", 1440},
		{"26:00", 1560},
		{"29:59", 1799},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tv, err := ParseTimeValue(tt.raw)
			require.NoError(t, err)
			assert.False(t, tv.NotApplicable)
			assert.Equal(t, tt.minutes, tv.Minutes)
		})
	}
}

func TestParseTimeValue_NotApplicable(t *testing.T) {
	for _, raw := range []string{"n/a", "N/A", "n/A", "N/a"} {
		t.Run(raw, func(t *testing.T) {
			tv, err := ParseTimeValue(raw)
			require.NoError(t, err)
			assert.True(t, tv.NotApplicable)
		})
	}
}

func TestParseTimeValue_Malformed(t *testing.T) {
	malformed := []string{
		"",
		"8:00",    // hour must be two digits
		"30:00",   // hour past 29
		"12:60",   // minute past 59
		"12:5",    // minute must be two digits
		" 08:00",  // surrounding whitespace
		"08:00 ",  // surrounding whitespace
		"0800",    // no separator
		"12:345",  // trailing digit
		"na",      // sentinel must include the slash
		"always",  // arbitrary word
		"-1:00",   // negative hour
	}
	for _, raw := range malformed {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseTimeValue(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedTime)
		})
	}
}

func TestTimeValueString(t *testing.T) {
	assert.Equal(t, "n/a", TimeValue{NotApplicable: true}.String())
	assert.Equal(t, "08:05", TimeValue{Minutes: 485}.String())
	assert.Equal(t, "26:00", TimeValue{Minutes: 1560}.String())
}
