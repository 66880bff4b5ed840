package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 9, hour, minute, 0, 0, time.UTC)
}

func window(t *testing.T, opens, closes string) *Spot {
	t.Helper()
	o, err := ParseTimeValue(opens)
	require.NoError(t, err)
	c, err := ParseTimeValue(closes)
	require.NoError(t, err)
	return &Spot{ID: "s", Building: "LB", Opens: o, Closes: c}
}

func TestSpotOpenAt_SameDayWindow(t *testing.T) {
	spot := window(t, "08:00", "22:00")

	// Half-open interval: open at opens, closed at closes.
	assert.False(t, SpotOpenAt(spot, at(7, 59)))
	assert.True(t, SpotOpenAt(spot, at(8, 0)))
	assert.True(t, SpotOpenAt(spot, at(21, 59)))
	assert.False(t, SpotOpenAt(spot, at(22, 0)))
	assert.False(t, SpotOpenAt(spot, at(2, 0)))
}

func TestSpotOpenAt_DayWrapWindow(t *testing.T) {
	// Closes at 26:00, i.e. 02:00 the following calendar day.
	spot := window(t, "20:00", "26:00")

	assert.False(t, SpotOpenAt(spot, at(19, 59)))
	assert.True(t, SpotOpenAt(spot, at(20, 0)))
	assert.True(t, SpotOpenAt(spot, at(23, 59)))
	// Post-midnight instants match through the t+1440 shift.
	assert.True(t, SpotOpenAt(spot, at(0, 0)))
	assert.True(t, SpotOpenAt(spot, at(1, 0)))
	assert.True(t, SpotOpenAt(spot, at(1, 59)))
	assert.False(t, SpotOpenAt(spot, at(2, 0)))
	assert.False(t, SpotOpenAt(spot, at(12, 0)))
}

func TestSpotOpenAt_AlwaysOpen(t *testing.T) {
	// alwaysOpen short-circuits the window entirely, including windows
	// that were never parsed.
	spot := &Spot{
		ID:         "s",
		AlwaysOpen: true,
		Opens:      TimeValue{NotApplicable: true},
		Closes:     TimeValue{NotApplicable: true},
	}
	for hour := 0; hour < 24; hour++ {
		assert.True(t, SpotOpenAt(spot, at(hour, 30)))
	}
}

func TestSpotOpenAt_NotApplicableMeansClosed(t *testing.T) {
	tests := []struct {
		name   string
		opens  string
		closes string
	}{
		{"opens n/a", "n/a", "22:00"},
		{"closes n/a", "08:00", "n/a"},
		{"both n/a", "n/a", "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot := window(t, tt.opens, tt.closes)
			for hour := 0; hour < 24; hour++ {
				assert.False(t, SpotOpenAt(spot, at(hour, 0)))
			}
		})
	}
}

func TestSpotOpenAt_ZeroWidthWindowNeverOpen(t *testing.T) {
	spot := window(t, "09:00", "09:00")
	assert.False(t, SpotOpenAt(spot, at(9, 0)))
	assert.False(t, SpotOpenAt(spot, at(9, 1)))
	assert.False(t, SpotOpenAt(spot, at(0, 0)))
}
