package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"07:00", 420},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseClock_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "13:30", "23:59"} {
		m, err := parseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, formatClock(m))
	}
}

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		start, end int
		want       string
	}{
		{660, 720, "11:00 AM to 12:00 PM"},
		{0, 30, "12:00 AM to 12:30 AM"},
		{720, 780, "12:00 PM to 1:00 PM"},
		{570, 630, "9:30 AM to 10:30 AM"},
		{1380, 1439, "11:00 PM to 11:59 PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatLabel(tt.start, tt.end))
	}
}

func TestRoundUpToStep(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{540, 540},  // 09:00 stays
		{541, 570},  // 09:01 -> 09:30
		{555, 570},  // 09:15 -> 09:30
		{570, 570},  // 09:30 stays
		{585, 600},  // 09:45 -> 10:00
		{599, 600},  // 09:59 -> 10:00
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundUpToStep(tt.in), "in=%d", tt.in)
	}
}
