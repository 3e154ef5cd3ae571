package scheduling

import (
	"testing"
	"time"

	"ironhorse/models"

	"github.com/stretchr/testify/assert"
)

func weekdayHours() models.OperatingHours {
	open := &models.DayHours{Open: "09:00", Close: "17:00"}
	return models.OperatingHours{
		Monday:    open,
		Tuesday:   open,
		Wednesday: open,
		Thursday:  open,
		Friday:    open,
		// Saturday and Sunday closed.
	}
}

func TestIsDateBookable(t *testing.T) {
	hours := weekdayHours()
	// Wednesday 2026-03-04, 10:00 local.
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"today is bookable", "2026-03-04", true},
		{"tomorrow is bookable", "2026-03-05", true},
		{"yesterday is not", "2026-03-03", false},
		{"far past is not", "2020-01-06", false},
		{"closed saturday", "2026-03-07", false},
		{"closed sunday", "2026-03-08", false},
		{"next open monday", "2026-03-09", true},
		{"malformed date", "03/04/2026", false},
		{"empty date", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateBookable(tt.date, hours, now))
		})
	}
}

func TestIsDateBookable_TodayWithLapsedSlots(t *testing.T) {
	// 16:55 on a day closing at 17:00: the date itself must still be
	// eligible. Filtering lapsed windows is GenerateSlots' job.
	now := time.Date(2026, 3, 4, 16, 55, 0, 0, time.UTC)
	assert.True(t, IsDateBookable("2026-03-04", weekdayHours(), now))
}
