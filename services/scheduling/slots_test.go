package scheduling

import (
	"testing"
	"time"

	"ironhorse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// futureDay is a Wednesday; tests use a "now" well before it so the
// today-rounding rule stays out of the way unless exercised on purpose.
const futureDay = "2026-03-04"

func beforeFutureDay() time.Time {
	return time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
}

func confirmed(serviceID, start, end string) models.Booking {
	return models.Booking{
		ServiceID: serviceID,
		Date:      futureDay,
		StartTime: start,
		EndTime:   end,
		Status:    models.BookingStatusConfirmed,
	}
}

func TestGenerateSlots_FullOpenDay(t *testing.T) {
	slots, err := GenerateSlots(futureDay, 60, weekdayHours(), nil, beforeFutureDay())
	require.NoError(t, err)

	// 09:00-17:00 with a 60-minute service: starts every half hour from
	// 09:00 through 16:00, 15 in all, the last ending exactly at close.
	require.Len(t, slots, 15)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
	assert.Equal(t, "9:00 AM to 10:00 AM", slots[0].Label)
	assert.Equal(t, "16:00", slots[14].StartTime)
	assert.Equal(t, "17:00", slots[14].EndTime)
	for i, s := range slots {
		assert.True(t, s.Available, "slot %d", i)
	}
	// Ascending 30-minute steps.
	for i := 1; i < len(slots); i++ {
		prev, _ := parseClock(slots[i-1].StartTime)
		cur, _ := parseClock(slots[i].StartTime)
		assert.Equal(t, SlotStepMinutes, cur-prev)
	}
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	// 2026-03-08 is a Sunday, closed in weekdayHours.
	slots, err := GenerateSlots("2026-03-08", 60, weekdayHours(), []models.Booking{
		confirmed("svc", "10:00", "11:00"),
	}, beforeFutureDay())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ConflictFlagging(t *testing.T) {
	booked := []models.Booking{confirmed("svc", "11:00", "12:00")}
	slots, err := GenerateSlots(futureDay, 60, weekdayHours(), booked, beforeFutureDay())
	require.NoError(t, err)

	byStart := map[string]models.TimeSlot{}
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	assert.False(t, byStart["10:30"].Available) // ends 11:30, inside the booking
	assert.False(t, byStart["11:00"].Available)
	assert.False(t, byStart["11:30"].Available)
	assert.True(t, byStart["10:00"].Available) // ends 11:00, back-to-back is fine
	assert.True(t, byStart["12:00"].Available) // starts as the booking ends
}

func TestGenerateSlots_IgnoresNonConfirmed(t *testing.T) {
	cancelled := confirmed("svc", "11:00", "12:00")
	cancelled.Status = models.BookingStatusCancelled
	noShow := confirmed("svc", "13:00", "14:00")
	noShow.Status = models.BookingStatusNoShow

	slots, err := GenerateSlots(futureDay, 60, weekdayHours(), []models.Booking{cancelled, noShow}, beforeFutureDay())
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.StartTime)
	}
}

func TestGenerateSlots_TodayRoundsUpPastHalfHour(t *testing.T) {
	// 09:45 today: nothing may start before 10:00.
	now := time.Date(2026, 3, 4, 9, 45, 0, 0, time.UTC)
	slots, err := GenerateSlots(futureDay, 60, weekdayHours(), nil, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00", slots[0].StartTime)
}

func TestGenerateSlots_TodayRoundsUpToHalfHour(t *testing.T) {
	// 09:10 today rounds to 09:30, not 10:00.
	now := time.Date(2026, 3, 4, 9, 10, 0, 0, time.UTC)
	slots, err := GenerateSlots(futureDay, 60, weekdayHours(), nil, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:30", slots[0].StartTime)
}

func TestGenerateSlots_TodayOnBoundaryDoesNotAdvance(t *testing.T) {
	now := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	slots, err := GenerateSlots(futureDay, 60, weekdayHours(), nil, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:30", slots[0].StartTime)
}

func TestGenerateSlots_TodayBeforeOpeningStartsAtOpening(t *testing.T) {
	now := time.Date(2026, 3, 4, 7, 12, 0, 0, time.UTC)
	slots, err := GenerateSlots(futureDay, 60, weekdayHours(), nil, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0].StartTime)
}

func TestGenerateSlots_TodayAllSlotsLapsed(t *testing.T) {
	// 16:45 today: a 60-minute service can no longer fit before 17:00.
	now := time.Date(2026, 3, 4, 16, 45, 0, 0, time.UTC)
	slots, err := GenerateSlots(futureDay, 60, weekdayHours(), nil, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_DurationExceedsOpenWindow(t *testing.T) {
	hours := models.OperatingHours{
		Wednesday: &models.DayHours{Open: "09:00", Close: "10:00"},
	}
	slots, err := GenerateSlots(futureDay, 90, hours, nil, beforeFutureDay())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_DurationNotMultipleOfStep(t *testing.T) {
	// 45-minute service, 09:00-11:00: starts 09:00, 09:30, 10:00; a
	// 10:30 start would end 11:15, past closing.
	hours := models.OperatingHours{
		Wednesday: &models.DayHours{Open: "09:00", Close: "11:00"},
	}
	slots, err := GenerateSlots(futureDay, 45, hours, nil, beforeFutureDay())
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:45", slots[0].EndTime)
	assert.Equal(t, "10:45", slots[2].EndTime)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	booked := []models.Booking{confirmed("svc", "11:00", "12:00")}
	now := time.Date(2026, 3, 4, 9, 45, 0, 0, time.UTC)

	first, err := GenerateSlots(futureDay, 60, weekdayHours(), booked, now)
	require.NoError(t, err)
	second, err := GenerateSlots(futureDay, 60, weekdayHours(), booked, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_InvalidInputs(t *testing.T) {
	_, err := GenerateSlots(futureDay, 0, weekdayHours(), nil, beforeFutureDay())
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = GenerateSlots("not-a-date", 60, weekdayHours(), nil, beforeFutureDay())
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	bad := models.OperatingHours{Wednesday: &models.DayHours{Open: "9am", Close: "17:00"}}
	_, err = GenerateSlots(futureDay, 60, bad, nil, beforeFutureDay())
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	broken := confirmed("svc", "eleven", "12:00")
	_, err = GenerateSlots(futureDay, 60, weekdayHours(), []models.Booking{broken}, beforeFutureDay())
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
