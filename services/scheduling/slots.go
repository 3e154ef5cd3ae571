package scheduling

import (
	"errors"
	"time"

	"ironhorse/models"
)

// SlotStepMinutes is the spacing between candidate slot starts. The
// shop schedules staff on the half hour, so candidates do too.
const SlotStepMinutes = 30

// ErrInvalidDuration is returned when a service's duration is not a
// positive number of minutes.
var ErrInvalidDuration = errors.New("service duration must be positive")

// GenerateSlots computes the ordered list of bookable windows for one
// service on one calendar date.
//
// Candidates start at the day's opening time and advance in fixed
// 30-minute steps; each spans durationMinutes and must end at or
// before closing. When date is today (in now's location), the first
// candidate is pushed forward to the next half-hour boundary at or
// after now, so lapsed windows are never offered. A candidate
// overlapping any confirmed booking is kept but flagged unavailable.
//
// A closed day yields an empty list, not an error. The function is
// pure: identical inputs, including now, produce identical output.
// Callers are expected to run IsDateBookable first; past dates are not
// re-checked here.
func GenerateSlots(date string, durationMinutes int, hours models.OperatingHours, booked []models.Booking, now time.Time) ([]models.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	day := hours.ForWeekday(d.Weekday())
	if day == nil {
		return []models.TimeSlot{}, nil
	}

	openMin, err := parseClock(day.Open)
	if err != nil {
		return nil, err
	}
	closeMin, err := parseClock(day.Close)
	if err != nil {
		return nil, err
	}

	start := openMin
	if date == now.Format(dateLayout) {
		nowMin := now.Hour()*60 + now.Minute()
		if nowMin > start {
			start = roundUpToStep(nowMin)
		}
	}

	type window struct{ start, end int }
	taken := make([]window, 0, len(booked))
	for _, b := range booked {
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		bStart, err := parseClock(b.StartTime)
		if err != nil {
			return nil, err
		}
		bEnd, err := parseClock(b.EndTime)
		if err != nil {
			return nil, err
		}
		taken = append(taken, window{bStart, bEnd})
	}

	slots := []models.TimeSlot{}
	for s := start; s+durationMinutes <= closeMin; s += SlotStepMinutes {
		end := s + durationMinutes
		available := true
		for _, w := range taken {
			if overlapMinutes(s, end, w.start, w.end) {
				available = false
				break
			}
		}
		slots = append(slots, models.TimeSlot{
			StartTime: formatClock(s),
			EndTime:   formatClock(end),
			Label:     formatLabel(s, end),
			Available: available,
		})
	}
	return slots, nil
}

// roundUpToStep advances minutes-since-midnight to the next half-hour
// boundary: minutes in (0,30] go to :30, minutes in (30,60) to the
// next hour's :00. Exact boundaries stay put.
func roundUpToStep(m int) int {
	rem := m % SlotStepMinutes
	if rem == 0 {
		return m
	}
	return m + SlotStepMinutes - rem
}
