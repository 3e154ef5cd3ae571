package scheduling

import (
	"time"

	"ironhorse/models"
)

const dateLayout = "2006-01-02"

// IsDateBookable reports whether a calendar date may be selected at
// all: not in the past (today always qualifies, even if every
// remaining slot has lapsed; filtering those is GenerateSlots' job)
// and the store open that weekday. It deliberately ignores service
// duration; "would a slot still fit before closing" is not this
// function's question.
//
// now must already be in the store's timezone. A malformed date is
// simply not bookable.
func IsDateBookable(date string, hours models.OperatingHours, now time.Time) bool {
	d, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return false
	}

	return hours.ForWeekday(d.Weekday()) != nil
}
