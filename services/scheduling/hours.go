package scheduling

import (
	"fmt"
	"time"

	"ironhorse/models"
)

// ValidateOperatingHours checks that every open day has well-formed
// times and a non-empty window. Nil days (closed) are always valid.
func ValidateOperatingHours(hours models.OperatingHours) error {
	for d := time.Sunday; d <= time.Saturday; d++ {
		day := hours.ForWeekday(d)
		if day == nil {
			continue
		}
		open, err := parseClock(day.Open)
		if err != nil {
			return fmt.Errorf("%s open time %q: %w", d, day.Open, err)
		}
		closeMin, err := parseClock(day.Close)
		if err != nil {
			return fmt.Errorf("%s close time %q: %w", d, day.Close, err)
		}
		if open >= closeMin {
			return fmt.Errorf("%s: open %s must be before close %s", d, day.Open, day.Close)
		}
	}
	return nil
}
