package scheduling

// Overlaps reports whether the half-open windows [startA, endA) and
// [startB, endB) on the same day intersect. Back-to-back windows (one
// ending exactly when the other starts) do not overlap. All four
// inputs are "HH:MM" strings; a malformed one yields
// ErrInvalidTimeFormat.
//
// Slot generation uses this to flag conflicts against confirmed
// bookings, and the booking admission path reuses it at commit time to
// reject a slot taken concurrently.
func Overlaps(startA, endA, startB, endB string) (bool, error) {
	aStart, err := parseClock(startA)
	if err != nil {
		return false, err
	}
	aEnd, err := parseClock(endA)
	if err != nil {
		return false, err
	}
	bStart, err := parseClock(startB)
	if err != nil {
		return false, err
	}
	bEnd, err := parseClock(endB)
	if err != nil {
		return false, err
	}
	return overlapMinutes(aStart, aEnd, bStart, bEnd), nil
}

func overlapMinutes(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
