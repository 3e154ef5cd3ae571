package models

import "time"

// DayHours holds a single day's opening window as wall-clock times in
// 24-hour "HH:MM" format, interpreted in the store's timezone.
type DayHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// OperatingHours is the store's weekly schedule. A nil entry means the
// store is closed all day.
type OperatingHours struct {
	Monday    *DayHours `bson:"monday" json:"monday"`
	Tuesday   *DayHours `bson:"tuesday" json:"tuesday"`
	Wednesday *DayHours `bson:"wednesday" json:"wednesday"`
	Thursday  *DayHours `bson:"thursday" json:"thursday"`
	Friday    *DayHours `bson:"friday" json:"friday"`
	Saturday  *DayHours `bson:"saturday" json:"saturday"`
	Sunday    *DayHours `bson:"sunday" json:"sunday"`
}

// ForWeekday returns the hours entry for the given weekday, or nil if
// the store is closed that day.
func (h OperatingHours) ForWeekday(d time.Weekday) *DayHours {
	switch d {
	case time.Monday:
		return h.Monday
	case time.Tuesday:
		return h.Tuesday
	case time.Wednesday:
		return h.Wednesday
	case time.Thursday:
		return h.Thursday
	case time.Friday:
		return h.Friday
	case time.Saturday:
		return h.Saturday
	default:
		return h.Sunday
	}
}

// DefaultOperatingHours is the schedule seeded on first boot: open
// Monday through Saturday, closed Sunday.
func DefaultOperatingHours() OperatingHours {
	weekday := &DayHours{Open: "09:00", Close: "18:00"}
	saturday := &DayHours{Open: "09:00", Close: "16:00"}
	return OperatingHours{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  saturday,
		Sunday:    nil,
	}
}
