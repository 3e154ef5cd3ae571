package models

// TimeSlot is a bookable window offered to the customer. Slots are
// computed fresh on every request and never persisted.
type TimeSlot struct {
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
	Label     string `json:"label"`     // e.g. "11:00 AM to 12:00 PM"
	Available bool   `json:"available"`
}
