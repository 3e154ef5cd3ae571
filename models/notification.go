package models

// BookingNotice is the payload carried by confirmation and reminder
// tasks on the queue.
type BookingNotice struct {
	BookingID     string `json:"bookingId"`
	ServiceName   string `json:"serviceName"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	Label         string `json:"label"` // human-readable window, e.g. "11:00 AM to 12:00 PM"
}
