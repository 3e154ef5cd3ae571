package models

import "time"

// Booking statuses. Only confirmed bookings occupy their slot; the
// other statuses free it for rebooking.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusNoShow    = "no-show"
)

// Booking represents a confirmed (or historical) service appointment.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerEmail string    `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string    `bson:"customerPhone" json:"customerPhone"`
	Date          string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime     string    `bson:"startTime" json:"startTime"` // "HH:MM", store timezone
	EndTime       string    `bson:"endTime" json:"endTime"`
	Timezone      string    `bson:"timezone" json:"timezone"`
	Status        string    `bson:"status" json:"status"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingRequest is the payload for creating a new appointment.
type BookingRequest struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
	Notes         string `json:"notes"`
}
