package bookingRepo

import (
	"errors"

	"ironhorse/models"
)

// ErrSlotTaken is returned by CreateIfSlotFree when the requested
// window overlaps a confirmed booking that landed first.
var ErrSlotTaken = errors.New("slot no longer available")

// BookingRepository defines methods for appointment data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// ListConfirmed retrieves confirmed bookings for a service on a date.
	ListConfirmed(serviceID, date string) ([]models.Booking, error)
	// ListByDate retrieves all bookings on a date, any status.
	ListByDate(date string) ([]models.Booking, error)
	// CreateIfSlotFree inserts the booking only if its window overlaps
	// no confirmed booking for the same service and date, re-checking
	// inside a transaction so two concurrent submissions cannot both
	// win. The loser gets ErrSlotTaken.
	CreateIfSlotFree(booking *models.Booking) error
	// UpdateStatus transitions a booking's status.
	UpdateStatus(id, status string) error
}
