package booking

import "ironhorse/models"

// BookingService is the service-appointment surface of the store.
type BookingService interface {
	// BookableDates lists the selectable dates over the coming horizon:
	// today onward, store open that weekday.
	BookableDates(daysAhead int) ([]string, error)
	// AvailableSlots computes the ordered slot list for a service on a
	// date, each flagged available or not.
	AvailableSlots(serviceID, date string) ([]models.TimeSlot, error)
	// CreateBooking validates and admits an appointment request,
	// re-checking the chosen window against a fresh read of confirmed
	// bookings at commit time.
	CreateBooking(req models.BookingRequest) (*models.Booking, error)
	// CancelBooking cancels an appointment, freeing its window.
	CancelBooking(id string) error
	// UpdateStatus transitions a booking (owner operation).
	UpdateStatus(id, status string) error
	// ListByDate returns all bookings on a date (owner operation).
	ListByDate(date string) ([]models.Booking, error)
}
