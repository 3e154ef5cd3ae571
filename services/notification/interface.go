package notification

import (
	"time"

	"ironhorse/models"
)

// NotificationService enqueues customer-facing messages about
// appointments. Delivery is best-effort and must never block or fail a
// booking that already committed.
type NotificationService interface {
	SendBookingConfirmation(notice models.BookingNotice)
	ScheduleBookingReminder(notice models.BookingNotice, fireAt time.Time)
}
