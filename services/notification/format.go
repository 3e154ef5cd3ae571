package notification

import (
	"fmt"

	"ironhorse/config"
	"ironhorse/models"
)

// FormatBookingConfirmation renders the confirmation message body.
func FormatBookingConfirmation(notice models.BookingNotice) string {
	return fmt.Sprintf(
		"Hi %s, your %s appointment at %s is confirmed for %s, %s. Reply to this message if you need to reschedule.",
		notice.CustomerName,
		notice.ServiceName,
		config.AppConfig.StoreName,
		notice.Date,
		notice.Label,
	)
}

// FormatBookingReminder renders the day-before reminder body.
func FormatBookingReminder(notice models.BookingNotice) string {
	return fmt.Sprintf(
		"Hi %s, a reminder from %s: your %s appointment is tomorrow, %s, %s. See you then!",
		notice.CustomerName,
		config.AppConfig.StoreName,
		notice.ServiceName,
		notice.Date,
		notice.Label,
	)
}
