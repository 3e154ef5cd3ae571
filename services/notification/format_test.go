package notification

import (
	"testing"

	"ironhorse/config"
	"ironhorse/models"

	"github.com/stretchr/testify/assert"
)

func sampleNotice() models.BookingNotice {
	return models.BookingNotice{
		BookingID:    "b1",
		ServiceName:  "Oil Change",
		CustomerName: "Dana",
		Date:         "2026-03-04",
		StartTime:    "11:00",
		Label:        "11:00 AM to 12:00 PM",
	}
}

func TestFormatBookingConfirmation(t *testing.T) {
	config.AppConfig.StoreName = "Ironhorse Motorcycles"

	body := FormatBookingConfirmation(sampleNotice())
	assert.Contains(t, body, "Dana")
	assert.Contains(t, body, "Oil Change")
	assert.Contains(t, body, "Ironhorse Motorcycles")
	assert.Contains(t, body, "2026-03-04")
	assert.Contains(t, body, "11:00 AM to 12:00 PM")
}

func TestFormatBookingReminder(t *testing.T) {
	config.AppConfig.StoreName = "Ironhorse Motorcycles"

	body := FormatBookingReminder(sampleNotice())
	assert.Contains(t, body, "tomorrow")
	assert.Contains(t, body, "11:00 AM to 12:00 PM")
}
