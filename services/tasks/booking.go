package tasks

import (
	"encoding/json"
	"time"

	"ironhorse/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirmation = "booking:confirmation"
	TypeBookingReminder     = "booking:reminder"
)

// NewBookingConfirmationTask builds the task sent right after a
// booking is admitted.
func NewBookingConfirmationTask(payload models.BookingNotice) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, b), nil
}

// NewBookingReminderTask builds the reminder task scheduled for the
// day before the appointment.
func NewBookingReminderTask(payload models.BookingNotice, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
