package notification

import (
	"time"

	"ironhorse/models"
	"ironhorse/services/tasks"
	"ironhorse/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService pushes notices onto the asynq queue; the
// worker in cron/ picks them up.
type DefaultNotificationService struct {
	Client *asynq.Client
}

// SendBookingConfirmation enqueues an immediate confirmation message.
func (s *DefaultNotificationService) SendBookingConfirmation(notice models.BookingNotice) {
	logger := utils.GetLogger()

	task, err := tasks.NewBookingConfirmationTask(notice)
	if err != nil {
		logger.Error("failed to build confirmation task", zap.Error(err))
		return
	}
	if _, err := s.Client.Enqueue(task); err != nil {
		logger.Error("failed to enqueue confirmation",
			zap.String("bookingID", notice.BookingID), zap.Error(err))
		return
	}
	logger.Debug("confirmation enqueued", zap.String("bookingID", notice.BookingID))
}

// ScheduleBookingReminder enqueues a reminder to fire at the given instant.
func (s *DefaultNotificationService) ScheduleBookingReminder(notice models.BookingNotice, fireAt time.Time) {
	logger := utils.GetLogger()

	task, opts, err := tasks.NewBookingReminderTask(notice, fireAt)
	if err != nil {
		logger.Error("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		logger.Error("failed to enqueue reminder",
			zap.String("bookingID", notice.BookingID), zap.Error(err))
		return
	}
	logger.Debug("reminder enqueued",
		zap.String("bookingID", notice.BookingID), zap.Time("fireAt", fireAt))
}
