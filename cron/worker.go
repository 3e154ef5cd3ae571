package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ironhorse/config"
	"ironhorse/models"
	"ironhorse/services/notification"
	"ironhorse/services/tasks"
	"ironhorse/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewQueueClient returns the asynq client used to enqueue notices.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitNotificationWorker runs the async worker in the background. It
// drains booking confirmation and reminder tasks; actual delivery is a
// logged stub for the email/SMS gateway.
func InitNotificationWorker() {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleConfirmationTask)
	mux.HandleFunc(tasks.TypeBookingReminder, handleReminderTask)

	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var notice models.BookingNotice
	if err := json.Unmarshal(t.Payload(), &notice); err != nil {
		return err
	}

	// Delivery gateway boundary: the formatted body is handed to the
	// email/SMS provider here.
	utils.GetLogger().Info("sending booking confirmation",
		zap.String("bookingID", notice.BookingID),
		zap.String("to", notice.CustomerEmail),
		zap.String("body", notification.FormatBookingConfirmation(notice)),
	)
	return nil
}

func handleReminderTask(ctx context.Context, t *asynq.Task) error {
	var notice models.BookingNotice
	if err := json.Unmarshal(t.Payload(), &notice); err != nil {
		return err
	}

	utils.GetLogger().Info("sending booking reminder",
		zap.String("bookingID", notice.BookingID),
		zap.String("to", notice.CustomerPhone),
		zap.String("body", notification.FormatBookingReminder(notice)),
	)
	return nil
}
