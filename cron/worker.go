package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"barberpro/config"
	appointmentRepo "barberpro/database/repository/appointment"
	"barberpro/models"
	"barberpro/services/booking"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(aptRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(booking.TypeReminderSend, handleReminderTask(aptRepo))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires a reminder unless the appointment was cancelled
// after the task was enqueued.
func handleReminderTask(aptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		apt, err := aptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			log.Printf("[ReminderHandler] appointment %s not found: %v", p.AppointmentID, err)
			return nil
		}
		if apt.Status == models.StatusCancelled {
			log.Printf("[ReminderHandler] skipping cancelled appointment %s", p.AppointmentID)
			return nil
		}

		log.Printf("[ReminderHandler] upcoming appointment %s: %s for %s on %s at %s",
			p.AppointmentID, p.Service, p.ClientName, p.Date, p.Time)
		return nil
	}
}
