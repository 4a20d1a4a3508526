package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"storably/config"
	bookingRepo "storably/database/repository/booking"
	"storably/models"
	"storably/services/notification"
	"storably/services/tasks"
	"storably/utils"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// NewTaskClient returns the asynq client used to enqueue tasks.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
}

// InitPushWorker runs the async push-delivery worker in background.
func InitPushWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
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
	mux.HandleFunc(tasks.TypeSendPush, handlePushTask(notifSvc))

	go func() {
		log.Println("[PushWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PushWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[PushWorker] max retry attempts reached, push delivery disabled")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePushTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PushHandler] invalid payload: %v", err)
			return err
		}
		return notifSvc.SendPush(ctx, p)
	}
}

// StartLifecycleSweep schedules the daily booking status sweep:
// confirmed bookings whose start date has arrived become active, and
// active bookings past their end date become completed. Keeping these
// statuses current keeps consumed-capacity queries accurate.
func StartLifecycleSweep(repo bookingRepo.BookingRepository) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		sweepBookings(repo)
	})
	if err != nil {
		utils.GetLogger().Error("failed to schedule lifecycle sweep", zap.Error(err))
		return c
	}
	c.Start()
	return c
}

func sweepBookings(repo bookingRepo.BookingRepository) {
	logger := utils.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	today := time.Now().Format("2006-01-02")

	due, err := repo.ListDueForTransition(ctx, models.BookingStatusConfirmed, today)
	if err != nil {
		logger.Error("lifecycle sweep: fetch confirmed failed", zap.Error(err))
	}
	for _, b := range due {
		if err := repo.UpdateStatus(ctx, b.ID, models.BookingStatusActive); err != nil {
			logger.Error("lifecycle sweep: activate failed",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	ended, err := repo.ListDueForTransition(ctx, models.BookingStatusActive, today)
	if err != nil {
		logger.Error("lifecycle sweep: fetch active failed", zap.Error(err))
	}
	for _, b := range ended {
		if err := repo.UpdateStatus(ctx, b.ID, models.BookingStatusCompleted); err != nil {
			logger.Error("lifecycle sweep: complete failed",
				zap.String("bookingID", b.ID), zap.Error(err))
		}
	}

	logger.Info("lifecycle sweep done",
		zap.Int("activated", len(due)), zap.Int("completed", len(ended)))
}
