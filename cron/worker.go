package cron

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "glowdesk/database/repository/bookings"
	staffRepo "glowdesk/database/repository/staff"

	"glowdesk/config"
	"glowdesk/services/tasks"
	"glowdesk/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}
}

// NewTaskClient returns the enqueue-side client used by the catalog service.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(redisOpt())
}

// InitTaskWorker starts the background worker that consumes rename cascades
// and the nightly booking sweep. Runs in its own goroutines; failures to
// start are fatal because stale staff qualification lists silently shrink
// availability.
func InitTaskWorker(staff staffRepo.StaffRepository, bookings bookingRepo.BookingRepository) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(redisOpt(), asynq.Config{
		Concurrency: 5,
		Queues:      map[string]int{"default": 1},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRenameCascade, handleRenameCascade(staff))
	mux.HandleFunc(tasks.TypeBookingSweep, handleBookingSweep(bookings))

	go func() {
		logger.Info("starting background task worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("task worker failed to start", zap.Error(err))
		}
	}()

	go runScheduler(logger)
}

// runScheduler registers the nightly sweep that flips past confirmed
// bookings to completed.
func runScheduler(logger *zap.Logger) {
	scheduler := asynq.NewScheduler(redisOpt(), &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("0 3 * * *", tasks.NewBookingSweepTask()); err != nil {
		logger.Fatal("failed to register booking sweep", zap.Error(err))
	}
	if err := scheduler.Run(); err != nil {
		logger.Fatal("task scheduler failed to start", zap.Error(err))
	}
}

func handleRenameCascade(staff staffRepo.StaffRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.RenameCascadePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid rename cascade payload", zap.Error(err))
			return err
		}
		updated, err := staff.RenameServiceRefs(p.SalonID, p.OldName, p.NewName)
		if err != nil {
			utils.GetLogger().Error("rename cascade failed",
				zap.String("salonID", p.SalonID), zap.String("oldName", p.OldName), zap.Error(err))
			return err
		}
		utils.GetLogger().Info("rename cascade applied",
			zap.String("salonID", p.SalonID),
			zap.String("oldName", p.OldName),
			zap.String("newName", p.NewName),
			zap.Int64("staffUpdated", updated))
		return nil
	}
}

func handleBookingSweep(bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		swept, err := bookings.CompletePast(time.Now())
		if err != nil {
			utils.GetLogger().Error("booking sweep failed", zap.Error(err))
			return err
		}
		utils.GetLogger().Info("booking sweep completed", zap.Int64("bookingsCompleted", swept))
		return nil
	}
}
