package cron

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"soulace/config"
	"soulace/models"
	"soulace/services/alert"
	"soulace/utils"
)

// InitAlertWorker runs the crisis-alert dispatch worker in the background.
// Tasks are enqueued by alert.AsynqAlertService and handed to the notifier
// contract here; asynq's retry policy covers transient delivery failures.
func InitAlertWorker(notifier alert.Notifier) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAlertQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"alerts":  5,
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(alert.TypeAlertDispatch, handleAlertTask(notifier))

	go func() {
		logger.Info("starting alert worker")
		if err := srv.Run(mux); err != nil {
			logger.Fatal("alert worker failed to start", zap.Error(err))
		}
	}()
}

func handleAlertTask(notifier alert.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var a models.CrisisAlert
		if err := json.Unmarshal(task.Payload(), &a); err != nil {
			logger.Error("invalid crisis alert payload", zap.Error(err))
			return err
		}

		logger.Info("dispatching crisis alert",
			zap.String("alertId", a.ID),
			zap.String("userId", a.UserID),
			zap.String("source", a.Source),
		)

		if err := notifier.Notify(ctx, a); err != nil {
			logger.Error("crisis alert delivery failed", zap.String("alertId", a.ID), zap.Error(err))
			return err
		}
		return nil
	}
}

// LogNotifier is the fallback notifier used when no delivery integration is
// configured: it records the alert so operators can act on it.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, a models.CrisisAlert) error {
	utils.GetLogger().Warn("CRISIS ALERT",
		zap.String("alertId", a.ID),
		zap.String("userId", a.UserID),
		zap.String("source", a.Source),
		zap.String("detail", a.Detail),
		zap.Time("raisedAt", a.RaisedAt),
	)
	return nil
}
