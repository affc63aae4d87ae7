// File: services/alert/service.go
package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"soulace/models"
	"soulace/utils"
)

// TypeAlertDispatch is the asynq task type for crisis-alert delivery.
const TypeAlertDispatch = "alert:dispatch"

// AsynqAlertService enqueues crisis alerts onto the Redis-backed task queue.
type AsynqAlertService struct {
	Client *asynq.Client
	logger *zap.Logger
}

// NewAsynqAlertService wraps an asynq client.
func NewAsynqAlertService(client *asynq.Client) *AsynqAlertService {
	return &AsynqAlertService{
		Client: client,
		logger: utils.GetLogger(),
	}
}

func (s *AsynqAlertService) Raise(ctx context.Context, userID, source, detail string) error {
	a := models.CrisisAlert{
		ID:       uuid.New().String(),
		UserID:   userID,
		Source:   source,
		Detail:   detail,
		RaisedAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal crisis alert: %w", err)
	}

	task := asynq.NewTask(TypeAlertDispatch, payload)
	info, err := s.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Queue("alerts"))
	if err != nil {
		return fmt.Errorf("enqueue crisis alert: %w", err)
	}

	s.logger.Info("crisis alert enqueued",
		zap.String("alertId", a.ID),
		zap.String("userId", userID),
		zap.String("source", source),
		zap.String("taskId", info.ID),
	)
	return nil
}
