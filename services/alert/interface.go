package alert

import (
	"context"

	"soulace/models"
)

// AlertService raises crisis alerts. Delivery happens out of band; Raise only
// enqueues.
type AlertService interface {
	Raise(ctx context.Context, userID, source, detail string) error
}

// Notifier is the external delivery contract consumed by the alert worker.
type Notifier interface {
	Notify(ctx context.Context, a models.CrisisAlert) error
}
