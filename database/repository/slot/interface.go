// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"
	"time"

	"soulace/database"
	"soulace/models"
	"soulace/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SlotRepository persists Slot records and provides the single atomic
// primitive the booking engine depends on.
type SlotRepository interface {
	CreateMany(ctx context.Context, slots []models.Slot) ([]string, error)
	FindAvailable(ctx context.Context, filter models.SlotFilter) ([]models.Slot, error)
	GetByID(ctx context.Context, slotID string) (*models.Slot, error)

	// TryAcquire flips the slot identified by sel from available to booked in
	// a single conditional update. It returns the acquired slot, or nil when
	// no matching available slot existed at update time (a routine contention
	// outcome, not an error).
	TryAcquire(ctx context.Context, sel models.SlotSelector, requesterID string, now time.Time) (*models.Slot, error)

	// Release resets a slot to available, clearing bookedBy/bookedAt.
	// Releasing an already-available slot is a no-op success; an unknown slot
	// id returns mongo.ErrNoDocuments.
	Release(ctx context.Context, slotID string) error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	db := database.MongoClient.Database("soulace")
	repo := &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("slot repo: index creation failed", zap.Error(err))
	}
	return repo
}
