// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"soulace/database"
	"soulace/models"
	"soulace/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookingRepository persists Booking records. Each booking row is only ever
// written by the single book/cancel call that owns it, so there is no
// contention concern here; the slot store carries the atomicity burden.
type BookingRepository interface {
	// Create inserts a confirmed booking referencing a freshly acquired slot.
	Create(ctx context.Context, slot models.Slot, requesterID, sessionType, concerns string, now time.Time) (*models.Booking, error)

	FindByRequester(ctx context.Context, requesterID string) ([]models.Booking, error)

	// FindByID returns nil, nil when the booking does not exist.
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)

	// Cancel flips a confirmed booking to cancelled and stamps cancelledAt.
	// It returns nil, nil when no confirmed booking matched (absent or
	// already cancelled); the caller distinguishes the two.
	Cancel(ctx context.Context, bookingID string, now time.Time) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("soulace")
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("booking repo: index creation failed", zap.Error(err))
	}
	return repo
}
