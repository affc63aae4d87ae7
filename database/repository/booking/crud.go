// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soulace/models"
)

func (r *mongoBookingRepo) Create(ctx context.Context, slot models.Slot, requesterID, sessionType, concerns string, now time.Time) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	booking := models.Booking{
		ID:           uuid.New().String(),
		SlotID:       slot.ID,
		ProviderID:   slot.ProviderID,
		ProviderKind: slot.ProviderKind,
		RequesterID:  requesterID,
		Date:         slot.Date,
		Time:         slot.Time,
		SessionType:  sessionType,
		Concerns:     concerns,
		Status:       models.BookingConfirmed,
		CreatedAt:    now,
	}

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error creating booking: %w", err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) FindByRequester(ctx context.Context, requesterID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"requesterId": requesterID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings for requester %s: %w", requesterID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// Cancel conditions the update on status=confirmed so a concurrent double
// cancel resolves to exactly one winner.
func (r *mongoBookingRepo) Cancel(ctx context.Context, bookingID string, now time.Time) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "status": models.BookingConfirmed}
	update := bson.M{
		"$set": bson.M{
			"status":      models.BookingCancelled,
			"cancelledAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error cancelling booking %s: %w", bookingID, err)
	}
	return &booking, nil
}
