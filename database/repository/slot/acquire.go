// File: database/repository/slot/acquire.go
package slotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soulace/models"
)

// TryAcquire performs the compare-and-set the rest of the system depends on.
// The status precondition lives in the filter, so the storage engine
// evaluates it atomically with the update: of N concurrent callers targeting
// the same slot, exactly one update matches. Correctness holds across server
// processes because no application-level lock is involved.
func (r *mongoSlotRepo) TryAcquire(ctx context.Context, sel models.SlotSelector, requesterID string, now time.Time) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": models.SlotAvailable}
	if sel.SlotID != "" {
		filter["id"] = sel.SlotID
	} else {
		filter["date"] = sel.Date
		filter["time"] = sel.Time
		if sel.ProviderID != "" {
			filter["providerId"] = sel.ProviderID
		}
		if sel.ProviderKind != "" {
			filter["providerKind"] = sel.ProviderKind
		}
	}

	update := bson.M{
		"$set": bson.M{
			"status":   models.SlotBooked,
			"bookedBy": requesterID,
			"bookedAt": now,
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var slot models.Slot
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Lost the race or nothing matched; the caller decides what that means.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to acquire slot: %w", err)
	}
	return &slot, nil
}

// Release resets a booked slot to available. The update is unconditional on
// status, which makes a second release of the same slot a no-op success.
func (r *mongoSlotRepo) Release(ctx context.Context, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set":   bson.M{"status": models.SlotAvailable},
		"$unset": bson.M{"bookedBy": "", "bookedAt": ""},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID}, update)
	if err != nil {
		return fmt.Errorf("failed to release slot %s: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
