// File: database/repository/slot/crud.go
package slotRepo

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

func (r *mongoSlotRepo) CreateMany(ctx context.Context, slots []models.Slot) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	ids := make([]string, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		if slot.Status == "" {
			slot.Status = models.SlotAvailable
		}
		docs[i] = slot
		ids[i] = slot.ID
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return nil, fmt.Errorf("failed to insert slots: %w", err)
	}
	return ids, nil
}

func (r *mongoSlotRepo) FindAvailable(ctx context.Context, filter models.SlotFilter) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.ProviderID != "" {
		query["providerId"] = filter.ProviderID
	}
	if filter.ProviderKind != "" {
		query["providerKind"] = filter.ProviderKind
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}
	if filter.Time != "" {
		query["time"] = filter.Time
	}
	if filter.OnlyAvailable {
		query["status"] = models.SlotAvailable
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) GetByID(ctx context.Context, slotID string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var slot models.Slot
	if err := r.coll.FindOne(ctx, bson.M{"id": slotID}).Decode(&slot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch slot %s: %w", slotID, err)
	}
	return &slot, nil
}
