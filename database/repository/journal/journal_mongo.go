// File: database/repository/journal/journal_mongo.go
package journalRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soulace/models"
)

func (r *mongoJournalRepo) Insert(ctx context.Context, entry models.JournalEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("error inserting journal entry: %w", err)
	}
	return nil
}

func (r *mongoJournalRepo) FindByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying journal entries for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var entries []models.JournalEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding journal entries: %w", err)
	}
	return entries, nil
}

func (r *mongoJournalRepo) Delete(ctx context.Context, userID, entryID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": entryID, "userId": userID})
	if err != nil {
		return false, fmt.Errorf("error deleting journal entry %s: %w", entryID, err)
	}
	return res.DeletedCount > 0, nil
}
