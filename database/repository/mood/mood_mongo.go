// File: database/repository/mood/mood_mongo.go
package moodRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soulace/models"
)

func (r *mongoMoodRepo) Insert(ctx context.Context, entry models.MoodEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("error inserting mood entry: %w", err)
	}
	return nil
}

func (r *mongoMoodRepo) FindByUser(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying mood entries for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var entries []models.MoodEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding mood entries: %w", err)
	}
	return entries, nil
}
