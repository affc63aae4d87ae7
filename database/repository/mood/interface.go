// File: database/repository/mood/interface.go
package moodRepo

import (
	"context"

	"soulace/database"
	"soulace/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type MoodRepository interface {
	Insert(ctx context.Context, entry models.MoodEntry) error
	FindByUser(ctx context.Context, userID string) ([]models.MoodEntry, error)
}

type mongoMoodRepo struct {
	coll *mongo.Collection
}

// NewMongoMoodRepo constructs a new MongoDB MoodRepository.
func NewMongoMoodRepo() MoodRepository {
	db := database.MongoClient.Database("soulace")
	return &mongoMoodRepo{
		coll: db.Collection("moodtracking"),
	}
}
