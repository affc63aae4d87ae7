// File: database/repository/journal/interface.go
package journalRepo

import (
	"context"

	"soulace/database"
	"soulace/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type JournalRepository interface {
	Insert(ctx context.Context, entry models.JournalEntry) error
	FindByUser(ctx context.Context, userID string) ([]models.JournalEntry, error)
	// Delete removes an entry only if it belongs to userID; it reports
	// whether a document was removed.
	Delete(ctx context.Context, userID, entryID string) (bool, error)
}

type mongoJournalRepo struct {
	coll *mongo.Collection
}

// NewMongoJournalRepo constructs a new MongoDB JournalRepository.
func NewMongoJournalRepo() JournalRepository {
	db := database.MongoClient.Database("soulace")
	return &mongoJournalRepo{
		coll: db.Collection("journals"),
	}
}
