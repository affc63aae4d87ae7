// File: database/repository/forum/interface.go
package forumRepo

import (
	"context"

	"soulace/database"
	"soulace/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ForumRepository interface {
	Insert(ctx context.Context, post models.ForumPost) error
	FindByStatus(ctx context.Context, status models.PostStatus, limit int64) ([]models.ForumPost, error)
	// FindByID returns nil, nil when the post does not exist.
	FindByID(ctx context.Context, postID string) (*models.ForumPost, error)
	// SetStatus reports whether a document was updated.
	SetStatus(ctx context.Context, postID string, status models.PostStatus) (bool, error)
}

type mongoForumRepo struct {
	coll *mongo.Collection
}

// NewMongoForumRepo constructs a new MongoDB ForumRepository.
func NewMongoForumRepo() ForumRepository {
	db := database.MongoClient.Database("soulace")
	return &mongoForumRepo{
		coll: db.Collection("peerposts"),
	}
}
