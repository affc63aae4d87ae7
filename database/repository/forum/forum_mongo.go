// File: database/repository/forum/forum_mongo.go
package forumRepo

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

func (r *mongoForumRepo) Insert(ctx context.Context, post models.ForumPost) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("error inserting forum post: %w", err)
	}
	return nil
}

func (r *mongoForumRepo) FindByStatus(ctx context.Context, status models.PostStatus, limit int64) ([]models.ForumPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying forum posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.ForumPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("error decoding forum posts: %w", err)
	}
	return posts, nil
}

func (r *mongoForumRepo) FindByID(ctx context.Context, postID string) (*models.ForumPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var post models.ForumPost
	if err := r.coll.FindOne(ctx, bson.M{"id": postID}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching forum post %s: %w", postID, err)
	}
	return &post, nil
}

func (r *mongoForumRepo) SetStatus(ctx context.Context, postID string, status models.PostStatus) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": postID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, fmt.Errorf("error updating forum post %s: %w", postID, err)
	}
	return res.MatchedCount > 0, nil
}
