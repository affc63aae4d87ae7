// File: database/repository/assessment/assessment_mongo.go
package assessmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soulace/models"
)

func (r *mongoAssessmentRepo) Insert(ctx context.Context, result models.AssessmentResult) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, result); err != nil {
		return fmt.Errorf("error inserting assessment result: %w", err)
	}
	return nil
}

func (r *mongoAssessmentRepo) FindByUser(ctx context.Context, userID string) ([]models.AssessmentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying assessments for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var results []models.AssessmentResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding assessment results: %w", err)
	}
	return results, nil
}
