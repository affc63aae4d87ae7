// File: database/repository/assessment/interface.go
package assessmentRepo

import (
	"context"

	"soulace/database"
	"soulace/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AssessmentRepository interface {
	Insert(ctx context.Context, result models.AssessmentResult) error
	FindByUser(ctx context.Context, userID string) ([]models.AssessmentResult, error)
}

type mongoAssessmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssessmentRepo constructs a new MongoDB AssessmentRepository.
func NewMongoAssessmentRepo() AssessmentRepository {
	db := database.MongoClient.Database("soulace")
	return &mongoAssessmentRepo{
		coll: db.Collection("assessments"),
	}
}
