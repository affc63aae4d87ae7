// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"soulace/database"
	"soulace/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository reads provider reference data. The booking flow never
// mutates providers; they are created administratively.
type ProviderRepository interface {
	// GetByID returns nil, nil when the provider does not exist.
	GetByID(ctx context.Context, providerID string) (*models.Provider, error)
	List(ctx context.Context, kind models.ProviderKind) ([]models.Provider, error)
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	db := database.MongoClient.Database("soulace")
	return &mongoProviderRepo{
		coll: db.Collection("providers"),
	}
}
