// File: database/repository/court/interface.go
package courtRepo

import (
	"context"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/database"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CourtRepository exposes the court registry consumed by the availability engine.
type CourtRepository interface {
	GetByID(ctx context.Context, courtID string) (*models.Court, error)
	GetByVenueID(ctx context.Context, venueID string) ([]models.Court, error)
	GetActiveByVenueID(ctx context.Context, venueID string) ([]models.Court, error)
}

type mongoCourtRepo struct {
	coll *mongo.Collection
}

// NewMongoCourtRepo constructs a new MongoDB CourtRepository.
func NewMongoCourtRepo() CourtRepository {
	db := database.MongoClient.Database("funkhaus_sports")
	return &mongoCourtRepo{
		coll: db.Collection("courts"),
	}
}
