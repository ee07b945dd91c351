// File: database/repository/venue/interface.go
package venueRepo

import (
	"context"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/database"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// VenueRepository exposes the venue registry consumed by the availability engine.
type VenueRepository interface {
	GetByID(ctx context.Context, venueID string) (*models.Venue, error)
	GetAllActive(ctx context.Context) ([]models.Venue, error)
}

type mongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo constructs a new MongoDB VenueRepository.
func NewMongoVenueRepo() VenueRepository {
	db := database.MongoClient.Database("funkhaus_sports")
	return &mongoVenueRepo{
		coll: db.Collection("venues"),
	}
}
