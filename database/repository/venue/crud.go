// File: database/repository/venue/crud.go
package venueRepo

import (
	"context"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoVenueRepo) GetByID(ctx context.Context, venueID string) (*models.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": venueID}
	var venue models.Venue
	if err := r.coll.FindOne(ctx, filter).Decode(&venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *mongoVenueRepo) GetAllActive(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"status": "active"})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var venues []models.Venue
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}
