// File: database/repository/court/crud.go
package courtRepo

import (
	"context"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoCourtRepo) GetByID(ctx context.Context, courtID string) (*models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": courtID}
	var court models.Court
	if err := r.coll.FindOne(ctx, filter).Decode(&court); err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *mongoCourtRepo) GetByVenueID(ctx context.Context, venueID string) ([]models.Court, error) {
	return r.findByFilter(ctx, bson.M{"venueId": venueID})
}

// GetActiveByVenueID returns only courts with status "active"; maintenance
// and inactive courts never enter the availability computation.
func (r *mongoCourtRepo) GetActiveByVenueID(ctx context.Context, venueID string) ([]models.Court, error) {
	return r.findByFilter(ctx, bson.M{"venueId": venueID, "status": models.CourtStatusActive})
}

func (r *mongoCourtRepo) findByFilter(ctx context.Context, filter bson.M) ([]models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, err
	}
	return courts, nil
}
