// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetActiveByVenueAndDate returns every booking that occupies court time on
// the given date: status confirmed or holding, matching venue and date.
func (r *mongoBookingRepo) GetActiveByVenueAndDate(ctx context.Context, venueID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"venueId": venueID,
		"date":    date,
		"status":  bson.M{"$in": models.ActiveBookingStatuses},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
