// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/database"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository exposes the booking store consumed by the availability
// engine. Subscribe emits the full current set of active bookings for the
// (venue, date) filter on each change, not a delta.
type BookingRepository interface {
	GetActiveByVenueAndDate(ctx context.Context, venueID, date string) ([]models.Booking, error)
	Subscribe(ctx context.Context, venueID, date string) (<-chan []models.Booking, <-chan error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("funkhaus_sports")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
