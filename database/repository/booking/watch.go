// File: database/repository/booking/watch.go
package bookingRepo

import (
	"context"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
)

// Subscribe emits the current active booking set for (venueID, date)
// immediately, then re-queries and re-emits after every change on the
// bookings collection. The goroutine exits when ctx is cancelled; both
// channels are closed on exit so consumers never block on a dead stream.
func (r *mongoBookingRepo) Subscribe(ctx context.Context, venueID, date string) (<-chan []models.Booking, <-chan error) {
	updates := make(chan []models.Booking, 1)
	errs := make(chan error, 1)

	go func() {
		defer close(updates)
		defer close(errs)

		emit := func() error {
			bookings, err := r.GetActiveByVenueAndDate(ctx, venueID, date)
			if err != nil {
				return err
			}
			select {
			case updates <- bookings:
			case <-ctx.Done():
			}
			return nil
		}

		if err := emit(); err != nil {
			errs <- err
			return
		}

		// Watch the whole collection and re-query on any event. Delete events
		// carry no full document, so filtering the stream by venue/date would
		// miss cancellations; the re-query applies the filter instead.
		stream, err := r.coll.Watch(ctx, []interface{}{})
		if err != nil {
			errs <- err
			return
		}
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			if err := emit(); err != nil {
				errs <- err
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			errs <- err
		}
	}()

	return updates, errs
}
