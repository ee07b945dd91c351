package models

import "time"

// Booking status values. Only confirmed and holding bookings occupy slots.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusHolding   = "holding" // payment pending
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// ActiveBookingStatuses lists the statuses that count as occupying a slot.
var ActiveBookingStatuses = []string{BookingStatusConfirmed, BookingStatusHolding}

// Booking represents a court reservation record.
type Booking struct {
	ID         string    `bson:"id" json:"id"`                     // Unique booking identifier (e.g., UUID)
	VenueID    string    `bson:"venueId" json:"venueId"`           // Venue the court belongs to
	CourtID    string    `bson:"courtId" json:"courtId"`           // Court that was booked
	UserID     string    `bson:"userId" json:"userId"`             // User who made the booking
	Date       string    `bson:"date" json:"date"`                 // Booking date in "YYYY-MM-DD" format
	StartTime  string    `bson:"startTime" json:"startTime"`       // Venue-local wall clock, "HH:MM"
	EndTime    string    `bson:"endTime" json:"endTime"`           // Venue-local wall clock, "HH:MM"
	Status     string    `bson:"status" json:"status"`             // e.g., "confirmed", "holding"
	TotalPrice float64   `bson:"totalPrice" json:"totalPrice"`     // Calculated total price
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`       // Timestamp when booking was created
}

// IsActive reports whether the booking occupies its time window.
func (b Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusHolding
}
