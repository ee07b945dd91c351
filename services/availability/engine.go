package availability

import (
	"context"

	bookingRepo "github.com/funkhaus-berlin/funkhaus-sports-sub004/database/repository/booking"
	courtRepo "github.com/funkhaus-berlin/funkhaus-sports-sub004/database/repository/court"
	venueRepo "github.com/funkhaus-berlin/funkhaus-sports-sub004/database/repository/venue"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/services/pricing"
)

// Fixed scheduling parameters. Venue settings may narrow the operating
// window; they can never widen the slot granularity.
const (
	OperatingStartMinutes = 8 * 60  // 08:00
	OperatingEndMinutes   = 22 * 60 // 22:00
	SlotIntervalMinutes   = 30
	PastSlotGraceMinutes  = 10
	MaxDurationMinutes    = 300
)

// AvailabilityEngine computes per-slot, per-court availability and answers
// the booking wizard's read-side queries. All queries are pure functions over
// an immutable snapshot plus the live registries and are safe to call
// concurrently.
type AvailabilityEngine interface {
	// NewSchedulerState creates a scheduler for one booking session.
	NewSchedulerState(onUpdate func(*models.AvailabilitySnapshot)) *SchedulerState
	// TimeSlotOptions flattens the snapshot into the wizard's time picker,
	// marking elapsed slots unavailable in the viewer's timezone.
	TimeSlotOptions(session *models.BookingSession) []models.TimeSlotOption
	// AvailableDurations enumerates valid contiguous durations with pricing.
	AvailableDurations(ctx context.Context, session *models.BookingSession, startTime, courtID string) []models.Duration
	// CourtAvailability ranks all active courts for a start time and duration.
	CourtAvailability(ctx context.Context, session *models.BookingSession, startTime string, durationMinutes int) []models.CourtAvailabilityStatus
}

// DefaultAvailabilityEngine is the production implementation backed by the
// mongo registries and the pricing collaborator.
type DefaultAvailabilityEngine struct {
	VenueRepo   venueRepo.VenueRepository
	CourtRepo   courtRepo.CourtRepository
	BookingRepo bookingRepo.BookingRepository
	Pricing     pricing.PricingService
}
