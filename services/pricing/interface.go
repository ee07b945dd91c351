package pricing

import (
	"context"

	venueRepo "github.com/funkhaus-berlin/funkhaus-sports-sub004/database/repository/venue"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
)

// PricingService computes the price of booking a court for a time window.
// Implementations may fail for malformed inputs; callers treat any error as
// "this duration/court unavailable for pricing", never as fatal.
type PricingService interface {
	CalculatePrice(ctx context.Context, court models.Court, startISO, endISO, userID string) (float64, error)
}

// DefaultPricingService prices from the court's hourly base rate, pro-rated
// to the minute, with the venue's peak-hour multiplier applied to the part of
// the window inside the peak block.
type DefaultPricingService struct {
	VenueRepo venueRepo.VenueRepository
}
