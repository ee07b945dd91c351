package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

	"go.uber.org/zap"
)

// CalculatePrice computes the total price for booking the court over
// [startISO, endISO). The userID is accepted for per-user rates (memberships)
// but the default implementation prices all users identically.
func (svc *DefaultPricingService) CalculatePrice(ctx context.Context, court models.Court, startISO, endISO, _ string) (float64, error) {
	start, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", startISO, err)
	}
	end, err := time.Parse(time.RFC3339, endISO)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", endISO, err)
	}
	if !end.After(start) {
		return 0, fmt.Errorf("end time %s is not after start time %s", endISO, startISO)
	}
	if court.PricePerHour <= 0 {
		return 0, fmt.Errorf("court %s has no base rate configured", court.ID)
	}

	minutes := end.Sub(start).Minutes()
	total := court.PricePerHour * minutes / 60

	// Peak surcharge applies only to the overlap with the venue's peak block.
	if peak := svc.peakWindow(ctx, court.VenueID); peak != nil {
		peakMinutes := overlapMinutes(start, end, peak)
		if peakMinutes > 0 && peak.Multiplier > 1 {
			total += court.PricePerHour * peakMinutes / 60 * (peak.Multiplier - 1)
		}
	}

	return utils.Round2(total), nil
}

func (svc *DefaultPricingService) peakWindow(ctx context.Context, venueID string) *models.PeakPricing {
	if svc.VenueRepo == nil {
		return nil
	}
	venue, err := svc.VenueRepo.GetByID(ctx, venueID)
	if err != nil {
		utils.GetLogger().Warn("pricing: venue lookup failed, skipping peak surcharge",
			zap.String("venueId", venueID), zap.Error(err))
		return nil
	}
	return venue.Settings.PeakPricing
}

// overlapMinutes returns how many minutes of [start, end) fall inside the
// peak wall-clock window on the booking's own day.
func overlapMinutes(start, end time.Time, peak *models.PeakPricing) float64 {
	peakStartMin, err := utils.TimeToMinutes(peak.StartTime)
	if err != nil {
		return 0
	}
	peakEndMin, err := utils.TimeToMinutes(peak.EndTime)
	if err != nil {
		return 0
	}

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	peakStart := day.Add(time.Duration(peakStartMin) * time.Minute)
	peakEnd := day.Add(time.Duration(peakEndMin) * time.Minute)

	if peakStart.Before(start) {
		peakStart = start
	}
	if peakEnd.After(end) {
		peakEnd = end
	}
	if !peakEnd.After(peakStart) {
		return 0
	}
	return peakEnd.Sub(peakStart).Minutes()
}
