package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

	"go.uber.org/zap"
)

// durationCandidates is the fixed candidate set: 30 minutes to 5 hours in
// 30-minute steps.
var durationCandidates = func() []int {
	var out []int
	for d := SlotIntervalMinutes; d <= MaxDurationMinutes; d += SlotIntervalMinutes {
		out = append(out, d)
	}
	return out
}()

func durationLabel(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	hours := float64(minutes) / 60
	if hours == 1 {
		return "1 hour"
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%d hours", minutes/60)
	}
	return fmt.Sprintf("%.1f hours", hours)
}

// AvailableDurations enumerates the valid contiguous booking lengths for a
// start time. With a courtID the span is checked against that single court;
// without one, each duration is offered if at least one active court is free
// for the whole span, priced as the arithmetic mean over the free courts.
// A missing or unparseable start time yields an empty result: upstream wizard
// state can transiently hold an incomplete selection.
func (e *DefaultAvailabilityEngine) AvailableDurations(ctx context.Context, session *models.BookingSession, startTime, courtID string) []models.Duration {
	logger := utils.GetLogger()

	if session == nil || session.Snapshot == nil {
		return []models.Duration{}
	}
	snap := session.Snapshot

	startMin, err := utils.TimeToMinutes(startTime)
	if err != nil {
		logger.Warn("duration query with invalid start time",
			zap.String("startTime", startTime), zap.Error(err))
		return []models.Duration{}
	}

	courts, err := e.CourtRepo.GetActiveByVenueID(ctx, snap.VenueID)
	if err != nil {
		logger.Error("duration query: failed to load courts",
			zap.String("venueId", snap.VenueID), zap.Error(err))
		return []models.Duration{}
	}
	courtsByID := make(map[string]models.Court, len(courts))
	for _, c := range courts {
		courtsByID[c.ID] = c
	}

	slotByValue := make(map[int]models.TimeSlot, len(snap.TimeSlots))
	for _, s := range snap.TimeSlots {
		slotByValue[s.TimeValue] = s
	}

	loc := utils.LoadUserLocation(session.Timezone)

	var durations []models.Duration
	for _, d := range durationCandidates {
		endMin := startMin + d

		if courtID != "" {
			court, ok := courtsByID[courtID]
			if !ok {
				// Court deactivated since selection; nothing to offer.
				return []models.Duration{}
			}
			if !spanFreeForCourt(slotByValue, startMin, endMin, courtID) {
				continue
			}
			price, err := e.priceSpan(ctx, court, snap.Date, startMin, endMin, session.UserID, loc)
			if err != nil {
				logger.Warn("dropping duration, pricing failed",
					zap.String("courtId", courtID), zap.Int("minutes", d), zap.Error(err))
				continue
			}
			durations = append(durations, models.Duration{
				Label:   durationLabel(d),
				Minutes: d,
				Price:   price,
				CourtID: courtID,
			})
			continue
		}

		var prices []float64
		for _, c := range courts {
			if !spanFreeForCourt(slotByValue, startMin, endMin, c.ID) {
				continue
			}
			price, err := e.priceSpan(ctx, c, snap.Date, startMin, endMin, session.UserID, loc)
			if err != nil {
				logger.Warn("excluding court from duration pricing",
					zap.String("courtId", c.ID), zap.Int("minutes", d), zap.Error(err))
				continue
			}
			prices = append(prices, price)
		}
		if len(prices) == 0 {
			continue
		}
		sum := 0.0
		for _, p := range prices {
			sum += p
		}
		durations = append(durations, models.Duration{
			Label:   durationLabel(d),
			Minutes: d,
			Price:   utils.Round2(sum / float64(len(prices))),
		})
	}

	if durations == nil {
		return []models.Duration{}
	}
	return durations
}

// spanFreeForCourt walks every 30-minute sub-slot in [startMin, endMin) and
// reports whether the court is free for all of them. A missing slot counts as
// unavailable (fail-closed).
func spanFreeForCourt(slotByValue map[int]models.TimeSlot, startMin, endMin int, courtID string) bool {
	for v := startMin; v < endMin; v += SlotIntervalMinutes {
		slot, ok := slotByValue[v]
		if !ok {
			return false
		}
		if !slot.CourtAvailability[courtID] {
			return false
		}
	}
	return true
}

// priceSpan prices a [startMin, endMin) window on the given date via the
// pricing collaborator.
func (e *DefaultAvailabilityEngine) priceSpan(ctx context.Context, court models.Court, date string, startMin, endMin int, userID string, loc *time.Location) (float64, error) {
	day, err := utils.ParseBookingDate(date, loc)
	if err != nil {
		return 0, err
	}
	start := day.Add(time.Duration(startMin) * time.Minute)
	end := day.Add(time.Duration(endMin) * time.Minute)
	return e.Pricing.CalculatePrice(ctx, court, start.Format(time.RFC3339), end.Format(time.RFC3339), userID)
}
