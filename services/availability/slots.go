package availability

import (
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

	"go.uber.org/zap"
)

// GenerateTimeSlots builds the ordered slot skeleton for one day: every
// 30-minute slot in [openMinutes, closeMinutes) with each court marked free.
// For the current venue-local day the lower bound is clamped to the start of
// the current hour (never earlier than opening) — slots before "now" are not
// generated at all. now must be in the venue's location.
func GenerateTimeSlots(date string, courtIDs []string, openMinutes, closeMinutes int, now time.Time) []models.TimeSlot {
	startMin := openMinutes
	if date == now.Format(utils.DateLayout) {
		currentHour := now.Hour() * 60
		if currentHour > startMin {
			startMin = currentHour
		}
	}
	// Align to the slot grid in case a venue configures an off-grid opening.
	if rem := startMin % SlotIntervalMinutes; rem != 0 {
		startMin += SlotIntervalMinutes - rem
	}

	var slots []models.TimeSlot
	for v := startMin; v < closeMinutes; v += SlotIntervalMinutes {
		courtAvailability := make(map[string]bool, len(courtIDs))
		for _, id := range courtIDs {
			courtAvailability[id] = true
		}
		slots = append(slots, models.TimeSlot{
			Time:               utils.MinutesToTime(v),
			TimeValue:          v,
			CourtAvailability:  courtAvailability,
			HasAvailableCourts: len(courtIDs) > 0,
		})
	}
	return slots
}

// operatingWindow resolves the venue's operating hours, falling back to the
// fixed 08:00–22:00 defaults on missing or malformed settings.
func operatingWindow(venue *models.Venue) (openMinutes, closeMinutes int) {
	openMinutes, closeMinutes = OperatingStartMinutes, OperatingEndMinutes
	if venue == nil {
		return openMinutes, closeMinutes
	}
	logger := utils.GetLogger()
	if venue.Settings.OpeningTime != "" {
		if v, err := utils.TimeToMinutes(venue.Settings.OpeningTime); err == nil {
			openMinutes = v
		} else {
			logger.Warn("invalid venue opening time, using default",
				zap.String("venueId", venue.ID), zap.Error(err))
		}
	}
	if venue.Settings.ClosingTime != "" {
		if v, err := utils.TimeToMinutes(venue.Settings.ClosingTime); err == nil {
			closeMinutes = v
		} else {
			logger.Warn("invalid venue closing time, using default",
				zap.String("venueId", venue.ID), zap.Error(err))
		}
	}
	if closeMinutes <= openMinutes {
		logger.Warn("venue closing time not after opening time, using defaults",
			zap.String("venueId", venue.ID))
		return OperatingStartMinutes, OperatingEndMinutes
	}
	return openMinutes, closeMinutes
}
