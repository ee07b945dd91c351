package availability

import (
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"
)

// FilterElapsedOptions forces options whose start time has already passed
// (plus the grace window) to unavailable. It operates on the derived view,
// not the occupancy map, so re-deriving at a later instant re-evaluates
// past-ness without regenerating occupancy. now must be in the viewer's
// location.
func FilterElapsedOptions(options []models.TimeSlotOption, date string, now time.Time) []models.TimeSlotOption {
	out := make([]models.TimeSlotOption, len(options))
	for i, opt := range options {
		if opt.Available && utils.IsTimeSlotInPastAt(date, opt.Value, PastSlotGraceMinutes, now) {
			opt.Available = false
		}
		out[i] = opt
	}
	return out
}

// TimeSlotOptions flattens the current snapshot into the wizard's time
// picker list and applies the past-slot filter in the viewer's timezone.
func (e *DefaultAvailabilityEngine) TimeSlotOptions(session *models.BookingSession) []models.TimeSlotOption {
	if session == nil || session.Snapshot == nil {
		return nil
	}
	snap := session.Snapshot

	options := make([]models.TimeSlotOption, 0, len(snap.TimeSlots))
	for _, slot := range snap.TimeSlots {
		options = append(options, models.TimeSlotOption{
			Label:     slot.Time,
			Value:     slot.TimeValue,
			Available: slot.HasAvailableCourts,
		})
	}

	now := time.Now().In(utils.LoadUserLocation(session.Timezone))
	return FilterElapsedOptions(options, snap.Date, now)
}
