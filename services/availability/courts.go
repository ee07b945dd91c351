package availability

import (
	"context"
	"sort"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

	"go.uber.org/zap"
)

// CourtAvailability classifies every active court against the requested time
// range. A zero durationMinutes derives the length from the session's
// selected booking window, defaulting to a single 30-minute slot. Courts are
// ranked fully-available first, then by descending count of free sub-slots,
// then by name (stable, deterministic).
func (e *DefaultAvailabilityEngine) CourtAvailability(ctx context.Context, session *models.BookingSession, startTime string, durationMinutes int) []models.CourtAvailabilityStatus {
	logger := utils.GetLogger()

	if session == nil || session.Snapshot == nil {
		return []models.CourtAvailabilityStatus{}
	}
	snap := session.Snapshot

	startMin, err := utils.TimeToMinutes(startTime)
	if err != nil {
		logger.Warn("court availability query with invalid start time",
			zap.String("startTime", startTime), zap.Error(err))
		return []models.CourtAvailabilityStatus{}
	}

	if durationMinutes <= 0 {
		durationMinutes = selectedDuration(session.Selected)
	}
	endMin := startMin + durationMinutes

	courts, err := e.CourtRepo.GetActiveByVenueID(ctx, snap.VenueID)
	if err != nil {
		logger.Error("court availability query: failed to load courts",
			zap.String("venueId", snap.VenueID), zap.Error(err))
		return []models.CourtAvailabilityStatus{}
	}

	slotByValue := make(map[int]models.TimeSlot, len(snap.TimeSlots))
	for _, s := range snap.TimeSlots {
		slotByValue[s.TimeValue] = s
	}

	statuses := make([]models.CourtAvailabilityStatus, 0, len(courts))
	for _, c := range courts {
		status := models.CourtAvailabilityStatus{
			CourtID:              c.ID,
			CourtName:            c.Name,
			AvailableTimeSlots:   []string{},
			UnavailableTimeSlots: []string{},
		}
		for v := startMin; v < endMin; v += SlotIntervalMinutes {
			label := utils.MinutesToTime(v)
			slot, ok := slotByValue[v]
			if ok && slot.CourtAvailability[c.ID] {
				status.AvailableTimeSlots = append(status.AvailableTimeSlots, label)
			} else {
				// Missing slot data is treated as unavailable, not unknown.
				status.UnavailableTimeSlots = append(status.UnavailableTimeSlots, label)
			}
		}
		status.Available = len(status.AvailableTimeSlots) > 0
		status.FullyAvailable = len(status.UnavailableTimeSlots) == 0 && len(status.AvailableTimeSlots) > 0
		statuses = append(statuses, status)
	}

	sort.SliceStable(statuses, func(i, j int) bool {
		if statuses[i].FullyAvailable != statuses[j].FullyAvailable {
			return statuses[i].FullyAvailable
		}
		if len(statuses[i].AvailableTimeSlots) != len(statuses[j].AvailableTimeSlots) {
			return len(statuses[i].AvailableTimeSlots) > len(statuses[j].AvailableTimeSlots)
		}
		return statuses[i].CourtName < statuses[j].CourtName
	})

	return statuses
}

// selectedDuration derives the requested length from the session's current
// selection, falling back to one slot.
func selectedDuration(sel *models.SelectedBooking) int {
	if sel == nil {
		return SlotIntervalMinutes
	}
	if sel.DurationMinutes > 0 {
		return sel.DurationMinutes
	}
	if sel.StartTime != "" && sel.EndTime != "" {
		startMin, err1 := utils.TimeToMinutes(sel.StartTime)
		endMin, err2 := utils.TimeToMinutes(sel.EndTime)
		if err1 == nil && err2 == nil && endMin > startMin {
			return endMin - startMin
		}
	}
	return SlotIntervalMinutes
}
