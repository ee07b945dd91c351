package availability

import (
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

	"go.uber.org/zap"
)

// ApplyBookingOccupancy folds the active booking list into a fresh copy of
// the slot skeleton: every slot whose TimeValue falls in a booking's
// [start, end) window has that booking's court marked unavailable, then
// HasAvailableCourts is recomputed per slot. The input skeleton is never
// mutated, so recomputing from the same inputs always yields the same result.
func ApplyBookingOccupancy(skeleton []models.TimeSlot, bookings []models.Booking) []models.TimeSlot {
	logger := utils.GetLogger()

	slots := make([]models.TimeSlot, len(skeleton))
	for i, s := range skeleton {
		courtAvailability := make(map[string]bool, len(s.CourtAvailability))
		for id, free := range s.CourtAvailability {
			courtAvailability[id] = free
		}
		s.CourtAvailability = courtAvailability
		slots[i] = s
	}

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		startMin, err := utils.TimeToMinutes(b.StartTime)
		if err != nil {
			logger.Warn("skipping booking with unparseable start time",
				zap.String("bookingId", b.ID), zap.Error(err))
			continue
		}
		endMin, err := utils.TimeToMinutes(b.EndTime)
		if err != nil {
			logger.Warn("skipping booking with unparseable end time",
				zap.String("bookingId", b.ID), zap.Error(err))
			continue
		}
		for i := range slots {
			if slots[i].TimeValue < startMin || slots[i].TimeValue >= endMin {
				continue
			}
			// Bookings for courts no longer in the slot map are ignored: the
			// court may have been deactivated after the booking was made.
			if _, ok := slots[i].CourtAvailability[b.CourtID]; ok {
				slots[i].CourtAvailability[b.CourtID] = false
			}
		}
	}

	for i := range slots {
		hasAvailable := false
		for _, free := range slots[i].CourtAvailability {
			if free {
				hasAvailable = true
				break
			}
		}
		slots[i].HasAvailableCourts = hasAvailable
	}

	return slots
}
