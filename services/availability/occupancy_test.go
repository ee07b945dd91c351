package availability

import (
	"testing"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSkeleton(courtIDs ...string) []models.TimeSlot {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return GenerateTimeSlots("2026-03-14", courtIDs, OperatingStartMinutes, OperatingEndMinutes, now)
}

func slotAt(t *testing.T, slots []models.TimeSlot, minutes int) models.TimeSlot {
	t.Helper()
	for _, s := range slots {
		if s.TimeValue == minutes {
			return s
		}
	}
	t.Fatalf("no slot at %d minutes", minutes)
	return models.TimeSlot{}
}

func TestApplyBookingOccupancyMarksBookedWindow(t *testing.T) {
	skeleton := testSkeleton("court-1", "court-2")
	bookings := []models.Booking{
		{ID: "b1", CourtID: "court-1", StartTime: "10:00", EndTime: "11:00", Status: models.BookingStatusConfirmed},
	}

	slots := ApplyBookingOccupancy(skeleton, bookings)

	for _, v := range []int{600, 630} {
		s := slotAt(t, slots, v)
		assert.False(t, s.CourtAvailability["court-1"], "court-1 should be taken at %d", v)
		assert.True(t, s.CourtAvailability["court-2"])
		assert.True(t, s.HasAvailableCourts, "another court is still free")
	}

	// End boundary is exclusive.
	s := slotAt(t, slots, 660)
	assert.True(t, s.CourtAvailability["court-1"])
	s = slotAt(t, slots, 570)
	assert.True(t, s.CourtAvailability["court-1"])
}

func TestApplyBookingOccupancyAllCourtsTaken(t *testing.T) {
	skeleton := testSkeleton("court-1", "court-2")
	bookings := []models.Booking{
		{ID: "b1", CourtID: "court-1", StartTime: "10:00", EndTime: "10:30", Status: models.BookingStatusConfirmed},
		{ID: "b2", CourtID: "court-2", StartTime: "10:00", EndTime: "10:30", Status: models.BookingStatusHolding},
	}

	slots := ApplyBookingOccupancy(skeleton, bookings)

	s := slotAt(t, slots, 600)
	assert.False(t, s.HasAvailableCourts)
	assert.False(t, s.CourtAvailability["court-1"])
	assert.False(t, s.CourtAvailability["court-2"])
}

func TestApplyBookingOccupancyIgnoresInactiveBookings(t *testing.T) {
	skeleton := testSkeleton("court-1")
	bookings := []models.Booking{
		{ID: "b1", CourtID: "court-1", StartTime: "10:00", EndTime: "11:00", Status: models.BookingStatusCancelled},
		{ID: "b2", CourtID: "court-1", StartTime: "12:00", EndTime: "13:00", Status: models.BookingStatusCompleted},
	}

	slots := ApplyBookingOccupancy(skeleton, bookings)

	for _, v := range []int{600, 630, 720, 750} {
		assert.True(t, slotAt(t, slots, v).CourtAvailability["court-1"])
	}
}

func TestApplyBookingOccupancyIgnoresUnknownCourt(t *testing.T) {
	skeleton := testSkeleton("court-1")
	bookings := []models.Booking{
		{ID: "b1", CourtID: "court-gone", StartTime: "10:00", EndTime: "11:00", Status: models.BookingStatusConfirmed},
	}

	slots := ApplyBookingOccupancy(skeleton, bookings)

	s := slotAt(t, slots, 600)
	assert.True(t, s.CourtAvailability["court-1"])
	_, ok := s.CourtAvailability["court-gone"]
	assert.False(t, ok, "unknown court must not be added to the slot map")
}

func TestApplyBookingOccupancySkipsUnparseableTimes(t *testing.T) {
	skeleton := testSkeleton("court-1")
	bookings := []models.Booking{
		{ID: "b1", CourtID: "court-1", StartTime: "bogus", EndTime: "11:00", Status: models.BookingStatusConfirmed},
		{ID: "b2", CourtID: "court-1", StartTime: "14:00", EndTime: "15:00", Status: models.BookingStatusConfirmed},
	}

	slots := ApplyBookingOccupancy(skeleton, bookings)

	assert.True(t, slotAt(t, slots, 600).CourtAvailability["court-1"])
	assert.False(t, slotAt(t, slots, 840).CourtAvailability["court-1"])
}

func TestApplyBookingOccupancyDoesNotMutateSkeleton(t *testing.T) {
	skeleton := testSkeleton("court-1")
	bookings := []models.Booking{
		{ID: "b1", CourtID: "court-1", StartTime: "10:00", EndTime: "11:00", Status: models.BookingStatusConfirmed},
	}

	_ = ApplyBookingOccupancy(skeleton, bookings)

	for _, s := range skeleton {
		assert.True(t, s.CourtAvailability["court-1"], "input skeleton must stay untouched")
		assert.True(t, s.HasAvailableCourts)
	}
}

func TestApplyBookingOccupancyIsDeterministic(t *testing.T) {
	skeleton := testSkeleton("court-1", "court-2")
	bookings := []models.Booking{
		{ID: "b1", CourtID: "court-1", StartTime: "09:00", EndTime: "10:30", Status: models.BookingStatusConfirmed},
		{ID: "b2", CourtID: "court-2", StartTime: "18:00", EndTime: "20:00", Status: models.BookingStatusHolding},
	}

	first := ApplyBookingOccupancy(skeleton, bookings)
	second := ApplyBookingOccupancy(skeleton, bookings)

	require.Equal(t, first, second)
}
