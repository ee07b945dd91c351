package availability

import (
	"testing"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeSlotsFutureDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	slots := GenerateTimeSlots("2026-03-14", []string{"court-1", "court-2"}, OperatingStartMinutes, OperatingEndMinutes, now)

	require.Len(t, slots, 28) // 08:00 through 21:30
	assert.Equal(t, 480, slots[0].TimeValue)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, 1290, slots[len(slots)-1].TimeValue)
	assert.Equal(t, "21:30", slots[len(slots)-1].Time)

	for _, s := range slots {
		assert.Zero(t, s.TimeValue%SlotIntervalMinutes)
		assert.GreaterOrEqual(t, s.TimeValue, OperatingStartMinutes)
		assert.Less(t, s.TimeValue, OperatingEndMinutes)
		assert.True(t, s.HasAvailableCourts)
		assert.Equal(t, map[string]bool{"court-1": true, "court-2": true}, s.CourtAvailability)
	}
}

func TestGenerateTimeSlotsTodayClampsToCurrentHour(t *testing.T) {
	now := time.Date(2026, 3, 14, 14, 10, 0, 0, time.UTC)
	slots := GenerateTimeSlots("2026-03-14", []string{"court-1"}, OperatingStartMinutes, OperatingEndMinutes, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, 840, slots[0].TimeValue) // 14:00, not 14:30
	assert.Equal(t, 1290, slots[len(slots)-1].TimeValue)
}

func TestGenerateTimeSlotsTodayBeforeOpening(t *testing.T) {
	now := time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)
	slots := GenerateTimeSlots("2026-03-14", []string{"court-1"}, OperatingStartMinutes, OperatingEndMinutes, now)

	require.NotEmpty(t, slots)
	assert.Equal(t, 480, slots[0].TimeValue) // clamp never moves before opening
}

func TestGenerateTimeSlotsTodayAfterClosing(t *testing.T) {
	now := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)
	slots := GenerateTimeSlots("2026-03-14", []string{"court-1"}, OperatingStartMinutes, OperatingEndMinutes, now)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlotsAlignsOffGridOpening(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	slots := GenerateTimeSlots("2026-03-14", []string{"court-1"}, 495, 600, now) // opens 08:15

	require.NotEmpty(t, slots)
	assert.Equal(t, 510, slots[0].TimeValue) // first on-grid slot is 08:30
}

func TestGenerateTimeSlotsNoCourts(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	slots := GenerateTimeSlots("2026-03-14", nil, OperatingStartMinutes, OperatingEndMinutes, now)

	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.False(t, s.HasAvailableCourts)
	}
}

func TestOperatingWindowDefaults(t *testing.T) {
	open, close := operatingWindow(nil)
	assert.Equal(t, OperatingStartMinutes, open)
	assert.Equal(t, OperatingEndMinutes, close)

	open, close = operatingWindow(&models.Venue{ID: "v1"})
	assert.Equal(t, OperatingStartMinutes, open)
	assert.Equal(t, OperatingEndMinutes, close)
}

func TestOperatingWindowVenueOverride(t *testing.T) {
	venue := &models.Venue{
		ID:       "v1",
		Settings: models.VenueSettings{OpeningTime: "06:00", ClosingTime: "23:00"},
	}
	open, close := operatingWindow(venue)
	assert.Equal(t, 360, open)
	assert.Equal(t, 1380, close)
}

func TestOperatingWindowRejectsInvertedHours(t *testing.T) {
	venue := &models.Venue{
		ID:       "v1",
		Settings: models.VenueSettings{OpeningTime: "20:00", ClosingTime: "10:00"},
	}
	open, close := operatingWindow(venue)
	assert.Equal(t, OperatingStartMinutes, open)
	assert.Equal(t, OperatingEndMinutes, close)
}

func TestOperatingWindowMalformedTimesFallBack(t *testing.T) {
	venue := &models.Venue{
		ID:       "v1",
		Settings: models.VenueSettings{OpeningTime: "not-a-time", ClosingTime: "21:00"},
	}
	open, close := operatingWindow(venue)
	assert.Equal(t, OperatingStartMinutes, open)
	assert.Equal(t, 1260, close)
}
