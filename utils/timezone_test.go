package utils

import (
	"testing"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserTimezone(t *testing.T) {
	prev := config.AppConfig.DefaultTimezone
	config.AppConfig.DefaultTimezone = "Europe/Berlin"
	defer func() { config.AppConfig.DefaultTimezone = prev }()

	assert.Equal(t, "Europe/Berlin", GetUserTimezone(""))
	assert.Equal(t, "Europe/Berlin", GetUserTimezone("Mars/Olympus"))
	assert.Equal(t, "America/New_York", GetUserTimezone("America/New_York"))
}

func TestTimeToMinutes(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"08:00": 480,
		"8:30":  510,
		"22:00": 1320,
		"23:59": 1439,
	}
	for in, want := range cases {
		got, err := TimeToMinutes(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "24:00", "12:60", "-1:00"} {
		_, err := TimeToMinutes(in)
		assert.Error(t, err, in)
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "08:00", MinutesToTime(480))
	assert.Equal(t, "10:30", MinutesToTime(630))
	assert.Equal(t, "21:30", MinutesToTime(1290))
}

func TestParseBookingDate(t *testing.T) {
	day, err := ParseBookingDate("2026-03-14", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseBookingDate("14.03.2026", time.UTC)
	assert.Error(t, err)
	_, err = ParseBookingDate("", time.UTC)
	assert.Error(t, err)
}

func TestIsTimeSlotInPastAt(t *testing.T) {
	date := "2026-03-14"

	// Inside the grace window the slot still counts as bookable.
	now := time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC)
	assert.False(t, IsTimeSlotInPastAt(date, 600, 10, now))

	now = time.Date(2026, 3, 14, 10, 11, 0, 0, time.UTC)
	assert.True(t, IsTimeSlotInPastAt(date, 600, 10, now))

	// Earlier slots on the same day have elapsed, later ones have not.
	now = time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC)
	assert.True(t, IsTimeSlotInPastAt(date, 570, 10, now))
	assert.False(t, IsTimeSlotInPastAt(date, 630, 10, now))

	// Other days are unambiguous.
	assert.True(t, IsTimeSlotInPastAt("2026-03-13", 1290, 10, now))
	assert.False(t, IsTimeSlotInPastAt("2026-03-15", 480, 10, now))

	// An unparseable date is treated as upcoming, not elapsed.
	assert.False(t, IsTimeSlotInPastAt("bogus", 600, 10, now))
}

func TestIsTimeSlotInPastAtViewerTimezone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 09:30 UTC on 2026-03-14 is 10:30 in Berlin, so the 10:00 Berlin slot
	// is past its grace while the same wall clock in UTC is not.
	instant := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	assert.True(t, IsTimeSlotInPastAt("2026-03-14", 600, 10, instant.In(berlin)))
	assert.False(t, IsTimeSlotInPastAt("2026-03-14", 600, 10, instant))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, 2.67, Round2(2.674))
	assert.Equal(t, 15.0, Round2(15.0))
	assert.Equal(t, 33.33, Round2(100.0/3))
}
