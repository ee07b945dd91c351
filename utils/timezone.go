// File: utils/timezone.go
package utils

import (
	"fmt"
	"math"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/config"

	"go.uber.org/zap"
)

// DateLayout is the wire format for calendar days (e.g. "2025-06-14").
const DateLayout = "2006-01-02"

// GetUserTimezone resolves the viewer's IANA timezone. An empty or invalid
// identifier falls back to the configured default timezone.
func GetUserTimezone(tz string) string {
	if tz == "" {
		return config.AppConfig.DefaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		GetLogger().Warn("invalid timezone identifier, using default",
			zap.String("timezone", tz), zap.Error(err))
		return config.AppConfig.DefaultTimezone
	}
	return tz
}

// LoadUserLocation loads the viewer's location, falling back to UTC if even
// the configured default cannot be resolved.
func LoadUserLocation(tz string) *time.Location {
	loc, err := time.LoadLocation(GetUserTimezone(tz))
	if err != nil {
		GetLogger().Warn("failed to load timezone, using UTC", zap.Error(err))
		return time.UTC
	}
	return loc
}

// TimeToMinutes parses an "HH:MM" wall-clock string into minutes since midnight.
func TimeToMinutes(s string) (int, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hh*60 + mm, nil
}

// MinutesToTime formats minutes since midnight as "HH:MM".
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseBookingDate parses a "YYYY-MM-DD" date in the given location. Callers
// decide the substitution on failure; the error makes it visible.
func ParseBookingDate(date string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking date %q: %w", date, err)
	}
	return day, nil
}

// IsTimeSlotInPast reports whether the slot starting at minutesSinceMidnight
// on the given date has already elapsed in the viewer's timezone, allowing a
// grace window after the slot start.
func IsTimeSlotInPast(date string, minutesSinceMidnight, graceMinutes int, tz string) bool {
	loc := LoadUserLocation(tz)
	return IsTimeSlotInPastAt(date, minutesSinceMidnight, graceMinutes, time.Now().In(loc))
}

// IsTimeSlotInPastAt is the clock-injected variant used by the engine's
// read-side filters; now must already be in the viewer's location.
func IsTimeSlotInPastAt(date string, minutesSinceMidnight, graceMinutes int, now time.Time) bool {
	day, err := ParseBookingDate(date, now.Location())
	if err != nil {
		GetLogger().Warn("past-slot check on unparseable date, treating as upcoming", zap.Error(err))
		return false
	}
	slotStart := day.Add(time.Duration(minutesSinceMidnight) * time.Minute)
	return now.After(slotStart.Add(time.Duration(graceMinutes) * time.Minute))
}

// Round2 rounds to two decimal places, half-up. The epsilon shields values
// like 2.675 that binary floats store just below the half boundary.
func Round2(v float64) float64 {
	return math.Round((v+1e-9)*100) / 100
}
