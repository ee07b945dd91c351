package handlers

import (
	"net/http"
	"strconv"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the booking wizard's availability queries.
type AvailabilityHandler struct {
	Sessions *availability.SessionService
	Engine   *availability.DefaultAvailabilityEngine
	Logger   *zap.Logger
}

// NewAvailabilityHandler constructs the handler.
func NewAvailabilityHandler(sessions *availability.SessionService, engine *availability.DefaultAvailabilityEngine, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Sessions: sessions, Engine: engine, Logger: logger}
}

// GetTimeSlots returns the session's time picker list, with elapsed slots
// filtered in the viewer's timezone.
func (h *AvailabilityHandler) GetTimeSlots(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"timeSlots": h.Engine.TimeSlotOptions(session),
		"flowType":  session.FlowType,
	})
}

// GetDurations enumerates valid booking lengths for a start time, optionally
// for one court.
func (h *AvailabilityHandler) GetDurations(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start query parameter is required"})
		return
	}

	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	durations := h.Engine.AvailableDurations(c.Request.Context(), session, start, c.Query("courtId"))
	c.JSON(http.StatusOK, gin.H{"durations": durations})
}

// GetCourts ranks all active courts for a start time and duration.
func (h *AvailabilityHandler) GetCourts(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start query parameter is required"})
		return
	}

	durationMinutes := 0
	if raw := c.Query("duration"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive number of minutes"})
			return
		}
		durationMinutes = v
	}

	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}

	courts := h.Engine.CourtAvailability(c.Request.Context(), session, start, durationMinutes)
	c.JSON(http.StatusOK, gin.H{"courts": courts})
}
