package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/services/availability"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartSession creates a new booking session for a (venue, date) selection
// and returns the first availability snapshot.
func (h *AvailabilityHandler) StartSession(c *gin.Context) {
	var input struct {
		VenueID  string `json:"venueId" binding:"required"`
		Date     string `json:"date" binding:"required"`
		UserID   string `json:"userId"`
		Timezone string `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.StartSession(c.Request.Context(), input.VenueID, input.Date, input.UserID, input.Timezone)
	if err != nil {
		h.Logger.Error("failed to start booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current session state including the live snapshot.
func (h *AvailabilityHandler) GetSession(c *gin.Context) {
	session, err := h.Sessions.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSession applies a venue/date re-selection or records the user's
// chosen court/start/duration, recomputing availability when needed.
func (h *AvailabilityHandler) UpdateSession(c *gin.Context) {
	var upd availability.SessionUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.UpdateSession(c.Request.Context(), c.Param("sessionID"), upd)
	if err != nil {
		if _, ok := err.(*availability.AvailabilityError); ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
			return
		}
		h.Logger.Error("failed to update booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// EndSession tears down the session and its booking subscription.
func (h *AvailabilityHandler) EndSession(c *gin.Context) {
	if err := h.Sessions.EndSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.Logger.Error("failed to end booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ended"})
}

// GetVenueAvailability serves precomputed availability for a (venue, date)
// without a session, preferring the snapshot cache and computing one-shot on
// a miss.
func (h *AvailabilityHandler) GetVenueAvailability(c *gin.Context) {
	venueID := c.Param("venueID")
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	ctx := c.Request.Context()
	key := "availability:" + venueID + ":" + date
	if data, err := utils.GetCacheClient().Get(ctx, key).Result(); err == nil {
		var snap models.AvailabilitySnapshot
		if err := json.Unmarshal([]byte(data), &snap); err == nil {
			c.JSON(http.StatusOK, gin.H{"availability": snap, "cached": true})
			return
		}
	}

	state := h.Engine.NewSchedulerState(nil)
	snap := state.Select(ctx, venueID, date, utils.GetUserTimezone(c.Query("timezone")))
	state.Close()
	c.JSON(http.StatusOK, gin.H{"availability": snap, "cached": false})
}
