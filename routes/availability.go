package routes

import (
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers all endpoints for the availability engine.
func RegisterAvailabilityRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/availability")
	{
		api.POST("/session", ah.StartSession)
		api.GET("/session/:sessionID", ah.GetSession)
		api.PUT("/session/:sessionID", ah.UpdateSession)
		api.DELETE("/session/:sessionID", ah.EndSession)
		api.GET("/session/:sessionID/timeslots", ah.GetTimeSlots)
		api.GET("/session/:sessionID/durations", ah.GetDurations)
		api.GET("/session/:sessionID/courts", ah.GetCourts)
	}

	// Sessionless precomputed availability for a venue and date.
	r.GET("/api/venues/:venueID/availability", ah.GetVenueAvailability)
}
