package availability

import (
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

	"go.uber.org/zap"
)

// ResolveBookingFlow selects the wizard step ordering for a venue. A missing
// or unsupported identifier falls back to the default flow. The resolved flow
// is fixed for the lifetime of a session; later venue-settings changes only
// take effect when a new session starts.
func ResolveBookingFlow(venue *models.Venue) models.BookingFlowType {
	if venue == nil || venue.Settings.BookingFlow == "" {
		return models.DefaultBookingFlow
	}
	flow := models.BookingFlowType(venue.Settings.BookingFlow)
	if !flow.Valid() {
		utils.GetLogger().Warn("unsupported booking flow on venue, using default",
			zap.String("venueId", venue.ID),
			zap.String("bookingFlow", venue.Settings.BookingFlow))
		return models.DefaultBookingFlow
	}
	return flow
}
