package models

// SelectedBooking is the user's in-progress selection within a session.
type SelectedBooking struct {
	CourtID         string `json:"courtId,omitempty"`
	StartTime       string `json:"startTime,omitempty"` // "HH:MM"
	EndTime         string `json:"endTime,omitempty"`   // "HH:MM"
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// BookingSession holds wizard context between venue selection and payment.
// The flow is resolved once when the session starts and is not re-read from
// venue settings mid-flow.
type BookingSession struct {
	SessionID string                `json:"sessionId"`
	UserID    string                `json:"userId,omitempty"`
	VenueID   string                `json:"venueId"`
	Date      string                `json:"date"` // "YYYY-MM-DD"
	Timezone  string                `json:"timezone,omitempty"`
	FlowType  BookingFlowType       `json:"flowType"`
	Steps     []BookingStep         `json:"steps"`
	Selected  *SelectedBooking      `json:"selected,omitempty"`
	Snapshot  *AvailabilitySnapshot `json:"snapshot,omitempty"`
}
