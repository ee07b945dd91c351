package models

// AvailabilitySnapshot is the fully-computed availability state for one
// (venue, date) selection at a point in time. Snapshots are immutable: the
// engine replaces the whole structure on recomputation and never patches
// fields in place.
type AvailabilitySnapshot struct {
	Date           string          `json:"date"` // "YYYY-MM-DD"
	VenueID        string          `json:"venueId"`
	VenueName      string          `json:"venueName"`
	TimeSlots      []TimeSlot      `json:"timeSlots"`
	ActiveCourtIDs []string        `json:"activeCourtIds"`
	Bookings       []Booking       `json:"bookings"`
	FlowType       BookingFlowType `json:"flowType"`
	Loading        bool            `json:"loading"`
	Error          string          `json:"error,omitempty"`
}
