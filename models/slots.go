package models

// TimeSlot is one 30-minute unit of a venue's bookable day with per-court
// availability flags.
type TimeSlot struct {
	Time               string          `bson:"time" json:"time"`                             // "HH:MM"
	TimeValue          int             `bson:"timeValue" json:"timeValue"`                   // minutes from midnight, multiple of 30
	CourtAvailability  map[string]bool `bson:"courtAvailability" json:"courtAvailability"`   // courtID -> free
	HasAvailableCourts bool            `bson:"hasAvailableCourts" json:"hasAvailableCourts"` // OR over CourtAvailability
}

// TimeSlotOption is the flattened read-side view of a slot used by the
// booking wizard's time picker.
type TimeSlotOption struct {
	Label     string `json:"label"` // "HH:MM"
	Value     int    `json:"value"` // minutes from midnight
	Available bool   `json:"available"`
}

// Duration is a candidate booking length offered for a chosen start time.
type Duration struct {
	Label   string  `json:"label"` // e.g. "1.5 hours"
	Minutes int     `json:"minutes"`
	Price   float64 `json:"price"`
	CourtID string  `json:"courtId,omitempty"` // set when computed for a specific court
}

// CourtAvailabilityStatus classifies one court against a requested time range.
type CourtAvailabilityStatus struct {
	CourtID              string   `json:"courtId"`
	CourtName            string   `json:"courtName"`
	Available            bool     `json:"available"`      // at least one required sub-slot is free
	FullyAvailable       bool     `json:"fullyAvailable"` // every required sub-slot is free
	AvailableTimeSlots   []string `json:"availableTimeSlots"`
	UnavailableTimeSlots []string `json:"unavailableTimeSlots"`
}
