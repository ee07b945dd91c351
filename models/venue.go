package models

// Venue represents a bookable sports facility.
type Venue struct {
	ID       string        `bson:"id" json:"id"`
	Name     string        `bson:"name" json:"name"`
	Address  string        `bson:"address,omitempty" json:"address,omitempty"`
	Timezone string        `bson:"timezone,omitempty" json:"timezone,omitempty"` // IANA identifier, e.g. "Europe/Berlin"
	Status   string        `bson:"status" json:"status"`                         // "active" or "inactive"
	Settings VenueSettings `bson:"settings,omitempty" json:"settings,omitempty"`
}

// VenueSettings carries per-venue booking configuration.
type VenueSettings struct {
	BookingFlow string       `bson:"bookingFlow,omitempty" json:"bookingFlow,omitempty"` // one of the BookingFlowType identifiers
	OpeningTime string       `bson:"openingTime,omitempty" json:"openingTime,omitempty"` // "HH:MM", defaults to 08:00
	ClosingTime string       `bson:"closingTime,omitempty" json:"closingTime,omitempty"` // "HH:MM", defaults to 22:00
	PeakPricing *PeakPricing `bson:"peakPricing,omitempty" json:"peakPricing,omitempty"`
}

// PeakPricing applies a surcharge multiplier inside an evening window.
type PeakPricing struct {
	StartTime  string  `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime    string  `bson:"endTime" json:"endTime"`     // "HH:MM"
	Multiplier float64 `bson:"multiplier" json:"multiplier"`
}
