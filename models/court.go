package models

// Court status values.
const (
	CourtStatusActive      = "active"
	CourtStatusMaintenance = "maintenance"
	CourtStatusInactive    = "inactive"
)

// Court represents a single bookable court within a venue.
type Court struct {
	ID           string  `bson:"id" json:"id"`
	VenueID      string  `bson:"venueId" json:"venueId"`
	Name         string  `bson:"name" json:"name"`
	Status       string  `bson:"status" json:"status"`             // "active", "maintenance", or "inactive"
	SportType    string  `bson:"sportType" json:"sportType"`       // e.g. "padel", "tennis"
	PricePerHour float64 `bson:"pricePerHour" json:"pricePerHour"` // base rate in venue currency
}

// IsActive reports whether the court can receive bookings. Maintenance and
// inactive courts are equally unbookable.
func (c Court) IsActive() bool {
	return c.Status == CourtStatusActive
}
