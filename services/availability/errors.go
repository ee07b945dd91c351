package availability

import "fmt"

// Snapshot error strings. These two are user-visible and require a retry
// affordance; everything else in the engine is exclude-and-log.
const (
	ErrMsgNoActiveCourts = "No active courts found for this venue"
	ErrMsgDataSource     = "Failed to load availability data"
)

type AvailabilityError struct {
	Code    string
	Message string
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNoActiveCourtsError() error {
	return &AvailabilityError{
		Code:    "noActiveCourts",
		Message: ErrMsgNoActiveCourts,
	}
}

func NewSessionNotFoundError(sessionID string) error {
	return &AvailabilityError{
		Code:    "sessionNotFound",
		Message: fmt.Sprintf("booking session %s not found or expired", sessionID),
	}
}
