package models

// BookingFlowType identifies one of the three fixed orderings of the booking
// wizard's steps. A venue selects one via its settings; the resolved flow is
// fixed for the lifetime of a session.
type BookingFlowType string

const (
	// FlowDateCourtTimeDuration is the default: pick a court first, then time.
	FlowDateCourtTimeDuration BookingFlowType = "DATE_COURT_TIME_DURATION"
	// FlowDateTimeDurationCourt picks the window first, court last.
	FlowDateTimeDurationCourt BookingFlowType = "DATE_TIME_DURATION_COURT"
	// FlowDateTimeCourtDuration picks a start time, then a court, then length.
	FlowDateTimeCourtDuration BookingFlowType = "DATE_TIME_COURT_DURATION"
)

// DefaultBookingFlow is used when a venue specifies no (or an unknown) flow.
const DefaultBookingFlow = FlowDateCourtTimeDuration

// BookingStep is a single stage of the booking wizard.
type BookingStep string

const (
	StepDate     BookingStep = "date"
	StepCourt    BookingStep = "court"
	StepTime     BookingStep = "time"
	StepDuration BookingStep = "duration"
	StepPayment  BookingStep = "payment"
)

// flowSteps is the closed lookup table from flow variant to step ordering.
// Adding a flow requires a new BookingFlowType constant and an entry here.
var flowSteps = map[BookingFlowType][]BookingStep{
	FlowDateCourtTimeDuration: {StepDate, StepCourt, StepTime, StepDuration, StepPayment},
	FlowDateTimeDurationCourt: {StepDate, StepTime, StepDuration, StepCourt, StepPayment},
	FlowDateTimeCourtDuration: {StepDate, StepTime, StepCourt, StepDuration, StepPayment},
}

// Valid reports whether f is one of the supported flow variants.
func (f BookingFlowType) Valid() bool {
	_, ok := flowSteps[f]
	return ok
}

// Steps returns a copy of the ordered step list for the flow.
func (f BookingFlowType) Steps() []BookingStep {
	steps, ok := flowSteps[f]
	if !ok {
		steps = flowSteps[DefaultBookingFlow]
	}
	out := make([]BookingStep, len(steps))
	copy(out, steps)
	return out
}
