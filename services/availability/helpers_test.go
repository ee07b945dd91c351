package availability

import (
	"context"
	"fmt"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
)

// In-memory registry fakes backing the engine tests.

type fakeVenueRepo struct {
	venues map[string]*models.Venue
	err    error
}

func (f *fakeVenueRepo) GetByID(_ context.Context, venueID string) (*models.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.venues[venueID]
	if !ok {
		return nil, fmt.Errorf("venue %s not found", venueID)
	}
	return v, nil
}

func (f *fakeVenueRepo) GetAllActive(_ context.Context) ([]models.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Venue
	for _, v := range f.venues {
		out = append(out, *v)
	}
	return out, nil
}

type fakeCourtRepo struct {
	courts []models.Court
	err    error
}

func (f *fakeCourtRepo) GetByID(_ context.Context, courtID string) (*models.Court, error) {
	for _, c := range f.courts {
		if c.ID == courtID {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("court %s not found", courtID)
}

func (f *fakeCourtRepo) GetByVenueID(_ context.Context, venueID string) ([]models.Court, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Court
	for _, c := range f.courts {
		if c.VenueID == venueID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourtRepo) GetActiveByVenueID(_ context.Context, venueID string) ([]models.Court, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Court
	for _, c := range f.courts {
		if c.VenueID == venueID && c.IsActive() {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeBookingRepo hands out fresh buffered channels per subscription so tests
// can drive emissions; updates and errs always point at the latest pair.
type fakeBookingRepo struct {
	initial []models.Booking
	updates chan []models.Booking
	errs    chan error
}

func newFakeBookingRepo(initial []models.Booking) *fakeBookingRepo {
	return &fakeBookingRepo{initial: initial}
}

func (f *fakeBookingRepo) GetActiveByVenueAndDate(_ context.Context, _, _ string) ([]models.Booking, error) {
	return f.initial, nil
}

func (f *fakeBookingRepo) Subscribe(_ context.Context, _, _ string) (<-chan []models.Booking, <-chan error) {
	f.updates = make(chan []models.Booking, 8)
	f.errs = make(chan error, 1)
	f.updates <- f.initial
	return f.updates, f.errs
}

// fixedPricing returns a fixed per-court price regardless of the window.
type fixedPricing struct {
	prices map[string]float64
}

func (f *fixedPricing) CalculatePrice(_ context.Context, court models.Court, _, _, _ string) (float64, error) {
	p, ok := f.prices[court.ID]
	if !ok {
		return 0, fmt.Errorf("no price for court %s", court.ID)
	}
	return p, nil
}

// courtFreeAt reports whether the court is free at the given minute mark.
// Safe for polling assertions since it never fails the test itself.
func courtFreeAt(snap *models.AvailabilitySnapshot, minutes int, courtID string) bool {
	if snap == nil {
		return false
	}
	for _, s := range snap.TimeSlots {
		if s.TimeValue == minutes {
			return s.CourtAvailability[courtID]
		}
	}
	return false
}

func testSession(snap *models.AvailabilitySnapshot) *models.BookingSession {
	return &models.BookingSession{
		SessionID: "test-session",
		VenueID:   snap.VenueID,
		Date:      snap.Date,
		Timezone:  "UTC",
		FlowType:  snap.FlowType,
		Snapshot:  snap,
	}
}

// freshSnapshot builds a fully free snapshot over the default operating window.
func freshSnapshot(date string, courtIDs []string) *models.AvailabilitySnapshot {
	var slots []models.TimeSlot
	for v := OperatingStartMinutes; v < OperatingEndMinutes; v += SlotIntervalMinutes {
		avail := make(map[string]bool, len(courtIDs))
		for _, id := range courtIDs {
			avail[id] = true
		}
		slots = append(slots, models.TimeSlot{
			Time:               fmt.Sprintf("%02d:%02d", v/60, v%60),
			TimeValue:          v,
			CourtAvailability:  avail,
			HasAvailableCourts: len(courtIDs) > 0,
		})
	}
	return &models.AvailabilitySnapshot{
		Date:           date,
		VenueID:        "venue-1",
		VenueName:      "Funkhaus",
		TimeSlots:      slots,
		ActiveCourtIDs: courtIDs,
		FlowType:       models.DefaultBookingFlow,
	}
}
