package availability

import (
	"context"
	"sync"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

	"go.uber.org/zap"
)

// SchedulerState owns the single authoritative availability snapshot for a
// booking session's current (venue, date) selection. Every recomputation
// replaces the whole snapshot; readers never observe a partial update. A new
// Select supersedes any in-flight computation by cancelling its booking
// subscription — latest wins, no locking of the computation itself.
type SchedulerState struct {
	engine   *DefaultAvailabilityEngine
	onUpdate func(*models.AvailabilitySnapshot)

	mu      sync.Mutex
	cancel  context.CancelFunc
	gen     uint64
	current *models.AvailabilitySnapshot
}

// NewSchedulerState creates a scheduler for one booking session. onUpdate,
// when non-nil, is invoked after every published snapshot (e.g. to push the
// result into a cache); it must not call back into the state while holding
// its own locks.
func (e *DefaultAvailabilityEngine) NewSchedulerState(onUpdate func(*models.AvailabilitySnapshot)) *SchedulerState {
	return &SchedulerState{engine: e, onUpdate: onUpdate}
}

// Snapshot returns the current immutable snapshot, or nil before the first
// Select.
func (s *SchedulerState) Snapshot() *models.AvailabilitySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Close tears down the active booking subscription. No further snapshots are
// published after Close returns.
func (s *SchedulerState) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}

// Select recomputes availability for a (venue, date) selection and keeps it
// current by subscribing to the booking store. It returns once the first full
// snapshot (or a failure snapshot) has been published.
func (s *SchedulerState) Select(ctx context.Context, venueID, date, tz string) *models.AvailabilitySnapshot {
	logger := utils.GetLogger()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	subCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	myGen := s.gen
	s.mu.Unlock()

	s.publish(myGen, &models.AvailabilitySnapshot{
		Date:    date,
		VenueID: venueID,
		Loading: true,
	})

	venue, err := s.engine.VenueRepo.GetByID(ctx, venueID)
	if err != nil {
		logger.Error("failed to load venue for availability",
			zap.String("venueId", venueID), zap.Error(err))
		return s.publishFailure(myGen, venueID, "", date, models.DefaultBookingFlow)
	}
	flow := ResolveBookingFlow(venue)

	courts, err := s.engine.CourtRepo.GetActiveByVenueID(ctx, venueID)
	if err != nil {
		logger.Error("failed to load courts for availability",
			zap.String("venueId", venueID), zap.Error(err))
		return s.publishFailure(myGen, venueID, venue.Name, date, flow)
	}
	if len(courts) == 0 {
		cancel()
		return s.publish(myGen, &models.AvailabilitySnapshot{
			Date:      date,
			VenueID:   venueID,
			VenueName: venue.Name,
			TimeSlots: []models.TimeSlot{},
			FlowType:  flow,
			Error:     ErrMsgNoActiveCourts,
		})
	}

	courtIDs := make([]string, len(courts))
	for i, c := range courts {
		courtIDs[i] = c.ID
	}

	venueTz := venue.Timezone
	if venueTz == "" {
		venueTz = tz
	}
	now := time.Now().In(utils.LoadUserLocation(venueTz))
	openMin, closeMin := operatingWindow(venue)
	skeleton := GenerateTimeSlots(date, courtIDs, openMin, closeMin, now)

	updates, errs := s.engine.BookingRepo.Subscribe(subCtx, venueID, date)

	build := func(bookings []models.Booking) *models.AvailabilitySnapshot {
		return &models.AvailabilitySnapshot{
			Date:           date,
			VenueID:        venueID,
			VenueName:      venue.Name,
			TimeSlots:      ApplyBookingOccupancy(skeleton, bookings),
			ActiveCourtIDs: courtIDs,
			Bookings:       bookings,
			FlowType:       flow,
		}
	}

	var first *models.AvailabilitySnapshot
	select {
	case bookings, ok := <-updates:
		if !ok {
			return s.publishFailure(myGen, venueID, venue.Name, date, flow)
		}
		first = s.publish(myGen, build(bookings))
	case err := <-errs:
		logger.Error("booking subscription failed",
			zap.String("venueId", venueID), zap.String("date", date), zap.Error(err))
		first = s.publishStale(myGen, venueID, venue.Name, date, flow, skeleton)
	case <-ctx.Done():
		cancel()
		return s.Snapshot()
	}

	go s.watch(subCtx, myGen, venueID, venue.Name, date, flow, build, updates, errs)
	return first
}

// watch republishes a fresh snapshot on every booking-store emission until
// the subscription context is cancelled.
func (s *SchedulerState) watch(
	ctx context.Context,
	gen uint64,
	venueID, venueName, date string,
	flow models.BookingFlowType,
	build func([]models.Booking) *models.AvailabilitySnapshot,
	updates <-chan []models.Booking,
	errs <-chan error,
) {
	logger := utils.GetLogger()
	for {
		select {
		case bookings, ok := <-updates:
			if !ok {
				return
			}
			s.publish(gen, build(bookings))
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Error("booking subscription errored, keeping last snapshot",
				zap.String("venueId", venueID), zap.String("date", date), zap.Error(err))
			s.publishStale(gen, venueID, venueName, date, flow, nil)
			return
		case <-ctx.Done():
			return
		}
	}
}

// publish installs snap as the current snapshot unless a newer Select has
// superseded gen, in which case the stale result is dropped.
func (s *SchedulerState) publish(gen uint64, snap *models.AvailabilitySnapshot) *models.AvailabilitySnapshot {
	s.mu.Lock()
	if gen != s.gen {
		cur := s.current
		s.mu.Unlock()
		return cur
	}
	s.current = snap
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(snap)
	}
	return snap
}

// publishFailure publishes a DataSourceFailure snapshot, retaining the last
// known slot skeleton (stale-but-present) so the caller is not left blank
// during a transient failure.
func (s *SchedulerState) publishFailure(gen uint64, venueID, venueName, date string, flow models.BookingFlowType) *models.AvailabilitySnapshot {
	return s.publishStale(gen, venueID, venueName, date, flow, nil)
}

func (s *SchedulerState) publishStale(gen uint64, venueID, venueName, date string, flow models.BookingFlowType, skeleton []models.TimeSlot) *models.AvailabilitySnapshot {
	slots := skeleton
	if slots == nil {
		s.mu.Lock()
		if s.current != nil {
			slots = s.current.TimeSlots
		}
		s.mu.Unlock()
	}
	if slots == nil {
		slots = []models.TimeSlot{}
	}
	return s.publish(gen, &models.AvailabilitySnapshot{
		Date:      date,
		VenueID:   venueID,
		VenueName: venueName,
		TimeSlots: slots,
		FlowType:  flow,
		Error:     ErrMsgDataSource,
	})
}
