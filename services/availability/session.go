package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/funkhaus-berlin/funkhaus-sports-sub004/models"
	"github.com/funkhaus-berlin/funkhaus-sports-sub004/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionTTL       = 30 * time.Minute
	snapshotCacheTTL = 60 * time.Second
)

// SessionService manages booking-wizard sessions: serializable session state
// lives in redis with a TTL, the live scheduler (with its booking
// subscription) lives in memory keyed by session id.
type SessionService struct {
	Engine *DefaultAvailabilityEngine

	mu     sync.Mutex
	states map[string]*SchedulerState
}

// SessionUpdate carries the mutable parts of a session. Empty fields leave
// the current value untouched.
type SessionUpdate struct {
	VenueID  string                  `json:"venueId,omitempty"`
	Date     string                  `json:"date,omitempty"`
	Selected *models.SelectedBooking `json:"selected,omitempty"`
}

// NewSessionService constructs the session orchestrator.
func NewSessionService(engine *DefaultAvailabilityEngine) *SessionService {
	return &SessionService{
		Engine: engine,
		states: make(map[string]*SchedulerState),
	}
}

// StartSession opens a booking session for a (venue, date) selection,
// computes the first availability snapshot and persists the session under a
// fresh id. An unparseable date is substituted with today in the viewer's
// timezone; the substitution is logged, never silent.
func (svc *SessionService) StartSession(ctx context.Context, venueID, date, userID, tz string) (*models.BookingSession, error) {
	logger := utils.GetLogger()

	tz = utils.GetUserTimezone(tz)
	loc := utils.LoadUserLocation(tz)
	if _, err := utils.ParseBookingDate(date, loc); err != nil {
		fallback := time.Now().In(loc).Format(utils.DateLayout)
		logger.Warn("invalid session date, substituting today",
			zap.String("date", date), zap.String("fallback", fallback), zap.Error(err))
		date = fallback
	}

	sessionID := uuid.New().String()
	state := svc.Engine.NewSchedulerState(cacheSnapshot)
	snap := state.Select(ctx, venueID, date, tz)

	session := &models.BookingSession{
		SessionID: sessionID,
		UserID:    userID,
		VenueID:   venueID,
		Date:      date,
		Timezone:  tz,
		FlowType:  snap.FlowType,
		Steps:     snap.FlowType.Steps(),
		Snapshot:  snap,
	}

	svc.mu.Lock()
	svc.states[sessionID] = state
	svc.mu.Unlock()

	if err := svc.persist(ctx, session); err != nil {
		svc.teardown(sessionID)
		return nil, err
	}
	return session, nil
}

// GetSession loads a session and refreshes its snapshot from the live
// scheduler when one is still attached.
func (svc *SessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := svc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state := svc.state(sessionID); state != nil {
		if snap := state.Snapshot(); snap != nil {
			session.Snapshot = snap
		}
	}
	return session, nil
}

// UpdateSession applies a selection change. A venue or date change triggers a
// full recompute (latest-wins over any in-flight one); the session's flow is
// NOT re-resolved — it stays fixed until a new session starts.
func (svc *SessionService) UpdateSession(ctx context.Context, sessionID string, upd SessionUpdate) (*models.BookingSession, error) {
	session, err := svc.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	reselect := false
	if upd.VenueID != "" && upd.VenueID != session.VenueID {
		session.VenueID = upd.VenueID
		reselect = true
	}
	if upd.Date != "" && upd.Date != session.Date {
		loc := utils.LoadUserLocation(session.Timezone)
		if _, err := utils.ParseBookingDate(upd.Date, loc); err != nil {
			utils.GetLogger().Warn("ignoring invalid date on session update",
				zap.String("sessionId", sessionID), zap.String("date", upd.Date), zap.Error(err))
		} else {
			session.Date = upd.Date
			reselect = true
		}
	}
	if upd.Selected != nil {
		session.Selected = upd.Selected
	}

	state := svc.state(sessionID)
	if state == nil {
		// Process restarted since the session began; reattach a scheduler.
		state = svc.Engine.NewSchedulerState(cacheSnapshot)
		svc.mu.Lock()
		svc.states[sessionID] = state
		svc.mu.Unlock()
		reselect = true
	}
	if reselect {
		session.Snapshot = state.Select(ctx, session.VenueID, session.Date, session.Timezone)
	} else if snap := state.Snapshot(); snap != nil {
		session.Snapshot = snap
	}

	if err := svc.persist(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// EndSession tears the session down: the booking subscription is cancelled
// so no further recomputation or callbacks occur, and the persisted state is
// deleted.
func (svc *SessionService) EndSession(ctx context.Context, sessionID string) error {
	svc.teardown(sessionID)
	if err := utils.GetSessionCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session %s: %w", sessionID, err)
	}
	return nil
}

func (svc *SessionService) state(sessionID string) *SchedulerState {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.states[sessionID]
}

func (svc *SessionService) teardown(sessionID string) {
	svc.mu.Lock()
	state := svc.states[sessionID]
	delete(svc.states, sessionID)
	svc.mu.Unlock()
	if state != nil {
		state.Close()
	}
}

func (svc *SessionService) persist(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := utils.GetSessionCacheClient().Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (svc *SessionService) load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := utils.GetSessionCacheClient().Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, NewSessionNotFoundError(sessionID)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session %s: %w", sessionID, err)
	}
	return &session, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// cacheSnapshot pushes every computed snapshot into the generic cache so
// stateless readers can serve precomputed availability for a (venue, date).
func cacheSnapshot(snap *models.AvailabilitySnapshot) {
	if snap == nil || snap.Loading || snap.VenueID == "" {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	key := fmt.Sprintf("availability:%s:%s", snap.VenueID, snap.Date)
	if err := utils.GetCacheClient().Set(ctx, key, data, snapshotCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability snapshot",
			zap.String("venueId", snap.VenueID), zap.Error(err))
	}
}
