package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/domain/geo"
	"aroundtheblock/internal/errors"

	"github.com/google/uuid"
)

// dwellTracker records which venue's radius the user is inside and since
// when. A non-nil tracker always has exactly one armed timer alongside it
// until the threshold passes or the user leaves.
type dwellTracker struct {
	venue entity.Venue
	since time.Time
}

// remoteOp is a deferred server call decided while the state lock is held
// and executed after it is released.
type remoteOp int

const (
	opNone remoteOp = iota
	opCheckIn
	opCheckOut
)

// Machine is the check-in state machine. All transitions are serialized
// behind a single mutex; samples arriving while a remote call is pending
// are dropped rather than queued, since the next fix supersedes them.
type Machine struct {
	cfg    Config
	userID uuid.UUID
	remote RemoteStore
	clock  Clock
	logger *slog.Logger

	mu       sync.Mutex
	venues   []entity.Venue
	current  *entity.CheckIn
	dwell    *dwellTracker
	timer    Timer
	inFlight bool
	running  bool
	runCtx   context.Context
	cancel   context.CancelFunc
	done     chan struct{}

	subMu   sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

// NewMachine builds a stopped machine for one user. Pass nil for clock or
// logger to get the system clock and the default slog logger.
func NewMachine(cfg Config, userID uuid.UUID, remote RemoteStore, clock Clock, logger *slog.Logger) *Machine {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Machine{
		cfg:    cfg.withDefaults(),
		userID: userID,
		remote: remote,
		clock:  clock,
		logger: logger,
		runCtx: context.Background(),
	}
}

// SetVenues replaces the venue catalog the machine matches samples against.
// Safe to call while running; the next sample uses the new catalog.
func (m *Machine) SetVenues(venues []entity.Venue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.venues = append([]entity.Venue(nil), venues...)
}

// Current returns the active check-in the machine believes it holds, or nil.
func (m *Machine) Current() *entity.CheckIn {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current
}

// DwellingAt returns the venue the user is currently dwelling at and since
// when, or nil when outside every venue's radius.
func (m *Machine) DwellingAt() (*entity.Venue, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dwell == nil {
		return nil, time.Time{}
	}
	venue := m.dwell.venue

	return &venue, m.dwell.since
}

// Start reconciles local state with the server and begins consuming
// samples from the source. It returns an error if the machine is already
// running or the source cannot be opened.
func (m *Machine) Start(ctx context.Context, source SampleSource) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()

		return errors.New("monitor already started")
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.runCtx = runCtx
	m.cancel = cancel
	m.running = true
	m.done = make(chan struct{})
	done := m.done
	m.mu.Unlock()

	// The server is the source of truth across restarts: adopt whatever
	// active check-in it holds before processing a single sample.
	current, err := m.remote.GetCurrentCheckIn(runCtx, m.userID)
	if err != nil {
		m.logger.Warn("check-in reconciliation failed, starting without server state",
			slog.String("user_id", m.userID.String()),
			slog.Any("error", err))
	} else {
		m.mu.Lock()
		m.current = current
		m.mu.Unlock()
	}

	samples, err := source.Watch(runCtx)
	if err != nil {
		cancel()
		m.mu.Lock()
		m.running = false
		m.mu.Unlock()
		close(done)

		return errors.Wrap(err, "watch location samples")
	}

	go m.consume(runCtx, samples, done)

	return nil
}

// Stop halts sample consumption and disarms any pending dwell timer. It is
// idempotent and safe to call from error paths. Stopping never checks the
// user out; an active check-in survives until ended explicitly or by the
// next run of the monitor.
func (m *Machine) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()

		return
	}
	m.running = false
	cancel := m.cancel
	done := m.done
	m.cancelTimerLocked()
	m.dwell = nil
	m.mu.Unlock()

	cancel()
	<-done
}

func (m *Machine) consume(ctx context.Context, samples <-chan Sample, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-samples:
			if !ok {
				return
			}
			m.handleSample(ctx, s)
		}
	}
}

// handleSample runs one transition of the state machine. The decision is
// made under the lock; the resulting server call, if any, happens after the
// lock is released with the in-flight flag raised so concurrent samples and
// timer fires are dropped until it completes.
func (m *Machine) handleSample(ctx context.Context, s Sample) {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()

		return
	}

	now := m.clock.Now()
	op, venue, events := m.transitionLocked(s, now)
	if op != opNone {
		m.inFlight = true
	}
	m.mu.Unlock()

	m.emit(events)

	switch op {
	case opCheckIn:
		if _, err := m.completeCheckIn(ctx, venue); err != nil {
			m.logger.Warn("automatic check-in failed",
				slog.String("venue_id", venue.ID),
				slog.Any("error", err))
		}
	case opCheckOut:
		if err := m.completeCheckOut(ctx); err != nil {
			m.logger.Warn("automatic check-out failed", slog.Any("error", err))
		}
	case opNone:
	}
}

// transitionLocked updates dwell state for one sample and decides whether a
// server call is due. Caller holds m.mu.
func (m *Machine) transitionLocked(s Sample, now time.Time) (remoteOp, entity.Venue, []Event) {
	var events []Event

	nearest := m.nearestVenueLocked(s.Location)
	if nearest != nil {
		if m.dwell != nil && m.dwell.venue.ID == nearest.ID {
			// Still inside the same venue's radius. The timer normally
			// beats this path to the threshold; the sample-driven check
			// covers clocks that only advance with samples.
			if m.current == nil && now.Sub(m.dwell.since) >= m.cfg.DwellThreshold {
				return opCheckIn, m.dwell.venue, events
			}

			return opNone, entity.Venue{}, events
		}

		// Entered a (different) venue's radius: restart the dwell clock
		// and arm a fresh timer bound to this venue's id.
		m.cancelTimerLocked()
		m.dwell = &dwellTracker{venue: *nearest, since: now}
		m.armTimerLocked(nearest.ID)
		events = append(events, Event{Type: EventDwellStarted, Venue: *nearest, At: now})

		return opNone, entity.Venue{}, events
	}

	// Outside every venue's radius.
	if m.current != nil && m.dwell != nil &&
		geo.DistanceMeters(s.Location, m.dwell.venue.Location) > m.cfg.ProximityRadiusMeters {
		// Check out against the venue we dwelled at, not whatever venue
		// happens to be nearest now. Dwell state is cleared only once the
		// server confirms, so a failed call retries on the next fix.
		return opCheckOut, entity.Venue{}, events
	}

	if m.current == nil {
		m.dwell = nil
		m.cancelTimerLocked()
	}

	return opNone, entity.Venue{}, events
}

// nearestVenueLocked returns the closest catalog venue within the proximity
// radius, or nil. Caller holds m.mu.
func (m *Machine) nearestVenueLocked(loc entity.Coordinate) *entity.Venue {
	var (
		best     *entity.Venue
		bestDist float64
	)
	for i := range m.venues {
		d := geo.DistanceMeters(loc, m.venues[i].Location)
		if d > m.cfg.ProximityRadiusMeters {
			continue
		}
		if best == nil || d < bestDist {
			best = &m.venues[i]
			bestDist = d
		}
	}

	return best
}

// armTimerLocked schedules the dwell-threshold fallback for the venue the
// user just started dwelling at. Caller holds m.mu and has cancelled any
// previous timer; at most one timer is ever armed.
func (m *Machine) armTimerLocked(venueID string) {
	m.timer = m.clock.AfterFunc(m.cfg.DwellThreshold, func() {
		m.onDwellTimer(venueID)
	})
}

func (m *Machine) cancelTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// onDwellTimer fires when the dwell threshold elapses without a sample
// having driven the check-in. A stale fire, where the user has since moved
// to another venue or left, re-validates against current dwell state and
// does nothing.
func (m *Machine) onDwellTimer(venueID string) {
	m.mu.Lock()
	if m.dwell == nil || m.dwell.venue.ID != venueID || m.current != nil || m.inFlight {
		m.mu.Unlock()

		return
	}
	venue := m.dwell.venue
	m.inFlight = true
	ctx := m.runCtx
	m.mu.Unlock()

	if _, err := m.completeCheckIn(ctx, venue); err != nil {
		m.logger.Warn("automatic check-in failed",
			slog.String("venue_id", venue.ID),
			slog.Any("error", err))
	}
}

// CheckInAt checks the user in at the venue right now, gated by the same
// proximity radius the automatic path uses. loc is the user's current fix;
// nil means no fix and is rejected.
func (m *Machine) CheckInAt(ctx context.Context, venue entity.Venue, loc *entity.Coordinate) (*entity.CheckIn, error) {
	if !geo.IsNear(loc, &venue.Location, m.cfg.ProximityRadiusMeters) {
		return nil, ErrTooFar
	}

	m.mu.Lock()
	if m.current != nil {
		m.mu.Unlock()

		return nil, ErrAlreadyCheckedIn
	}
	if m.inFlight {
		m.mu.Unlock()

		return nil, ErrOperationPending
	}
	m.inFlight = true
	m.mu.Unlock()

	return m.completeCheckIn(ctx, venue)
}

// CheckOut ends the user's active check-in.
func (m *Machine) CheckOut(ctx context.Context) error {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()

		return ErrNoActiveCheckIn
	}
	if m.inFlight {
		m.mu.Unlock()

		return ErrOperationPending
	}
	m.inFlight = true
	m.mu.Unlock()

	return m.completeCheckOut(ctx)
}

// completeCheckIn issues the create call and commits the result. The caller
// has already raised the in-flight flag under the lock; this is the only
// place that lowers it again on the check-in path.
func (m *Machine) completeCheckIn(ctx context.Context, venue entity.Venue) (*entity.CheckIn, error) {
	checkIn, err := m.remote.CreateCheckIn(ctx, m.userID, venue)
	if err != nil && errors.Is(err, ErrConflict) {
		// The server already holds an active check-in for this user
		// (another device, or a retry of our own create). Adopt it.
		checkIn, err = m.remote.GetCurrentCheckIn(ctx, m.userID)
	}

	m.mu.Lock()
	m.inFlight = false
	if err != nil {
		m.mu.Unlock()

		return nil, err
	}
	m.current = checkIn
	events := []Event{{Type: EventCheckedIn, Venue: venue, CheckIn: checkIn, At: m.clock.Now()}}
	m.mu.Unlock()

	m.emit(events)

	return checkIn, nil
}

// completeCheckOut issues the end call and commits the result. A not-found
// response means the check-in was already ended elsewhere and counts as
// success. Any other failure leaves current set so the next qualifying
// sample retries.
func (m *Machine) completeCheckOut(ctx context.Context) error {
	m.mu.Lock()
	current := m.current
	m.mu.Unlock()

	if current == nil {
		m.mu.Lock()
		m.inFlight = false
		m.mu.Unlock()

		return nil
	}

	err := m.remote.EndCheckIn(ctx, current.ID)

	m.mu.Lock()
	m.inFlight = false
	if err != nil && !errors.Is(err, ErrNotFound) {
		m.mu.Unlock()

		return err
	}
	venue := entity.Venue{ID: current.VenueID, Name: current.VenueName, Location: current.Location}
	m.current = nil
	m.dwell = nil
	m.cancelTimerLocked()
	events := []Event{{Type: EventCheckedOut, Venue: venue, CheckIn: current, At: m.clock.Now()}}
	m.mu.Unlock()

	m.emit(events)

	return nil
}

// CanSubmitWaitTime reports whether the user's fix is close enough to the
// venue to report a wait time. Same radius as check-in.
func (m *Machine) CanSubmitWaitTime(loc *entity.Coordinate, venue *entity.Venue) bool {
	if venue == nil {
		return false
	}

	return geo.IsNear(loc, &venue.Location, m.cfg.ProximityRadiusMeters)
}

// SubmitWaitTime reports the current wait at a venue. The proximity gate
// runs client-side first and the server re-validates; a server-side
// rejection surfaces as ErrTooFar just like the local one.
func (m *Machine) SubmitWaitTime(ctx context.Context, venue entity.Venue, minutes int, loc *entity.Coordinate) error {
	if !m.CanSubmitWaitTime(loc, &venue) {
		return ErrTooFar
	}

	return m.remote.SubmitWaitTime(ctx, venue, minutes, *loc)
}
