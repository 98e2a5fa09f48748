package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"aroundtheblock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Venue at (40.000, -73.000). At this latitude one degree of latitude is
// ~111 km, so 0.0003 degrees is ~33 m (inside the 100 m radius) and 0.002
// degrees is ~222 m (outside it).
var (
	barVenue = entity.Venue{
		ID:       "bar-1",
		Name:     "The Corner Tap",
		Location: entity.Coordinate{Latitude: 40.000, Longitude: -73.000},
	}
	otherVenue = entity.Venue{
		ID:       "bar-2",
		Name:     "Dive Down the Street",
		Location: entity.Coordinate{Latitude: 40.010, Longitude: -73.000},
	}

	insideBar  = entity.Coordinate{Latitude: 40.0003, Longitude: -73.000}
	outsideBar = entity.Coordinate{Latitude: 40.002, Longitude: -73.000}
	insideOther = entity.Coordinate{Latitude: 40.0103, Longitude: -73.000}
)

var errNetwork = errors.New("dial tcp: connection refused")

// fakeRemote is an in-memory server double. It tracks call counts and lets
// tests inject failures per operation.
type fakeRemote struct {
	mu sync.Mutex

	createCalls int
	endCalls    int
	waitCalls   int

	createErr error
	endErr    error
	waitErr   error

	active *entity.CheckIn
}

func (r *fakeRemote) CreateCheckIn(_ context.Context, userID uuid.UUID, venue entity.Venue) (*entity.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.createCalls++
	if r.createErr != nil {
		return nil, r.createErr
	}

	checkIn := &entity.CheckIn{
		ID:        uuid.New(),
		UserID:    userID,
		VenueID:   venue.ID,
		VenueName: venue.Name,
		Location:  venue.Location,
		StartedAt: time.Now(),
		IsActive:  true,
	}
	r.active = checkIn

	return checkIn, nil
}

func (r *fakeRemote) EndCheckIn(_ context.Context, _ uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.endCalls++
	if r.endErr != nil {
		return r.endErr
	}
	r.active = nil

	return nil
}

func (r *fakeRemote) GetCurrentCheckIn(_ context.Context, _ uuid.UUID) (*entity.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.active, nil
}

func (r *fakeRemote) GetActiveCheckIns(_ context.Context, _ string) ([]*entity.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return nil, nil
	}

	return []*entity.CheckIn{r.active}, nil
}

func (r *fakeRemote) SubmitWaitTime(_ context.Context, _ entity.Venue, _ int, _ entity.Coordinate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.waitCalls++

	return r.waitErr
}

func (r *fakeRemote) counts() (create, end int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createCalls, r.endCalls
}

type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (e *eventRecorder) record(ev Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, ev)
}

func (e *eventRecorder) types() []EventType {
	e.mu.Lock()
	defer e.mu.Unlock()

	types := make([]EventType, len(e.events))
	for i, ev := range e.events {
		types[i] = ev.Type
	}

	return types
}

func newTestMachine(t *testing.T, venues ...entity.Venue) (*Machine, *fakeRemote, *fakeClock) {
	t.Helper()

	remote := &fakeRemote{}
	clock := newFakeClock(time.Date(2026, 6, 5, 21, 0, 0, 0, time.UTC))
	m := NewMachine(DefaultConfig(), uuid.New(), remote, clock, nil)
	if len(venues) == 0 {
		venues = []entity.Venue{barVenue, otherVenue}
	}
	m.SetVenues(venues)

	return m, remote, clock
}

func sampleAt(clock *fakeClock, loc entity.Coordinate) Sample {
	return Sample{Location: loc, Timestamp: clock.Now()}
}

func TestEnteringRadiusArmsOneTimer(t *testing.T) {
	m, _, clock := newTestMachine(t)

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	require.Equal(t, 1, clock.armedCount())

	venue, since := m.DwellingAt()
	require.NotNil(t, venue)
	assert.Equal(t, barVenue.ID, venue.ID)
	assert.Equal(t, clock.Now(), since)

	// Further samples inside the same radius never re-arm.
	clock.Advance(1 * time.Minute)
	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	clock.Advance(1 * time.Minute)
	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	assert.Equal(t, 1, clock.armedCount())
}

func TestDwellThresholdChecksInExactlyOnce(t *testing.T) {
	m, remote, clock := newTestMachine(t)
	rec := &eventRecorder{}
	m.Subscribe(rec.record)

	m.handleSample(context.Background(), sampleAt(clock, insideBar))

	// One minute short of the threshold nothing has happened.
	clock.Advance(14 * time.Minute)
	create, _ := remote.counts()
	require.Zero(t, create)
	require.Nil(t, m.Current())

	// The timer fires at the threshold even with no further samples (the
	// user is standing still, so displacement throttling starves the
	// sample stream).
	clock.Advance(1 * time.Minute)
	create, _ = remote.counts()
	require.Equal(t, 1, create)

	current := m.Current()
	require.NotNil(t, current)
	assert.Equal(t, barVenue.ID, current.VenueID)
	assert.Equal(t, []EventType{EventDwellStarted, EventCheckedIn}, rec.types())

	// Staying put past the threshold never creates a second check-in.
	clock.Advance(10 * time.Minute)
	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	create, _ = remote.counts()
	assert.Equal(t, 1, create)
}

func TestSamplePathRetriesAfterFailedCheckIn(t *testing.T) {
	m, remote, clock := newTestMachine(t)
	remote.createErr = errNetwork

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	clock.Advance(15 * time.Minute)

	create, _ := remote.counts()
	require.Equal(t, 1, create)
	require.Nil(t, m.Current(), "failed create must not set local state")

	// The server recovers; the next sample inside the radius re-evaluates
	// dwell >= threshold and retries.
	remote.createErr = nil
	m.handleSample(context.Background(), sampleAt(clock, insideBar))

	create, _ = remote.counts()
	assert.Equal(t, 2, create)
	assert.NotNil(t, m.Current())
}

func TestLeavingRadiusChecksOut(t *testing.T) {
	m, remote, clock := newTestMachine(t)
	rec := &eventRecorder{}
	m.Subscribe(rec.record)

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	clock.Advance(15 * time.Minute)
	require.NotNil(t, m.Current())

	m.handleSample(context.Background(), sampleAt(clock, outsideBar))

	_, end := remote.counts()
	assert.Equal(t, 1, end)
	assert.Nil(t, m.Current())
	venue, _ := m.DwellingAt()
	assert.Nil(t, venue)
	assert.Equal(t, []EventType{EventDwellStarted, EventCheckedIn, EventCheckedOut}, rec.types())
}

func TestCheckOutFailureRetriesOnNextSample(t *testing.T) {
	m, remote, clock := newTestMachine(t)

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	clock.Advance(15 * time.Minute)
	require.NotNil(t, m.Current())

	remote.endErr = errNetwork
	m.handleSample(context.Background(), sampleAt(clock, outsideBar))

	_, end := remote.counts()
	require.Equal(t, 1, end)
	require.NotNil(t, m.Current(), "failed end must keep the check-in for retry")

	remote.endErr = nil
	m.handleSample(context.Background(), sampleAt(clock, outsideBar))

	_, end = remote.counts()
	assert.Equal(t, 2, end)
	assert.Nil(t, m.Current())
}

func TestCheckOutNotFoundIsIdempotentSuccess(t *testing.T) {
	m, remote, clock := newTestMachine(t)

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	clock.Advance(15 * time.Minute)
	require.NotNil(t, m.Current())

	// Another device already ended it.
	remote.endErr = ErrNotFound
	m.handleSample(context.Background(), sampleAt(clock, outsideBar))

	assert.Nil(t, m.Current())
}

func TestCreateConflictAdoptsServerCheckIn(t *testing.T) {
	m, remote, _ := newTestMachine(t)

	serverCheckIn := &entity.CheckIn{
		ID:        uuid.New(),
		VenueID:   barVenue.ID,
		VenueName: barVenue.Name,
		Location:  barVenue.Location,
		IsActive:  true,
	}
	remote.createErr = ErrConflict
	remote.active = serverCheckIn

	checkIn, err := m.CheckInAt(context.Background(), barVenue, &insideBar)
	require.NoError(t, err)
	assert.Equal(t, serverCheckIn.ID, checkIn.ID)
	assert.Equal(t, serverCheckIn.ID, m.Current().ID)
}

func TestSwitchingVenueRestartsDwell(t *testing.T) {
	m, remote, clock := newTestMachine(t)

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	clock.Advance(10 * time.Minute)

	// Walks to the other bar before the threshold: the first timer is
	// cancelled and the dwell clock restarts from zero.
	m.handleSample(context.Background(), sampleAt(clock, insideOther))
	venue, since := m.DwellingAt()
	require.NotNil(t, venue)
	assert.Equal(t, otherVenue.ID, venue.ID)
	assert.Equal(t, clock.Now(), since)
	assert.Equal(t, 2, clock.armedCount())

	// Ten more minutes is past the first venue's would-be deadline but
	// short of the new one: no check-in yet.
	clock.Advance(10 * time.Minute)
	create, _ := remote.counts()
	require.Zero(t, create)

	clock.Advance(5 * time.Minute)
	create, _ = remote.counts()
	require.Equal(t, 1, create)
	assert.Equal(t, otherVenue.ID, m.Current().VenueID)
}

func TestStaleTimerFireIsNoOp(t *testing.T) {
	m, remote, _ := newTestMachine(t)

	// Simulates the race where a timer callback lands after the user has
	// already moved on: dwell now points at a different venue.
	m.mu.Lock()
	m.dwell = &dwellTracker{venue: otherVenue, since: time.Now()}
	m.mu.Unlock()

	m.onDwellTimer(barVenue.ID)

	create, _ := remote.counts()
	assert.Zero(t, create)
	assert.Nil(t, m.Current())
}

func TestTimerFireAfterCheckInIsNoOp(t *testing.T) {
	m, remote, clock := newTestMachine(t)

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	clock.Advance(15 * time.Minute)
	require.NotNil(t, m.Current())

	m.onDwellTimer(barVenue.ID)

	create, _ := remote.counts()
	assert.Equal(t, 1, create)
}

func TestInFlightDropsSamples(t *testing.T) {
	m, remote, clock := newTestMachine(t)

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	clock.Advance(14 * time.Minute)

	m.mu.Lock()
	m.inFlight = true
	m.mu.Unlock()

	// Past the threshold, but a remote call is pending: the sample is
	// dropped, not queued.
	clock.Advance(2 * time.Minute)
	m.handleSample(context.Background(), sampleAt(clock, insideBar))

	create, _ := remote.counts()
	assert.Zero(t, create)

	m.mu.Lock()
	m.inFlight = false
	m.mu.Unlock()

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	create, _ = remote.counts()
	assert.Equal(t, 1, create)
}

func TestManualCheckInGates(t *testing.T) {
	m, remote, _ := newTestMachine(t)

	_, err := m.CheckInAt(context.Background(), barVenue, &outsideBar)
	assert.ErrorIs(t, err, ErrTooFar)

	_, err = m.CheckInAt(context.Background(), barVenue, nil)
	assert.ErrorIs(t, err, ErrTooFar)

	create, _ := remote.counts()
	assert.Zero(t, create, "gated requests never reach the server")
}

func TestManualCheckInAndOut(t *testing.T) {
	m, remote, _ := newTestMachine(t)
	rec := &eventRecorder{}
	m.Subscribe(rec.record)

	checkIn, err := m.CheckInAt(context.Background(), barVenue, &insideBar)
	require.NoError(t, err)
	assert.Equal(t, barVenue.ID, checkIn.VenueID)

	_, err = m.CheckInAt(context.Background(), barVenue, &insideBar)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	require.NoError(t, m.CheckOut(context.Background()))
	assert.Nil(t, m.Current())

	err = m.CheckOut(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveCheckIn)

	create, end := remote.counts()
	assert.Equal(t, 1, create)
	assert.Equal(t, 1, end)
	assert.Equal(t, []EventType{EventCheckedIn, EventCheckedOut}, rec.types())
}

func TestManualCheckInThenAutomaticCheckOut(t *testing.T) {
	m, remote, clock := newTestMachine(t)

	_, err := m.CheckInAt(context.Background(), barVenue, &insideBar)
	require.NoError(t, err)

	// The monitor needs a dwell fix before it will auto check out, so the
	// first inside sample rebuilds dwell state, then leaving ends it.
	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	m.handleSample(context.Background(), sampleAt(clock, outsideBar))

	_, end := remote.counts()
	assert.Equal(t, 1, end)
	assert.Nil(t, m.Current())
}

func TestStartReconcilesWithServer(t *testing.T) {
	m, remote, _ := newTestMachine(t)

	serverCheckIn := &entity.CheckIn{ID: uuid.New(), VenueID: barVenue.ID, IsActive: true}
	remote.active = serverCheckIn

	src := &stubSource{ch: make(chan Sample)}
	require.NoError(t, m.Start(context.Background(), src))
	defer m.Stop()

	current := m.Current()
	require.NotNil(t, current)
	assert.Equal(t, serverCheckIn.ID, current.ID)

	err := m.Start(context.Background(), src)
	assert.Error(t, err, "second start while running is rejected")
}

func TestStopIsIdempotentAndDisarmsTimer(t *testing.T) {
	m, _, clock := newTestMachine(t)

	src := &stubSource{ch: make(chan Sample)}
	require.NoError(t, m.Start(context.Background(), src))

	m.handleSample(context.Background(), sampleAt(clock, insideBar))

	m.Stop()
	m.Stop()

	// The dwell timer was disarmed: advancing past the threshold must not
	// check anyone in.
	clock.Advance(20 * time.Minute)
	assert.Nil(t, m.Current())
}

func TestWaitTimeGate(t *testing.T) {
	m, remote, _ := newTestMachine(t)

	assert.True(t, m.CanSubmitWaitTime(&insideBar, &barVenue))
	assert.False(t, m.CanSubmitWaitTime(&outsideBar, &barVenue))
	assert.False(t, m.CanSubmitWaitTime(nil, &barVenue))
	assert.False(t, m.CanSubmitWaitTime(&insideBar, nil))

	err := m.SubmitWaitTime(context.Background(), barVenue, 20, &outsideBar)
	assert.ErrorIs(t, err, ErrTooFar)
	assert.Zero(t, remote.waitCalls)

	require.NoError(t, m.SubmitWaitTime(context.Background(), barVenue, 20, &insideBar))
	assert.Equal(t, 1, remote.waitCalls)

	// Server-side re-validation can still reject; its refusal surfaces
	// exactly like the local gate's.
	remote.waitErr = ErrTooFar
	err = m.SubmitWaitTime(context.Background(), barVenue, 20, &insideBar)
	assert.ErrorIs(t, err, ErrTooFar)
}

// The walkthrough from the product brief: a user arrives at the bar, stands
// around for fifteen one-minute samples, gets checked in, then walks off
// and gets checked out.
func TestNightAtTheBarEndToEnd(t *testing.T) {
	m, remote, clock := newTestMachine(t)
	rec := &eventRecorder{}
	m.Subscribe(rec.record)

	m.handleSample(context.Background(), sampleAt(clock, insideBar))
	for i := 0; i < 14; i++ {
		clock.Advance(60 * time.Second)
		m.handleSample(context.Background(), sampleAt(clock, insideBar))
	}

	// Fifteen minutes in: exactly one check-in.
	create, end := remote.counts()
	require.Equal(t, 1, create)
	require.Zero(t, end)
	require.NotNil(t, m.Current())
	assert.Equal(t, barVenue.ID, m.Current().VenueID)

	// Two more quiet samples at the bar.
	for i := 0; i < 2; i++ {
		clock.Advance(60 * time.Second)
		m.handleSample(context.Background(), sampleAt(clock, insideBar))
	}
	create, _ = remote.counts()
	require.Equal(t, 1, create)

	// Walks away (~222 m): checked out against the venue dwelled at.
	clock.Advance(60 * time.Second)
	m.handleSample(context.Background(), sampleAt(clock, outsideBar))

	create, end = remote.counts()
	assert.Equal(t, 1, create)
	assert.Equal(t, 1, end)
	assert.Nil(t, m.Current())
	assert.Equal(t, []EventType{EventDwellStarted, EventCheckedIn, EventCheckedOut}, rec.types())
}

type stubSource struct {
	ch chan Sample
}

func (s *stubSource) Watch(ctx context.Context) (<-chan Sample, error) {
	out := make(chan Sample)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case sample, ok := <-s.ch:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- sample:
				}
			}
		}
	}()

	return out, nil
}
