package monitor

import (
	"time"

	"aroundtheblock/internal/domain/entity"
)

// EventType identifies a state machine transition observers may care about.
type EventType string

const (
	// EventDwellStarted fires when the user enters a venue's radius and a
	// dwell clock starts.
	EventDwellStarted EventType = "dwell_started"

	// EventCheckedIn fires after a check-in is confirmed by the server,
	// whether automatic or manual.
	EventCheckedIn EventType = "checked_in"

	// EventCheckedOut fires after a check-out is confirmed by the server.
	EventCheckedOut EventType = "checked_out"
)

// Event describes one confirmed transition.
type Event struct {
	Type    EventType
	Venue   entity.Venue
	CheckIn *entity.CheckIn
	At      time.Time
}

// Subscribe registers fn to receive transition events. The returned func
// removes the subscription. Callbacks run on the goroutine that completed
// the transition and must not block.
func (m *Machine) Subscribe(fn func(Event)) func() {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	id := m.nextSub
	m.nextSub++
	if m.subs == nil {
		m.subs = make(map[int]func(Event))
	}
	m.subs[id] = fn

	return func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		delete(m.subs, id)
	}
}

// emit delivers events to subscribers. Never call while holding m.mu: a
// subscriber is allowed to query the machine from its callback.
func (m *Machine) emit(events []Event) {
	if len(events) == 0 {
		return
	}

	m.subMu.Lock()
	fns := make([]func(Event), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, ev := range events {
		for _, fn := range fns {
			fn(ev)
		}
	}
}
