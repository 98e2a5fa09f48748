package monitor

import (
	"context"
	"time"

	"aroundtheblock/internal/domain/entity"
)

// Sample is one location fix from the device.
type Sample struct {
	Location       entity.Coordinate
	AccuracyMeters float64
	Timestamp      time.Time
}

// SampleSource delivers location samples. Watch returns a channel that is
// closed when the context is cancelled or the underlying provider stops.
type SampleSource interface {
	Watch(ctx context.Context) (<-chan Sample, error)
}

// ReplaySource plays back a fixed trace of samples, one per SampleInterval
// tick of the clock. It backs the simulator command and end-to-end tests.
type ReplaySource struct {
	samples  []Sample
	interval time.Duration
	clock    Clock
}

// NewReplaySource builds a source that replays the given samples in order.
func NewReplaySource(samples []Sample, interval time.Duration, clock Clock) *ReplaySource {
	if clock == nil {
		clock = SystemClock()
	}

	return &ReplaySource{samples: samples, interval: interval, clock: clock}
}

func (r *ReplaySource) Watch(ctx context.Context) (<-chan Sample, error) {
	out := make(chan Sample)

	go func() {
		defer close(out)
		for _, s := range r.samples {
			select {
			case <-ctx.Done():
				return
			case out <- s:
			}
			if r.interval > 0 {
				fired := make(chan struct{})
				timer := r.clock.AfterFunc(r.interval, func() { close(fired) })
				select {
				case <-ctx.Done():
					timer.Stop()

					return
				case <-fired:
				}
			}
		}
	}()

	return out, nil
}
