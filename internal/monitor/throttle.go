package monitor

import (
	"context"

	"aroundtheblock/internal/domain/geo"
)

// ThrottledSource wraps a SampleSource and drops fixes that arrive faster
// than the configured interval or that moved less than the minimum
// displacement since the last forwarded fix. This keeps battery cost down
// without starving the state machine: one qualifying sample per interval is
// all it needs.
type ThrottledSource struct {
	src   SampleSource
	cfg   Config
	clock Clock
}

// NewThrottledSource wraps src with interval and displacement throttling.
func NewThrottledSource(src SampleSource, cfg Config, clock Clock) *ThrottledSource {
	if clock == nil {
		clock = SystemClock()
	}

	return &ThrottledSource{src: src, cfg: cfg.withDefaults(), clock: clock}
}

func (t *ThrottledSource) Watch(ctx context.Context) (<-chan Sample, error) {
	in, err := t.src.Watch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan Sample)
	go func() {
		defer close(out)

		var last *Sample
		for s := range in {
			if last != nil {
				if t.clock.Now().Sub(last.Timestamp) < t.cfg.SampleInterval {
					continue
				}
				if geo.DistanceMeters(last.Location, s.Location) < t.cfg.MinDisplacementMeters {
					continue
				}
			}

			forwarded := s
			forwarded.Timestamp = t.clock.Now()
			select {
			case <-ctx.Done():
				return
			case out <- forwarded:
				last = &forwarded
			}
		}
	}()

	return out, nil
}
