// Package monitor implements the location-driven check-in state machine.
//
// The machine consumes throttled location samples, tracks how long the user
// has dwelled inside a venue's radius, and checks the user in automatically
// once the dwell threshold passes. Leaving the radius of the venue the user
// dwelled at checks them out again. Manual check-in/out and wait-time
// submission run through the same proximity predicate and the same remote
// calls, so automatic and manual behavior can never drift apart.
package monitor

import "time"

// Config holds the monitor's tunables. One radius gates every action.
type Config struct {
	ProximityRadiusMeters float64
	DwellThreshold        time.Duration
	SampleInterval        time.Duration
	MinDisplacementMeters float64
}

// DefaultConfig returns the product constants: 100 m radius, 15 minute
// dwell, one sample per minute, 50 m minimum displacement.
func DefaultConfig() Config {
	return Config{
		ProximityRadiusMeters: 100,
		DwellThreshold:        15 * time.Minute,
		SampleInterval:        60 * time.Second,
		MinDisplacementMeters: 50,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ProximityRadiusMeters <= 0 {
		c.ProximityRadiusMeters = def.ProximityRadiusMeters
	}
	if c.DwellThreshold <= 0 {
		c.DwellThreshold = def.DwellThreshold
	}
	if c.SampleInterval <= 0 {
		c.SampleInterval = def.SampleInterval
	}
	if c.MinDisplacementMeters <= 0 {
		c.MinDisplacementMeters = def.MinDisplacementMeters
	}

	return c
}
