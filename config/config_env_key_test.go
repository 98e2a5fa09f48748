package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"monitor": map[string]any{
			"dwellThreshold": "15m",
			"apiBaseUrl":     "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MONITOR_DWELLTHRESHOLD", want: "monitor.dwellThreshold"},
		{envKey: "MONITOR_APIBASEURL", want: "monitor.apiBaseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestWithMonitorDefaults(t *testing.T) {
	monitor := withMonitorDefaults(nil)

	if monitor.ProximityRadiusMeters != 100 {
		t.Fatalf("ProximityRadiusMeters = %v, want 100", monitor.ProximityRadiusMeters)
	}
	if monitor.DwellThreshold != 15*time.Minute {
		t.Fatalf("DwellThreshold = %v, want 15m", monitor.DwellThreshold)
	}
	if monitor.SampleInterval != 60*time.Second {
		t.Fatalf("SampleInterval = %v, want 60s", monitor.SampleInterval)
	}
	if monitor.MinDisplacementMeters != 50 {
		t.Fatalf("MinDisplacementMeters = %v, want 50", monitor.MinDisplacementMeters)
	}
}

func TestWithMonitorDefaults_KeepsExplicitValues(t *testing.T) {
	monitor := withMonitorDefaults(&MonitorConfig{
		ProximityRadiusMeters: 250,
		DwellThreshold:        5 * time.Minute,
	})

	if monitor.ProximityRadiusMeters != 250 {
		t.Fatalf("ProximityRadiusMeters = %v, want 250", monitor.ProximityRadiusMeters)
	}
	if monitor.DwellThreshold != 5*time.Minute {
		t.Fatalf("DwellThreshold = %v, want 5m", monitor.DwellThreshold)
	}
	if monitor.SampleInterval != 60*time.Second {
		t.Fatalf("SampleInterval = %v, want 60s default", monitor.SampleInterval)
	}
}
