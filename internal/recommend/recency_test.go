// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"testing"
	"time"
)

func TestRecencyWeight(t *testing.T) {
	t.Parallel()

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name string
		date time.Time
		min  time.Time
		max  time.Time
		want float64
	}{
		{"oldest", jan, jan, jan.Add(10 * day), 0},
		{"newest", jan.Add(10 * day), jan, jan.Add(10 * day), 1},
		{"middle", jan.Add(5 * day), jan, jan.Add(10 * day), 0.5},
		{"degenerate window", jan, jan, jan, 1},
		{"same day window", jan.Add(time.Hour), jan, jan.Add(2 * time.Hour), 1},
		{"before window clamps", jan.Add(-3 * day), jan, jan.Add(10 * day), 0},
		{"after window clamps", jan.Add(30 * day), jan, jan.Add(10 * day), 1},
	}

	for _, tt := range tests {
		got := RecencyWeight(tt.date, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("%s: RecencyWeight = %v, want %v", tt.name, got, tt.want)
		}
		if got < 0 || got > 1 {
			t.Errorf("%s: weight %v outside [0,1]", tt.name, got)
		}
	}
}

func TestParseRecencyPolicy(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]RecencyPolicy{
		"zero":     RecencyZero,
		" Neutral": RecencyNeutral,
	} {
		got, err := ParseRecencyPolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseRecencyPolicy(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseRecencyPolicy("half"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestWindowWeight(t *testing.T) {
	t.Parallel()

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	w := NewWindow([]time.Time{jun, jan})
	if !w.Valid() || !w.Min.Equal(jan) || !w.Max.Equal(jun) {
		t.Fatalf("window = %+v, want [%v, %v]", w, jan, jun)
	}

	if got := w.Weight(jun, true, RecencyZero); got != 1 {
		t.Errorf("newest weight = %v, want 1", got)
	}
	if got := w.Weight(time.Time{}, false, RecencyZero); got != 0 {
		t.Errorf("missing date under zero policy = %v, want 0", got)
	}
	if got := w.Weight(time.Time{}, false, RecencyNeutral); got != 0.5 {
		t.Errorf("missing date under neutral policy = %v, want 0.5", got)
	}

	empty := NewWindow(nil)
	if empty.Valid() {
		t.Error("window over no dates should be invalid")
	}
	if got := empty.Weight(jan, true, RecencyNeutral); got != 0.5 {
		t.Errorf("invalid window weight = %v, want neutral 0.5", got)
	}
}
