// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"fmt"
	"strings"
	"time"
)

// RecencyPolicy decides the weight of a trip without a usable date.
// One engine applies a single policy to every ranking pass.
type RecencyPolicy string

const (
	// RecencyZero gives undated trips no recency bonus.
	RecencyZero RecencyPolicy = "zero"

	// RecencyNeutral gives undated trips the midpoint weight. Suited to sparse
	// document stores where most trips carry no date.
	RecencyNeutral RecencyPolicy = "neutral"
)

const neutralWeight = 0.5

// ParseRecencyPolicy parses a policy name.
func ParseRecencyPolicy(s string) (RecencyPolicy, error) {
	switch p := RecencyPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case RecencyZero, RecencyNeutral:
		return p, nil
	default:
		return "", fmt.Errorf("unknown recency policy %q", s)
	}
}

// MissingWeight is the weight assigned to trips without a usable date.
func (p RecencyPolicy) MissingWeight() float64 {
	if p == RecencyNeutral {
		return neutralWeight
	}
	return 0
}

// RecencyWeight maps date into [0,1] relative to the window [minDate, maxDate],
// counted in whole days. A zero-length window yields 1.0.
func RecencyWeight(date, minDate, maxDate time.Time) float64 {
	totalDays := wholeDays(maxDate.Sub(minDate))
	if totalDays <= 0 {
		return 1.0
	}
	w := float64(wholeDays(date.Sub(minDate))) / float64(totalDays)
	switch {
	case w < 0:
		return 0
	case w > 1:
		return 1
	default:
		return w
	}
}

func wholeDays(d time.Duration) int64 {
	return int64(d / (24 * time.Hour))
}

// Window is the date range observed over one cohort's trips.
type Window struct {
	Min, Max time.Time
	valid    bool
}

// NewWindow computes the window over dates. With no dates the window is
// invalid and every weight falls back to the policy's missing weight.
func NewWindow(dates []time.Time) Window {
	var w Window
	for _, d := range dates {
		if !w.valid {
			w = Window{Min: d, Max: d, valid: true}
			continue
		}
		if d.Before(w.Min) {
			w.Min = d
		}
		if d.After(w.Max) {
			w.Max = d
		}
	}
	return w
}

// Valid reports whether at least one date was observed.
func (w Window) Valid() bool {
	return w.valid
}

// Weight returns the recency weight of a possibly missing date under policy.
func (w Window) Weight(date time.Time, ok bool, policy RecencyPolicy) float64 {
	if !ok || !w.valid {
		return policy.MissingWeight()
	}
	return RecencyWeight(date, w.Min, w.Max)
}
