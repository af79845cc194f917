// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// NormalizePlace trims surrounding whitespace and lowercases a place name.
// It is idempotent and returns "" for blank input.
func NormalizePlace(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeID canonicalizes a user identifier for comparison.
func NormalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PlaceValue converts an arbitrary record value into a normalized place name.
// Nil, NaN and blank values yield "".
func PlaceValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return NormalizePlace(val)
	case []byte:
		return NormalizePlace(string(val))
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return NormalizePlace(strconv.FormatFloat(val, 'f', -1, 64))
	case float32:
		if math.IsNaN(float64(val)) {
			return ""
		}
		return NormalizePlace(strconv.FormatFloat(float64(val), 'f', -1, 32))
	case fmt.Stringer:
		return NormalizePlace(val.String())
	default:
		return NormalizePlace(fmt.Sprint(val))
	}
}

// dateLayouts are tried in order for string dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2 January 2006",
}

// epochMillisThreshold separates epoch seconds from epoch milliseconds.
const epochMillisThreshold = 1e11

// ParseDate parses a flexible date value. A false result means the value
// carries no usable date; it is never an error.
func ParseDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return val, !val.IsZero()
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, false
		}
		return *val, true
	case string:
		return parseDateString(val)
	case []byte:
		return parseDateString(string(val))
	case int:
		return epochTime(float64(val))
	case int32:
		return epochTime(float64(val))
	case int64:
		return epochTime(float64(val))
	case float64:
		return epochTime(val)
	default:
		return time.Time{}, false
	}
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return epochTime(f)
	}
	return time.Time{}, false
}

func epochTime(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return time.Time{}, false
	}
	if f > epochMillisThreshold {
		return time.UnixMilli(int64(f)).UTC(), true
	}
	return time.Unix(int64(f), 0).UTC(), true
}

// PlaceSet is a set of normalized place names.
type PlaceSet map[string]struct{}

// NewPlaceSet builds a set from raw names, normalizing each one.
func NewPlaceSet(places ...string) PlaceSet {
	s := make(PlaceSet, len(places))
	s.AddAll(places)
	return s
}

// Add inserts a name, normalizing it first. Blank names are ignored.
func (s PlaceSet) Add(place string) {
	if p := NormalizePlace(place); p != "" {
		s[p] = struct{}{}
	}
}

// AddAll inserts every name in places.
func (s PlaceSet) AddAll(places []string) {
	for _, p := range places {
		s.Add(p)
	}
}

// Has reports whether the normalized name is in the set.
func (s PlaceSet) Has(place string) bool {
	_, ok := s[NormalizePlace(place)]
	return ok
}

// Intersects reports whether the two sets share a member.
func (s PlaceSet) Intersects(other PlaceSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for p := range small {
		if _, ok := large[p]; ok {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (s PlaceSet) Clone() PlaceSet {
	c := make(PlaceSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}
