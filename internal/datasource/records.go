// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package datasource

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/recommend"
)

// Candidate keys probed in user and trip records, in priority order.
var (
	userIDKeys  = []string{"_id", "id", "user_id"}
	ageKeys     = []string{"age"}
	cityKeys    = []string{"city", "city_of_residence", "cityOfResidence"}
	visitedKeys = []string{"placesVisited", "places_visited", "visited_places"}
	recentKeys  = []string{"recentlyVisited", "recently_visited", "recently_visited_place"}

	tripIDKeys   = []string{"_id", "id", "trip_id"}
	tripUserKeys = []string{"user_id", "userId", "user"}
)

// Record is one schemaless row or document.
type Record map[string]any

// Snapshot is the JSON document format accepted by ImportJSON and
// LoadMemory: {"users": [...], "trips": [...]}.
type Snapshot struct {
	Users []Record `json:"users"`
	Trips []Record `json:"trips"`
}

// DecodeSnapshot reads a Snapshot from r.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// lookup returns the first present, non-nil value among keys.
func (r Record) lookup(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return unwrap(v), true
		}
	}
	return nil, false
}

// Keys returns the record keys in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// recordFromUser renders a converted User back into its JSON field layout.
func recordFromUser(u recommend.User) Record {
	data, err := json.Marshal(u)
	if err != nil {
		return nil
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil
	}
	return r
}

// UserFromRecord converts a record into a User. Missing or malformed fields
// are left empty.
func UserFromRecord(r Record) recommend.User {
	u := recommend.User{}
	if v, ok := r.lookup(userIDKeys); ok {
		u.ID = idString(v)
	}
	if v, ok := r.lookup(ageKeys); ok {
		u.Age = toInt(v)
	}
	if v, ok := r.lookup(cityKeys); ok {
		u.City = strings.TrimSpace(scalarString(v))
	}
	if v, ok := r.lookup(visitedKeys); ok {
		u.VisitedPlaces = toStringList(v)
	}
	if v, ok := r.lookup(recentKeys); ok {
		u.RecentlyVisited = toStringList(v)
	}
	return u
}

// TripFromRecord converts a record into a Trip. All record fields are kept
// so destination and date keys can be resolved later.
func TripFromRecord(r Record) recommend.Trip {
	t := recommend.Trip{Fields: make(map[string]any, len(r))}
	for k, v := range r {
		t.Fields[k] = unwrap(v)
	}
	if v, ok := r.lookup(tripIDKeys); ok {
		t.ID = idString(v)
	}
	if v, ok := r.lookup(tripUserKeys); ok {
		t.UserID = idString(v)
	}
	return t
}

// unwrap flattens extended JSON wrappers ({"$oid": ...}, {"$date": ...},
// {"$numberLong": ...}) and byte slices into plain values.
func unwrap(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case map[string]any:
		for _, k := range []string{"$oid", "$date", "$numberLong", "$numberInt", "$numberDouble"} {
			if inner, ok := val[k]; ok {
				return unwrap(inner)
			}
		}
	}
	return v
}

// idString renders an identifier value in normalized form.
func idString(v any) string {
	switch val := v.(type) {
	case float64:
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatInt(int64(val), 10)
		}
	case float32:
		if f := float64(val); f == math.Trunc(f) {
			return strconv.FormatInt(int64(f), 10)
		}
	}
	return recommend.NormalizeID(scalarString(v))
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// toInt converts numbers and numeric strings; anything else is unknown.
func toInt(v any) *int {
	var n int
	switch val := v.(type) {
	case int:
		n = val
	case int8:
		n = int(val)
	case int16:
		n = int(val)
	case int32:
		n = int(val)
	case int64:
		n = int(val)
	case uint8:
		n = int(val)
	case uint16:
		n = int(val)
	case uint32:
		n = int(val)
	case uint64:
		n = int(val)
	case float32:
		return toInt(float64(val))
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		n = int(val)
	case json.Number:
		return toInt(string(val))
	case string:
		s := strings.TrimSpace(val)
		if i, err := strconv.Atoi(s); err == nil {
			n = i
			break
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return toInt(f)
	default:
		return nil
	}
	return &n
}

// toStringList accepts arrays or a separated string. Strings are split on
// ";" or "|", whichever occurs first.
func toStringList(v any) []string {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(scalarString(unwrap(item))); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return splitList(val)
	case nil:
		return nil
	default:
		return splitList(scalarString(val))
	}
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	sep := ""
	if i := strings.IndexAny(s, ";|"); i >= 0 {
		sep = s[i : i+1]
	}
	if sep == "" {
		return []string{s}
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
