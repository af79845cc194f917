// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import "time"

// PlaceScores accumulates per-place scores and remembers the order in which
// places were first seen, which Rank uses to break ties.
type PlaceScores struct {
	order  []string
	scores map[string]float64
}

// NewPlaceScores returns an empty accumulator.
func NewPlaceScores() *PlaceScores {
	return &PlaceScores{scores: make(map[string]float64)}
}

// Add adds w to the score of the normalized place. Blank places are ignored.
func (s *PlaceScores) Add(place string, w float64) {
	p := NormalizePlace(place)
	if p == "" {
		return
	}
	if _, ok := s.scores[p]; !ok {
		s.order = append(s.order, p)
	}
	s.scores[p] += w
}

// Score returns the accumulated score of a place.
func (s *PlaceScores) Score(place string) float64 {
	return s.scores[NormalizePlace(place)]
}

// Len returns the number of distinct places.
func (s *PlaceScores) Len() int {
	return len(s.order)
}

// Places returns places in first-seen order.
func (s *PlaceScores) Places() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// FieldCandidates lists, in priority order, the trip record keys that may
// hold the destination and the visit date.
type FieldCandidates struct {
	Place []string `json:"place"`
	Date  []string `json:"date"`
}

// DefaultFieldCandidates covers the tabular and document-store schemas.
func DefaultFieldCandidates() FieldCandidates {
	return FieldCandidates{
		Place: []string{"destination", "place", "place_of_visit", "city", "location", "to", "place_name", "trip_destination"},
		Date:  []string{"end_date", "updatedAt", "createdAt", "trip_date", "date"},
	}
}

// ResolvedFields names the keys chosen for one batch of trips. An empty
// Place means trip scoring was skipped.
type ResolvedFields struct {
	Place string `json:"place"`
	Date  string `json:"date"`
}

// Resolve picks, for each role, the first candidate present in any trip.
func (c FieldCandidates) Resolve(trips []Trip) ResolvedFields {
	return ResolvedFields{
		Place: firstPresent(c.Place, trips),
		Date:  firstPresent(c.Date, trips),
	}
}

func firstPresent(candidates []string, trips []Trip) string {
	for _, name := range candidates {
		for i := range trips {
			if _, ok := trips[i].Field(name); ok {
				return name
			}
		}
	}
	return ""
}

// ScoreProfiles adds 1.0 for every distinct place in each peer's visit
// history unless the place is excluded.
func ScoreProfiles(scores *PlaceScores, peers []User, exclude PlaceSet) {
	for i := range peers {
		for _, p := range peers[i].PlaceList() {
			if exclude.Has(p) {
				continue
			}
			scores.Add(p, 1.0)
		}
	}
}

// ScoreTrips adds 1.0 plus a recency weight for every trip whose destination
// is not excluded. The date window is computed over trips alone, so callers
// must pass one cohort's trips at a time.
func ScoreTrips(scores *PlaceScores, trips []Trip, fields FieldCandidates, policy RecencyPolicy, exclude PlaceSet) ResolvedFields {
	resolved := fields.Resolve(trips)
	if resolved.Place == "" {
		return resolved
	}

	dates := make([]time.Time, len(trips))
	dated := make([]bool, len(trips))
	var observed []time.Time
	if resolved.Date != "" {
		for i := range trips {
			v, _ := trips[i].Field(resolved.Date)
			if d, ok := ParseDate(v); ok {
				dates[i], dated[i] = d, true
				observed = append(observed, d)
			}
		}
	}
	window := NewWindow(observed)

	for i := range trips {
		v, _ := trips[i].Field(resolved.Place)
		place := PlaceValue(v)
		if place == "" || exclude.Has(place) {
			continue
		}
		scores.Add(place, 1.0+window.Weight(dates[i], dated[i], policy))
	}
	return resolved
}

// ScoreFrequency counts each distinct visited place of the users whose ids
// are in cohort. It ignores users outside the cohort.
func ScoreFrequency(scores *PlaceScores, users []User, cohort []string, exclude PlaceSet) {
	ids := make(map[string]struct{}, len(cohort))
	for _, id := range cohort {
		ids[NormalizeID(id)] = struct{}{}
	}
	for i := range users {
		if _, ok := ids[NormalizeID(users[i].ID)]; !ok {
			continue
		}
		ScoreProfiles(scores, users[i:i+1], exclude)
	}
}
