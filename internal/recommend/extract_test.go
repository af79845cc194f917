// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlaceScores(t *testing.T) {
	t.Parallel()

	s := NewPlaceScores()
	s.Add("Goa", 1)
	s.Add("paris", 2)
	s.Add(" GOA ", 0.5)
	s.Add("", 10)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if got := s.Score("goa"); got != 1.5 {
		t.Errorf("Score(goa) = %v, want 1.5", got)
	}
	if diff := cmp.Diff([]string{"goa", "paris"}, s.Places()); diff != "" {
		t.Errorf("insertion order mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldCandidatesResolve(t *testing.T) {
	t.Parallel()

	c := DefaultFieldCandidates()

	tests := []struct {
		name  string
		trips []Trip
		want  ResolvedFields
	}{
		{
			name:  "document schema",
			trips: []Trip{{Fields: map[string]any{"destination": "goa", "createdAt": "2024-01-01", "updatedAt": "2024-02-01"}}},
			want:  ResolvedFields{Place: "destination", Date: "updatedAt"},
		},
		{
			name:  "tabular schema",
			trips: []Trip{{Fields: map[string]any{"place_of_visit": "goa", "end_date": "2024-01-01"}}},
			want:  ResolvedFields{Place: "place_of_visit", Date: "end_date"},
		},
		{
			name: "present in a later record",
			trips: []Trip{
				{Fields: map[string]any{"location": "goa"}},
				{Fields: map[string]any{"place": "rome", "date": "2024-01-01"}},
			},
			want: ResolvedFields{Place: "place", Date: "date"},
		},
		{
			name:  "nil values do not count",
			trips: []Trip{{Fields: map[string]any{"destination": nil, "to": "goa"}}},
			want:  ResolvedFields{Place: "to"},
		},
		{
			name:  "no candidates",
			trips: []Trip{{Fields: map[string]any{"notes": "fun"}}},
			want:  ResolvedFields{},
		},
	}

	for _, tt := range tests {
		if got := c.Resolve(tt.trips); got != tt.want {
			t.Errorf("%s: Resolve = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

// Two peers each record one trip to Goa on different dates: both trips count
// and the newer one carries the full recency bonus.
func TestScoreTripsRecency(t *testing.T) {
	t.Parallel()

	trips := []Trip{
		trip("2", "Goa", "2024-01-01"),
		trip("3", " goa ", "2024-06-01"),
	}

	scores := NewPlaceScores()
	resolved := ScoreTrips(scores, trips, DefaultFieldCandidates(), RecencyZero, PlaceSet{})

	if resolved.Place != "destination" || resolved.Date != "end_date" {
		t.Errorf("resolved = %+v", resolved)
	}
	if scores.Len() != 1 {
		t.Fatalf("Len = %d, want 1", scores.Len())
	}
	if got := scores.Score("goa"); got != 3.0 {
		t.Errorf("Score(goa) = %v, want 3.0 (1+0 and 1+1)", got)
	}
}

func TestScoreTripsPolicies(t *testing.T) {
	t.Parallel()

	trips := []Trip{
		trip("2", "Goa", ""),
		trip("3", "Rome", "not a date"),
	}

	zero := NewPlaceScores()
	ScoreTrips(zero, trips, DefaultFieldCandidates(), RecencyZero, PlaceSet{})
	if zero.Score("goa") != 1.0 || zero.Score("rome") != 1.0 {
		t.Errorf("zero policy scores = goa:%v rome:%v, want 1.0 each", zero.Score("goa"), zero.Score("rome"))
	}

	neutral := NewPlaceScores()
	ScoreTrips(neutral, trips, DefaultFieldCandidates(), RecencyNeutral, PlaceSet{})
	if neutral.Score("goa") != 1.5 || neutral.Score("rome") != 1.5 {
		t.Errorf("neutral policy scores = goa:%v rome:%v, want 1.5 each", neutral.Score("goa"), neutral.Score("rome"))
	}
}

func TestScoreTripsExclusionAndMissingField(t *testing.T) {
	t.Parallel()

	trips := []Trip{
		trip("2", "Goa", "2024-01-01"),
		trip("2", "Rome", "2024-01-02"),
		{UserID: "3", Fields: map[string]any{"notes": "no destination"}},
	}

	scores := NewPlaceScores()
	ScoreTrips(scores, trips, DefaultFieldCandidates(), RecencyZero, NewPlaceSet("GOA"))
	if diff := cmp.Diff([]string{"rome"}, scores.Places()); diff != "" {
		t.Errorf("places mismatch (-want +got):\n%s", diff)
	}

	none := NewPlaceScores()
	resolved := ScoreTrips(none, trips[2:], DefaultFieldCandidates(), RecencyZero, PlaceSet{})
	if resolved.Place != "" || none.Len() != 0 {
		t.Errorf("expected trip scoring to be skipped, got %+v with %d places", resolved, none.Len())
	}
}

func TestScoreProfiles(t *testing.T) {
	t.Parallel()

	peers := []User{
		{ID: "2", VisitedPlaces: []string{"Goa", "goa", "Paris"}},
		{ID: "3", RecentlyVisited: []string{"paris"}},
	}

	scores := NewPlaceScores()
	ScoreProfiles(scores, peers, NewPlaceSet("goa"))

	if scores.Score("goa") != 0 {
		t.Error("excluded place was scored")
	}
	if got := scores.Score("paris"); got != 2 {
		t.Errorf("Score(paris) = %v, want 2 (one per peer)", got)
	}
}

func TestScoreFrequency(t *testing.T) {
	t.Parallel()

	users := []User{
		{ID: "1", VisitedPlaces: []string{"goa"}},
		{ID: "2", VisitedPlaces: []string{"rome"}},
		{ID: "3", VisitedPlaces: []string{"rome", "oslo"}},
	}

	scores := NewPlaceScores()
	ScoreFrequency(scores, users, []string{"2", "3"}, NewPlaceSet("oslo"))
	if diff := cmp.Diff([]string{"rome"}, scores.Places()); diff != "" {
		t.Errorf("places mismatch (-want +got):\n%s", diff)
	}
	if got := scores.Score("rome"); got != 2 {
		t.Errorf("Score(rome) = %v, want 2", got)
	}
}
