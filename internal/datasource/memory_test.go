// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package datasource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomtom215/wayfarer/internal/recommend"
)

const memorySnapshot = `{
  "users": [
    {"id": "alice", "age": 30, "city": "Pune", "places_visited": ["Goa"]},
    {"id": "bob", "age": 33, "city": "Pune", "places_visited": "Goa;Jaipur"},
    {"id": "bob", "age": 99},
    {"age": 20}
  ],
  "trips": [
    {"trip_id": 1, "user_id": "BOB", "destination": "Manali", "end_date": "2024-01-02"},
    {"trip_id": 2, "user_id": "alice", "destination": "Ooty"}
  ]
}`

func TestMemorySource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src, err := LoadMemory(strings.NewReader(memorySnapshot))
	if err != nil {
		t.Fatalf("LoadMemory() error = %v", err)
	}

	users, err := src.ListUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("ListUsers() = %d users, want 2 (duplicate and id-less dropped)", len(users))
	}

	bob, err := src.GetUserByID(ctx, " Bob ")
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if bob.Age == nil || *bob.Age != 33 {
		t.Errorf("bob.Age = %v, want first record to win", bob.Age)
	}

	if _, err := src.GetUserByID(ctx, "carol"); !errors.Is(err, recommend.ErrUserNotFound) {
		t.Errorf("GetUserByID(carol) error = %v, want ErrUserNotFound", err)
	}

	trips, err := src.ListTripsForUsers(ctx, []string{"bob"})
	if err != nil {
		t.Fatal(err)
	}
	if len(trips) != 1 {
		t.Fatalf("ListTripsForUsers(bob) = %d trips, want 1", len(trips))
	}

	sum, err := src.Inspect(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Users != 2 || sum.Trips != 2 || sum.Driver != "memory" {
		t.Errorf("Inspect() = %+v", sum)
	}
	if len(sum.UserKeys) == 0 || len(sum.TripKeys) == 0 {
		t.Errorf("Inspect() keys missing: %+v", sum)
	}

	if !src.ValidUserID("anything") || src.ValidUserID("  ") {
		t.Error("ValidUserID should accept any non-blank id")
	}
}

func TestMemorySource_Replace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	src := NewMemorySource([]recommend.User{{ID: "a"}}, nil)
	src.Replace([]recommend.User{{ID: "b"}, {ID: "c"}}, nil)

	if _, err := src.GetUserByID(ctx, "a"); !errors.Is(err, recommend.ErrUserNotFound) {
		t.Errorf("old user should be gone after Replace, err = %v", err)
	}
	users, _ := src.ListUsers(ctx)
	if len(users) != 2 {
		t.Errorf("ListUsers() = %d, want 2", len(users))
	}
}

func TestMemorySource_InspectIsStable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := []recommend.User{
		{ID: "u1", Age: intPtr(41), City: "Pune", VisitedPlaces: []string{"Goa"}},
		{ID: "u2"},
	}
	var trips []recommend.Trip
	for i := 0; i < 8; i++ {
		owner := []string{"u1", "u2", "u3"}[i%3]
		trips = append(trips, recommend.Trip{
			ID:     fmt.Sprintf("t%d", i),
			UserID: owner,
			Fields: map[string]any{"destination": "goa", "trip_id": i},
		})
	}
	src := NewMemorySource(users, trips)

	wantIDs := []string{"t0", "t1", "t2", "t3", "t4"}
	for i := 0; i < 10; i++ {
		sum, err := src.Inspect(ctx)
		if err != nil {
			t.Fatal(err)
		}
		gotIDs := make([]string, 0, len(sum.SampleTrips))
		for _, tr := range sum.SampleTrips {
			gotIDs = append(gotIDs, tr.ID)
		}
		if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
			t.Fatalf("call %d: SampleTrips mismatch (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff([]string{"destination", "trip_id"}, sum.TripKeys); diff != "" {
			t.Errorf("TripKeys mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"age", "city", "id", "places_visited"}, sum.UserKeys); diff != "" {
			t.Errorf("UserKeys mismatch (-want +got):\n%s", diff)
		}
		if sum.Trips != 8 {
			t.Errorf("Trips = %d, want 8", sum.Trips)
		}
	}
}
