// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package datasource

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

const (
	aliceOID = "64b000000000000000000001"
	bobOID   = "64b000000000000000000002"
)

const badgerSnapshot = `{
  "users": [
    {"_id": {"$oid": "64b000000000000000000001"}, "age": 28, "city": "Pune", "placesVisited": ["Goa"]},
    {"_id": {"$oid": "64B000000000000000000002"}, "age": 30, "city": "Pune", "placesVisited": ["Goa", "Manali"]},
    {"age": 41, "city": "Delhi"}
  ],
  "trips": [
    {"user_id": {"$oid": "64b000000000000000000002"}, "destination": "Jaipur", "createdAt": {"$date": "2024-03-01T00:00:00Z"}},
    {"user_id": {"$oid": "64b000000000000000000002"}, "destination": "Ooty"},
    {"user_id": {"$oid": "64b000000000000000000001"}, "destination": "Shimla"}
  ]
}`

func newTestBadger(t *testing.T) *BadgerSource {
	t.Helper()
	src, err := OpenBadger(config.BadgerConfig{InMemory: true})
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func TestBadgerSource_ImportAndQuery(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	src := newTestBadger(t)

	n, err := src.ImportJSON(strings.NewReader(badgerSnapshot))
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if n != 6 {
		t.Errorf("ImportJSON() = %d documents, want 6", n)
	}

	alice, err := src.GetUserByID(ctx, strings.ToUpper(aliceOID))
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if alice.ID != aliceOID || alice.City != "Pune" {
		t.Errorf("alice = %+v", alice)
	}

	if _, err := src.GetUserByID(ctx, "64b0000000000000000000ff"); !errors.Is(err, recommend.ErrUserNotFound) {
		t.Errorf("GetUserByID(missing) error = %v, want ErrUserNotFound", err)
	}

	users, err := src.ListUsers(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 3 {
		t.Errorf("ListUsers() = %d, want 3 (one with generated id)", len(users))
	}

	trips, err := src.ListTripsForUsers(ctx, []string{bobOID})
	if err != nil {
		t.Fatal(err)
	}
	if len(trips) != 2 {
		t.Fatalf("ListTripsForUsers(bob) = %d, want 2", len(trips))
	}
	for _, trip := range trips {
		if trip.UserID != bobOID {
			t.Errorf("trip owner = %q, want %q", trip.UserID, bobOID)
		}
	}

	sum, err := src.Inspect(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Users != 3 || sum.Trips != 3 {
		t.Errorf("Inspect() users=%d trips=%d, want 3/3", sum.Users, sum.Trips)
	}
	if len(sum.SampleTrips) != 3 {
		t.Errorf("Inspect() sample = %d trips, want 3", len(sum.SampleTrips))
	}
}

func TestBadgerSource_ImportRejectsBadID(t *testing.T) {
	t.Parallel()
	src := newTestBadger(t)

	_, err := src.ImportJSON(strings.NewReader(`{"users": [{"_id": "user-1", "age": 3}]}`))
	if err == nil {
		t.Fatal("ImportJSON() should reject a non-hex user id")
	}

	users, _ := src.ListUsers(context.Background())
	if len(users) != 0 {
		t.Errorf("failed import must not write documents, got %d users", len(users))
	}
}

func TestBadgerSource_ValidUserID(t *testing.T) {
	t.Parallel()
	src := &BadgerSource{}

	tests := map[string]bool{
		aliceOID:                   true,
		strings.ToUpper(aliceOID):  true,
		" " + aliceOID + " ":       true,
		"64b00000000000000000000":  false,
		"64b0000000000000000000zz": false,
		"42":                       false,
		"":                         false,
	}
	for id, want := range tests {
		if got := src.ValidUserID(id); got != want {
			t.Errorf("ValidUserID(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestNewObjectID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewObjectID()
		if !objectID.MatchString(id) {
			t.Fatalf("NewObjectID() = %q, not a 24 character hex id", id)
		}
		if seen[id] {
			t.Fatalf("NewObjectID() repeated %q", id)
		}
		seen[id] = true
	}
}
