// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package datasource

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// MemorySource serves an in-process snapshot.
type MemorySource struct {
	mu     sync.RWMutex
	users  []recommend.User
	byID   map[string]int
	trips  map[string][]recommend.Trip
	all    []recommend.Trip
	sample []Record
}

// NewMemorySource builds a source from converted users and trips.
func NewMemorySource(users []recommend.User, trips []recommend.Trip) *MemorySource {
	s := &MemorySource{}
	s.Replace(users, trips)
	return s
}

// LoadMemory builds a source from a JSON Snapshot document.
func LoadMemory(r io.Reader) (*MemorySource, error) {
	snap, err := DecodeSnapshot(r)
	if err != nil {
		return nil, err
	}
	users := make([]recommend.User, 0, len(snap.Users))
	for _, rec := range snap.Users {
		users = append(users, UserFromRecord(rec))
	}
	trips := make([]recommend.Trip, 0, len(snap.Trips))
	for _, rec := range snap.Trips {
		trips = append(trips, TripFromRecord(rec))
	}
	s := NewMemorySource(users, trips)
	if len(snap.Users) > 0 {
		s.sample = append(s.sample, snap.Users[0])
	}
	return s, nil
}

// LoadMemoryFile builds a source from a JSON Snapshot file.
func LoadMemoryFile(path string) (*MemorySource, error) {
	f, err := os.Open(path) //nolint:gosec // operator-supplied seed path
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file
	return LoadMemory(f)
}

// Replace swaps the snapshot. Users without an id are dropped.
func (s *MemorySource) Replace(users []recommend.User, trips []recommend.Trip) {
	byID := make(map[string]int, len(users))
	kept := make([]recommend.User, 0, len(users))
	for _, u := range users {
		u.ID = recommend.NormalizeID(u.ID)
		if u.ID == "" {
			continue
		}
		if _, dup := byID[u.ID]; dup {
			continue
		}
		byID[u.ID] = len(kept)
		kept = append(kept, u)
	}

	byOwner := make(map[string][]recommend.Trip)
	for _, t := range trips {
		owner := recommend.NormalizeID(t.UserID)
		byOwner[owner] = append(byOwner[owner], t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = kept
	s.byID = byID
	s.trips = byOwner
	s.all = append([]recommend.Trip(nil), trips...)
	s.sample = nil
}

func (s *MemorySource) Name() string { return config.DriverMemory }

func (s *MemorySource) ValidUserID(id string) bool {
	return recommend.NormalizeID(id) != ""
}

func (s *MemorySource) GetUserByID(_ context.Context, id string) (*recommend.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[recommend.NormalizeID(id)]
	if !ok {
		return nil, recommend.ErrUserNotFound
	}
	u := s.users[i]
	return &u, nil
}

func (s *MemorySource) ListUsers(_ context.Context) ([]recommend.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]recommend.User(nil), s.users...), nil
}

func (s *MemorySource) ListTripsForUsers(_ context.Context, ids []string) ([]recommend.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []recommend.Trip
	for _, id := range ids {
		out = append(out, s.trips[recommend.NormalizeID(id)]...)
	}
	return out, nil
}

func (s *MemorySource) Inspect(_ context.Context) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := Summary{Driver: config.DriverMemory, Users: len(s.users), Trips: len(s.all)}
	switch {
	case len(s.sample) > 0:
		sum.UserKeys = s.sample[0].Keys()
	case len(s.users) > 0:
		sum.UserKeys = recordFromUser(s.users[0]).Keys()
	}
	n := min(sampleSize, len(s.all))
	sum.SampleTrips = append([]recommend.Trip(nil), s.all[:n]...)
	if n > 0 {
		sum.TripKeys = Record(sum.SampleTrips[0].Fields).Keys()
	}
	return sum, nil
}

func (s *MemorySource) Close() error { return nil }
