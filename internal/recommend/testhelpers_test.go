// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"context"
	"sync/atomic"
)

// mockSource implements DataSource for testing.
type mockSource struct {
	users []User
	trips []Trip

	getErr   error
	listErr  error
	tripsErr error

	getCalls   atomic.Int32
	listCalls  atomic.Int32
	tripsCalls atomic.Int32
}

func (m *mockSource) GetUserByID(ctx context.Context, id string) (*User, error) {
	m.getCalls.Add(1)
	if m.getErr != nil {
		return nil, m.getErr
	}
	for i := range m.users {
		if NormalizeID(m.users[i].ID) == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockSource) ListUsers(ctx context.Context) ([]User, error) {
	m.listCalls.Add(1)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.users, nil
}

func (m *mockSource) ListTripsForUsers(ctx context.Context, ids []string) ([]Trip, error) {
	m.tripsCalls.Add(1)
	if m.tripsErr != nil {
		return nil, m.tripsErr
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[NormalizeID(id)] = true
	}
	var out []Trip
	for _, t := range m.trips {
		if want[NormalizeID(t.UserID)] {
			out = append(out, t)
		}
	}
	return out, nil
}

// numericSource only accepts digit ids.
type numericSource struct {
	*mockSource
}

func (n numericSource) ValidUserID(id string) bool {
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return id != ""
}

func intPtr(v int) *int {
	return &v
}

func trip(userID, place, date string) Trip {
	fields := map[string]any{"destination": place}
	if date != "" {
		fields["end_date"] = date
	}
	return Trip{ID: userID + "-" + place, UserID: userID, Fields: fields}
}
