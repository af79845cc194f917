// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

// Cohort selectors return peer ids in population order. The target is never
// part of its own cohort and duplicate population entries are collapsed.

// SimilarAge selects peers whose age is within window years of the target.
func SimilarAge(target *User, users []User, window int) []string {
	if target == nil || target.Age == nil {
		return nil
	}
	age := *target.Age
	return selectPeers(target, users, func(u *User) bool {
		if u.Age == nil {
			return false
		}
		diff := *u.Age - age
		return diff >= -window && diff <= window
	})
}

// CoVisitors selects peers who visited at least one place the target visited.
func CoVisitors(target *User, users []User) []string {
	if target == nil {
		return nil
	}
	visited := target.Places()
	if len(visited) == 0 {
		return nil
	}
	return selectPeers(target, users, func(u *User) bool {
		return u.Places().Intersects(visited)
	})
}

// SameCity selects peers living in the target's city.
func SameCity(target *User, users []User) []string {
	if target == nil {
		return nil
	}
	city := NormalizePlace(target.City)
	if city == "" {
		return nil
	}
	return selectPeers(target, users, func(u *User) bool {
		return NormalizePlace(u.City) == city
	})
}

func selectPeers(target *User, users []User, match func(*User) bool) []string {
	self := NormalizeID(target.ID)
	seen := make(map[string]struct{})
	var ids []string
	for i := range users {
		u := &users[i]
		id := NormalizeID(u.ID)
		if id == "" || id == self {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		if match(u) {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
