// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"context"
	"time"
)

// User is a read-only snapshot of a traveller profile.
type User struct {
	// ID is the stable identifier, normalized with NormalizeID.
	ID string `json:"id"`

	// Age is nil when unknown.
	Age *int `json:"age,omitempty"`

	// City is the city of residence as stored.
	City string `json:"city,omitempty"`

	// VisitedPlaces is the visit history without a recency signal.
	VisitedPlaces []string `json:"places_visited,omitempty"`

	// RecentlyVisited is ordered most recent first.
	RecentlyVisited []string `json:"recently_visited,omitempty"`
}

// PlaceList returns the normalized, de-duplicated union of visited and
// recently visited places in first-seen order.
func (u *User) PlaceList() []string {
	seen := make(PlaceSet, len(u.VisitedPlaces)+len(u.RecentlyVisited))
	out := make([]string, 0, len(u.VisitedPlaces)+len(u.RecentlyVisited))
	for _, list := range [][]string{u.VisitedPlaces, u.RecentlyVisited} {
		for _, raw := range list {
			p := NormalizePlace(raw)
			if p == "" || seen.Has(p) {
				continue
			}
			seen.Add(p)
			out = append(out, p)
		}
	}
	return out
}

// Places returns the normalized visited set.
func (u *User) Places() PlaceSet {
	return NewPlaceSet(u.PlaceList()...)
}

// MostRecentPlace returns the head of RecentlyVisited, or the last entry of
// VisitedPlaces when no recency-ordered list exists.
func (u *User) MostRecentPlace() string {
	for _, raw := range u.RecentlyVisited {
		if p := NormalizePlace(raw); p != "" {
			return p
		}
	}
	for i := len(u.VisitedPlaces) - 1; i >= 0; i-- {
		if p := NormalizePlace(u.VisitedPlaces[i]); p != "" {
			return p
		}
	}
	return ""
}

// Trip is a schemaless trip record. The destination and date keys vary
// between data sources and are resolved through FieldCandidates.
type Trip struct {
	ID     string         `json:"id"`
	UserID string         `json:"user_id"`
	Fields map[string]any `json:"fields"`
}

// Field returns a non-nil field value.
func (t *Trip) Field(name string) (any, bool) {
	v, ok := t.Fields[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// DataSource is the read-only collaborator the engine fetches users and trips from.
// Implementations must tolerate partial records without failing.
type DataSource interface {
	// GetUserByID returns ErrUserNotFound when no user matches.
	GetUserByID(ctx context.Context, id string) (*User, error)

	// ListUsers returns the full user population.
	ListUsers(ctx context.Context) ([]User, error)

	// ListTripsForUsers returns the trips owned by any of the given users.
	ListTripsForUsers(ctx context.Context, ids []string) ([]Trip, error)
}

// IDValidator is implemented by data sources with a fixed identifier shape.
type IDValidator interface {
	ValidUserID(id string) bool
}

// Section names one of the three recommendation lists.
type Section string

const (
	SectionSimilarAge   Section = "similar_age_group"
	SectionCoVisitation Section = "co_visitation"
	SectionSameCity     Section = "same_city"
)

// Sections lists the sections in orchestration order.
var Sections = []Section{SectionSimilarAge, SectionCoVisitation, SectionSameCity}

// FallbackMode describes how curated places were blended into a result.
type FallbackMode string

const (
	FallbackNone    FallbackMode = "none"
	FallbackFull    FallbackMode = "full"
	FallbackPartial FallbackMode = "partial"
)

// Result is the three-section recommendation for one user.
type Result struct {
	UserID       string   `json:"user_id"`
	SimilarAge   []string `json:"similar_age_group"`
	CoVisitation []string `json:"co_visitation"`
	SameCity     []string `json:"same_city"`
	Stats        Stats    `json:"-"`
}

// Section returns the places of one section.
func (r *Result) Section(s Section) []string {
	switch s {
	case SectionSimilarAge:
		return r.SimilarAge
	case SectionCoVisitation:
		return r.CoVisitation
	case SectionSameCity:
		return r.SameCity
	default:
		return nil
	}
}

func (r *Result) setSection(s Section, places []string) {
	switch s {
	case SectionSimilarAge:
		r.SimilarAge = places
	case SectionCoVisitation:
		r.CoVisitation = places
	case SectionSameCity:
		r.SameCity = places
	}
}

// Total returns the number of places across all sections.
func (r *Result) Total() int {
	return len(r.SimilarAge) + len(r.CoVisitation) + len(r.SameCity)
}

// Stats describes how a result was produced. It is intended for logs and
// metrics, not for API consumers.
type Stats struct {
	CohortSizes map[Section]int
	DataDriven  map[Section]int
	Fallback    FallbackMode
	Policy      RecencyPolicy
	TripFields  map[Section]ResolvedFields
	Degraded    []string
	Duration    time.Duration
}
