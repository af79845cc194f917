// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages. Data
// sources plug in through the DataSource interface.

// defaultSeed is used when Config.Seed is zero.
const defaultSeed = 42

// Engine sequences the three cohorts, threads exclusions between them and
// blends in curated places. It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	source  DataSource
	blender *Blender
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, source DataSource, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if source == nil {
		return nil, errors.New("data source is required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	return &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		source:  source,
		blender: NewBlender(cfg.FallbackPlaces, seed),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// run holds the per-request state.
type run struct {
	ctx        context.Context
	logger     zerolog.Logger
	target     *User
	population []User
	byID       map[string]int
	stats      *Stats
}

// degrade records a recovered data source failure.
func (r *run) degrade(op string, err error) {
	r.stats.Degraded = append(r.stats.Degraded, op)
	r.logger.Warn().Err(err).Str("operation", op).Msg("data source degraded, continuing with empty signal")
}

// Recommend builds the three-section recommendation for userID.
//
// It returns ErrInvalidUserID for a blank or malformed id, ErrUserNotFound
// when no such user exists and ErrSourceUnavailable when the lookup itself
// failed. Every other data source failure is absorbed.
func (e *Engine) Recommend(ctx context.Context, userID string) (*Result, error) {
	start := time.Now()

	id := NormalizeID(userID)
	if id == "" {
		return nil, ErrInvalidUserID
	}
	if v, ok := e.source.(IDValidator); ok && !v.ValidUserID(id) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUserID, id)
	}

	logger := e.logger.With().Str("user_id", id).Logger()

	target, err := e.source.GetUserByID(ctx, id)
	switch {
	case errors.Is(err, ErrUserNotFound):
		return nil, ErrUserNotFound
	case errors.Is(err, ErrInvalidUserID):
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("%w: get user: %w", ErrSourceUnavailable, err)
	case target == nil:
		return nil, ErrUserNotFound
	}

	stats := &Stats{
		CohortSizes: make(map[Section]int, len(Sections)),
		DataDriven:  make(map[Section]int, len(Sections)),
		TripFields:  make(map[Section]ResolvedFields, len(Sections)),
		Policy:      e.config.RecencyPolicy,
	}
	r := &run{ctx: ctx, logger: logger, target: target, stats: stats}

	r.population, err = e.source.ListUsers(ctx)
	if err != nil {
		r.degrade("list_users", err)
		r.population = nil
	}

	visited := e.visitedPlaces(r)
	exclude := visited.Clone()

	res := &Result{UserID: id}
	for _, section := range Sections {
		cohort := e.cohort(section, r)
		stats.CohortSizes[section] = len(cohort)

		places := e.rankCohort(section, r, cohort, exclude)
		exclude.AddAll(places)
		res.setSection(section, places)
		stats.DataDriven[section] = len(places)
	}

	stats.Fallback = e.blender.Blend(res, visited, e.config.TopN, e.config.Blend)
	for _, section := range Sections {
		if res.Section(section) == nil {
			res.setSection(section, []string{})
		}
	}

	stats.Duration = time.Since(start)
	res.Stats = *stats

	logger.Debug().
		Int("similar_age", len(res.SimilarAge)).
		Int("co_visitation", len(res.CoVisitation)).
		Int("same_city", len(res.SameCity)).
		Str("fallback", string(stats.Fallback)).
		Strs("degraded", stats.Degraded).
		Dur("duration", stats.Duration).
		Msg("recommendation complete")

	return res, nil
}

// visitedPlaces returns the target's profile places and, when configured,
// the destinations of the target's own trips.
func (e *Engine) visitedPlaces(r *run) PlaceSet {
	visited := r.target.Places()
	if !e.config.ExcludeOwnTrips {
		return visited
	}

	trips, err := e.source.ListTripsForUsers(r.ctx, []string{NormalizeID(r.target.ID)})
	if err != nil {
		r.degrade("list_own_trips", err)
		return visited
	}
	fields := e.config.Fields.Resolve(trips)
	if fields.Place == "" {
		return visited
	}
	for i := range trips {
		v, _ := trips[i].Field(fields.Place)
		visited.Add(PlaceValue(v))
	}
	return visited
}

func (e *Engine) cohort(section Section, r *run) []string {
	switch section {
	case SectionSimilarAge:
		return SimilarAge(r.target, r.population, e.config.AgeWindow)
	case SectionCoVisitation:
		return CoVisitors(r.target, r.population)
	case SectionSameCity:
		return SameCity(r.target, r.population)
	default:
		return nil
	}
}

// peers resolves cohort ids against the population snapshot the cohort was
// drawn from, in cohort order.
func (r *run) peers(cohort []string) []User {
	if r.byID == nil {
		r.byID = make(map[string]int, len(r.population))
		for i := range r.population {
			r.byID[NormalizeID(r.population[i].ID)] = i
		}
	}
	out := make([]User, 0, len(cohort))
	for _, id := range cohort {
		if i, ok := r.byID[NormalizeID(id)]; ok {
			out = append(out, r.population[i])
		}
	}
	return out
}

// rankCohort scores one cohort and returns its ranked places.
func (e *Engine) rankCohort(section Section, r *run, cohort []string, exclude PlaceSet) []string {
	if len(cohort) == 0 {
		return nil
	}
	scores := NewPlaceScores()
	ScoreProfiles(scores, r.peers(cohort), exclude)

	trips, err := e.source.ListTripsForUsers(r.ctx, cohort)
	if err != nil {
		r.degrade("list_trips", err)
	} else {
		r.stats.TripFields[section] = ScoreTrips(scores, trips, e.config.Fields, e.config.RecencyPolicy, exclude)
	}

	if scores.Len() == 0 {
		ScoreFrequency(scores, r.population, cohort, exclude)
	}

	return Rank(scores, e.config.TopN)
}
