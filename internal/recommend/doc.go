// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package recommend implements the destination scoring engine.
//
// # Architecture
//
// A recommendation is assembled from three peer cohorts, each selected by a
// single heuristic:
//
//   - Similar age: peers within a fixed number of years of the target
//   - Co-visitation: peers who share at least one visited place
//   - Same city: peers living in the same (normalized) city
//
// For every cohort the engine gathers places from the peers' profile history
// (frequency only) and from their trip records (frequency plus a recency
// weight computed over that cohort's own date window), ranks them, and hands
// the chosen places to the next cohort as exclusions. No place is ever
// recommended twice in one result and no place the target already visited is
// ever recommended.
//
// When every cohort comes back empty the Blender fills all three sections from
// a curated list. When only a few places were found it tops up the empty
// sections with a couple of curated picks.
//
// # Data Sources
//
// The engine reads users and trips through the DataSource interface. Trip
// records are schemaless: the place and date columns are discovered from an
// ordered list of candidate field names (see FieldCandidates). Fetch failures
// never abort a request; they degrade to an empty signal and are reported in
// Result.Stats.
//
// # Usage
//
//	cfg := recommend.DefaultConfig()
//	engine, err := recommend.NewEngine(cfg, source, logger)
//	if err != nil {
//	    return err
//	}
//
//	res, err := engine.Recommend(ctx, "42")
//	switch {
//	case errors.Is(err, recommend.ErrInvalidUserID):
//	    // 400
//	case errors.Is(err, recommend.ErrUserNotFound):
//	    // 404
//	}
//
// # Thread Safety
//
// The engine is safe for concurrent use. Each request works on its own
// snapshot of users and trips; the only shared mutable state is the random
// source used by the Blender, which is guarded by a mutex.
package recommend
