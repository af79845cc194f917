// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// buildEngineConfig maps the recommend section of the server configuration
// onto the engine configuration. Empty candidate and fallback lists keep the
// engine defaults.
func buildEngineConfig(cfg *config.Config) (*recommend.Config, error) {
	engineCfg := recommend.DefaultConfig()
	rc := cfg.Recommend

	engineCfg.TopN = rc.TopN
	engineCfg.AgeWindow = rc.AgeWindow
	engineCfg.ExcludeOwnTrips = rc.ExcludeOwnTrips
	engineCfg.Seed = rc.Seed
	engineCfg.Blend = recommend.BlendConfig{
		PerSection: rc.FallbackPerSection,
		TopUpCount: rc.TopUpCount,
	}

	policy, err := recommend.ParseRecencyPolicy(cfg.EffectiveRecencyPolicy())
	if err != nil {
		return nil, err
	}
	engineCfg.RecencyPolicy = policy

	if len(rc.PlaceFields) > 0 {
		engineCfg.Fields.Place = append([]string(nil), rc.PlaceFields...)
	}
	if len(rc.DateFields) > 0 {
		engineCfg.Fields.Date = append([]string(nil), rc.DateFields...)
	}
	if len(rc.FallbackPlaces) > 0 {
		engineCfg.FallbackPlaces = append([]string(nil), rc.FallbackPlaces...)
	}

	return engineCfg, nil
}

// initRecommend builds the recommendation engine over source.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, source recommend.DataSource, logger zerolog.Logger) (*recommend.Engine, error) {
	engineCfg, err := buildEngineConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("recommend config: %w", err)
	}

	engine, err := recommend.NewEngine(engineCfg, source, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	logger.Info().
		Int("top_n", engineCfg.TopN).
		Int("age_window", engineCfg.AgeWindow).
		Str("recency_policy", string(engineCfg.RecencyPolicy)).
		Int("fallback_places", len(engineCfg.FallbackPlaces)).
		Bool("exclude_own_trips", engineCfg.ExcludeOwnTrips).
		Msg("recommendation engine initialized")

	return engine, nil
}
