// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"encoding/json"
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// TopN is the maximum size of each data-driven section.
	TopN int `json:"top_n"`

	// AgeWindow is the half-width, in years, of the similar-age cohort.
	AgeWindow int `json:"age_window"`

	// RecencyPolicy decides the weight of undated trips.
	RecencyPolicy RecencyPolicy `json:"recency_policy"`

	// Fields lists candidate trip keys for destination and date.
	Fields FieldCandidates `json:"fields"`

	// FallbackPlaces is the curated list used by the Blender.
	FallbackPlaces []string `json:"fallback_places"`

	// Blend controls full fallback and partial top-up.
	Blend BlendConfig `json:"blend"`

	// ExcludeOwnTrips adds the target's own trip destinations to the visited set.
	ExcludeOwnTrips bool `json:"exclude_own_trips"`

	// Seed seeds the Blender. If zero, a fixed default seed is used.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		TopN:           7,
		AgeWindow:      5,
		RecencyPolicy:  RecencyZero,
		Fields:         DefaultFieldCandidates(),
		FallbackPlaces: append([]string(nil), DefaultFallbackPlaces...),
		Blend: BlendConfig{
			PerSection: 7,
			TopUpCount: 2,
		},
		ExcludeOwnTrips: true,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.AgeWindow < 0 {
		return fmt.Errorf("age_window must be non-negative, got %d", c.AgeWindow)
	}
	if _, err := ParseRecencyPolicy(string(c.RecencyPolicy)); err != nil {
		return err
	}
	if len(c.Fields.Place) == 0 {
		return fmt.Errorf("at least one place field candidate is required")
	}
	if c.Blend.PerSection < 0 || c.Blend.TopUpCount < 0 {
		return fmt.Errorf("blend sizes must be non-negative")
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	data, err := json.Marshal(c)
	if err != nil {
		return DefaultConfig()
	}
	var clone Config
	if err := json.Unmarshal(data, &clone); err != nil {
		return DefaultConfig()
	}
	return &clone
}

// String returns a JSON representation of the configuration.
func (c *Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
