// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"math/rand"
	"sync"
)

// DefaultFallbackPlaces is the curated list of well-known destinations used
// when the data gives no signal.
var DefaultFallbackPlaces = []string{
	"mumbai", "delhi", "bangalore", "chennai", "kolkata", "hyderabad", "pune",
	"jaipur", "ahmedabad", "surat", "lucknow", "kanpur", "nagpur", "indore",
	"thane", "bhopal", "visakhapatnam", "pimpri-chinchwad", "patna", "vadodara",
	"goa", "kerala", "rajasthan", "himachal pradesh", "uttarakhand",
	"paris", "london", "tokyo", "new york", "dubai", "singapore", "thailand",
	"bali", "maldives", "nepal", "bhutan", "sri lanka", "malaysia", "vietnam",
}

// BlendConfig controls how curated places are mixed into a result.
type BlendConfig struct {
	// PerSection is the size of each section under full fallback.
	PerSection int `json:"per_section"`

	// TopUpCount is how many picks an empty section receives under partial top-up.
	TopUpCount int `json:"top_up_count"`
}

// Blender draws random places from the curated list without replacement.
// It is safe for concurrent use.
type Blender struct {
	places []string
	rng    *rand.Rand
	mu     sync.Mutex
}

// NewBlender creates a blender over places. The same seed always yields the
// same sequence of picks.
func NewBlender(places []string, seed int64) *Blender {
	pool := make([]string, 0, len(places))
	seen := make(PlaceSet, len(places))
	for _, p := range places {
		n := NormalizePlace(p)
		if n == "" || seen.Has(n) {
			continue
		}
		seen.Add(n)
		pool = append(pool, n)
	}
	return &Blender{
		places: pool,
		rng:    rand.New(rand.NewSource(seed)), //nolint:gosec // math/rand is fine for recommendation shuffling
	}
}

// Pick returns up to count curated places not in exclude.
func (b *Blender) Pick(exclude PlaceSet, count int) []string {
	if count <= 0 {
		return nil
	}
	available := make([]string, 0, len(b.places))
	for _, p := range b.places {
		if !exclude.Has(p) {
			available = append(available, p)
		}
	}
	n := min(count, len(available))

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := 0; i < n; i++ {
		j := i + b.rng.Intn(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}
	return available[:n]
}

// Blend applies full fallback or partial top-up to res in place and reports
// which one ran. visited holds the target's own places. Partial top-up runs
// only when the data-driven total is below topN.
func (b *Blender) Blend(res *Result, visited PlaceSet, topN int, cfg BlendConfig) FallbackMode {
	if res.Total() == 0 {
		picks := b.Pick(visited, cfg.PerSection*len(Sections))
		for _, s := range Sections {
			n := min(cfg.PerSection, len(picks))
			res.setSection(s, picks[:n:n])
			picks = picks[n:]
		}
		return FallbackFull
	}

	if res.Total() >= topN {
		return FallbackNone
	}

	exclude := visited.Clone()
	for _, s := range Sections {
		exclude.AddAll(res.Section(s))
	}
	mode := FallbackNone
	for _, s := range Sections {
		if len(res.Section(s)) > 0 {
			continue
		}
		extra := b.Pick(exclude, cfg.TopUpCount)
		if len(extra) == 0 {
			continue
		}
		exclude.AddAll(extra)
		res.setSection(s, extra)
		mode = FallbackPartial
	}
	return mode
}
