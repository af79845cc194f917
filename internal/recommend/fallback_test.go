// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var defaultTopN = DefaultConfig().TopN

func defaultBlend() BlendConfig {
	return DefaultConfig().Blend
}

func TestBlenderPick(t *testing.T) {
	t.Parallel()

	b := NewBlender([]string{"Goa", "Paris", "goa", "Tokyo", " ", "Rome"}, 1)

	got := b.Pick(NewPlaceSet("PARIS"), 10)
	if len(got) != 3 {
		t.Fatalf("Pick = %v, want 3 places (pool minus exclusion)", got)
	}
	seen := PlaceSet{}
	for _, p := range got {
		if p == "paris" {
			t.Error("excluded place was picked")
		}
		if seen.Has(p) {
			t.Errorf("duplicate pick %q", p)
		}
		seen.Add(p)
	}

	if got := b.Pick(PlaceSet{}, 0); len(got) != 0 {
		t.Errorf("Pick(0) = %v, want none", got)
	}
	if got := b.Pick(NewPlaceSet("goa", "paris", "tokyo", "rome"), 3); len(got) != 0 {
		t.Errorf("Pick from exhausted pool = %v, want none", got)
	}
}

func TestBlenderSeeded(t *testing.T) {
	t.Parallel()

	a := NewBlender(DefaultFallbackPlaces, 7)
	b := NewBlender(DefaultFallbackPlaces, 7)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(a.Pick(PlaceSet{}, 5), b.Pick(PlaceSet{}, 5)); diff != "" {
			t.Fatalf("same seed produced different picks (-a +b):\n%s", diff)
		}
	}
}

func TestBlendFull(t *testing.T) {
	t.Parallel()

	b := NewBlender(DefaultFallbackPlaces, 3)
	visited := NewPlaceSet("Goa", "Paris")
	res := &Result{}

	mode := b.Blend(res, visited, defaultTopN, defaultBlend())
	if mode != FallbackFull {
		t.Fatalf("mode = %q, want full", mode)
	}

	curated := NewPlaceSet(DefaultFallbackPlaces...)
	all := PlaceSet{}
	for _, s := range Sections {
		places := res.Section(s)
		if len(places) != 7 {
			t.Errorf("%s has %d places, want 7", s, len(places))
		}
		for _, p := range places {
			if !curated.Has(p) {
				t.Errorf("%s: %q is not curated", s, p)
			}
			if visited.Has(p) {
				t.Errorf("%s: %q was already visited", s, p)
			}
			if all.Has(p) {
				t.Errorf("%q appears in more than one section", p)
			}
			all.Add(p)
		}
	}
}

func TestBlendFullSmallPool(t *testing.T) {
	t.Parallel()

	b := NewBlender([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, 3)
	res := &Result{}
	b.Blend(res, NewPlaceSet("a"), defaultTopN, defaultBlend())

	if len(res.SimilarAge) != 7 || len(res.CoVisitation) != 2 || len(res.SameCity) != 0 {
		t.Errorf("split = %d/%d/%d, want 7/2/0", len(res.SimilarAge), len(res.CoVisitation), len(res.SameCity))
	}
}

func TestBlendPartial(t *testing.T) {
	t.Parallel()

	b := NewBlender(DefaultFallbackPlaces, 3)
	visited := NewPlaceSet("goa")
	res := &Result{SimilarAge: []string{"paris", "london"}}

	mode := b.Blend(res, visited, defaultTopN, defaultBlend())
	if mode != FallbackPartial {
		t.Fatalf("mode = %q, want partial", mode)
	}
	if diff := cmp.Diff([]string{"paris", "london"}, res.SimilarAge); diff != "" {
		t.Errorf("data-driven section changed (-want +got):\n%s", diff)
	}
	if len(res.CoVisitation) != 2 || len(res.SameCity) != 2 {
		t.Errorf("top-up sizes = %d/%d, want 2/2", len(res.CoVisitation), len(res.SameCity))
	}

	all := PlaceSet{}
	for _, s := range Sections {
		for _, p := range res.Section(s) {
			if all.Has(p) || visited.Has(p) {
				t.Errorf("%q duplicated or visited", p)
			}
			all.Add(p)
		}
	}
}

func TestBlendNone(t *testing.T) {
	t.Parallel()

	b := NewBlender(DefaultFallbackPlaces, 3)
	res := &Result{SimilarAge: []string{"a", "b", "c", "d", "e", "f", "g"}}
	if mode := b.Blend(res, PlaceSet{}, defaultTopN, defaultBlend()); mode != FallbackNone {
		t.Errorf("mode = %q, want none", mode)
	}
	if len(res.CoVisitation) != 0 || len(res.SameCity) != 0 {
		t.Error("sections were topped up although the total reached top-N")
	}
}

func TestBlendTopUpFollowsTopN(t *testing.T) {
	t.Parallel()

	eight := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	tests := []struct {
		name string
		topN int
		want FallbackMode
	}{
		{"total below top-n", 10, FallbackPartial},
		{"total equals top-n", 8, FallbackNone},
		{"total above top-n", 5, FallbackNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBlender(DefaultFallbackPlaces, 3)
			res := &Result{SimilarAge: append([]string(nil), eight...)}
			if mode := b.Blend(res, PlaceSet{}, tt.topN, defaultBlend()); mode != tt.want {
				t.Errorf("Blend(topN=%d) mode = %q, want %q", tt.topN, mode, tt.want)
			}
		})
	}
}
