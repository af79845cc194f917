// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRank(t *testing.T) {
	t.Parallel()

	scores := NewPlaceScores()
	scores.Add("rome", 1)
	scores.Add("goa", 3)
	scores.Add("oslo", 1)
	scores.Add("paris", 2)
	scores.Add("lima", 1)

	tests := []struct {
		name string
		topN int
		want []string
	}{
		{"all", 10, []string{"goa", "paris", "rome", "oslo", "lima"}},
		{"truncated ties keep insertion order", 4, []string{"goa", "paris", "rome", "oslo"}},
		{"top one", 1, []string{"goa"}},
		{"zero", 0, nil},
	}

	for _, tt := range tests {
		got := Rank(scores, tt.topN)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: Rank mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestRankDeterministic(t *testing.T) {
	t.Parallel()

	build := func() *PlaceScores {
		s := NewPlaceScores()
		for _, p := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
			s.Add(p, 1)
		}
		return s
	}

	first := Rank(build(), 5)
	for i := 0; i < 20; i++ {
		if diff := cmp.Diff(first, Rank(build(), 5)); diff != "" {
			t.Fatalf("Rank not deterministic (-first +got):\n%s", diff)
		}
	}
}

func TestRankNil(t *testing.T) {
	t.Parallel()

	if got := Rank(nil, 5); got != nil {
		t.Errorf("Rank(nil) = %v, want nil", got)
	}
	if got := Rank(NewPlaceScores(), 5); len(got) != 0 {
		t.Errorf("Rank(empty) = %v, want empty", got)
	}
}
