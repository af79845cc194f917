// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import "sort"

// Rank orders places by descending score, keeping first-seen order among
// equal scores, and returns at most topN of them.
func Rank(scores *PlaceScores, topN int) []string {
	if scores == nil || topN <= 0 {
		return nil
	}
	places := scores.Places()
	sort.SliceStable(places, func(i, j int) bool {
		return scores.scores[places[i]] > scores.scores[places[j]]
	})

	out := make([]string, 0, min(topN, len(places)))
	for _, p := range places {
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == topN {
			break
		}
	}
	return out
}
