// file: internal/trigram/rank.go
// version: 1.0.0
// guid: 7d3f9a1b-5c8e-4d2a-9f6b-0e4c8a2d7f1e

package trigram

import "sort"

// Ranked pairs a candidate's index in the original slice with its
// similarity to a query.
type Ranked struct {
	Index int     // index into the candidate slice
	Score float64 // similarity in [0, 1], higher is better
}

// Rank scores every candidate against query and returns those whose
// similarity reaches minScore, sorted by descending score. Candidates
// with equal scores keep their original relative order.
func Rank(query string, candidates []string, minScore float64) []Ranked {
	var results []Ranked
	for i, c := range candidates {
		if s := Similarity(query, c); s >= minScore {
			results = append(results, Ranked{Index: i, Score: s})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
