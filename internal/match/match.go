// Package match implements ranked name lookup over a roster.
//
// Despite the "fuzzy" name used by the tool that drives it, matching is
// substring containment over case-folded names, and every hit scores a
// constant 1.0. This is intentional legacy behavior: callers and
// persisted transcripts depend on it, so no edit-distance or token
// scoring is layered on top. A true approximate matcher would be a new,
// separately named algorithm.
package match

import (
	"strings"

	"peopled/internal/directory"
)

// Candidate is one scored match.
type Candidate struct {
	MatchedName string           `json:"matched_name"`
	Similarity  float64          `json:"similarity"`
	Person      directory.Person `json:"person"`
}

// Result is the full output of a name lookup.
type Result struct {
	Query      string      `json:"query"`
	BestMatch  string      `json:"best_match,omitempty"`
	Candidates []Candidate `json:"candidates"`
}

// Match scans the roster for people whose full name contains the query,
// case-insensitively. Candidates preserve roster order and are truncated
// to maxResults (maxResults <= 0 yields an empty candidate list).
// BestMatch is the first hit before truncation, so it survives even a
// zero-result truncation. An empty query matches everyone.
func Match(roster directory.Roster, query string, maxResults int) Result {
	normalized := strings.ToLower(strings.TrimSpace(query))

	var matches []Candidate
	for _, p := range roster {
		if strings.Contains(strings.ToLower(p.FullName), normalized) {
			matches = append(matches, Candidate{
				MatchedName: p.FullName,
				Similarity:  1.0,
				Person:      p,
			})
		}
	}

	result := Result{Query: normalized, Candidates: []Candidate{}}
	if len(matches) == 0 {
		return result
	}

	result.BestMatch = matches[0].MatchedName
	if maxResults > 0 {
		if maxResults > len(matches) {
			maxResults = len(matches)
		}
		result.Candidates = matches[:maxResults]
	}
	return result
}
