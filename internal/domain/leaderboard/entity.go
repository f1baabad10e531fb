// Package leaderboard computes the team ranking from the progress log
// and the problem catalog. Entries are derived values: they are computed
// fresh on every request and never persisted or cached.
package leaderboard

import (
	"sort"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// Entry is one member's row in the ranking.
type Entry struct {
	Username      shared.Username
	SolvedCount   int
	WeightedScore int
}

// MemberProgress pairs a member with their solved records, in the team's
// member order. The order matters: it is the final tie break.
type MemberProgress struct {
	Username shared.Username
	Solved   []*progress.Record
}

// Compute folds each member's solved records through the weighting
// engine and ranks the results.
//
// Records pointing at problems missing from the catalog contribute to
// the solved count but not to the score: scoring them would fail, and a
// deleted problem does not un-solve itself. The catalog map is keyed by
// problem ID. Entries sort by weighted score descending, then solved
// count descending. Remaining ties keep member order, so the sort must
// be stable; ranking by username instead would reshuffle equal scores.
func Compute(members []MemberProgress, catalog map[string]*problem.Problem) []Entry {
	entries := make([]Entry, 0, len(members))
	for _, m := range members {
		entry := Entry{Username: m.Username}
		for _, rec := range m.Solved {
			if !rec.IsSolved() {
				continue
			}
			entry.SolvedCount++
			if p, ok := catalog[rec.ProblemID]; ok {
				entry.WeightedScore += problem.WeightOf(p)
			}
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].WeightedScore != entries[j].WeightedScore {
			return entries[i].WeightedScore > entries[j].WeightedScore
		}
		return entries[i].SolvedCount > entries[j].SolvedCount
	})
	return entries
}
