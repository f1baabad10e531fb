package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

func solvedRecord(username, problemID string) *progress.Record {
	return &progress.Record{
		ID:        username + "-" + problemID,
		Username:  shared.Username(username),
		ProblemID: problemID,
		Status:    progress.StatusSolved,
	}
}

func catalogProblem(id string, platform problem.Platform, rating shared.Rating) *problem.Problem {
	return &problem.Problem{ID: id, Platform: platform, Rating: rating}
}

func TestCompute_RanksByWeightedScore(t *testing.T) {
	catalog := map[string]*problem.Problem{
		"p1": catalogProblem("p1", problem.PlatformTLE, "800"),    // 8
		"p2": catalogProblem("p2", problem.PlatformTLE, "1950"),   // 19
		"p3": catalogProblem("p3", problem.PlatformUSACO, "Gold"), // 15
	}
	members := []MemberProgress{
		{Username: "alice", Solved: []*progress.Record{solvedRecord("alice", "p1")}},
		{Username: "bob", Solved: []*progress.Record{solvedRecord("bob", "p2"), solvedRecord("bob", "p3")}},
	}

	entries := Compute(members, catalog)

	assert.Equal(t, []Entry{
		{Username: "bob", SolvedCount: 2, WeightedScore: 34},
		{Username: "alice", SolvedCount: 1, WeightedScore: 8},
	}, entries)
}

func TestCompute_SolvedCountBreaksScoreTies(t *testing.T) {
	catalog := map[string]*problem.Problem{
		"p1": catalogProblem("p1", problem.PlatformTLE, "1000"), // 10
		"p2": catalogProblem("p2", problem.PlatformTLE, "500"),  // 5
		"p3": catalogProblem("p3", problem.PlatformTLE, "500"),  // 5
	}
	members := []MemberProgress{
		{Username: "alice", Solved: []*progress.Record{solvedRecord("alice", "p1")}},
		{Username: "bob", Solved: []*progress.Record{solvedRecord("bob", "p2"), solvedRecord("bob", "p3")}},
	}

	entries := Compute(members, catalog)

	// Both score 10; bob's two solves outrank alice's one.
	assert.Equal(t, shared.Username("bob"), entries[0].Username)
	assert.Equal(t, shared.Username("alice"), entries[1].Username)
	assert.Equal(t, entries[0].WeightedScore, entries[1].WeightedScore)
}

func TestCompute_FullTiesKeepMemberOrder(t *testing.T) {
	catalog := map[string]*problem.Problem{
		"p1": catalogProblem("p1", problem.PlatformTLE, "800"),
	}
	members := []MemberProgress{
		{Username: "zoe", Solved: []*progress.Record{solvedRecord("zoe", "p1")}},
		{Username: "alice", Solved: []*progress.Record{solvedRecord("alice", "p1")}},
		{Username: "bob", Solved: []*progress.Record{solvedRecord("bob", "p1")}},
	}

	entries := Compute(members, catalog)

	// Identical rows stay in join order rather than sorting by name.
	assert.Equal(t, shared.Username("zoe"), entries[0].Username)
	assert.Equal(t, shared.Username("alice"), entries[1].Username)
	assert.Equal(t, shared.Username("bob"), entries[2].Username)
}

func TestCompute_MissingCatalogProblemCountsButDoesNotScore(t *testing.T) {
	catalog := map[string]*problem.Problem{
		"p1": catalogProblem("p1", problem.PlatformTLE, "800"),
	}
	members := []MemberProgress{
		{Username: "alice", Solved: []*progress.Record{
			solvedRecord("alice", "p1"),
			solvedRecord("alice", "deleted"),
		}},
	}

	entries := Compute(members, catalog)

	assert.Equal(t, 2, entries[0].SolvedCount)
	assert.Equal(t, 8, entries[0].WeightedScore)
}

func TestCompute_SkipsRecordsNotCurrentlySolved(t *testing.T) {
	catalog := map[string]*problem.Problem{
		"p1": catalogProblem("p1", problem.PlatformTLE, "800"),
	}
	demoted := solvedRecord("alice", "p1")
	demoted.Status = progress.StatusRevision
	members := []MemberProgress{
		{Username: "alice", Solved: []*progress.Record{demoted}},
	}

	entries := Compute(members, catalog)

	assert.Equal(t, 0, entries[0].SolvedCount)
	assert.Equal(t, 0, entries[0].WeightedScore)
}

func TestCompute_MemberWithNoSolvesStillListed(t *testing.T) {
	members := []MemberProgress{
		{Username: "alice"},
		{Username: "bob"},
	}

	entries := Compute(members, nil)

	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Zero(t, e.SolvedCount)
		assert.Zero(t, e.WeightedScore)
	}
}

func TestCompute_Empty(t *testing.T) {
	assert.Empty(t, Compute(nil, nil))
}
