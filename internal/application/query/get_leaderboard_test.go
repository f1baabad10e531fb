package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/team"
)

const testTeamID = shared.TeamID("team-abc123")

func testTeam(t *testing.T, usernames ...string) *team.Team {
	t.Helper()
	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	tm, err := team.New(testTeamID, team.Member{Username: shared.Username(usernames[0]), JoinedAt: now}, now)
	require.NoError(t, err)
	for _, name := range usernames[1:] {
		now = now.Add(time.Minute)
		require.NoError(t, tm.AddMember(team.Member{Username: shared.Username(name), JoinedAt: now}))
	}
	return tm
}

func solvedRecord(username, problemID string, solvedAt time.Time) *progress.Record {
	return &progress.Record{
		ID:        username + "-" + problemID,
		TeamID:    testTeamID,
		Username:  shared.Username(username),
		ProblemID: problemID,
		Status:    progress.StatusSolved,
		SolvedAt:  &solvedAt,
		UpdatedAt: solvedAt,
	}
}

func catalogProblem(id string, platform problem.Platform, rating shared.Rating) *problem.Problem {
	return &problem.Problem{
		ID:       id,
		TeamID:   testTeamID,
		Name:     "P-" + id,
		Platform: platform,
		Rating:   rating,
		Sheet:    problem.SheetID(platform),
	}
}

func TestGetLeaderboard(t *testing.T) {
	solvedAt := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	teams := newFakeTeamRepo(testTeam(t, "alice", "bob"))
	problems := newFakeProblemRepo(
		catalogProblem("p1", problem.PlatformTLE, "800"),    // 8
		catalogProblem("p2", problem.PlatformUSACO, "Gold"), // 15
		catalogProblem("p3", problem.PlatformCSES, "Intro"), // 3
	)
	progresses := newFakeProgressRepo(
		solvedRecord("alice", "p1", solvedAt),
		solvedRecord("bob", "p2", solvedAt),
		solvedRecord("bob", "p3", solvedAt),
	)
	h := NewGetLeaderboardHandler(teams, problems, progresses)

	res, err := h.Handle(context.Background(), GetLeaderboardQuery{TeamID: testTeamID})
	require.NoError(t, err)

	assert.Equal(t, []LeaderboardEntryDTO{
		{Username: "bob", SolvedCount: 2, WeightedScore: 18},
		{Username: "alice", SolvedCount: 1, WeightedScore: 8},
	}, res.Leaderboard)
}

func TestGetLeaderboard_DeletedProblemStillCounts(t *testing.T) {
	solvedAt := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	teams := newFakeTeamRepo(testTeam(t, "alice"))
	problems := newFakeProblemRepo(catalogProblem("p1", problem.PlatformTLE, "800"))
	progresses := newFakeProgressRepo(
		solvedRecord("alice", "p1", solvedAt),
		solvedRecord("alice", "gone", solvedAt),
	)
	h := NewGetLeaderboardHandler(teams, problems, progresses)

	res, err := h.Handle(context.Background(), GetLeaderboardQuery{TeamID: testTeamID})
	require.NoError(t, err)

	require.Len(t, res.Leaderboard, 1)
	assert.Equal(t, 2, res.Leaderboard[0].SolvedCount)
	assert.Equal(t, 8, res.Leaderboard[0].WeightedScore)
}

func TestGetLeaderboard_TiesKeepJoinOrder(t *testing.T) {
	teams := newFakeTeamRepo(testTeam(t, "zoe", "alice", "bob"))
	h := NewGetLeaderboardHandler(teams, newFakeProblemRepo(), newFakeProgressRepo())

	res, err := h.Handle(context.Background(), GetLeaderboardQuery{TeamID: testTeamID})
	require.NoError(t, err)

	require.Len(t, res.Leaderboard, 3)
	assert.Equal(t, "zoe", res.Leaderboard[0].Username)
	assert.Equal(t, "alice", res.Leaderboard[1].Username)
	assert.Equal(t, "bob", res.Leaderboard[2].Username)
}

func TestGetLeaderboard_UnknownTeam(t *testing.T) {
	h := NewGetLeaderboardHandler(newFakeTeamRepo(), newFakeProblemRepo(), newFakeProgressRepo())

	_, err := h.Handle(context.Background(), GetLeaderboardQuery{TeamID: "nosuchteam"})
	assert.ErrorIs(t, err, shared.ErrTeamNotFound)
}
