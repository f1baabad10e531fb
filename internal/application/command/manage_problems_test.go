package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

const testTeamID = shared.TeamID("team-abc123")

func seedProblems(t *testing.T, repo *fakeProblemRepo, rating shared.Rating, count int) []*problem.Problem {
	t.Helper()
	out := make([]*problem.Problem, count)
	for i := 0; i < count; i++ {
		p, err := problem.New(testTeamID, "P"+string(rune('1'+i)), "https://example.com", rating, problem.PlatformTLE, problem.SheetTLE, i+1, "alice", fixedNow())
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), p))
		out[i] = p
	}
	return out
}

func TestAddProblem_AppendsToGroup(t *testing.T) {
	repo := newFakeProblemRepo()
	seedProblems(t, repo, "800", 3)
	h := NewAddProblemHandler(repo, fixedNow)

	p, err := h.Handle(context.Background(), AddProblemCommand{
		TeamID:    testTeamID,
		CreatedBy: "alice",
		Name:      "Watermelon",
		Link:      "https://example.com/4A",
		Rating:    "800",
		Platform:  "TLE",
		Sheet:     "TLE",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Order)
	assert.Equal(t, shared.Rating("800"), p.Rating)

	stored, err := repo.GetByID(context.Background(), testTeamID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, stored)
}

func TestAddProblem_FirstInGroupGetsOrderOne(t *testing.T) {
	repo := newFakeProblemRepo()
	seedProblems(t, repo, "800", 3)
	h := NewAddProblemHandler(repo, fixedNow)

	// A different rating is a different group with its own ordering.
	p, err := h.Handle(context.Background(), AddProblemCommand{
		TeamID:    testTeamID,
		CreatedBy: "alice",
		Name:      "Theatre Square",
		Link:      "https://example.com/1A",
		Rating:    "1000",
		Platform:  "TLE",
		Sheet:     "TLE",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Order)
}

func TestAddProblem_Defaults(t *testing.T) {
	repo := newFakeProblemRepo()
	h := NewAddProblemHandler(repo, fixedNow)

	p, err := h.Handle(context.Background(), AddProblemCommand{
		TeamID:    testTeamID,
		CreatedBy: "alice",
		Name:      "Mystery",
		Link:      "https://example.com/x",
		Sheet:     "TLE",
	})
	require.NoError(t, err)
	assert.Equal(t, shared.Rating("Custom"), p.Rating)
	assert.Equal(t, problem.PlatformCustom, p.Platform)
}

func TestAddProblem_RequiresNameAndLink(t *testing.T) {
	h := NewAddProblemHandler(newFakeProblemRepo(), fixedNow)

	_, err := h.Handle(context.Background(), AddProblemCommand{
		TeamID: testTeamID,
		Sheet:  "TLE",
		Link:   "https://example.com/x",
	})
	assert.ErrorIs(t, err, shared.ErrProblemRequired)
}

func TestReorderProblem_PersistsSwap(t *testing.T) {
	repo := newFakeProblemRepo()
	group := seedProblems(t, repo, "800", 3)
	h := NewReorderProblemHandler(repo)

	res, err := h.Handle(context.Background(), ReorderProblemCommand{
		TeamID:    testTeamID,
		ProblemID: group[1].ID,
		Direction: "up",
	})
	require.NoError(t, err)
	assert.True(t, res.Moved)
	assert.Equal(t, 1, repo.swapCalls)

	reloaded, err := repo.ListGroup(context.Background(), group[1].Group())
	require.NoError(t, err)
	assert.Equal(t, group[1].ID, reloaded[0].ID)
	assert.Equal(t, group[0].ID, reloaded[1].ID)
}

func TestReorderProblem_BoundaryDoesNotTouchStorage(t *testing.T) {
	repo := newFakeProblemRepo()
	group := seedProblems(t, repo, "800", 3)
	h := NewReorderProblemHandler(repo)

	res, err := h.Handle(context.Background(), ReorderProblemCommand{
		TeamID:    testTeamID,
		ProblemID: group[0].ID,
		Direction: "up",
	})
	require.NoError(t, err)
	assert.False(t, res.Moved)
	assert.Zero(t, repo.swapCalls)
}

func TestReorderProblem_InvalidDirection(t *testing.T) {
	repo := newFakeProblemRepo()
	group := seedProblems(t, repo, "800", 2)
	h := NewReorderProblemHandler(repo)

	_, err := h.Handle(context.Background(), ReorderProblemCommand{
		TeamID:    testTeamID,
		ProblemID: group[0].ID,
		Direction: "sideways",
	})
	assert.ErrorIs(t, err, shared.ErrInvalidDirection)
}

func TestReorderProblem_UnknownProblem(t *testing.T) {
	h := NewReorderProblemHandler(newFakeProblemRepo())

	_, err := h.Handle(context.Background(), ReorderProblemCommand{
		TeamID:    testTeamID,
		ProblemID: "missing",
		Direction: "down",
	})
	assert.ErrorIs(t, err, shared.ErrProblemNotFound)
}

func TestReorderProblem_OtherTeamsProblemIsInvisible(t *testing.T) {
	repo := newFakeProblemRepo()
	group := seedProblems(t, repo, "800", 2)
	h := NewReorderProblemHandler(repo)

	_, err := h.Handle(context.Background(), ReorderProblemCommand{
		TeamID:    "team-other1",
		ProblemID: group[0].ID,
		Direction: "down",
	})
	assert.ErrorIs(t, err, shared.ErrProblemNotFound)
}
