// Package query contains read operations following the CQRS pattern.
// Queries never modify state - they only read and return data.
// Each query is a self-contained use case with its own request/response
// types.
package query

import (
	"context"
	"fmt"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/leaderboard"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/team"
)

// GetLeaderboardQuery asks for a team's current ranking.
type GetLeaderboardQuery struct {
	TeamID shared.TeamID
}

// LeaderboardEntryDTO is one row of the response.
type LeaderboardEntryDTO struct {
	Username      string `json:"username"`
	SolvedCount   int    `json:"solvedCount"`
	WeightedScore int    `json:"weightedScore"`
}

// GetLeaderboardResult is the full ranking, best first.
type GetLeaderboardResult struct {
	Leaderboard []LeaderboardEntryDTO `json:"leaderboard"`
}

// GetLeaderboardHandler handles GetLeaderboardQuery.
type GetLeaderboardHandler struct {
	teams      team.Repository
	problems   problem.Repository
	progresses progress.Repository
}

// NewGetLeaderboardHandler creates a new GetLeaderboardHandler.
func NewGetLeaderboardHandler(teams team.Repository, problems problem.Repository, progresses progress.Repository) *GetLeaderboardHandler {
	return &GetLeaderboardHandler{teams: teams, problems: problems, progresses: progresses}
}

// Handle computes the ranking fresh from the progress log and catalog.
// Nothing is cached; a second request re-reads everything.
func (h *GetLeaderboardHandler) Handle(ctx context.Context, q GetLeaderboardQuery) (*GetLeaderboardResult, error) {
	t, err := h.teams.GetByID(ctx, q.TeamID)
	if err != nil {
		return nil, err
	}

	members := make([]leaderboard.MemberProgress, 0, len(t.Members))
	var problemIDs []string
	for _, username := range t.Usernames() {
		solved, err := h.progresses.ListSolvedByUser(ctx, q.TeamID, username)
		if err != nil {
			return nil, fmt.Errorf("get_leaderboard: loading solved records: %w", err)
		}
		for _, rec := range solved {
			problemIDs = append(problemIDs, rec.ProblemID)
		}
		members = append(members, leaderboard.MemberProgress{Username: username, Solved: solved})
	}

	catalog, err := h.problems.GetByIDs(ctx, q.TeamID, problemIDs)
	if err != nil {
		return nil, fmt.Errorf("get_leaderboard: loading problems: %w", err)
	}

	entries := leaderboard.Compute(members, catalog)
	result := &GetLeaderboardResult{Leaderboard: make([]LeaderboardEntryDTO, len(entries))}
	for i, e := range entries {
		result.Leaderboard[i] = LeaderboardEntryDTO{
			Username:      e.Username.String(),
			SolvedCount:   e.SolvedCount,
			WeightedScore: e.WeightedScore,
		}
	}
	return result, nil
}
