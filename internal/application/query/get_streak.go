package query

import (
	"context"
	"fmt"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// GetStreakQuery asks for a member's current consecutive-day streak.
type GetStreakQuery struct {
	TeamID   shared.TeamID
	Username shared.Username
}

// GetStreakResult carries the streak length in days.
type GetStreakResult struct {
	Streak int `json:"streak"`
}

// GetStreakHandler handles GetStreakQuery.
type GetStreakHandler struct {
	progresses progress.Repository
	now        func() time.Time
	location   *time.Location
}

// NewGetStreakHandler creates a new GetStreakHandler. The clock and
// location are injected so the computation is deterministic under test;
// the location also pins down what a "day" means for every caller.
func NewGetStreakHandler(progresses progress.Repository, now func() time.Time, location *time.Location) *GetStreakHandler {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.Local
	}
	return &GetStreakHandler{progresses: progresses, now: now, location: location}
}

// Handle computes the streak from the member's first-solve timestamps.
// An unknown username simply has no solves and scores 0.
func (h *GetStreakHandler) Handle(ctx context.Context, q GetStreakQuery) (*GetStreakResult, error) {
	solved, err := h.progresses.ListSolvedByUser(ctx, q.TeamID, q.Username)
	if err != nil {
		return nil, fmt.Errorf("get_streak: loading solved records: %w", err)
	}
	streak := progress.ComputeStreak(progress.SolvedTimes(solved), h.now(), h.location)
	return &GetStreakResult{Streak: streak}, nil
}
