package command

import (
	"context"
	"fmt"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/contest"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// AddContestCommand schedules a contest for the team.
type AddContestCommand struct {
	TeamID    shared.TeamID
	CreatedBy shared.Username
	Name      string
	Platform  string
	Date      time.Time
	Link      string
}

// DeleteContestCommand removes a scheduled contest.
type DeleteContestCommand struct {
	TeamID    shared.TeamID
	ContestID string
}

// ContestHandler handles contest commands.
type ContestHandler struct {
	contests contest.Repository
	now      func() time.Time
}

// NewContestHandler creates a new ContestHandler.
func NewContestHandler(contests contest.Repository, now func() time.Time) *ContestHandler {
	if now == nil {
		now = time.Now
	}
	return &ContestHandler{contests: contests, now: now}
}

// Add persists a new contest.
func (h *ContestHandler) Add(ctx context.Context, cmd AddContestCommand) (*contest.Contest, error) {
	c, err := contest.New(cmd.TeamID, cmd.Name, contest.Platform(cmd.Platform), cmd.Date, cmd.Link, cmd.CreatedBy, h.now())
	if err != nil {
		return nil, err
	}
	if err := h.contests.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("add_contest: persisting contest: %w", err)
	}
	return c, nil
}

// Delete removes a contest scoped to the team.
func (h *ContestHandler) Delete(ctx context.Context, cmd DeleteContestCommand) error {
	return h.contests.Delete(ctx, cmd.TeamID, cmd.ContestID)
}
