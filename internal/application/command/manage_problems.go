package command

import (
	"context"
	"fmt"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// AddProblemCommand appends a problem to the end of its (sheet, rating)
// group.
type AddProblemCommand struct {
	TeamID    shared.TeamID
	CreatedBy shared.Username
	Name      string
	Link      string
	Rating    string
	Platform  string
	Sheet     string
}

// AddProblemHandler handles AddProblemCommand.
type AddProblemHandler struct {
	problems problem.Repository
	now      func() time.Time
}

// NewAddProblemHandler creates a new AddProblemHandler.
func NewAddProblemHandler(problems problem.Repository, now func() time.Time) *AddProblemHandler {
	if now == nil {
		now = time.Now
	}
	return &AddProblemHandler{problems: problems, now: now}
}

// Handle creates the problem with order = max(group)+1.
func (h *AddProblemHandler) Handle(ctx context.Context, cmd AddProblemCommand) (*problem.Problem, error) {
	rating := shared.Rating(cmd.Rating)
	if rating == "" {
		rating = "Custom"
	}
	key := problem.GroupKey{
		TeamID: cmd.TeamID,
		Sheet:  problem.SheetID(cmd.Sheet),
		Rating: rating,
	}
	maxOrder, err := h.problems.MaxOrder(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("add_problem: reading group order: %w", err)
	}

	p, err := problem.New(cmd.TeamID, cmd.Name, cmd.Link, rating, problem.Platform(cmd.Platform), problem.SheetID(cmd.Sheet), maxOrder+1, cmd.CreatedBy, h.now())
	if err != nil {
		return nil, err
	}
	if err := h.problems.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("add_problem: persisting problem: %w", err)
	}
	return p, nil
}

// ReorderProblemCommand moves a problem one position within its
// (sheet, rating) group.
type ReorderProblemCommand struct {
	TeamID    shared.TeamID
	ProblemID string
	Direction string
}

// ReorderResult reports what a reorder did.
type ReorderResult struct {
	// Moved is false when the problem was already at the boundary.
	Moved bool
	// A and B are the problems whose order values were swapped.
	A, B *problem.Problem
}

// ReorderProblemHandler handles ReorderProblemCommand.
type ReorderProblemHandler struct {
	problems problem.Repository
}

// NewReorderProblemHandler creates a new ReorderProblemHandler.
func NewReorderProblemHandler(problems problem.Repository) *ReorderProblemHandler {
	return &ReorderProblemHandler{problems: problems}
}

// Handle resolves the target's group, performs the adjacent swap, and
// persists the two changed rows in one transaction. Boundary moves
// succeed without touching storage, so repeating them is idempotent.
func (h *ReorderProblemHandler) Handle(ctx context.Context, cmd ReorderProblemCommand) (*ReorderResult, error) {
	direction, err := shared.ParseDirection(cmd.Direction)
	if err != nil {
		return nil, err
	}

	target, err := h.problems.GetByID(ctx, cmd.TeamID, cmd.ProblemID)
	if err != nil {
		return nil, err
	}

	group, err := h.problems.ListGroup(ctx, target.Group())
	if err != nil {
		return nil, fmt.Errorf("reorder_problem: loading group: %w", err)
	}

	move, err := problem.Reorder(group, target.ID, direction)
	if err != nil {
		return nil, err
	}
	if move.IsNoop() {
		return &ReorderResult{Moved: false}, nil
	}

	if err := h.problems.SwapOrders(ctx, move.A, move.B); err != nil {
		return nil, fmt.Errorf("reorder_problem: persisting swap: %w", err)
	}
	return &ReorderResult{Moved: true, A: move.A, B: move.B}, nil
}
