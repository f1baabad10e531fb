package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// UpdateProgressCommand sets a member's status for one problem,
// creating the progress record on first touch.
type UpdateProgressCommand struct {
	TeamID    shared.TeamID
	Username  shared.Username
	ProblemID string
	Status    string
}

// Validate validates the command.
func (c UpdateProgressCommand) Validate() error {
	if c.ProblemID == "" {
		return shared.NewDomainError("progress", "Update", shared.ErrEmptyValue, "problem ID required")
	}
	if _, err := progress.ParseStatus(c.Status); err != nil {
		return err
	}
	return nil
}

// UpdateProgressHandler handles UpdateProgressCommand.
type UpdateProgressHandler struct {
	problems   problem.Repository
	progresses progress.Repository
	now        func() time.Time
}

// NewUpdateProgressHandler creates a new UpdateProgressHandler.
func NewUpdateProgressHandler(problems problem.Repository, progresses progress.Repository, now func() time.Time) *UpdateProgressHandler {
	if now == nil {
		now = time.Now
	}
	return &UpdateProgressHandler{problems: problems, progresses: progresses, now: now}
}

// Handle upserts the record. The first transition into solved stamps
// SolvedAt; later transitions never clear it.
func (h *UpdateProgressHandler) Handle(ctx context.Context, cmd UpdateProgressCommand) (*progress.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	status, _ := progress.ParseStatus(cmd.Status)

	// The problem must exist and belong to the caller's team.
	if _, err := h.problems.GetByID(ctx, cmd.TeamID, cmd.ProblemID); err != nil {
		return nil, err
	}

	now := h.now()
	rec, err := h.progresses.Get(ctx, cmd.TeamID, cmd.Username, cmd.ProblemID)
	switch {
	case err == nil:
		if err := rec.SetStatus(status, now); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		rec, err = progress.NewRecord(cmd.TeamID, cmd.Username, cmd.ProblemID, status, now)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("update_progress: loading record: %w", err)
	}

	if err := h.progresses.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("update_progress: persisting record: %w", err)
	}
	return rec, nil
}

// UpdateNotesCommand replaces a member's notes for one problem. It
// upserts: notes can exist before any status.
type UpdateNotesCommand struct {
	TeamID    shared.TeamID
	Username  shared.Username
	ProblemID string
	Notes     string
}

// UpdateNotesHandler handles UpdateNotesCommand.
type UpdateNotesHandler struct {
	progresses progress.Repository
	now        func() time.Time
}

// NewUpdateNotesHandler creates a new UpdateNotesHandler.
func NewUpdateNotesHandler(progresses progress.Repository, now func() time.Time) *UpdateNotesHandler {
	if now == nil {
		now = time.Now
	}
	return &UpdateNotesHandler{progresses: progresses, now: now}
}

// Handle upserts the record with the new notes.
func (h *UpdateNotesHandler) Handle(ctx context.Context, cmd UpdateNotesCommand) (*progress.Record, error) {
	if cmd.ProblemID == "" {
		return nil, shared.NewDomainError("progress", "UpdateNotes", shared.ErrEmptyValue, "problem ID required")
	}

	now := h.now()
	rec, err := h.progresses.Get(ctx, cmd.TeamID, cmd.Username, cmd.ProblemID)
	switch {
	case err == nil:
		rec.SetNotes(cmd.Notes, now)
	case errors.Is(err, shared.ErrNotFound):
		rec, err = progress.NewRecord(cmd.TeamID, cmd.Username, cmd.ProblemID, progress.StatusNone, now)
		if err != nil {
			return nil, err
		}
		rec.SetNotes(cmd.Notes, now)
	default:
		return nil, fmt.Errorf("update_notes: loading record: %w", err)
	}

	if err := h.progresses.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("update_notes: persisting record: %w", err)
	}
	return rec, nil
}
