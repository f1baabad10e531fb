package command

import (
	"context"
	"fmt"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/sheet"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// CreateSheetCommand creates a custom problem sheet.
type CreateSheetCommand struct {
	TeamID    shared.TeamID
	CreatedBy shared.Username
	Name      string
}

// RenameSheetCommand renames a custom sheet.
type RenameSheetCommand struct {
	TeamID  shared.TeamID
	SheetID string
	Name    string
}

// DeleteSheetCommand removes a custom sheet and its problems.
type DeleteSheetCommand struct {
	TeamID  shared.TeamID
	SheetID string
}

// SheetHandler handles custom sheet commands.
type SheetHandler struct {
	sheets   sheet.Repository
	problems problem.Repository
	now      func() time.Time
}

// NewSheetHandler creates a new SheetHandler.
func NewSheetHandler(sheets sheet.Repository, problems problem.Repository, now func() time.Time) *SheetHandler {
	if now == nil {
		now = time.Now
	}
	return &SheetHandler{sheets: sheets, problems: problems, now: now}
}

// Create persists a new sheet.
func (h *SheetHandler) Create(ctx context.Context, cmd CreateSheetCommand) (*sheet.Sheet, error) {
	s, err := sheet.New(cmd.TeamID, cmd.Name, cmd.CreatedBy, h.now())
	if err != nil {
		return nil, err
	}
	if err := h.sheets.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create_sheet: persisting sheet: %w", err)
	}
	return s, nil
}

// Rename changes a sheet's name.
func (h *SheetHandler) Rename(ctx context.Context, cmd RenameSheetCommand) (*sheet.Sheet, error) {
	s, err := h.sheets.GetByID(ctx, cmd.TeamID, cmd.SheetID)
	if err != nil {
		return nil, err
	}
	if err := s.Rename(cmd.Name); err != nil {
		return nil, err
	}
	if err := h.sheets.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("rename_sheet: persisting sheet: %w", err)
	}
	return s, nil
}

// Delete removes a sheet together with the problems filed under it.
func (h *SheetHandler) Delete(ctx context.Context, cmd DeleteSheetCommand) error {
	if err := h.sheets.Delete(ctx, cmd.TeamID, cmd.SheetID); err != nil {
		return err
	}
	if err := h.problems.DeleteBySheet(ctx, cmd.TeamID, problem.SheetID(cmd.SheetID)); err != nil {
		return fmt.Errorf("delete_sheet: removing sheet problems: %w", err)
	}
	return nil
}
