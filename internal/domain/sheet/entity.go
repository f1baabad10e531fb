// Package sheet contains team-defined custom problem sheets. The three
// fixed sheets (TLE, USACO, CSES) are not entities; only custom sheets
// have identity and a lifecycle.
package sheet

import (
	"context"
	"strings"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/google/uuid"
)

// Sheet is a team-defined problem list. Problems reference it by its ID
// through their Sheet field.
type Sheet struct {
	ID        string
	TeamID    shared.TeamID
	Name      string
	CreatedBy shared.Username
	CreatedAt time.Time
}

// New creates a custom sheet.
func New(teamID shared.TeamID, name string, createdBy shared.Username, now time.Time) (*Sheet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrEmptySheetName
	}
	return &Sheet{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		Name:      name,
		CreatedBy: createdBy,
		CreatedAt: now,
	}, nil
}

// Rename changes the sheet name.
func (s *Sheet) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.ErrEmptySheetName
	}
	s.Name = name
	return nil
}

// Repository defines the interface for custom sheet persistence.
type Repository interface {
	// Create persists a new sheet.
	Create(ctx context.Context, s *Sheet) error

	// GetByID returns a sheet scoped to a team.
	// Returns shared.ErrSheetNotFound if absent.
	GetByID(ctx context.Context, teamID shared.TeamID, id string) (*Sheet, error)

	// ListByTeam returns a team's sheets oldest first.
	ListByTeam(ctx context.Context, teamID shared.TeamID) ([]*Sheet, error)

	// Save persists name changes.
	Save(ctx context.Context, s *Sheet) error

	// Delete removes a sheet. Returns shared.ErrSheetNotFound if absent.
	Delete(ctx context.Context, teamID shared.TeamID, id string) error
}
