// Package team contains the team aggregate and its repository contract.
package team

import (
	"context"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// Repository defines the interface for team persistence.
// This interface is implemented by the infrastructure layer.
// The domain layer has no knowledge of the actual storage mechanism.
type Repository interface {
	// Create persists a new team with its founding member.
	Create(ctx context.Context, t *Team) error

	// GetByID returns a team with all members in join order.
	// Returns shared.ErrTeamNotFound if the team does not exist.
	GetByID(ctx context.Context, id shared.TeamID) (*Team, error)

	// Save persists member and name changes on an existing team.
	Save(ctx context.Context, t *Team) error

	// RenameMember updates a member's username on the team and moves
	// dependent rows (progress records, to-learn topics) to the new name
	// atomically.
	RenameMember(ctx context.Context, id shared.TeamID, from, to shared.Username) error
}
