package progress

import (
	"context"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// Repository defines the interface for progress log persistence.
// This interface is implemented by the infrastructure layer.
type Repository interface {
	// Save persists a record, creating or updating by its unique
	// (team, user, problem) triple.
	Save(ctx context.Context, r *Record) error

	// Get returns the record for a (team, user, problem) triple.
	// Returns shared.ErrProgressNotFound if absent.
	Get(ctx context.Context, teamID shared.TeamID, username shared.Username, problemID string) (*Record, error)

	// ListByTeam returns all records for a team, most recently updated
	// first.
	ListByTeam(ctx context.Context, teamID shared.TeamID) ([]*Record, error)

	// ListByUser returns all records for one member.
	ListByUser(ctx context.Context, teamID shared.TeamID, username shared.Username) ([]*Record, error)

	// ListSolvedByUser returns a member's records with solved status.
	// Feeds both the leaderboard and the streak calculator.
	ListSolvedByUser(ctx context.Context, teamID shared.TeamID, username shared.Username) ([]*Record, error)
}
