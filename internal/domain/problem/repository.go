package problem

import (
	"context"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// Repository defines the interface for problem catalog persistence.
// This interface is implemented by the infrastructure layer.
type Repository interface {
	// Create persists a new problem.
	Create(ctx context.Context, p *Problem) error

	// CreateBatch persists many problems at once. Used to seed the fixed
	// sheets when a team is created.
	CreateBatch(ctx context.Context, problems []*Problem) error

	// GetByID returns a problem scoped to a team.
	// Returns shared.ErrProblemNotFound if absent or owned by another team.
	GetByID(ctx context.Context, teamID shared.TeamID, id string) (*Problem, error)

	// ListBySheet returns a sheet's problems sorted by rating then order.
	// A non-empty search filters by case-insensitive name substring.
	ListBySheet(ctx context.Context, teamID shared.TeamID, sheet SheetID, search string) ([]*Problem, error)

	// ListGroup returns every problem in a (team, sheet, rating) group
	// sorted ascending by order.
	ListGroup(ctx context.Context, key GroupKey) ([]*Problem, error)

	// MaxOrder returns the highest order value in a group, or 0 when the
	// group is empty. New problems are appended at MaxOrder+1.
	MaxOrder(ctx context.Context, key GroupKey) (int, error)

	// SwapOrders persists the two sides of a reorder move in a single
	// transaction so a concurrent mover cannot observe half a swap.
	SwapOrders(ctx context.Context, a, b *Problem) error

	// Search returns up to limit problems across all sheets whose name
	// matches the query, case-insensitive.
	Search(ctx context.Context, teamID shared.TeamID, query string, limit int) ([]*Problem, error)

	// GetByIDs returns the subset of the given problems that still exist,
	// keyed by ID. Progress records may reference deleted problems; the
	// leaderboard skips those.
	GetByIDs(ctx context.Context, teamID shared.TeamID, ids []string) (map[string]*Problem, error)

	// DeleteBySheet removes all problems belonging to a custom sheet.
	DeleteBySheet(ctx context.Context, teamID shared.TeamID, sheet SheetID) error
}
