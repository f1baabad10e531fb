package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// ProblemRepository implements problem.Repository for PostgreSQL.
type ProblemRepository struct {
	conn *Connection
}

// NewProblemRepository creates a new ProblemRepository.
func NewProblemRepository(conn *Connection) *ProblemRepository {
	return &ProblemRepository{conn: conn}
}

const problemColumns = `id, team_id, name, link, rating, platform, sheet, sort_order, created_by, created_at`

// ratingOrder sorts numeric ratings numerically and everything else
// lexically after them, so "800" comes before "1000" on the TLE sheet
// while USACO divisions keep a stable alphabetical order.
const ratingOrder = `(CASE WHEN rating ~ '^[0-9]+$' THEN rating::int END) NULLS LAST, rating`

// Create persists a new problem.
func (r *ProblemRepository) Create(ctx context.Context, p *problem.Problem) error {
	_, err := r.conn.Exec(ctx, `
		INSERT INTO problems (`+problemColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, p.ID, p.TeamID.String(), p.Name, p.Link, p.Rating.String(), string(p.Platform),
		p.Sheet.String(), p.Order, p.CreatedBy.String(), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create problem: %w", err)
	}
	return nil
}

// CreateBatch persists many problems in one transaction. Used to seed
// the fixed sheets when a team is created.
func (r *ProblemRepository) CreateBatch(ctx context.Context, problems []*problem.Problem) error {
	if len(problems) == 0 {
		return nil
	}
	return r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, p := range problems {
			batch.Queue(`
				INSERT INTO problems (`+problemColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			`, p.ID, p.TeamID.String(), p.Name, p.Link, p.Rating.String(), string(p.Platform),
				p.Sheet.String(), p.Order, p.CreatedBy.String(), p.CreatedAt)
		}
		results := tx.SendBatch(ctx, batch)
		defer results.Close()
		for range problems {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("failed to seed problem: %w", err)
			}
		}
		return nil
	})
}

// GetByID returns a problem scoped to a team.
func (r *ProblemRepository) GetByID(ctx context.Context, teamID shared.TeamID, id string) (*problem.Problem, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+problemColumns+` FROM problems WHERE team_id = $1 AND id = $2`,
		teamID.String(), id,
	)
	p, err := scanProblem(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrProblemNotFound
		}
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	return p, nil
}

// ListBySheet returns a sheet's problems sorted by rating then order.
func (r *ProblemRepository) ListBySheet(ctx context.Context, teamID shared.TeamID, sheet problem.SheetID, search string) ([]*problem.Problem, error) {
	query := `
		SELECT ` + problemColumns + `
		FROM problems
		WHERE team_id = $1 AND sheet = $2
	`
	args := []interface{}{teamID.String(), sheet.String()}
	if search != "" {
		query += ` AND name ILIKE '%' || $3 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY ` + ratingOrder + `, sort_order, created_at`

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet: %w", err)
	}
	return collectProblems(rows)
}

// ListGroup returns every problem in a (team, sheet, rating) group
// sorted ascending by order.
func (r *ProblemRepository) ListGroup(ctx context.Context, key problem.GroupKey) ([]*problem.Problem, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+problemColumns+`
		FROM problems
		WHERE team_id = $1 AND sheet = $2 AND rating = $3
		ORDER BY sort_order, created_at
	`, key.TeamID.String(), key.Sheet.String(), key.Rating.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list group: %w", err)
	}
	return collectProblems(rows)
}

// MaxOrder returns the highest order value in a group, or 0 when the
// group is empty.
func (r *ProblemRepository) MaxOrder(ctx context.Context, key problem.GroupKey) (int, error) {
	var max int
	err := r.conn.QueryRow(ctx, `
		SELECT COALESCE(MAX(sort_order), 0)
		FROM problems
		WHERE team_id = $1 AND sheet = $2 AND rating = $3
	`, key.TeamID.String(), key.Sheet.String(), key.Rating.String()).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max order: %w", err)
	}
	return max, nil
}

// SwapOrders persists both sides of a reorder move in one transaction.
func (r *ProblemRepository) SwapOrders(ctx context.Context, a, b *problem.Problem) error {
	return r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		for _, p := range []*problem.Problem{a, b} {
			tag, err := tx.Exec(ctx,
				`UPDATE problems SET sort_order = $1 WHERE team_id = $2 AND id = $3`,
				p.Order, p.TeamID.String(), p.ID,
			)
			if err != nil {
				return fmt.Errorf("failed to update order: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return shared.ErrProblemNotFound
			}
		}
		return nil
	})
}

// Search returns up to limit problems across all sheets whose name
// matches the query, case-insensitive.
func (r *ProblemRepository) Search(ctx context.Context, teamID shared.TeamID, query string, limit int) ([]*problem.Problem, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+problemColumns+`
		FROM problems
		WHERE team_id = $1 AND name ILIKE '%' || $2 || '%'
		ORDER BY name
		LIMIT $3
	`, teamID.String(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search problems: %w", err)
	}
	return collectProblems(rows)
}

// GetByIDs returns the subset of the given problems that still exist,
// keyed by ID.
func (r *ProblemRepository) GetByIDs(ctx context.Context, teamID shared.TeamID, ids []string) (map[string]*problem.Problem, error) {
	result := make(map[string]*problem.Problem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.conn.Query(ctx,
		`SELECT `+problemColumns+` FROM problems WHERE team_id = $1 AND id = ANY($2)`,
		teamID.String(), ids,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get problems: %w", err)
	}
	list, err := collectProblems(rows)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		result[p.ID] = p
	}
	return result, nil
}

// DeleteBySheet removes all problems belonging to a custom sheet.
func (r *ProblemRepository) DeleteBySheet(ctx context.Context, teamID shared.TeamID, sheet problem.SheetID) error {
	_, err := r.conn.Exec(ctx,
		`DELETE FROM problems WHERE team_id = $1 AND sheet = $2`,
		teamID.String(), sheet.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to delete sheet problems: %w", err)
	}
	return nil
}

func scanProblem(row pgx.Row) (*problem.Problem, error) {
	p := &problem.Problem{}
	var teamID, rating, platform, sheet, createdBy string
	err := row.Scan(&p.ID, &teamID, &p.Name, &p.Link, &rating, &platform, &sheet, &p.Order, &createdBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.TeamID = shared.TeamID(teamID)
	p.Rating = shared.Rating(rating)
	p.Platform = problem.Platform(platform)
	p.Sheet = problem.SheetID(sheet)
	p.CreatedBy = shared.Username(createdBy)
	return p, nil
}

func collectProblems(rows pgx.Rows) ([]*problem.Problem, error) {
	defer rows.Close()

	var list []*problem.Problem
	for rows.Next() {
		p, err := scanProblem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan problem: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate problems: %w", err)
	}
	return list, nil
}
