package postgres

import (
	"context"
	"fmt"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/contest"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// ContestRepository implements contest.Repository for PostgreSQL.
type ContestRepository struct {
	conn *Connection
}

// NewContestRepository creates a new ContestRepository.
func NewContestRepository(conn *Connection) *ContestRepository {
	return &ContestRepository{conn: conn}
}

// Create persists a new contest.
func (r *ContestRepository) Create(ctx context.Context, c *contest.Contest) error {
	_, err := r.conn.Exec(ctx, `
		INSERT INTO contests (id, team_id, name, platform, date, link, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.ID, c.TeamID.String(), c.Name, string(c.Platform), c.Date, c.Link,
		c.CreatedBy.String(), c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contest: %w", err)
	}
	return nil
}

// ListByTeam returns a team's contests in date order.
func (r *ContestRepository) ListByTeam(ctx context.Context, teamID shared.TeamID) ([]*contest.Contest, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT id, team_id, name, platform, date, link, created_by, created_at
		FROM contests
		WHERE team_id = $1
		ORDER BY date, id
	`, teamID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list contests: %w", err)
	}
	defer rows.Close()

	var list []*contest.Contest
	for rows.Next() {
		c := &contest.Contest{}
		var rawTeamID, platform, createdBy string
		if err := rows.Scan(&c.ID, &rawTeamID, &c.Name, &platform, &c.Date, &c.Link, &createdBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contest: %w", err)
		}
		c.TeamID = shared.TeamID(rawTeamID)
		c.Platform = contest.Platform(platform)
		c.CreatedBy = shared.Username(createdBy)
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contests: %w", err)
	}
	return list, nil
}

// Delete removes a contest scoped to a team.
func (r *ContestRepository) Delete(ctx context.Context, teamID shared.TeamID, id string) error {
	tag, err := r.conn.Exec(ctx,
		`DELETE FROM contests WHERE team_id = $1 AND id = $2`,
		teamID.String(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete contest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrContestNotFound
	}
	return nil
}
