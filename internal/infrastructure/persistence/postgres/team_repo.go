package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/team"
)

// TeamRepository implements team.Repository for PostgreSQL.
type TeamRepository struct {
	conn *Connection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(conn *Connection) *TeamRepository {
	return &TeamRepository{conn: conn}
}

// Create persists a new team with its founding member.
func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	return r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO teams (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
			t.ID.String(), t.Name, t.CreatedAt, t.UpdatedAt,
		)
		if err != nil {
			if IsUniqueViolation(err) {
				return shared.ErrAlreadyExists
			}
			return fmt.Errorf("failed to create team: %w", err)
		}

		for _, m := range t.Members {
			_, err := tx.Exec(ctx,
				`INSERT INTO members (team_id, username, password_hash, joined_at) VALUES ($1, $2, $3, $4)`,
				t.ID.String(), m.Username.String(), m.PasswordHash, m.JoinedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to create member: %w", err)
			}
		}
		return nil
	})
}

// GetByID returns a team with all members in join order.
func (r *TeamRepository) GetByID(ctx context.Context, id shared.TeamID) (*team.Team, error) {
	t := &team.Team{}
	var rawID string
	err := r.conn.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM teams WHERE id = $1`,
		id.String(),
	).Scan(&rawID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	t.ID = shared.TeamID(rawID)

	rows, err := r.conn.Query(ctx,
		`SELECT username, password_hash, joined_at FROM members WHERE team_id = $1 ORDER BY joined_at, username`,
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m team.Member
		var username string
		if err := rows.Scan(&username, &m.PasswordHash, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.Username = shared.Username(username)
		t.Members = append(t.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return t, nil
}

// Save persists member additions, password changes and the team name.
// Member rows are upserted; a rename goes through RenameMember instead,
// so Save never has to delete rows.
func (r *TeamRepository) Save(ctx context.Context, t *team.Team) error {
	return r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE teams SET name = $1, updated_at = $2 WHERE id = $3`,
			t.Name, t.UpdatedAt, t.ID.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return shared.ErrTeamNotFound
		}

		for _, m := range t.Members {
			_, err := tx.Exec(ctx, `
				INSERT INTO members (team_id, username, password_hash, joined_at)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (team_id, username)
				DO UPDATE SET password_hash = EXCLUDED.password_hash
			`, t.ID.String(), m.Username.String(), m.PasswordHash, m.JoinedAt)
			if err != nil {
				return fmt.Errorf("failed to upsert member: %w", err)
			}
		}
		return nil
	})
}

// RenameMember updates a member's username and moves their progress
// records and topics to the new name in one transaction.
func (r *TeamRepository) RenameMember(ctx context.Context, id shared.TeamID, from, to shared.Username) error {
	return r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE members SET username = $1 WHERE team_id = $2 AND username = $3`,
			to.String(), id.String(), from.String(),
		)
		if err != nil {
			if IsUniqueViolation(err) {
				return shared.ErrUsernameTaken
			}
			return fmt.Errorf("failed to rename member: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return shared.ErrMemberNotFound
		}

		_, err = tx.Exec(ctx,
			`UPDATE progress SET username = $1 WHERE team_id = $2 AND username = $3`,
			to.String(), id.String(), from.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to move progress records: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE topics SET username = $1 WHERE team_id = $2 AND username = $3`,
			to.String(), id.String(), from.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to move topics: %w", err)
		}
		return nil
	})
}
