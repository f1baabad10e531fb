package postgres

import (
	"context"
	"fmt"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/sheet"
)

// SheetRepository implements sheet.Repository for PostgreSQL.
type SheetRepository struct {
	conn *Connection
}

// NewSheetRepository creates a new SheetRepository.
func NewSheetRepository(conn *Connection) *SheetRepository {
	return &SheetRepository{conn: conn}
}

// Create persists a new custom sheet.
func (r *SheetRepository) Create(ctx context.Context, s *sheet.Sheet) error {
	_, err := r.conn.Exec(ctx, `
		INSERT INTO sheets (id, team_id, name, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID, s.TeamID.String(), s.Name, s.CreatedBy.String(), s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	return nil
}

// GetByID returns a sheet scoped to a team.
func (r *SheetRepository) GetByID(ctx context.Context, teamID shared.TeamID, id string) (*sheet.Sheet, error) {
	s := &sheet.Sheet{}
	var rawTeamID, createdBy string
	err := r.conn.QueryRow(ctx, `
		SELECT id, team_id, name, created_by, created_at
		FROM sheets
		WHERE team_id = $1 AND id = $2
	`, teamID.String(), id).Scan(&s.ID, &rawTeamID, &s.Name, &createdBy, &s.CreatedAt)
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}
	s.TeamID = shared.TeamID(rawTeamID)
	s.CreatedBy = shared.Username(createdBy)
	return s, nil
}

// ListByTeam returns a team's sheets oldest first.
func (r *SheetRepository) ListByTeam(ctx context.Context, teamID shared.TeamID) ([]*sheet.Sheet, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT id, team_id, name, created_by, created_at
		FROM sheets
		WHERE team_id = $1
		ORDER BY created_at, id
	`, teamID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}
	defer rows.Close()

	var list []*sheet.Sheet
	for rows.Next() {
		s := &sheet.Sheet{}
		var rawTeamID, createdBy string
		if err := rows.Scan(&s.ID, &rawTeamID, &s.Name, &createdBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sheet: %w", err)
		}
		s.TeamID = shared.TeamID(rawTeamID)
		s.CreatedBy = shared.Username(createdBy)
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sheets: %w", err)
	}
	return list, nil
}

// Save persists name changes.
func (r *SheetRepository) Save(ctx context.Context, s *sheet.Sheet) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE sheets SET name = $1 WHERE team_id = $2 AND id = $3`,
		s.Name, s.TeamID.String(), s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrSheetNotFound
	}
	return nil
}

// Delete removes a sheet.
func (r *SheetRepository) Delete(ctx context.Context, teamID shared.TeamID, id string) error {
	tag, err := r.conn.Exec(ctx,
		`DELETE FROM sheets WHERE team_id = $1 AND id = $2`,
		teamID.String(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrSheetNotFound
	}
	return nil
}
