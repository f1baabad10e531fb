package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// ProgressRepository implements progress.Repository for PostgreSQL.
type ProgressRepository struct {
	conn *Connection
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(conn *Connection) *ProgressRepository {
	return &ProgressRepository{conn: conn}
}

const progressColumns = `id, team_id, username, problem_id, status, solved_at, notes, updated_at`

// Save upserts a record by its (team, user, problem) triple.
func (r *ProgressRepository) Save(ctx context.Context, rec *progress.Record) error {
	_, err := r.conn.Exec(ctx, `
		INSERT INTO progress (`+progressColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (team_id, username, problem_id)
		DO UPDATE SET
			status = EXCLUDED.status,
			solved_at = EXCLUDED.solved_at,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
	`, rec.ID, rec.TeamID.String(), rec.Username.String(), rec.ProblemID,
		string(rec.Status), rec.SolvedAt, rec.Notes, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Get returns the record for a (team, user, problem) triple.
func (r *ProgressRepository) Get(ctx context.Context, teamID shared.TeamID, username shared.Username, problemID string) (*progress.Record, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT `+progressColumns+`
		FROM progress
		WHERE team_id = $1 AND username = $2 AND problem_id = $3
	`, teamID.String(), username.String(), problemID)

	rec, err := scanRecord(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrProgressNotFound
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return rec, nil
}

// ListByTeam returns all records for a team, most recently updated first.
func (r *ProgressRepository) ListByTeam(ctx context.Context, teamID shared.TeamID) ([]*progress.Record, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+progressColumns+`
		FROM progress
		WHERE team_id = $1
		ORDER BY updated_at DESC
	`, teamID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list team progress: %w", err)
	}
	return collectRecords(rows)
}

// ListByUser returns all records for one member.
func (r *ProgressRepository) ListByUser(ctx context.Context, teamID shared.TeamID, username shared.Username) ([]*progress.Record, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+progressColumns+`
		FROM progress
		WHERE team_id = $1 AND username = $2
		ORDER BY updated_at DESC
	`, teamID.String(), username.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list user progress: %w", err)
	}
	return collectRecords(rows)
}

// ListSolvedByUser returns a member's solved records.
func (r *ProgressRepository) ListSolvedByUser(ctx context.Context, teamID shared.TeamID, username shared.Username) ([]*progress.Record, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+progressColumns+`
		FROM progress
		WHERE team_id = $1 AND username = $2 AND status = 'solved'
	`, teamID.String(), username.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list solved progress: %w", err)
	}
	return collectRecords(rows)
}

func scanRecord(row pgx.Row) (*progress.Record, error) {
	rec := &progress.Record{}
	var teamID, username, status string
	err := row.Scan(&rec.ID, &teamID, &username, &rec.ProblemID, &status, &rec.SolvedAt, &rec.Notes, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.TeamID = shared.TeamID(teamID)
	rec.Username = shared.Username(username)
	rec.Status = progress.Status(status)
	return rec, nil
}

func collectRecords(rows pgx.Rows) ([]*progress.Record, error) {
	defer rows.Close()

	var list []*progress.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate progress: %w", err)
	}
	return list, nil
}
