package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/topic"
)

// TopicRepository implements topic.Repository for PostgreSQL.
type TopicRepository struct {
	conn *Connection
}

// NewTopicRepository creates a new TopicRepository.
func NewTopicRepository(conn *Connection) *TopicRepository {
	return &TopicRepository{conn: conn}
}

const topicColumns = `id, team_id, username, name, description, status, priority, resources, created_at, updated_at`

// Create persists a new topic.
func (r *TopicRepository) Create(ctx context.Context, t *topic.Topic) error {
	_, err := r.conn.Exec(ctx, `
		INSERT INTO topics (`+topicColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, t.ID, t.TeamID.String(), t.Username.String(), t.Name, t.Description,
		string(t.Status), string(t.Priority), t.Resources, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}

// GetByID returns a topic scoped to its owner.
func (r *TopicRepository) GetByID(ctx context.Context, teamID shared.TeamID, username shared.Username, id string) (*topic.Topic, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT `+topicColumns+`
		FROM topics
		WHERE team_id = $1 AND username = $2 AND id = $3
	`, teamID.String(), username.String(), id)

	t, err := scanTopic(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return t, nil
}

// ListByUser returns a member's topics, newest first.
func (r *TopicRepository) ListByUser(ctx context.Context, teamID shared.TeamID, username shared.Username) ([]*topic.Topic, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+topicColumns+`
		FROM topics
		WHERE team_id = $1 AND username = $2
		ORDER BY created_at DESC, id
	`, teamID.String(), username.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	var list []*topic.Topic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate topics: %w", err)
	}
	return list, nil
}

// Save persists edits to an existing topic.
func (r *TopicRepository) Save(ctx context.Context, t *topic.Topic) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE topics SET
			name = $1,
			description = $2,
			status = $3,
			priority = $4,
			resources = $5,
			updated_at = $6
		WHERE team_id = $7 AND username = $8 AND id = $9
	`, t.Name, t.Description, string(t.Status), string(t.Priority), t.Resources,
		t.UpdatedAt, t.TeamID.String(), t.Username.String(), t.ID)
	if err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrTopicNotFound
	}
	return nil
}

// Delete removes a topic scoped to its owner.
func (r *TopicRepository) Delete(ctx context.Context, teamID shared.TeamID, username shared.Username, id string) error {
	tag, err := r.conn.Exec(ctx,
		`DELETE FROM topics WHERE team_id = $1 AND username = $2 AND id = $3`,
		teamID.String(), username.String(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrTopicNotFound
	}
	return nil
}

func scanTopic(row pgx.Row) (*topic.Topic, error) {
	t := &topic.Topic{}
	var teamID, username, status, priority string
	err := row.Scan(&t.ID, &teamID, &username, &t.Name, &t.Description, &status, &priority, &t.Resources, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.TeamID = shared.TeamID(teamID)
	t.Username = shared.Username(username)
	t.Status = topic.Status(status)
	t.Priority = topic.Priority(priority)
	return t, nil
}
