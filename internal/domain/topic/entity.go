// Package topic contains per-user "to learn" topics: subjects a member
// plans to study, with a status and priority. Topics are private to one
// member of one team.
package topic

import (
	"context"
	"strings"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/google/uuid"
)

// Status tracks how far along a topic is.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusLearning   Status = "learning"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

// IsValid checks if the status is one of the four allowed values.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusLearning, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", shared.ErrInvalidTopicStatus
	}
	return st, nil
}

// Priority orders topics by urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is one of the three allowed values.
func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Topic is one study subject on a member's list.
type Topic struct {
	ID          string
	TeamID      shared.TeamID
	Username    shared.Username
	Name        string
	Description string
	Status      Status
	Priority    Priority
	Resources   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New creates a topic. Priority defaults to medium, status to
// not-started.
func New(teamID shared.TeamID, username shared.Username, name, description string, priority Priority, resources []string, now time.Time) (*Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrEmptyTopicName
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.IsValid() {
		return nil, shared.ErrInvalidTopicLevel
	}
	if resources == nil {
		resources = []string{}
	}
	return &Topic{
		ID:          uuid.NewString(),
		TeamID:      teamID,
		Username:    username,
		Name:        name,
		Description: strings.TrimSpace(description),
		Status:      StatusNotStarted,
		Priority:    priority,
		Resources:   resources,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetStatus transitions the topic.
func (t *Topic) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return shared.ErrInvalidTopicStatus
	}
	t.Status = status
	t.UpdatedAt = now
	return nil
}

// Update applies a partial edit. Nil pointers leave fields untouched.
func (t *Topic) Update(name, description *string, priority *Priority, resources []string, status *Status, now time.Time) error {
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return shared.ErrEmptyTopicName
		}
		t.Name = n
	}
	if description != nil {
		t.Description = strings.TrimSpace(*description)
	}
	if priority != nil {
		if !priority.IsValid() {
			return shared.ErrInvalidTopicLevel
		}
		t.Priority = *priority
	}
	if resources != nil {
		t.Resources = resources
	}
	if status != nil {
		if !status.IsValid() {
			return shared.ErrInvalidTopicStatus
		}
		t.Status = *status
	}
	t.UpdatedAt = now
	return nil
}

// Repository defines the interface for topic persistence.
type Repository interface {
	// Create persists a new topic.
	Create(ctx context.Context, t *Topic) error

	// GetByID returns a topic scoped to its owner.
	// Returns shared.ErrTopicNotFound if absent or owned by someone else.
	GetByID(ctx context.Context, teamID shared.TeamID, username shared.Username, id string) (*Topic, error)

	// ListByUser returns a member's topics, newest first.
	ListByUser(ctx context.Context, teamID shared.TeamID, username shared.Username) ([]*Topic, error)

	// Save persists edits to an existing topic.
	Save(ctx context.Context, t *Topic) error

	// Delete removes a topic scoped to its owner.
	// Returns shared.ErrTopicNotFound if absent.
	Delete(ctx context.Context, teamID shared.TeamID, username shared.Username, id string) error
}
