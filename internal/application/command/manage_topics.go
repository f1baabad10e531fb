package command

import (
	"context"
	"fmt"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/topic"
)

// CreateTopicCommand adds a to-learn topic to a member's list.
type CreateTopicCommand struct {
	TeamID      shared.TeamID
	Username    shared.Username
	Name        string
	Description string
	Priority    string
	Resources   []string
}

// UpdateTopicCommand applies a partial edit to a topic. Nil pointers
// leave fields untouched.
type UpdateTopicCommand struct {
	TeamID      shared.TeamID
	Username    shared.Username
	TopicID     string
	Name        *string
	Description *string
	Priority    *string
	Resources   []string
	Status      *string
}

// SetTopicStatusCommand transitions a topic's status only.
type SetTopicStatusCommand struct {
	TeamID   shared.TeamID
	Username shared.Username
	TopicID  string
	Status   string
}

// DeleteTopicCommand removes a topic from a member's list.
type DeleteTopicCommand struct {
	TeamID   shared.TeamID
	Username shared.Username
	TopicID  string
}

// TopicHandler handles to-learn topic commands.
type TopicHandler struct {
	topics topic.Repository
	now    func() time.Time
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topics topic.Repository, now func() time.Time) *TopicHandler {
	if now == nil {
		now = time.Now
	}
	return &TopicHandler{topics: topics, now: now}
}

// Create persists a new topic.
func (h *TopicHandler) Create(ctx context.Context, cmd CreateTopicCommand) (*topic.Topic, error) {
	t, err := topic.New(cmd.TeamID, cmd.Username, cmd.Name, cmd.Description, topic.Priority(cmd.Priority), cmd.Resources, h.now())
	if err != nil {
		return nil, err
	}
	if err := h.topics.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create_topic: persisting topic: %w", err)
	}
	return t, nil
}

// Update applies a partial edit.
func (h *TopicHandler) Update(ctx context.Context, cmd UpdateTopicCommand) (*topic.Topic, error) {
	t, err := h.topics.GetByID(ctx, cmd.TeamID, cmd.Username, cmd.TopicID)
	if err != nil {
		return nil, err
	}

	var priority *topic.Priority
	if cmd.Priority != nil {
		p := topic.Priority(*cmd.Priority)
		priority = &p
	}
	var status *topic.Status
	if cmd.Status != nil {
		s := topic.Status(*cmd.Status)
		status = &s
	}
	if err := t.Update(cmd.Name, cmd.Description, priority, cmd.Resources, status, h.now()); err != nil {
		return nil, err
	}

	if err := h.topics.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("update_topic: persisting topic: %w", err)
	}
	return t, nil
}

// SetStatus transitions a topic.
func (h *TopicHandler) SetStatus(ctx context.Context, cmd SetTopicStatusCommand) (*topic.Topic, error) {
	status, err := topic.ParseStatus(cmd.Status)
	if err != nil {
		return nil, err
	}
	t, err := h.topics.GetByID(ctx, cmd.TeamID, cmd.Username, cmd.TopicID)
	if err != nil {
		return nil, err
	}
	if err := t.SetStatus(status, h.now()); err != nil {
		return nil, err
	}
	if err := h.topics.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("set_topic_status: persisting topic: %w", err)
	}
	return t, nil
}

// Delete removes a topic.
func (h *TopicHandler) Delete(ctx context.Context, cmd DeleteTopicCommand) error {
	return h.topics.Delete(ctx, cmd.TeamID, cmd.Username, cmd.TopicID)
}
