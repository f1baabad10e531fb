package query

import (
	"context"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/contest"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/sheet"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/topic"
)

// SheetDTO is the transport shape of a custom sheet.
type SheetDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContestDTO is the transport shape of a planned contest.
type ContestDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Platform  string    `json:"platform"`
	Date      time.Time `json:"date"`
	Link      string    `json:"link,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// TopicDTO is the transport shape of a to-learn topic.
type TopicDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Resources   []string  `json:"resources"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToTopicDTO converts a topic for transport.
func ToTopicDTO(t *topic.Topic) TopicDTO {
	return TopicDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Resources:   t.Resources,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ListSheetsQuery asks for a team's custom sheets.
type ListSheetsQuery struct {
	TeamID shared.TeamID
}

// ListContestsQuery asks for a team's planned contests.
type ListContestsQuery struct {
	TeamID shared.TeamID
}

// ListTopicsQuery asks for one member's to-learn topics.
type ListTopicsQuery struct {
	TeamID   shared.TeamID
	Username shared.Username
}

// CollectionsHandler serves the small list queries that need no
// aggregation: sheets, contests and topics.
type CollectionsHandler struct {
	sheets   sheet.Repository
	contests contest.Repository
	topics   topic.Repository
}

// NewCollectionsHandler creates a new CollectionsHandler.
func NewCollectionsHandler(sheets sheet.Repository, contests contest.Repository, topics topic.Repository) *CollectionsHandler {
	return &CollectionsHandler{sheets: sheets, contests: contests, topics: topics}
}

// Sheets returns a team's custom sheets, oldest first.
func (h *CollectionsHandler) Sheets(ctx context.Context, q ListSheetsQuery) ([]SheetDTO, error) {
	list, err := h.sheets.ListByTeam(ctx, q.TeamID)
	if err != nil {
		return nil, err
	}
	out := make([]SheetDTO, len(list))
	for i, s := range list {
		out[i] = SheetDTO{
			ID:        s.ID,
			Name:      s.Name,
			CreatedBy: s.CreatedBy.String(),
			CreatedAt: s.CreatedAt,
		}
	}
	return out, nil
}

// Contests returns a team's contests in date order.
func (h *CollectionsHandler) Contests(ctx context.Context, q ListContestsQuery) ([]ContestDTO, error) {
	list, err := h.contests.ListByTeam(ctx, q.TeamID)
	if err != nil {
		return nil, err
	}
	out := make([]ContestDTO, len(list))
	for i, c := range list {
		out[i] = ContestDTO{
			ID:        c.ID,
			Name:      c.Name,
			Platform:  string(c.Platform),
			Date:      c.Date,
			Link:      c.Link,
			CreatedBy: c.CreatedBy.String(),
			CreatedAt: c.CreatedAt,
		}
	}
	return out, nil
}

// Topics returns a member's topics, newest first.
func (h *CollectionsHandler) Topics(ctx context.Context, q ListTopicsQuery) ([]TopicDTO, error) {
	list, err := h.topics.ListByUser(ctx, q.TeamID, q.Username)
	if err != nil {
		return nil, err
	}
	out := make([]TopicDTO, len(list))
	for i, t := range list {
		out[i] = ToTopicDTO(t)
	}
	return out, nil
}
