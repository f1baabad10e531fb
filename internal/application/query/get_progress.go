package query

import (
	"context"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// ProgressDTO is the transport shape of a progress record.
type ProgressDTO struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	ProblemID string     `json:"problemId"`
	Status    string     `json:"status"`
	SolvedAt  *time.Time `json:"solvedAt,omitempty"`
	Notes     string     `json:"notes"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ToProgressDTO converts a record for transport.
func ToProgressDTO(r *progress.Record) ProgressDTO {
	return ProgressDTO{
		ID:        r.ID,
		Username:  r.Username.String(),
		ProblemID: r.ProblemID,
		Status:    string(r.Status),
		SolvedAt:  r.SolvedAt,
		Notes:     r.Notes,
		UpdatedAt: r.UpdatedAt,
	}
}

// GetTeamProgressQuery asks for every record in the team, most recently
// updated first.
type GetTeamProgressQuery struct {
	TeamID shared.TeamID
}

// GetUserProgressQuery asks for one member's records.
type GetUserProgressQuery struct {
	TeamID   shared.TeamID
	Username shared.Username
}

// ProgressResult wraps a list of records.
type ProgressResult struct {
	Progress []ProgressDTO `json:"progress"`
}

// ProgressHandler handles progress read queries.
type ProgressHandler struct {
	progresses progress.Repository
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progresses progress.Repository) *ProgressHandler {
	return &ProgressHandler{progresses: progresses}
}

// Team returns the whole team's progress log.
func (h *ProgressHandler) Team(ctx context.Context, q GetTeamProgressQuery) (*ProgressResult, error) {
	records, err := h.progresses.ListByTeam(ctx, q.TeamID)
	if err != nil {
		return nil, err
	}
	return wrapProgress(records), nil
}

// User returns one member's progress log.
func (h *ProgressHandler) User(ctx context.Context, q GetUserProgressQuery) (*ProgressResult, error) {
	records, err := h.progresses.ListByUser(ctx, q.TeamID, q.Username)
	if err != nil {
		return nil, err
	}
	return wrapProgress(records), nil
}

func wrapProgress(records []*progress.Record) *ProgressResult {
	result := &ProgressResult{Progress: make([]ProgressDTO, len(records))}
	for i, r := range records {
		result.Progress[i] = ToProgressDTO(r)
	}
	return result
}
