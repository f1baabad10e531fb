package query

import (
	"context"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/team"
)

// MemberDTO is the transport shape of a team member.
type MemberDTO struct {
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joinedAt"`
}

// TeamDTO is the transport shape of a team.
type TeamDTO struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Members   []MemberDTO `json:"members"`
	CreatedAt time.Time   `json:"createdAt"`
}

// GetTeamQuery asks for team info including the member roster.
type GetTeamQuery struct {
	TeamID shared.TeamID
}

// GetTeamHandler handles the team info query.
type GetTeamHandler struct {
	teams team.Repository
}

// NewGetTeamHandler creates a new GetTeamHandler.
func NewGetTeamHandler(teams team.Repository) *GetTeamHandler {
	return &GetTeamHandler{teams: teams}
}

// Handle loads the team and maps it for transport. Members keep their
// join order.
func (h *GetTeamHandler) Handle(ctx context.Context, q GetTeamQuery) (*TeamDTO, error) {
	t, err := h.teams.GetByID(ctx, q.TeamID)
	if err != nil {
		return nil, err
	}

	dto := &TeamDTO{
		ID:        t.ID.String(),
		Name:      t.Name,
		Members:   make([]MemberDTO, len(t.Members)),
		CreatedAt: t.CreatedAt,
	}
	for i, m := range t.Members {
		dto.Members[i] = MemberDTO{
			Username: m.Username.String(),
			JoinedAt: m.JoinedAt,
		}
	}
	return dto, nil
}
