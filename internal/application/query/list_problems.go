package query

import (
	"context"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// searchLimit caps cross-sheet search results.
const searchLimit = 20

// ProblemDTO is the transport shape of a catalog entry.
type ProblemDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Rating    string    `json:"rating"`
	Platform  string    `json:"platform"`
	Sheet     string    `json:"sheet"`
	Order     int       `json:"order"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToProblemDTO(p *problem.Problem) ProblemDTO {
	return ProblemDTO{
		ID:        p.ID,
		Name:      p.Name,
		Link:      p.Link,
		Rating:    p.Rating.String(),
		Platform:  string(p.Platform),
		Sheet:     p.Sheet.String(),
		Order:     p.Order,
		CreatedBy: p.CreatedBy.String(),
		CreatedAt: p.CreatedAt,
	}
}

// ListProblemsQuery asks for one sheet's problems, optionally filtered
// by a name substring.
type ListProblemsQuery struct {
	TeamID shared.TeamID
	Sheet  string
	Search string
}

// ListProblemsResult holds the sheet's problems sorted by rating then
// order.
type ListProblemsResult struct {
	Problems []ProblemDTO `json:"problems"`
}

// SearchProblemsQuery searches across all sheets.
type SearchProblemsQuery struct {
	TeamID shared.TeamID
	Query  string
}

// ProblemsHandler handles catalog read queries.
type ProblemsHandler struct {
	problems problem.Repository
}

// NewProblemsHandler creates a new ProblemsHandler.
func NewProblemsHandler(problems problem.Repository) *ProblemsHandler {
	return &ProblemsHandler{problems: problems}
}

// List returns one sheet's problems.
func (h *ProblemsHandler) List(ctx context.Context, q ListProblemsQuery) (*ListProblemsResult, error) {
	items, err := h.problems.ListBySheet(ctx, q.TeamID, problem.SheetID(q.Sheet), q.Search)
	if err != nil {
		return nil, err
	}
	result := &ListProblemsResult{Problems: make([]ProblemDTO, len(items))}
	for i, p := range items {
		result.Problems[i] = ToProblemDTO(p)
	}
	return result, nil
}

// Search returns up to searchLimit matches across all sheets. An empty
// query matches nothing rather than everything.
func (h *ProblemsHandler) Search(ctx context.Context, q SearchProblemsQuery) (*ListProblemsResult, error) {
	if q.Query == "" {
		return &ListProblemsResult{Problems: []ProblemDTO{}}, nil
	}
	items, err := h.problems.Search(ctx, q.TeamID, q.Query, searchLimit)
	if err != nil {
		return nil, err
	}
	result := &ListProblemsResult{Problems: make([]ProblemDTO, len(items))}
	for i, p := range items {
		result.Problems[i] = ToProblemDTO(p)
	}
	return result, nil
}
