// Package progress contains the per-user progress log: one record per
// (team, user, problem) with a solve status, an optional first-solve
// timestamp, and free-text notes. The package also owns the streak
// calculator, the one piece of progress logic with date-sequence
// reasoning.
package progress

import (
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/google/uuid"
)

// Status is a user's relationship to a problem.
type Status string

const (
	StatusSolved   Status = "solved"
	StatusTodo     Status = "todo"
	StatusRevision Status = "revision"
	StatusSkipped  Status = "skipped"
	StatusNone     Status = "none"
)

// IsValid checks if the status is one of the five allowed values.
func (s Status) IsValid() bool {
	switch s {
	case StatusSolved, StatusTodo, StatusRevision, StatusSkipped, StatusNone:
		return true
	}
	return false
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", shared.ErrInvalidStatus
	}
	return st, nil
}

// Record is one progress entry. The (TeamID, Username, ProblemID) triple
// is unique: a user has at most one record per problem.
//
// SolvedAt is set on the first transition into StatusSolved and never
// cleared afterwards, even if the status later changes. The streak
// calculator reads it as "the day this problem was first solved".
type Record struct {
	ID        string
	TeamID    shared.TeamID
	Username  shared.Username
	ProblemID string
	Status    Status
	SolvedAt  *time.Time
	Notes     string
	UpdatedAt time.Time
}

// NewRecord creates a progress record for a problem the user had no
// record for yet.
func NewRecord(teamID shared.TeamID, username shared.Username, problemID string, status Status, now time.Time) (*Record, error) {
	if !status.IsValid() {
		return nil, shared.ErrInvalidStatus
	}
	r := &Record{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		Username:  username,
		ProblemID: problemID,
		Status:    status,
		UpdatedAt: now,
	}
	if status == StatusSolved {
		t := now
		r.SolvedAt = &t
	}
	return r, nil
}

// SetStatus transitions the record to a new status. The first transition
// into solved stamps SolvedAt.
func (r *Record) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return shared.ErrInvalidStatus
	}
	r.Status = status
	if status == StatusSolved && r.SolvedAt == nil {
		t := now
		r.SolvedAt = &t
	}
	r.UpdatedAt = now
	return nil
}

// SetNotes replaces the free-text notes.
func (r *Record) SetNotes(notes string, now time.Time) {
	r.Notes = notes
	r.UpdatedAt = now
}

// IsSolved reports whether the record currently has solved status.
func (r *Record) IsSolved() bool {
	return r.Status == StatusSolved
}
