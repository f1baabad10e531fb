// Package contest contains upcoming contests a team wants to attend
// together. Plain calendar entries, no scoring attached.
package contest

import (
	"context"
	"strings"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/google/uuid"
)

// Platform tags where the contest is hosted.
type Platform string

const (
	PlatformCodeforces Platform = "Codeforces"
	PlatformLeetCode   Platform = "LeetCode"
	PlatformCodeChef   Platform = "CodeChef"
	PlatformOther      Platform = "Other"
)

// IsValid checks if the platform is a known one.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformCodeforces, PlatformLeetCode, PlatformCodeChef, PlatformOther:
		return true
	}
	return false
}

// Contest is one planned contest.
type Contest struct {
	ID        string
	TeamID    shared.TeamID
	Name      string
	Platform  Platform
	Date      time.Time
	Link      string
	CreatedBy shared.Username
	CreatedAt time.Time
}

// New creates a contest entry. Platform defaults to Codeforces.
func New(teamID shared.TeamID, name string, platform Platform, date time.Time, link string, createdBy shared.Username, now time.Time) (*Contest, error) {
	name = strings.TrimSpace(name)
	if name == "" || date.IsZero() {
		return nil, shared.ErrContestRequired
	}
	if platform == "" {
		platform = PlatformCodeforces
	}
	if !platform.IsValid() {
		platform = PlatformOther
	}
	return &Contest{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		Name:      name,
		Platform:  platform,
		Date:      date,
		Link:      link,
		CreatedBy: createdBy,
		CreatedAt: now,
	}, nil
}

// Repository defines the interface for contest persistence.
type Repository interface {
	// Create persists a new contest.
	Create(ctx context.Context, c *Contest) error

	// ListByTeam returns a team's contests in date order.
	ListByTeam(ctx context.Context, teamID shared.TeamID) ([]*Contest, error)

	// Delete removes a contest scoped to a team.
	// Returns shared.ErrContestNotFound if absent.
	Delete(ctx context.Context, teamID shared.TeamID, id string) error
}
