// Package team contains the team aggregate: a named group of members who
// share problem sheets, progress, contests, and a leaderboard. Problems
// and progress records are owned by a team; there is no cross-team
// visibility anywhere in the system.
package team

import (
	"fmt"
	"strings"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

// Member is a single user inside a team. PasswordHash holds the bcrypt
// hash of the member's password; the plaintext never reaches the domain.
type Member struct {
	Username     shared.Username
	PasswordHash string
	JoinedAt     time.Time
}

// Team is the aggregate root. Members are embedded because nothing ever
// addresses a member outside the context of their team.
type Team struct {
	ID        shared.TeamID
	Name      string
	Members   []Member
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a team with its founding member.
func New(id shared.TeamID, founder Member, now time.Time) (*Team, error) {
	if !id.IsValid() {
		return nil, shared.ErrInvalidTeamID
	}
	if !founder.Username.IsValid() {
		return nil, shared.ErrInvalidUsername
	}
	return &Team{
		ID:        id,
		Name:      fmt.Sprintf("Team %s", id),
		Members:   []Member{founder},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Member returns the member with the given username, or nil.
func (t *Team) Member(username shared.Username) *Member {
	for i := range t.Members {
		if t.Members[i].Username == username {
			return &t.Members[i]
		}
	}
	return nil
}

// HasMember reports whether the username is taken in this team.
func (t *Team) HasMember(username shared.Username) bool {
	return t.Member(username) != nil
}

// AddMember appends a new member. Usernames are unique within a team.
func (t *Team) AddMember(m Member) error {
	if !m.Username.IsValid() {
		return shared.ErrInvalidUsername
	}
	if t.HasMember(m.Username) {
		return shared.ErrUsernameTaken
	}
	t.Members = append(t.Members, m)
	return nil
}

// RenameMember changes a member's username, keeping uniqueness. The
// caller is responsible for moving dependent records (progress, topics)
// to the new name.
func (t *Team) RenameMember(from, to shared.Username) error {
	m := t.Member(from)
	if m == nil {
		return shared.ErrMemberNotFound
	}
	if from == to {
		return nil
	}
	if !to.IsValid() {
		return shared.ErrInvalidUsername
	}
	if t.HasMember(to) {
		return shared.ErrUsernameTaken
	}
	m.Username = to
	return nil
}

// SetPassword replaces a member's password hash.
func (t *Team) SetPassword(username shared.Username, hash string) error {
	m := t.Member(username)
	if m == nil {
		return shared.ErrMemberNotFound
	}
	m.PasswordHash = hash
	return nil
}

// Rename changes the team display name.
func (t *Team) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.ErrEmptyTeamName
	}
	t.Name = name
	return nil
}

// Usernames returns the member names in join order. Leaderboard tie
// breaking depends on this order being stable.
func (t *Team) Usernames() []shared.Username {
	names := make([]shared.Username, len(t.Members))
	for i, m := range t.Members {
		names[i] = m.Username
	}
	return names
}
