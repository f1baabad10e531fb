// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/problem"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/team"
)

// PasswordHasher hashes and verifies member passwords. Implemented with
// bcrypt in the infrastructure layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// SessionIssuer hands out opaque session tokens for an authenticated
// (team, user) pair. Implemented by the Redis session store.
type SessionIssuer interface {
	Issue(ctx context.Context, teamID shared.TeamID, username shared.Username) (string, error)
}

// NewTeamID generates a short URL-safe team identifier, in the shape
// members share with each other to join.
func NewTeamID() shared.TeamID {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("team id entropy unavailable: %v", err))
	}
	return shared.TeamID(base64.RawURLEncoding.EncodeToString(b)[:10])
}

// CreateTeamCommand creates a team with its founding member and seeds
// the fixed sheets.
type CreateTeamCommand struct {
	Username string
	Password string
}

// Validate validates the command.
func (c CreateTeamCommand) Validate() error {
	if c.Username == "" || c.Password == "" {
		return shared.NewDomainError("team", "Create", shared.ErrEmptyValue, "username and password required")
	}
	return nil
}

// AccessResult is returned by every command that ends with the caller
// logged in.
type AccessResult struct {
	Token    string
	TeamID   shared.TeamID
	Username shared.Username
}

// CreateTeamHandler handles CreateTeamCommand.
type CreateTeamHandler struct {
	teams    team.Repository
	problems problem.Repository
	hasher   PasswordHasher
	sessions SessionIssuer
	now      func() time.Time
}

// NewCreateTeamHandler creates a new CreateTeamHandler.
func NewCreateTeamHandler(teams team.Repository, problems problem.Repository, hasher PasswordHasher, sessions SessionIssuer, now func() time.Time) *CreateTeamHandler {
	if now == nil {
		now = time.Now
	}
	return &CreateTeamHandler{teams: teams, problems: problems, hasher: hasher, sessions: sessions, now: now}
}

// Handle creates the team, seeds its starter catalog, and logs the
// founder in.
func (h *CreateTeamHandler) Handle(ctx context.Context, cmd CreateTeamCommand) (*AccessResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	username, err := shared.NewUsername(cmd.Username)
	if err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("create_team: hashing password: %w", err)
	}

	now := h.now()
	t, err := team.New(NewTeamID(), team.Member{
		Username:     username,
		PasswordHash: hash,
		JoinedAt:     now,
	}, now)
	if err != nil {
		return nil, err
	}

	if err := h.teams.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create_team: persisting team: %w", err)
	}
	if err := h.problems.CreateBatch(ctx, problem.SeedForTeam(t.ID, now)); err != nil {
		return nil, fmt.Errorf("create_team: seeding problems: %w", err)
	}

	token, err := h.sessions.Issue(ctx, t.ID, username)
	if err != nil {
		return nil, fmt.Errorf("create_team: issuing session: %w", err)
	}
	return &AccessResult{Token: token, TeamID: t.ID, Username: username}, nil
}

// JoinTeamCommand adds a new member to an existing team.
type JoinTeamCommand struct {
	TeamID   string
	Username string
	Password string
}

// Validate validates the command.
func (c JoinTeamCommand) Validate() error {
	if c.TeamID == "" || c.Username == "" || c.Password == "" {
		return shared.NewDomainError("team", "Join", shared.ErrEmptyValue, "team ID, username, and password required")
	}
	return nil
}

// JoinTeamHandler handles JoinTeamCommand.
type JoinTeamHandler struct {
	teams    team.Repository
	hasher   PasswordHasher
	sessions SessionIssuer
	now      func() time.Time
}

// NewJoinTeamHandler creates a new JoinTeamHandler.
func NewJoinTeamHandler(teams team.Repository, hasher PasswordHasher, sessions SessionIssuer, now func() time.Time) *JoinTeamHandler {
	if now == nil {
		now = time.Now
	}
	return &JoinTeamHandler{teams: teams, hasher: hasher, sessions: sessions, now: now}
}

// Handle adds the member and logs them in.
func (h *JoinTeamHandler) Handle(ctx context.Context, cmd JoinTeamCommand) (*AccessResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	teamID, err := shared.NewTeamID(cmd.TeamID)
	if err != nil {
		return nil, err
	}
	username, err := shared.NewUsername(cmd.Username)
	if err != nil {
		return nil, err
	}

	t, err := h.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("join_team: hashing password: %w", err)
	}
	if err := t.AddMember(team.Member{
		Username:     username,
		PasswordHash: hash,
		JoinedAt:     h.now(),
	}); err != nil {
		return nil, err
	}
	if err := h.teams.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("join_team: persisting team: %w", err)
	}

	token, err := h.sessions.Issue(ctx, t.ID, username)
	if err != nil {
		return nil, fmt.Errorf("join_team: issuing session: %w", err)
	}
	return &AccessResult{Token: token, TeamID: t.ID, Username: username}, nil
}

// LoginCommand authenticates an existing member.
type LoginCommand struct {
	TeamID   string
	Username string
	Password string
}

// Validate validates the command.
func (c LoginCommand) Validate() error {
	if c.TeamID == "" || c.Username == "" || c.Password == "" {
		return shared.NewDomainError("team", "Login", shared.ErrEmptyValue, "team ID, username, and password required")
	}
	return nil
}

// LoginHandler handles LoginCommand.
type LoginHandler struct {
	teams    team.Repository
	hasher   PasswordHasher
	sessions SessionIssuer
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(teams team.Repository, hasher PasswordHasher, sessions SessionIssuer) *LoginHandler {
	return &LoginHandler{teams: teams, hasher: hasher, sessions: sessions}
}

// Handle verifies credentials and issues a session. Unknown member and
// wrong password are indistinguishable to the caller.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*AccessResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	teamID, err := shared.NewTeamID(cmd.TeamID)
	if err != nil {
		return nil, err
	}

	t, err := h.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	m := t.Member(shared.Username(cmd.Username))
	if m == nil {
		return nil, shared.ErrInvalidCredential
	}
	if err := h.hasher.Compare(m.PasswordHash, cmd.Password); err != nil {
		return nil, shared.ErrInvalidCredential
	}

	token, err := h.sessions.Issue(ctx, t.ID, m.Username)
	if err != nil {
		return nil, fmt.Errorf("login: issuing session: %w", err)
	}
	return &AccessResult{Token: token, TeamID: t.ID, Username: m.Username}, nil
}
