package command

import (
	"context"
	"fmt"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
	"github.com/Bitshifter-9/cp-tracker/internal/domain/team"
)

// UpdateProfileCommand changes a member's username and/or password.
// Empty fields are left as they are.
type UpdateProfileCommand struct {
	TeamID      shared.TeamID
	Username    shared.Username
	NewUsername string
	NewPassword string
}

// UpdateProfileHandler handles UpdateProfileCommand.
type UpdateProfileHandler struct {
	teams    team.Repository
	hasher   PasswordHasher
	sessions SessionIssuer
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(teams team.Repository, hasher PasswordHasher, sessions SessionIssuer) *UpdateProfileHandler {
	return &UpdateProfileHandler{teams: teams, hasher: hasher, sessions: sessions}
}

// Handle applies the changes and issues a fresh session under the final
// username, since a rename invalidates the identity baked into the old
// token.
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*AccessResult, error) {
	t, err := h.teams.GetByID(ctx, cmd.TeamID)
	if err != nil {
		return nil, err
	}
	if t.Member(cmd.Username) == nil {
		return nil, shared.ErrMemberNotFound
	}

	finalName := cmd.Username
	if cmd.NewUsername != "" && shared.Username(cmd.NewUsername) != cmd.Username {
		newName, err := shared.NewUsername(cmd.NewUsername)
		if err != nil {
			return nil, err
		}
		if t.HasMember(newName) {
			return nil, shared.ErrUsernameTaken
		}
		// The repository renames the member and moves progress and topic
		// rows in one transaction.
		if err := h.teams.RenameMember(ctx, t.ID, cmd.Username, newName); err != nil {
			return nil, fmt.Errorf("update_profile: renaming member: %w", err)
		}
		finalName = newName
	}

	if cmd.NewPassword != "" {
		hash, err := h.hasher.Hash(cmd.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("update_profile: hashing password: %w", err)
		}
		// Reload in case the rename above changed the member set.
		t, err = h.teams.GetByID(ctx, cmd.TeamID)
		if err != nil {
			return nil, err
		}
		if err := t.SetPassword(finalName, hash); err != nil {
			return nil, err
		}
		if err := h.teams.Save(ctx, t); err != nil {
			return nil, fmt.Errorf("update_profile: persisting password: %w", err)
		}
	}

	token, err := h.sessions.Issue(ctx, cmd.TeamID, finalName)
	if err != nil {
		return nil, fmt.Errorf("update_profile: issuing session: %w", err)
	}
	return &AccessResult{Token: token, TeamID: cmd.TeamID, Username: finalName}, nil
}

// RenameTeamCommand changes the team display name.
type RenameTeamCommand struct {
	TeamID shared.TeamID
	Name   string
}

// RenameTeamHandler handles RenameTeamCommand.
type RenameTeamHandler struct {
	teams team.Repository
}

// NewRenameTeamHandler creates a new RenameTeamHandler.
func NewRenameTeamHandler(teams team.Repository) *RenameTeamHandler {
	return &RenameTeamHandler{teams: teams}
}

// Handle renames the team.
func (h *RenameTeamHandler) Handle(ctx context.Context, cmd RenameTeamCommand) (*team.Team, error) {
	t, err := h.teams.GetByID(ctx, cmd.TeamID)
	if err != nil {
		return nil, err
	}
	if err := t.Rename(cmd.Name); err != nil {
		return nil, err
	}
	if err := h.teams.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("rename_team: persisting team: %w", err)
	}
	return t, nil
}
