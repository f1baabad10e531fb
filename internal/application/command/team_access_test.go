package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func TestNewTeamID(t *testing.T) {
	seen := make(map[shared.TeamID]bool)
	for i := 0; i < 50; i++ {
		id := NewTeamID()
		assert.True(t, id.IsValid(), "generated ID %q", id)
		assert.Len(t, string(id), 10)
		assert.False(t, seen[id], "duplicate ID %q", id)
		seen[id] = true
	}
}

func TestCreateTeam(t *testing.T) {
	teams := newFakeTeamRepo()
	problems := newFakeProblemRepo()
	sessions := &fakeSessionIssuer{}
	h := NewCreateTeamHandler(teams, problems, fakeHasher{}, sessions, fixedNow)

	res, err := h.Handle(context.Background(), CreateTeamCommand{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, shared.Username("alice"), res.Username)

	created, err := teams.GetByID(context.Background(), res.TeamID)
	require.NoError(t, err)
	require.Len(t, created.Members, 1)
	assert.Equal(t, "hashed:s3cret", created.Members[0].PasswordHash)

	// The starter catalog is seeded for the new team.
	assert.NotEmpty(t, problems.problems)
	for _, p := range problems.problems {
		assert.Equal(t, res.TeamID, p.TeamID)
	}
}

func TestCreateTeam_Validation(t *testing.T) {
	h := NewCreateTeamHandler(newFakeTeamRepo(), newFakeProblemRepo(), fakeHasher{}, &fakeSessionIssuer{}, fixedNow)

	_, err := h.Handle(context.Background(), CreateTeamCommand{Username: "alice"})
	assert.ErrorIs(t, err, shared.ErrEmptyValue)

	_, err = h.Handle(context.Background(), CreateTeamCommand{Password: "pw"})
	assert.ErrorIs(t, err, shared.ErrEmptyValue)
}

func TestJoinTeam(t *testing.T) {
	teams := newFakeTeamRepo()
	problems := newFakeProblemRepo()
	sessions := &fakeSessionIssuer{}
	create := NewCreateTeamHandler(teams, problems, fakeHasher{}, sessions, fixedNow)
	join := NewJoinTeamHandler(teams, fakeHasher{}, sessions, fixedNow)

	founder, err := create.Handle(context.Background(), CreateTeamCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	res, err := join.Handle(context.Background(), JoinTeamCommand{
		TeamID:   founder.TeamID.String(),
		Username: "bob",
		Password: "pw2",
	})
	require.NoError(t, err)
	assert.Equal(t, founder.TeamID, res.TeamID)
	assert.NotEmpty(t, res.Token)

	tm, err := teams.GetByID(context.Background(), founder.TeamID)
	require.NoError(t, err)
	assert.Len(t, tm.Members, 2)
}

func TestJoinTeam_DuplicateUsername(t *testing.T) {
	teams := newFakeTeamRepo()
	sessions := &fakeSessionIssuer{}
	create := NewCreateTeamHandler(teams, newFakeProblemRepo(), fakeHasher{}, sessions, fixedNow)
	join := NewJoinTeamHandler(teams, fakeHasher{}, sessions, fixedNow)

	founder, err := create.Handle(context.Background(), CreateTeamCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = join.Handle(context.Background(), JoinTeamCommand{
		TeamID:   founder.TeamID.String(),
		Username: "alice",
		Password: "other",
	})
	assert.ErrorIs(t, err, shared.ErrUsernameTaken)
}

func TestJoinTeam_UnknownTeam(t *testing.T) {
	join := NewJoinTeamHandler(newFakeTeamRepo(), fakeHasher{}, &fakeSessionIssuer{}, fixedNow)

	_, err := join.Handle(context.Background(), JoinTeamCommand{
		TeamID:   "nosuchteam",
		Username: "bob",
		Password: "pw",
	})
	assert.ErrorIs(t, err, shared.ErrTeamNotFound)
}

func TestLogin(t *testing.T) {
	teams := newFakeTeamRepo()
	sessions := &fakeSessionIssuer{}
	create := NewCreateTeamHandler(teams, newFakeProblemRepo(), fakeHasher{}, sessions, fixedNow)
	login := NewLoginHandler(teams, fakeHasher{}, sessions)

	founder, err := create.Handle(context.Background(), CreateTeamCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	res, err := login.Handle(context.Background(), LoginCommand{
		TeamID:   founder.TeamID.String(),
		Username: "alice",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, founder.TeamID, res.TeamID)
	assert.NotEmpty(t, res.Token)
	assert.NotEqual(t, founder.Token, res.Token)
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	teams := newFakeTeamRepo()
	sessions := &fakeSessionIssuer{}
	create := NewCreateTeamHandler(teams, newFakeProblemRepo(), fakeHasher{}, sessions, fixedNow)
	login := NewLoginHandler(teams, fakeHasher{}, sessions)

	founder, err := create.Handle(context.Background(), CreateTeamCommand{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, wrongPassword := login.Handle(context.Background(), LoginCommand{
		TeamID:   founder.TeamID.String(),
		Username: "alice",
		Password: "nope",
	})
	_, unknownMember := login.Handle(context.Background(), LoginCommand{
		TeamID:   founder.TeamID.String(),
		Username: "mallory",
		Password: "pw",
	})

	assert.ErrorIs(t, wrongPassword, shared.ErrInvalidCredential)
	assert.ErrorIs(t, unknownMember, shared.ErrInvalidCredential)
}
