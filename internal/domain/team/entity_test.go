package team

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/shared"
)

func newTestTeam(t *testing.T) *Team {
	t.Helper()
	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	tm, err := New("team-abc123", Member{Username: "alice", PasswordHash: "h1", JoinedAt: now}, now)
	require.NoError(t, err)
	return tm
}

func TestNew(t *testing.T) {
	tm := newTestTeam(t)

	assert.Equal(t, shared.TeamID("team-abc123"), tm.ID)
	assert.Equal(t, "Team team-abc123", tm.Name)
	require.Len(t, tm.Members, 1)
	assert.Equal(t, shared.Username("alice"), tm.Members[0].Username)
}

func TestNew_RejectsBadIDs(t *testing.T) {
	now := time.Now()
	founder := Member{Username: "alice"}

	for _, id := range []shared.TeamID{"", "ab", "has space", "way-too-long-to-be-a-team-identifier"} {
		_, err := New(id, founder, now)
		assert.ErrorIs(t, err, shared.ErrInvalidTeamID, "id %q", id)
	}
}

func TestAddMember_UniqueUsernames(t *testing.T) {
	tm := newTestTeam(t)

	require.NoError(t, tm.AddMember(Member{Username: "bob", PasswordHash: "h2"}))
	assert.Len(t, tm.Members, 2)

	err := tm.AddMember(Member{Username: "bob", PasswordHash: "h3"})
	assert.ErrorIs(t, err, shared.ErrUsernameTaken)
	assert.Len(t, tm.Members, 2)
}

func TestAddMember_RejectsInvalidUsername(t *testing.T) {
	tm := newTestTeam(t)
	err := tm.AddMember(Member{Username: "   "})
	assert.ErrorIs(t, err, shared.ErrInvalidUsername)
}

func TestRenameMember(t *testing.T) {
	tm := newTestTeam(t)
	require.NoError(t, tm.AddMember(Member{Username: "bob"}))

	require.NoError(t, tm.RenameMember("bob", "robert"))
	assert.True(t, tm.HasMember("robert"))
	assert.False(t, tm.HasMember("bob"))

	// The rename must not disturb other members.
	assert.True(t, tm.HasMember("alice"))
}

func TestRenameMember_SameNameIsNoop(t *testing.T) {
	tm := newTestTeam(t)
	require.NoError(t, tm.RenameMember("alice", "alice"))
	assert.True(t, tm.HasMember("alice"))
}

func TestRenameMember_Collision(t *testing.T) {
	tm := newTestTeam(t)
	require.NoError(t, tm.AddMember(Member{Username: "bob"}))

	err := tm.RenameMember("bob", "alice")
	assert.ErrorIs(t, err, shared.ErrUsernameTaken)
	assert.True(t, tm.HasMember("bob"))
}

func TestRenameMember_Missing(t *testing.T) {
	tm := newTestTeam(t)
	err := tm.RenameMember("ghost", "anything")
	assert.ErrorIs(t, err, shared.ErrMemberNotFound)
}

func TestSetPassword(t *testing.T) {
	tm := newTestTeam(t)

	require.NoError(t, tm.SetPassword("alice", "newhash"))
	assert.Equal(t, "newhash", tm.Member("alice").PasswordHash)

	assert.ErrorIs(t, tm.SetPassword("ghost", "x"), shared.ErrMemberNotFound)
}

func TestRename(t *testing.T) {
	tm := newTestTeam(t)

	require.NoError(t, tm.Rename("  The Graph Grinders  "))
	assert.Equal(t, "The Graph Grinders", tm.Name)

	assert.ErrorIs(t, tm.Rename("   "), shared.ErrEmptyTeamName)
}

func TestUsernames_JoinOrder(t *testing.T) {
	tm := newTestTeam(t)
	require.NoError(t, tm.AddMember(Member{Username: "zoe"}))
	require.NoError(t, tm.AddMember(Member{Username: "bob"}))

	assert.Equal(t, []shared.Username{"alice", "zoe", "bob"}, tm.Usernames())
}
