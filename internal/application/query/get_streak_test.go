package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitshifter-9/cp-tracker/internal/domain/progress"
)

func TestGetStreak(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC)
	progresses := newFakeProgressRepo(
		solvedRecord("alice", "p1", now.AddDate(0, 0, -2)),
		solvedRecord("alice", "p2", now.AddDate(0, 0, -1)),
		solvedRecord("alice", "p3", now),
	)
	h := NewGetStreakHandler(progresses, func() time.Time { return now }, time.UTC)

	res, err := h.Handle(context.Background(), GetStreakQuery{TeamID: testTeamID, Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Streak)
}

func TestGetStreak_UnknownUserScoresZero(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC)
	h := NewGetStreakHandler(newFakeProgressRepo(), func() time.Time { return now }, time.UTC)

	res, err := h.Handle(context.Background(), GetStreakQuery{TeamID: testTeamID, Username: "ghost"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Streak)
}

func TestGetStreak_DemotedSolveDropsOff(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC)
	demoted := solvedRecord("alice", "p1", now)
	demoted.Status = progress.StatusRevision
	progresses := newFakeProgressRepo(
		demoted,
		solvedRecord("alice", "p2", now.AddDate(0, 0, -1)),
	)
	h := NewGetStreakHandler(progresses, func() time.Time { return now }, time.UTC)

	res, err := h.Handle(context.Background(), GetStreakQuery{TeamID: testTeamID, Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak)
}

func TestGetStreak_ScopedToUser(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC)
	progresses := newFakeProgressRepo(
		solvedRecord("alice", "p1", now),
		solvedRecord("bob", "p2", now.AddDate(0, 0, -1)),
		solvedRecord("bob", "p3", now),
	)
	h := NewGetStreakHandler(progresses, func() time.Time { return now }, time.UTC)

	alice, err := h.Handle(context.Background(), GetStreakQuery{TeamID: testTeamID, Username: "alice"})
	require.NoError(t, err)
	bob, err := h.Handle(context.Background(), GetStreakQuery{TeamID: testTeamID, Username: "bob"})
	require.NoError(t, err)

	assert.Equal(t, 1, alice.Streak)
	assert.Equal(t, 2, bob.Streak)
}
