package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_SolvedStampsSolvedAt(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	r, err := NewRecord("team1", "alice", "p1", StatusSolved, now)
	require.NoError(t, err)
	require.NotNil(t, r.SolvedAt)
	assert.True(t, r.SolvedAt.Equal(now))
	assert.NotEmpty(t, r.ID)
}

func TestNewRecord_TodoLeavesSolvedAtNil(t *testing.T) {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	r, err := NewRecord("team1", "alice", "p1", StatusTodo, now)
	require.NoError(t, err)
	assert.Nil(t, r.SolvedAt)
}

func TestNewRecord_RejectsUnknownStatus(t *testing.T) {
	_, err := NewRecord("team1", "alice", "p1", Status("done"), time.Now())
	assert.Error(t, err)
}

func TestSetStatus_FirstSolveStampsOnce(t *testing.T) {
	t0 := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	r, err := NewRecord("team1", "alice", "p1", StatusTodo, t0)
	require.NoError(t, err)

	t1 := t0.Add(time.Hour)
	require.NoError(t, r.SetStatus(StatusSolved, t1))
	require.NotNil(t, r.SolvedAt)
	assert.True(t, r.SolvedAt.Equal(t1))

	// Later transitions never move or clear the first-solve timestamp.
	t2 := t1.Add(time.Hour)
	require.NoError(t, r.SetStatus(StatusRevision, t2))
	require.NotNil(t, r.SolvedAt)
	assert.True(t, r.SolvedAt.Equal(t1))
	assert.Equal(t, StatusRevision, r.Status)

	t3 := t2.Add(time.Hour)
	require.NoError(t, r.SetStatus(StatusSolved, t3))
	assert.True(t, r.SolvedAt.Equal(t1))
	assert.True(t, r.UpdatedAt.Equal(t3))
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	r, err := NewRecord("team1", "alice", "p1", StatusTodo, time.Now())
	require.NoError(t, err)

	assert.Error(t, r.SetStatus(Status("wip"), time.Now()))
	assert.Equal(t, StatusTodo, r.Status)
}

func TestSetNotes(t *testing.T) {
	t0 := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	r, err := NewRecord("team1", "alice", "p1", StatusTodo, t0)
	require.NoError(t, err)

	t1 := t0.Add(time.Minute)
	r.SetNotes("two pointers", t1)
	assert.Equal(t, "two pointers", r.Notes)
	assert.True(t, r.UpdatedAt.Equal(t1))
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"solved", "todo", "revision", "skipped", "none"} {
		st, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, Status(raw), st)
	}

	_, err := ParseStatus("Solved")
	assert.Error(t, err)
}
