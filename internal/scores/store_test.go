package scores

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RecordAndRecent(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(Run{
		StartedAt: base,
		Duration:  90 * time.Second,
		Outcome:   OutcomeCaught,
		Level:     1,
		Steps:     120,
	}))
	require.NoError(t, store.Record(Run{
		StartedAt: base.Add(time.Hour),
		Duration:  75 * time.Second,
		Outcome:   OutcomeEscaped,
		Level:     2,
		Steps:     200,
	}))

	runs, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, OutcomeEscaped, runs[0].Outcome)
	assert.Equal(t, OutcomeCaught, runs[1].Outcome)

	assert.NotEmpty(t, runs[0].ID, "an ID must be assigned on record")
	assert.Equal(t, 75*time.Second, runs[0].Duration)
	assert.Equal(t, 2, runs[0].Level)
	assert.Equal(t, 200, runs[0].Steps)
	assert.True(t, runs[0].StartedAt.Equal(base.Add(time.Hour)))
}

func TestStore_RecentLimit(t *testing.T) {
	store := newTestStore(t)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(Run{
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			Duration:  time.Minute,
			Outcome:   OutcomeCaught,
		}))
	}

	runs, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestStore_BestEscape(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.BestEscape()
	require.NoError(t, err)
	assert.False(t, ok, "empty store has no best escape")

	base := time.Now().UTC()
	require.NoError(t, store.Record(Run{
		ID: "slow", StartedAt: base, Duration: 2 * time.Minute, Outcome: OutcomeEscaped,
	}))
	require.NoError(t, store.Record(Run{
		ID: "caught", StartedAt: base, Duration: time.Second, Outcome: OutcomeCaught,
	}))
	require.NoError(t, store.Record(Run{
		ID: "fast", StartedAt: base, Duration: time.Minute, Outcome: OutcomeEscaped,
	}))

	best, ok, err := store.BestEscape()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "fast", best.ID)
	assert.Equal(t, time.Minute, best.Duration)
}

func TestStore_InvalidOutcome(t *testing.T) {
	store := newTestStore(t)
	err := store.Record(Run{StartedAt: time.Now(), Outcome: "won"})
	assert.Error(t, err)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Record(Run{
		StartedAt: time.Now().UTC(), Duration: time.Minute, Outcome: OutcomeCaught,
	}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
