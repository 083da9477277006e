package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RecordAndRecent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	first := &RunRecord{
		StartedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Family:    "break-inside",
		RefPath:   "ref-storyline.txt",
		CandPath:  "cand-storyline.txt",
		Verdict:   "exact-match",
		RefCount:  4,
		CandCount: 4,
	}
	require.NoError(t, store.Record(ctx, first))
	assert.NotZero(t, first.ID)

	second := &RunRecord{
		StartedAt: time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
		Family:    "yj-break",
		RefPath:   "ref-storyline.txt",
		CandPath:  "cand-storyline.txt",
		Verdict:   "mismatch",
		RefCount:  6,
		CandCount: 5,
		Missing:   1,
	}
	require.NoError(t, store.Record(ctx, second))

	runs, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "yj-break", runs[0].Family)
	assert.Equal(t, "mismatch", runs[0].Verdict)
	assert.Equal(t, 1, runs[0].Missing)
	assert.Equal(t, "break-inside", runs[1].Family)
	assert.Equal(t, 4, runs[1].RefCount)
}

func TestStore_RecentLimit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		rec := &RunRecord{StartedAt: time.Now().UTC(), Family: "margins", RefPath: "a", CandPath: "b", Verdict: "exact-match"}
		require.NoError(t, store.Record(ctx, rec))
	}

	runs, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestStore_ReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	rec := &RunRecord{StartedAt: time.Now().UTC(), Family: "margins", RefPath: "a", CandPath: "b", Verdict: "multiset-match"}
	require.NoError(t, store.Record(context.Background(), rec))
	require.NoError(t, store.Close())

	reopened, err := Open(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "multiset-match", runs[0].Verdict)
}
