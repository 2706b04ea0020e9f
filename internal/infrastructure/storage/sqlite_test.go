package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_OpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")
}

func TestStore_SaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 100} {
		_, err := store.SaveSession(Session{Score: score, Cleared: score / 10, Boxes: 3, Seed: 7, Duration: 1500 * time.Millisecond})
		require.NoError(t, err)
	}

	entries, err := store.TopScores(3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 200, entries[0].Score)
	assert.Equal(t, 100, entries[1].Score)
	assert.Equal(t, 100, entries[2].Score)
	assert.Less(t, entries[1].ID, entries[2].ID, "ties ordered by insertion")
	assert.Equal(t, 20, entries[0].Cleared)
	assert.Equal(t, 3, entries[0].Boxes)
	assert.Equal(t, int64(7), entries[0].Seed)
	assert.Equal(t, 1500*time.Millisecond, entries[0].Duration)
}

func TestStore_TopScoresDefaultLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		_, err := store.SaveSession(Session{Score: i})
		require.NoError(t, err)
	}

	entries, err := store.TopScores(0)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
	assert.Equal(t, 14, entries[0].Score)
}

func TestStore_HighScore(t *testing.T) {
	store := openTestStore(t)

	hs, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, hs, "empty table")

	_, err = store.SaveSession(Session{Score: 12})
	require.NoError(t, err)
	_, err = store.SaveSession(Session{Score: 30})
	require.NoError(t, err)

	hs, err = store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 30, hs)
}

func TestStore_Clear(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveSession(Session{Score: 5})
	require.NoError(t, err)
	require.NoError(t, store.Clear())

	entries, err := store.TopScores(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveSession(Session{Score: 9})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	hs, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 9, hs)
}
