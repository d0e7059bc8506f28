package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// scoreValues returns the scores in result order.
func scoreValues(entries []ScoreEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tetris/scores.db")
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, filepath.Join(home, ".tetris", "scores.db"))
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		_, err := store.SaveScore("tetris", score)
		require.NoError(t, err)
	}
	_, err := store.SaveScore("tetris_classic", 500)
	require.NoError(t, err)

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Sorted descending
	assert.Equal(t, []int{200, 100, 50}, scoreValues(scores))
	assert.False(t, scores[0].CreatedAt.IsZero(), "CreatedAt should be populated")

	classic, err := store.TopScores("tetris_classic", 10)
	require.NoError(t, err)
	assert.Len(t, classic, 1)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		_, err := store.SaveScore("tetris", (i+1)*100)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("tetris", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{500, 400, 300}, scoreValues(scores))
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	require.NoError(t, err)
	assert.Zero(t, high, "empty game")

	for _, score := range []int{100, 300, 200} {
		_, err := store.SaveScore("tetris", score)
		require.NoError(t, err)
	}

	high, err = store.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "tetris", Score: 400, Lines: 4, Level: 1, Pieces: 30, Duration: 95 * time.Second, Seed: 7},
		{GameID: "tetris", Score: 1200, Lines: 11, Level: 2, Pieces: 52, Duration: 3*time.Minute + 250*time.Millisecond, Seed: 8},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	recent, err := store.RecentRuns("tetris", 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	// Newest first
	got := recent[0]
	assert.Equal(t, 1200, got.Score)
	assert.Equal(t, 11, got.Lines)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 52, got.Pieces)
	assert.Equal(t, int64(8), got.Seed)
	assert.Equal(t, 3*time.Minute+250*time.Millisecond, got.Duration)

	// Runs feed the score table too
	high, err := store.HighScore("tetris")
	require.NoError(t, err)
	assert.Equal(t, 1200, high)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(Run{GameID: "tetris", Score: 100, Lines: 1, Level: 1})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{GameID: "tetris", Score: 300, Lines: 12, Level: 2})
	require.NoError(t, err)
	_, err = store.SaveScore("tetris", 200)
	require.NoError(t, err)

	stats, err := store.GetGameStats("tetris")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.GamesCount)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, int64(600), stats.TotalScore)
	assert.InDelta(t, 200.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(13), stats.TotalLines)
	assert.Equal(t, 2, stats.BestLevel)
	assert.False(t, stats.LastPlayed.IsZero(), "LastPlayed should be set")

	empty, err := store.GetGameStats("tetris_classic")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	all, err := store.GetAllGamesStats()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Contains(t, all, "tetris")
	assert.Equal(t, 300, all["tetris"].HighScore)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(Run{GameID: "tetris", Score: 100})
	require.NoError(t, err)
	_, err = store.SaveScore("tetris", 200)
	require.NoError(t, err)
	_, err = store.SaveScore("tetris_classic", 300)
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("tetris"))

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	runs, err := store.RecentRuns("tetris", 10)
	require.NoError(t, err)
	assert.Empty(t, runs)

	classic, err := store.TopScores("tetris_classic", 10)
	require.NoError(t, err)
	assert.Len(t, classic, 1, "clearing marathon leaves classic alone")
}
