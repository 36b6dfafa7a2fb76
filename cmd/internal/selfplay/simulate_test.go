package selfplay

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/gomokuarm/ai"
	"github.com/nelhage/gomokuarm/gomoku"
	"github.com/nelhage/gomokuarm/results"
)

func testConfig() *Config {
	return &Config{
		Games:   2,
		Size:    9,
		Swap:    true,
		Threads: 2,
		Seed:    1,
		Opening: 2,
		P1:      ai.DefaultWeights,
		P2:      ai.DefaultWeights,
	}
}

func TestSimulate(t *testing.T) {
	st, err := Simulate(context.Background(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, 4, st.Count())
	require.Len(t, st.Games, 4)
	assert.Equal(t, st.Black+st.White, st.Players[0].Wins+st.Players[1].Wins)
	for i, g := range st.Games {
		assert.Equal(t, i, g.Index)
		over, winner := g.Final.GameOver()
		assert.True(t, over)
		assert.Equal(t, winner, g.Winner)
		assert.Equal(t, g.Final.Stones(), g.Moves)
	}
	assert.Equal(t, gomoku.Black, st.Games[0].P1Color)
	assert.Equal(t, gomoku.White, st.Games[1].P1Color)
}

func TestSimulateDeterministic(t *testing.T) {
	a, err := Simulate(context.Background(), testConfig())
	require.NoError(t, err)
	cfg := testConfig()
	cfg.Threads = 1
	b, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	for i := range a.Games {
		assert.Equal(t, a.Games[i].Winner, b.Games[i].Winner)
		assert.Equal(t, a.Games[i].Moves, b.Games[i].Moves)
	}
}

func TestRecord(t *testing.T) {
	cfg := testConfig()
	st, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "runs.db")
	require.NoError(t, record(path, cfg, &st))

	repo, err := results.Open(path)
	require.NoError(t, err)
	defer repo.Close()
	runs, err := repo.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 4, runs[0].Games)
	games, err := repo.Games(runs[0].ID)
	require.NoError(t, err)
	assert.Len(t, games, 4)
}
