package experiments

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"hex/experiments/metrics"
	"hex/game"

	"github.com/stretchr/testify/require"
)

func TestRoundRobin(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 1}, {ID: 2}, {ID: 3}}

	matchUps := RoundRobin(configs)

	require.Equal(t, [][]metrics.AgentConfig{
		{{ID: 1}, {ID: 2}},
		{{ID: 1}, {ID: 3}},
		{{ID: 2}, {ID: 3}},
	}, matchUps)
	require.Empty(t, RoundRobin(configs[:1]))
}

func TestNewAgent(t *testing.T) {
	_, err := NewAgent(metrics.AgentConfig{ID: 4, Depth: 2, Backend: "quantum"}, 1)
	require.Error(t, err)

	random, err := NewAgent(metrics.AgentConfig{Depth: 0}, 1)
	require.NoError(t, err)
	_, metric := random.FindMove(game.NewGameState(3, false))
	require.Equal(t, metrics.SourceRandom, metric.Source, "Depth zero should give the random baseline")
}

func TestTournamentRun(t *testing.T) {
	t.Run("plays every game and writes records", func(t *testing.T) {
		dir := t.TempDir()
		tournament := Tournament{BoardSize: 4, Swap: true, NumGames: 3, Goroutines: 2, OutputDir: dir}
		configs := []metrics.AgentConfig{
			{ID: 0, Depth: 0, Seed: 1},
			{ID: 1, Depth: 1, Backend: "bfs", Seed: 2},
			{ID: 2, Depth: 2, Backend: "unionfind", Seed: 3},
		}

		result, err := tournament.Run(context.Background(), "test", RoundRobin(configs))

		require.NoError(t, err)
		require.Len(t, result.Games, 9, "Three matchups of three games")
		wins := 0
		for _, w := range result.Wins {
			wins += w
		}
		require.Equal(t, 9, wins, "Every game should have a winner")
		require.NotEmpty(t, result.Moves)
		require.Equal(t, filepath.Join(dir, "test", result.RunID), result.Dir)

		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			f, err := os.Open(filepath.Join(result.Dir, name))
			require.NoError(t, err, "%s should be written", name)
			rows, err := csv.NewReader(f).ReadAll()
			f.Close()
			require.NoError(t, err)
			require.Greater(t, len(rows), 1, "%s should have a header and rows", name)
		}

		raw, err := os.ReadFile(filepath.Join(result.Dir, "setup.json"))
		require.NoError(t, err)
		var setup metrics.Setup
		require.NoError(t, json.Unmarshal(raw, &setup))
		require.Equal(t, result.RunID, setup.RunID)
		require.Equal(t, 4, setup.BoardSize)
		require.Len(t, setup.Matchups, 3)
	})

	t.Run("no output dir", func(t *testing.T) {
		tournament := Tournament{BoardSize: 3, NumGames: 2, Goroutines: 1}
		result, err := tournament.Run(context.Background(), "test", [][]metrics.AgentConfig{
			{{ID: 0, Depth: 0, Seed: 1}, {ID: 1, Depth: 0, Seed: 2}},
		})

		require.NoError(t, err)
		require.Empty(t, result.Dir)
		require.Len(t, result.Games, 2)
		require.Equal(t, 0, result.Games[0].AgentA)
		require.Equal(t, 1, result.Games[1].AgentA, "Second game should swap the starting config")
	})

	t.Run("invalid matchup", func(t *testing.T) {
		tournament := Tournament{BoardSize: 3, NumGames: 1}
		_, err := tournament.Run(context.Background(), "test", [][]metrics.AgentConfig{{{ID: 0}}})
		require.ErrorIs(t, err, ErrInvalidMatchup)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		tournament := Tournament{BoardSize: 3, NumGames: 2, Goroutines: 1}
		_, err := tournament.Run(ctx, "test", [][]metrics.AgentConfig{{{ID: 0}, {ID: 1}}})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunThroughputExperiment(t *testing.T) {
	tournament := Tournament{BoardSize: 4, Swap: false, NumGames: 1, Goroutines: 2}

	throughputs, err := tournament.RunThroughputExperiment(context.Background(), 2, 5)

	require.NoError(t, err)
	require.Len(t, throughputs, 2)
	require.Equal(t, "bfs", throughputs[0].Backend)
	require.Equal(t, "unionfind", throughputs[1].Backend)
	require.Equal(t, throughputs[0].Nodes, throughputs[1].Nodes, "Both backends should play identical games")
	require.Positive(t, throughputs[0].Searched)
}
