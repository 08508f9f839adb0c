package metrics

import (
	"encoding/csv"
	"ironclad/game"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("move", func(t *testing.T) {
		g := game.NewGame(32, game.WithSeed(1))
		c := NewCollector()
		c.Start(3, game.PlayerB, g.LegalMoves(game.PlayerB))
		c.SetFallback(true)

		metric := c.Complete(game.FireChecker{Target: game.V(6, 2)})
		require.Equal(t, 3, metric.Step)
		require.Equal(t, int(game.PlayerB), metric.Player)
		require.Equal(t, "fire (6,2)", metric.Move)
		require.Equal(t, "fire", metric.Kind)
		require.Equal(t, 53, metric.Candidates)
		require.True(t, metric.Stochastic)
		require.True(t, metric.Fallback)
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
	})

	t.Run("start clears the fallback flag", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, game.PlayerA, game.Candidates{})
		c.SetFallback(true)
		c.Start(2, game.PlayerB, game.Candidates{})

		require.False(t, c.Complete(game.PlaceStone{}).Fallback)
	})

	t.Run("pass", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, game.PlayerA, game.Candidates{})

		metric := c.Complete(nil)
		require.Equal(t, "pass", metric.Kind)
		require.Empty(t, metric.Move)
		require.Zero(t, metric.Candidates)
	})

	t.Run("dummy", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1, game.PlayerA, game.Candidates{})
		require.Equal(t, MoveMetric{}, c.Complete(game.PlaceStone{}))
	})
}

func TestKind(t *testing.T) {
	require.Equal(t, "move", Kind(game.MoveChecker{}))
	require.Equal(t, "fire", Kind(game.FireChecker{}))
	require.Equal(t, "place", Kind(game.PlaceStone{}))
	require.Equal(t, "slide", Kind(game.SlideStone{}))
	require.Equal(t, "pass", Kind(nil))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir, "smoke")
	require.NoError(t, err)

	_, err = uuid.Parse(w.RunID())
	require.NoError(t, err, "Runs should be identified by a UUID")
	require.Equal(t, filepath.Join(dir, "smoke", w.RunID()), w.Dir())

	configs := []AgentConfig{
		{ID: 1, Kind: "random"},
		{ID: 2, Kind: "greedy", Evaluate: "progress", Samples: 4, Temperature: 0.5},
	}
	require.NoError(t, w.WriteAgentConfigs(configs))

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	games := []GameRecord{{
		ID:     "g1",
		Agent1: 1,
		Agent2: 2,
		GameMetric: GameMetric{
			StartingPlayer: 1,
			Winner:         "PlayerB",
			Reason:         "connection",
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     41,
		},
	}}
	require.NoError(t, w.WriteGameRecords(games))

	moves := []MoveRecord{{
		Game:       "g1",
		MoveMetric: MoveMetric{Step: 1, Player: 1, Move: "place (4,0)", Kind: "place", Candidates: 53},
	}}
	require.NoError(t, w.WriteMoveRecords(moves))

	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Len(t, rows, 3, "Header plus one row per config")
	require.Equal(t, []string{"2", "greedy", "progress", "4", "0.5"}, rows[2])

	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"g1", "1", "2", "1", "PlayerB", "connection", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "41"}, rows[1])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"g1", "1", "1", "place (4,0)", "place", "53", "false", "false", "0s"}, rows[1])
}
