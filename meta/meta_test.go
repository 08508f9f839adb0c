package meta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, 8, cfg.Width)
	require.Equal(t, 6, cfg.Height)
	require.Equal(t, 32, cfg.Stones)
	require.Zero(t, cfg.Seed, "No seed means entropy")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("IRONCLAD_WIDTH", "10")
	t.Setenv("IRONCLAD_HEIGHT", "8")
	t.Setenv("IRONCLAD_SEED", "42")
	t.Setenv("IRONCLAD_GAMES", "3")
	t.Setenv("IRONCLAD_WORKERS", "16")
	t.Setenv("IRONCLAD_LOG_LEVEL", "debug")
	t.Setenv("IRONCLAD_OUTPUT_DIR", "/tmp/runs")
	t.Setenv("IRONCLAD_EXPERIMENT", "throughput")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10, cfg.Width)
	require.Equal(t, 8, cfg.Height)
	require.Equal(t, uint64(42), cfg.Seed)
	require.Equal(t, 3, cfg.Games)
	require.Equal(t, 16, cfg.Workers)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/tmp/runs", cfg.OutputDir)
	require.Equal(t, "throughput", cfg.Experiment)
	require.Equal(t, MAX_TURNS, cfg.MaxTurns, "Unset variables keep their defaults")
}

func TestLoadErrors(t *testing.T) {
	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("IRONCLAD_WIDTH", "wide")
		_, err := Load()
		require.ErrorContains(t, err, "parse env:")
	})

	t.Run("board too small", func(t *testing.T) {
		t.Setenv("IRONCLAD_HEIGHT", "3")
		_, err := Load()
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("no games", func(t *testing.T) {
		t.Setenv("IRONCLAD_GAMES", "0")
		_, err := Load()
		require.ErrorIs(t, err, ErrConfig)
	})
}
