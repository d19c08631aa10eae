package progress_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/progress"
	"github.com/KirkDiggler/rpg-narrative/internal/testutils"
)

func TestRepairRedis(t *testing.T) {
	ctx := context.Background()
	client, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	mr.HSet("progress:player:good", "hero_name", "Иван Петров", "line_id", "12", "location_id", "2")
	mr.HSet("progress:player:bad-line", "hero_name", "Анна Смирнова", "line_id", "twelve", "location_id", "2")
	mr.HSet("progress:player:bad-time", "line_id", "3", "updated_at", "yesterday")
	require.NoError(t, mr.Set("progress:player:not-a-hash", "7"))
	require.NoError(t, mr.Set("unrelated", "x"))

	t.Run("dry run only reports", func(t *testing.T) {
		out, err := progress.RepairRedis(ctx, &progress.RepairInput{Client: client})
		require.NoError(t, err)

		assert.Equal(t, 4, out.Checked)
		assert.ElementsMatch(t, []string{"bad-line", "bad-time", "not-a-hash"}, out.Corrupt)
		assert.Empty(t, out.Repaired)
		assert.Equal(t, "twelve", mr.HGet("progress:player:bad-line", "line_id"))
	})

	t.Run("fix rewrites corrupt entries", func(t *testing.T) {
		out, err := progress.RepairRedis(ctx, &progress.RepairInput{Client: client, Fix: true})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"bad-line", "bad-time", "not-a-hash"}, out.Repaired)

		repo, err := progress.NewRedis(&progress.RedisConfig{Client: client})
		require.NoError(t, err)

		fixed, err := repo.Get(ctx, progress.GetInput{PlayerID: "bad-line"})
		require.NoError(t, err)
		assert.Equal(t, "Анна Смирнова", fixed.Progress.HeroName)
		assert.Equal(t, entities.StartLineID, fixed.Progress.LineID)
		assert.Equal(t, entities.StartLocationID, fixed.Progress.LocationID)

		_, err = repo.Get(ctx, progress.GetInput{PlayerID: "bad-time"})
		require.NoError(t, err)

		assert.False(t, mr.Exists("progress:player:not-a-hash"))

		good, err := repo.Get(ctx, progress.GetInput{PlayerID: "good"})
		require.NoError(t, err)
		assert.Equal(t, 12, good.Progress.LineID)
	})

	t.Run("second pass is clean", func(t *testing.T) {
		out, err := progress.RepairRedis(ctx, &progress.RepairInput{Client: client})
		require.NoError(t, err)
		assert.Equal(t, 3, out.Checked)
		assert.Empty(t, out.Corrupt)
	})
}

func TestRepairRedisRequiresClient(t *testing.T) {
	_, err := progress.RepairRedis(context.Background(), &progress.RepairInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
