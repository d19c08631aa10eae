package progress_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/progress"
	"github.com/KirkDiggler/rpg-narrative/internal/testutils"
)

func TestRedisStoresHash(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	repo, err := progress.NewRedis(&progress.RedisConfig{Client: client})
	require.NoError(t, err)

	_, err = repo.SaveProgress(context.Background(), progress.SaveProgressInput{PlayerID: "p1", LineID: 20, LocationID: 4})
	require.NoError(t, err)

	assert.Equal(t, "20", mr.HGet("progress:player:p1", "line_id"))
	assert.Equal(t, "4", mr.HGet("progress:player:p1", "location_id"))
}

func TestRedisCorruptMarker(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	mr.HSet("progress:player:p1", "line_id", "not-a-number")

	repo, err := progress.NewRedis(&progress.RedisConfig{Client: client})
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), progress.GetInput{PlayerID: "p1"})
	assert.True(t, errors.IsInternal(err))
}

func TestNewRedisRequiresClient(t *testing.T) {
	_, err := progress.NewRedis(&progress.RedisConfig{})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = progress.NewSQLite(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}
