package progress

import (
	"context"
	"strconv"
	"time"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-narrative/internal/redis"
)

const (
	progressKeyPrefix = "progress:player:"

	fieldHeroName   = "hero_name"
	fieldLineID     = "line_id"
	fieldLocationID = "location_id"
	fieldUpdatedAt  = "updated_at"
)

// Progress is stored as a hash so name and marker updates never overwrite
// each other.
type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis progress repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed progress repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	fields, err := r.client.HGetAll(ctx, progressKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get progress for player %s", input.PlayerID)
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("no progress for player %s", input.PlayerID)
	}

	p, err := decodeProgress(input.PlayerID, fields)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Progress: p}, nil
}

func (r *redisRepository) SaveHeroName(ctx context.Context, input SaveHeroNameInput) (*SaveHeroNameOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	key := progressKeyPrefix + input.PlayerID
	now := r.clock.Now()

	pipe := r.client.TxPipeline()
	pipe.HSetNX(ctx, key, fieldLineID, entities.StartLineID)
	pipe.HSetNX(ctx, key, fieldLocationID, 0)
	pipe.HSet(ctx, key, fieldHeroName, input.HeroName, fieldUpdatedAt, now.UnixMilli())
	all := pipe.HGetAll(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save hero name for player %s", input.PlayerID)
	}

	p, err := decodeProgress(input.PlayerID, all.Val())
	if err != nil {
		return nil, err
	}
	return &SaveHeroNameOutput{Progress: p}, nil
}

func (r *redisRepository) SaveProgress(ctx context.Context, input SaveProgressInput) (*SaveProgressOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	key := progressKeyPrefix + input.PlayerID
	now := r.clock.Now()

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldLineID, input.LineID,
		fieldLocationID, input.LocationID,
		fieldUpdatedAt, now.UnixMilli(),
	)
	all := pipe.HGetAll(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save progress for player %s", input.PlayerID)
	}

	p, err := decodeProgress(input.PlayerID, all.Val())
	if err != nil {
		return nil, err
	}
	return &SaveProgressOutput{Progress: p}, nil
}

func decodeProgress(playerID string, fields map[string]string) (*entities.Progress, error) {
	p := &entities.Progress{
		PlayerID: playerID,
		HeroName: fields[fieldHeroName],
		LineID:   entities.StartLineID,
	}

	ints := []struct {
		field string
		dst   *int
	}{
		{fieldLineID, &p.LineID},
		{fieldLocationID, &p.LocationID},
	}
	for _, f := range ints {
		raw, ok := fields[f.field]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Internalf("corrupt %s %q for player %s", f.field, raw, playerID)
		}
		*f.dst = v
	}

	if raw, ok := fields[fieldUpdatedAt]; ok {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.Internalf("corrupt %s %q for player %s", fieldUpdatedAt, raw, playerID)
		}
		p.UpdatedAt = time.UnixMilli(ms).UTC()
	}

	return p, nil
}
