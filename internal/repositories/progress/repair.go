package progress

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-narrative/internal/redis"
)

// RepairInput defines the input for scanning stored Redis progress
type RepairInput struct {
	Client redisclient.Client
	// Fix rewrites what the scan finds; otherwise it only reports
	Fix bool
}

// RepairOutput lists what a scan found
type RepairOutput struct {
	Checked int
	// Corrupt holds player IDs whose progress could not be decoded
	Corrupt []string
	// Repaired holds the subset of Corrupt that was rewritten
	Repaired []string
}

// RepairRedis finds progress hashes that no longer decode. With Fix set a
// corrupt marker restarts the story while the hero name is kept, and a key
// that is not a hash at all is deleted.
func RepairRedis(ctx context.Context, input *RepairInput) (*RepairOutput, error) {
	if input == nil || input.Client == nil {
		return nil, errors.InvalidArgument("client is required")
	}
	client := input.Client

	out := &RepairOutput{Corrupt: []string{}, Repaired: []string{}}
	iter := client.Scan(ctx, 0, progressKeyPrefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		key := iter.Val()
		playerID := strings.TrimPrefix(key, progressKeyPrefix)
		out.Checked++

		fields, readErr := client.HGetAll(ctx, key).Result()
		if readErr == nil {
			if _, err := decodeProgress(playerID, fields); err == nil {
				continue
			}
		}
		out.Corrupt = append(out.Corrupt, playerID)

		if !input.Fix {
			continue
		}

		var err error
		if readErr != nil {
			err = client.Del(ctx, key).Err()
		} else {
			pipe := client.TxPipeline()
			pipe.HDel(ctx, key, fieldUpdatedAt)
			pipe.HSet(ctx, key,
				fieldLineID, entities.StartLineID,
				fieldLocationID, entities.StartLocationID,
			)
			_, err = pipe.Exec(ctx)
		}
		if err != nil {
			return out, errors.Wrapf(err, "failed to repair progress for player %s", playerID)
		}
		out.Repaired = append(out.Repaired, playerID)
	}

	if err := iter.Err(); err != nil {
		return out, errors.Wrap(err, "failed to scan progress keys")
	}

	return out, nil
}
