package progress

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/pkg/clock"
)

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite progress repository.
// The database must already carry the progress schema (see sqlite.Open).
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a SQLite-backed progress repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{db: cfg.DB, clock: c}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	p, err := r.get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Progress: p}, nil
}

func (r *sqliteRepository) SaveHeroName(ctx context.Context, input SaveHeroNameInput) (*SaveHeroNameOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO player_progress (player_id, hero_name, line_id, location_id, updated_at)
VALUES (?, ?, ?, 0, ?)
ON CONFLICT(player_id) DO UPDATE SET
    hero_name = excluded.hero_name,
    updated_at = excluded.updated_at`,
		input.PlayerID, input.HeroName, entities.StartLineID, r.clock.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save hero name for player %s", input.PlayerID)
	}

	p, err := r.get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &SaveHeroNameOutput{Progress: p}, nil
}

func (r *sqliteRepository) SaveProgress(ctx context.Context, input SaveProgressInput) (*SaveProgressOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO player_progress (player_id, hero_name, line_id, location_id, updated_at)
VALUES (?, '', ?, ?, ?)
ON CONFLICT(player_id) DO UPDATE SET
    line_id = excluded.line_id,
    location_id = excluded.location_id,
    updated_at = excluded.updated_at`,
		input.PlayerID, input.LineID, input.LocationID, r.clock.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save progress for player %s", input.PlayerID)
	}

	p, err := r.get(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &SaveProgressOutput{Progress: p}, nil
}

func (r *sqliteRepository) get(ctx context.Context, playerID string) (*entities.Progress, error) {
	p := &entities.Progress{PlayerID: playerID}
	var updatedAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT hero_name, line_id, location_id, updated_at FROM player_progress WHERE player_id = ?`, playerID,
	).Scan(&p.HeroName, &p.LineID, &p.LocationID, &updatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("no progress for player %s", playerID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get progress for player %s", playerID)
	}
	p.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return p, nil
}
