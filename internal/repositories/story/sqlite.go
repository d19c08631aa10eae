package story

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/KirkDiggler/rpg-narrative/internal/content"
	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

type sqliteRepository struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for the SQLite story repository.
// The database must already carry the story schema (see sqlite.Open).
type SQLiteConfig struct {
	DB *sql.DB
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

// NewSQLite creates a story repository reading from SQLite tables
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) GetLocation(ctx context.Context, input GetLocationInput) (*GetLocationOutput, error) {
	loc := &entities.Location{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM locations WHERE id = ?`, input.LocationID,
	).Scan(&loc.ID, &loc.Name, &loc.Description)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("location %d not found", input.LocationID).
			WithMeta("location_id", input.LocationID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get location %d", input.LocationID)
	}
	return &GetLocationOutput{Location: loc}, nil
}

func (r *sqliteRepository) ListDirections(ctx context.Context, input ListDirectionsInput) (*ListDirectionsOutput, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT direction FROM connections WHERE location_id = ? ORDER BY position, rowid`, input.LocationID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list directions for location %d", input.LocationID)
	}
	defer func() { _ = rows.Close() }()

	directions := []string{}
	for rows.Next() {
		var direction string
		if err := rows.Scan(&direction); err != nil {
			return nil, errors.Wrap(err, "failed to scan direction")
		}
		directions = append(directions, direction)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate directions")
	}

	return &ListDirectionsOutput{Directions: directions}, nil
}

func (r *sqliteRepository) GetStoryLine(ctx context.Context, input GetStoryLineInput) (*GetStoryLineOutput, error) {
	line := &entities.DialogueLine{}
	err := r.db.QueryRowContext(ctx, `
SELECT id, location_id, text, option_a_text, option_a_next, option_b_text, option_b_next
FROM line_script WHERE id = ?`, input.LineID).Scan(
		&line.ID, &line.LocationID, &line.Text,
		&line.OptionA.Text, &line.OptionA.NextLineID,
		&line.OptionB.Text, &line.OptionB.NextLineID,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return &GetStoryLineOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get line %d", input.LineID)
	}
	return &GetStoryLineOutput{Line: line}, nil
}

func (r *sqliteRepository) GetHealthEvent(ctx context.Context, input GetHealthEventInput) (*GetHealthEventOutput, error) {
	event := &entities.HealthEvent{}
	err := r.db.QueryRowContext(ctx,
		`SELECT line_id, health, experience, enemy_health FROM health_experience WHERE line_id = ?`, input.LineID,
	).Scan(&event.LineID, &event.Health, &event.Experience, &event.EnemyHealth)
	if stderrors.Is(err, sql.ErrNoRows) {
		return &GetHealthEventOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get health event for line %d", input.LineID)
	}
	return &GetHealthEventOutput{Event: event}, nil
}

func (r *sqliteRepository) GetNextLocation(ctx context.Context, input GetNextLocationInput) (*GetNextLocationOutput, error) {
	var target int
	err := r.db.QueryRowContext(ctx,
		`SELECT target_location_id FROM connections WHERE location_id = ? AND direction = ?`,
		input.LocationID, input.Direction,
	).Scan(&target)
	if stderrors.Is(err, sql.ErrNoRows) {
		return &GetNextLocationOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve direction %q from location %d", input.Direction, input.LocationID)
	}
	return &GetNextLocationOutput{LocationID: target, Found: true}, nil
}

func (r *sqliteRepository) GetLineRange(ctx context.Context, input GetLineRangeInput) (*GetLineRangeOutput, error) {
	var lo, hi sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT MIN(id), MAX(id) FROM line_script WHERE location_id = ?`, input.LocationID,
	).Scan(&lo, &hi)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get line range for location %d", input.LocationID)
	}
	if !lo.Valid || !hi.Valid {
		return &GetLineRangeOutput{}, nil
	}
	return &GetLineRangeOutput{Min: int(lo.Int64), Max: int(hi.Int64), Found: true}, nil
}

// Import replaces the stored story with s inside a single transaction
func Import(ctx context.Context, db *sql.DB, s *content.Story) error {
	if db == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	if s == nil {
		return errors.InvalidArgument("story cannot be nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin import")
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"health_experience", "line_script", "connections", "locations"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return errors.Wrapf(err, "failed to clear %s", table)
		}
	}

	for _, loc := range s.Locations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO locations (id, name, description) VALUES (?, ?, ?)`,
			loc.ID, loc.Name, loc.Description,
		); err != nil {
			return errors.Wrapf(err, "failed to insert location %d", loc.ID)
		}
	}

	for i, conn := range s.Connections {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO connections (location_id, position, direction, target_location_id) VALUES (?, ?, ?, ?)`,
			conn.LocationID, i, conn.Direction, conn.TargetLocationID,
		); err != nil {
			return errors.Wrapf(err, "failed to insert direction %q of location %d", conn.Direction, conn.LocationID)
		}
	}

	for _, line := range s.Lines {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO line_script (id, location_id, text, option_a_text, option_a_next, option_b_text, option_b_next)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
			line.ID, line.LocationID, line.Text,
			line.OptionA.Text, line.OptionA.NextLineID,
			line.OptionB.Text, line.OptionB.NextLineID,
		); err != nil {
			return errors.Wrapf(err, "failed to insert line %d", line.ID)
		}
	}

	for _, event := range s.Events {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO health_experience (line_id, health, experience, enemy_health) VALUES (?, ?, ?, ?)`,
			event.LineID, event.Health, event.Experience, event.EnemyHealth,
		); err != nil {
			return errors.Wrapf(err, "failed to insert event for line %d", event.LineID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit import")
	}
	return nil
}
