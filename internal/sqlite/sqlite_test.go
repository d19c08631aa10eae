package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-narrative/internal/sqlite"
)

func TestOpenCreatesSchema(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "narrative.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	for _, table := range []string{"locations", "connections", "line_script", "health_experience", "player_progress"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrative.db")

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = sqlite.Open(path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := sqlite.Open("  ")
	assert.Error(t, err)
}

func TestApplyMigrationsRunsUpSectionOnce(t *testing.T) {
	db, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	fsys := fstest.MapFS{
		"900_extra.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE extra (id INTEGER);\n-- +migrate Down\nDROP TABLE extra;\n")},
		"README.md":     {Data: []byte("ignored")},
	}

	ctx := context.Background()
	require.NoError(t, sqlite.ApplyMigrations(ctx, db, fsys))
	require.NoError(t, sqlite.ApplyMigrations(ctx, db, fsys))

	_, err = db.Exec("INSERT INTO extra (id) VALUES (1)")
	assert.NoError(t, err)
}
