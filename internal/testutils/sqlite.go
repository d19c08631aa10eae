package testutils

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-narrative/internal/sqlite"
)

// CreateTestSQLite opens a migrated database in the test's temp dir. It is
// closed when the test finishes.
func CreateTestSQLite(t *testing.T) *sql.DB {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "narrative.db"))
	require.NoError(t, err, "failed to open sqlite")

	t.Cleanup(func() { _ = db.Close() })
	return db
}
