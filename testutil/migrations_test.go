package testutil_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/freight-rates/backend/migrations"
	"github.com/pkordes/freight-rates/backend/testutil"
)

var tables = []string{"regions", "ports", "prices"}

// TestMigrations verifies the full migration round trip against Postgres:
// up creates every table and the region cycle trigger, down-to-0 removes
// them, and a final up leaves the schema in place for other packages.
func TestMigrations(t *testing.T) {
	db := testutil.NewSQLDB(t)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err, "create goose provider")

	ctx := context.Background()

	// Another package's TestMain may already have migrated this shared DB.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.Len(t, results, 3, "expected every migration to be applied")

	for _, table := range tables {
		assert.True(t, relationExists(t, db, table), "expected table %q to exist", table)
	}
	assert.True(t, triggerExists(t, db, "regions_reject_cycle"))

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")

	for _, table := range tables {
		assert.False(t, relationExists(t, db, table), "expected table %q to be gone", table)
	}
	assert.False(t, triggerExists(t, db, "regions_reject_cycle"))

	_, err = provider.Up(ctx)
	require.NoError(t, err, "restore schema")
}

func relationExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			  AND table_name   = $1
		)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, table).Scan(&exists),
		"check table existence for %q", table)
	return exists
}

func triggerExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	const q = `SELECT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = $1)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, name).Scan(&exists),
		"check trigger existence for %q", name)
	return exists
}
