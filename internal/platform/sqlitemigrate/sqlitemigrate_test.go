package sqlitemigrate_test

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	dnderr "github.com/KirkDiggler/dungeon-engine/internal/errors"
	"github.com/KirkDiggler/dungeon-engine/internal/platform/sqlitemigrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func count(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestApplyRecordsEachFileOnce(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	migrations := fstest.MapFS{
		"002_add_level.sql": {Data: []byte("-- +migrate Up\nALTER TABLE heroes ADD COLUMN level INTEGER NOT NULL DEFAULT 1;\n-- +migrate Down\nSELECT 1;")},
		"001_create.sql":    {Data: []byte("CREATE TABLE heroes(name TEXT PRIMARY KEY);")},
		"README.md":         {Data: []byte("ignored")},
	}

	applied, err := sqlitemigrate.Apply(ctx, db, migrations, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create.sql", "002_add_level.sql"}, applied)

	applied, err = sqlitemigrate.Apply(ctx, db, migrations, "")
	require.NoError(t, err)
	assert.Empty(t, applied)
	assert.Equal(t, 2, count(t, db, "SELECT COUNT(*) FROM schema_migrations"))

	_, err = db.Exec("INSERT INTO heroes(name) VALUES ('Aria')")
	require.NoError(t, err)
	assert.Equal(t, 1, count(t, db, "SELECT level FROM heroes WHERE name = ?", "Aria"))
}

func TestApplyToleratesColumnAddedOutOfBand(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	_, err := db.Exec("CREATE TABLE heroes(name TEXT PRIMARY KEY, level INTEGER)")
	require.NoError(t, err)

	_, err = sqlitemigrate.Apply(ctx, db, fstest.MapFS{
		"001_add_level.sql": {Data: []byte("ALTER TABLE heroes ADD COLUMN level INTEGER;")},
	}, ".")
	require.NoError(t, err)
	assert.Equal(t, 1, count(t, db, "SELECT COUNT(*) FROM schema_migrations"))
}

func TestApplyDoesNotRecordFailedMigration(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	_, err := sqlitemigrate.Apply(ctx, db, fstest.MapFS{
		"001_bad.sql": {Data: []byte("CREAT TABLE broken(id INT);")},
	}, "")
	require.Error(t, err)
	assert.True(t, dnderr.IsPersistenceFailure(err))
	assert.Equal(t, 0, count(t, db, "SELECT COUNT(*) FROM schema_migrations"))
}

func TestApplyReadsSubdirectory(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	applied, err := sqlitemigrate.Apply(ctx, db, fstest.MapFS{
		"sql/001_create.sql": {Data: []byte("CREATE TABLE heroes(name TEXT);")},
	}, "sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"sql/001_create.sql"}, applied)
}

func TestApplyRequiresDB(t *testing.T) {
	_, err := sqlitemigrate.Apply(context.Background(), nil, fstest.MapFS{}, "")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestUpSection(t *testing.T) {
	assert.Equal(t, "\nA\n", sqlitemigrate.UpSection("-- +migrate Up\nA\n-- +migrate Down\nB"))
	assert.Equal(t, "plain", sqlitemigrate.UpSection("plain"))
	assert.False(t, sqlitemigrate.IsAlreadyApplied(nil))
}
