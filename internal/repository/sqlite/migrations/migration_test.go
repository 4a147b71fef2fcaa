package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_task_filters", migrations[0].Name)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE IF NOT EXISTS task_filters")
	assert.Contains(t, migrations[0].Down, "DROP TABLE")
	assert.Equal(t, 2, migrations[1].Version)
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestRunMigrations_CriterionColumnsRequireJSON(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(context.Background(), db))

	_, err := db.Exec(`INSERT INTO task_filters (name, due_date) VALUES ('ok', '{"Value":"T","Operator":0}')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO task_filters (name, tag_ids) VALUES ('null criteria', NULL)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO task_filters (name, tag_ids) VALUES ('bad', 'not json')`)
	assert.Error(t, err)
}

func TestExtractVersionAndName(t *testing.T) {
	assert.Equal(t, 12, extractVersion("000012_add_things.up.sql"))
	assert.Equal(t, 0, extractVersion("README.md"))
	assert.Equal(t, "add_things", extractName("000012_add_things.up.sql"))
}
