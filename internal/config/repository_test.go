package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"task-filter/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRepository(t *testing.T) {
	dbDir := filepath.Join(t.TempDir(), "nested", ".tf")
	t.Setenv("TF_DB_DIR", dbDir)

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	_, err = os.Stat(filepath.Join(dbDir, "tf.db"))
	assert.NoError(t, err, "database file should be created")

	filter := &sqlite.TaskFilter{Name: "Due soon"}
	require.NoError(t, repo.CreateTaskFilter(context.Background(), filter))

	filters, err := repo.ListTaskFilters(context.Background())
	require.NoError(t, err)
	require.Len(t, filters, 1)
	assert.Equal(t, "Due soon", filters[0].Name)
}

func TestCreateRepository_UnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	cfg := NewConfig()
	cfg.Database.Dir = filepath.Join(blocker, "db")

	_, err := CreateRepository(cfg)
	assert.Error(t, err)
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()

	filters, err := repo.ListTaskFilters(context.Background())
	require.NoError(t, err)
	assert.Empty(t, filters)
}
