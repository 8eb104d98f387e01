package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_SortedSQLOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0002_chat.sql", "0001_init.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "0003_dir.sql"), 0o755))

	names, err := migrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_init.sql", "0002_chat.sql"}, names)
}

func TestMigrationFiles_MissingDir(t *testing.T) {
	_, err := migrationFiles(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestRepositoryMigrationsPresent(t *testing.T) {
	names, err := migrationFiles(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	assert.Contains(t, names, "0001_init.sql")
}
