package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/resty-service/internal/config"
)

func TestMigrationFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.sql", "001_a.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_a.sql", "002_b.sql"}, files)
}

func TestMigrationFilesMissingDir(t *testing.T) {
	_, err := migrationFiles(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestRunMigrationsWithoutPool(t *testing.T) {
	assert.NoError(t, RunMigrations(context.Background(), nil, "does-not-matter", zap.NewNop()))
}

func TestUnconfiguredClients(t *testing.T) {
	ctx := context.Background()

	pg, err := NewPostgres(ctx, config.PostgresConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, pg.PoolHandle())
	assert.ErrorIs(t, pg.Ping(ctx), ErrNotConfigured)
	pg.Close()

	r := NewRedis(config.RedisConfig{}, zap.NewNop())
	assert.Nil(t, r.Client)
	assert.ErrorIs(t, r.Ping(ctx), ErrNotConfigured)
	r.Close()
}
