package app

import (
	"context"
	"path/filepath"
	"testing"

	"pet-adoption-workflow/internal/adapters/storage/migrations"
	"pet-adoption-workflow/internal/adapters/storage/sqldb"
	"pet-adoption-workflow/internal/platform/config"
	"pet-adoption-workflow/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateOpenSeed_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{DBDriver: config.DriverSQLite, DBDSN: filepath.Join(t.TempDir(), "pets.db")}
	log := logger.Nop()

	require.NoError(t, Migrate(ctx, cfg, log, migrations.Up))
	// segunda corrida: ErrNoChange no es error
	require.NoError(t, Migrate(ctx, cfg, log, migrations.Up))

	st, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	defer st.Close()
	require.NotNil(t, st.SQL)
	assert.Nil(t, st.Memory)

	require.NoError(t, Seed(ctx, cfg, st, log))
	require.NoError(t, Seed(ctx, cfg, st, log))

	items, err := sqldb.NewPetsRepo(st.SQL).List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestMemoryDriver(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{DBDriver: config.DriverMemory}

	require.NoError(t, Migrate(ctx, cfg, logger.Nop(), migrations.Up))

	st, err := OpenStorage(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, st.Memory)
	assert.NoError(t, st.Close())
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), config.Config{DBDriver: "mongo"})
	assert.Error(t, err)
}
