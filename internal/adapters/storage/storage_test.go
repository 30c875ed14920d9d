package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rescue-dashboard/internal/domain/query"
	"rescue-dashboard/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MemoryUsesEmbeddedSample(t *testing.T) {
	s, err := Open(context.Background(), config.Default(), nil)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, config.DriverMemory, s.Backend)
	out, err := s.Repository.Read(context.Background(), query.All(), query.Projection{})
	require.NoError(t, err)
	assert.Len(t, out, 32)
}

func TestOpen_MemoryWithSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"rec_num": 1, "animal_type": "Dog", "breed": "Labrador Retriever Mix", "name": "Max"},
		{"rec_num": 2, "animal_type": "Cat", "breed": "Domestic Shorthair Mix"}
	]`), 0o600))

	cfg := config.Default()
	cfg.Store.SeedPath = path

	s, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)

	out, err := s.Repository.Read(context.Background(), query.All(), query.Projection{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Max", out[0].Name)
}

func TestOpen_SQLiteSeedsOnEmpty(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = config.DriverSQLite
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "data", "rescue.db")

	s, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	out, err := s.Repository.Read(context.Background(), query.All(), query.Projection{})
	require.NoError(t, err)
	assert.Len(t, out, 32)
	require.NoError(t, s.Close())

	// reabrir no duplica el seed
	s, err = Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer s.Close()
	out, err = s.Repository.Read(context.Background(), query.All(), query.Projection{})
	require.NoError(t, err)
	assert.Len(t, out, 32)
}

func TestOpen_SQLiteWithoutSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = config.DriverSQLite
	cfg.Store.SeedOnEmpty = false
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "empty.db")

	s, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer s.Close()

	out, err := s.Repository.Read(context.Background(), query.All(), query.Projection{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Driver = "cassandra"

	_, err := Open(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestSeed_MissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Store.SeedPath = filepath.Join(t.TempDir(), "nope.csv")

	_, err := Seed(cfg)
	assert.Error(t, err)
}
