package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRepository(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "data")

	repo, err := CreateRepository(cfg)
	require.NoError(t, err)
	defer repo.Close()

	_, err = os.Stat(cfg.Storage.Dir)
	assert.NoError(t, err, "database directory should be created")

	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, cfg.Storage.Slot, "{}"))

	value, ok, err := repo.Get(ctx, cfg.Storage.Slot)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{}", value)
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()
	require.NoError(t, err)
	defer repo.Close()

	_, ok, err := repo.Get(context.Background(), "folhaDePonto")
	require.NoError(t, err)
	assert.False(t, ok)
}
