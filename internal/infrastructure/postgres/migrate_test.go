package postgres

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFS_VersionesUpYDown(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, name, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "init", name)
	script, err := io.ReadAll(up)
	require.NoError(t, err)
	assert.Contains(t, string(script), "CREATE TABLE IF NOT EXISTS attributions")

	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	defer down.Close()

	_, err = src.Next(first)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "solo hay una versión")
}
