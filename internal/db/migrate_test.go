package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"user_directory/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := Open("sqlite", filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := d.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return d
}

func TestExportUpserts(t *testing.T) {
	d := openTestDB(t)

	n, err := Export(d, []domain.User{
		{ID: 1, Name: "Admin", Role: "admin"},
		{ID: 2, Name: "User", Role: "user"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = Export(d, []domain.User{
		{ID: 2, Name: "Renamed", Role: "ops"},
		{ID: 3, Name: "New", Role: "user"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var got []domain.User
	require.NoError(t, d.Order("id").Find(&got).Error)
	assert.Equal(t, []domain.User{
		{ID: 1, Name: "Admin", Role: "admin"},
		{ID: 2, Name: "Renamed", Role: "ops"},
		{ID: 3, Name: "New", Role: "user"},
	}, got)
}

func TestExportCollidingIDsLastWins(t *testing.T) {
	d := openTestDB(t)

	n, err := Export(d, []domain.User{
		{ID: 1, Name: "First", Role: "a"},
		{ID: 1, Name: "Second", Role: "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var got domain.User
	require.NoError(t, d.First(&got, 1).Error)
	assert.Equal(t, "Second", got.Name)
}

func TestExportNothing(t *testing.T) {
	n, err := Export(openTestDB(t), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "x")
	assert.Error(t, err)
}
