package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_directory/internal/domain"
)

// writeStore writes contents to a db.json inside a fresh temp dir.
func writeStore(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func normalizeAll(users []domain.RawUser) []domain.User {
	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = domain.Normalize(u, i)
	}
	return out
}

var seeds = []domain.User{
	{ID: 1, Name: "Admin", Role: "admin"},
	{ID: 2, Name: "User", Role: "user"},
}

func TestLoadMissingFileYieldsSeeds(t *testing.T) {
	users := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Equal(t, seeds, normalizeAll(users))
}

func TestLoadMalformedFileYieldsSeeds(t *testing.T) {
	users := Load(writeStore(t, `{"users": [`))
	assert.Equal(t, seeds, normalizeAll(users))
}

func TestLoadEmptyUsersIsPadded(t *testing.T) {
	users := Load(writeStore(t, `{"users": []}`))
	assert.Equal(t, seeds, normalizeAll(users))
}

func TestLoadNonArrayUsersIsPadded(t *testing.T) {
	users := Load(writeStore(t, `{"users": {"id": 1}}`))
	assert.Equal(t, seeds, normalizeAll(users))
}

func TestLoadSingleEntryPadsByIndex(t *testing.T) {
	users := Load(writeStore(t, `{"users": [{"id":5,"name":"X","role":"y"}]}`))
	assert.Equal(t, []domain.User{
		{ID: 5, Name: "X", Role: "y"},
		{ID: 2, Name: "User", Role: "user"},
	}, normalizeAll(users))
}

func TestLoadKeepsFirstTwoVerbatim(t *testing.T) {
	users := Load(writeStore(t, `{"users": [
		{"id":"a","name":"","role":" "},
		{"id":8,"name":"B","role":"b"},
		{"id":9,"name":"C","role":"c"}
	]}`))
	require.Len(t, users, 2)
	assert.JSONEq(t, `"a"`, string(users[0].ID))
	assert.JSONEq(t, `" "`, string(users[0].Role))
	id, ok := users[1].NumericID()
	assert.True(t, ok)
	assert.Equal(t, int64(8), id)
}

func TestReadFileReportsMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFileToleratesNonObjectEntries(t *testing.T) {
	users, err := ReadFile(writeStore(t, `{"users": [null, 5, {"name":"Z"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []domain.User{
		{ID: 1, Name: "User", Role: "user"},
		{ID: 2, Name: "User", Role: "user"},
		{ID: 3, Name: "Z", Role: "user"},
	}, normalizeAll(users))
}

func TestReadFileMatchesUsersKeyExactly(t *testing.T) {
	users, err := ReadFile(writeStore(t, `{"Users": [{"id":9,"name":"F","role":"r"}]}`))
	require.NoError(t, err)
	assert.Empty(t, users)

	assert.Equal(t, seeds, normalizeAll(Load(writeStore(t, `{"USERS": [{"id":9}]}`))))
}

func TestReadFileMatchesFieldKeysExactly(t *testing.T) {
	users, err := ReadFile(writeStore(t, `{"users": [{"id":7,"ID":"x","NAME":"Shadow","name":"Real"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []domain.User{{ID: 7, Name: "Real", Role: "user"}}, normalizeAll(users))
}
