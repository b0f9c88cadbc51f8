package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"user_directory/internal/domain"
)

// usersKey is the only member of the on-disk layout: {"users": [...]}
const usersKey = "users"

// ReadFile returns the users array of the document at path. A missing file
// yields an error matching fs.ErrNotExist. A users value that is absent or
// not an array yields no users and no error; entries that are not objects
// are kept as empty records. Keys are matched exactly: {"Users": [...]}
// has no users.
func ReadFile(path string) ([]domain.RawUser, error) {
	data, err := os.ReadFile(path) // Whole document, re-read on every call
	if err != nil {
		return nil, err // fs.ErrNotExist passes through for callers to match
	}
	doc, err := domain.Object(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	trimmed := bytes.TrimSpace(doc[usersKey])
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil // Absent, null, or not an array
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("parse %s users: %w", path, err)
	}

	users := make([]domain.RawUser, len(entries))
	for i, entry := range entries {
		_ = json.Unmarshal(entry, &users[i]) // Non-objects stay empty
	}
	return users, nil
}

// Load produces the initial record set from the document at path: its first
// two users verbatim, padded with seed users by position. Any failure falls
// back to the seed users.
func Load(path string) []domain.RawUser {
	users, err := ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.WithField("file", path).Info("Store file not found, using seed users")
		} else {
			logrus.WithFields(logrus.Fields{
				"file":  path,
				"error": err.Error(),
			}).Error("Failed to load store file, using seed users")
		}
		return domain.SeedUsers()
	}
	return ensureSeeds(users)
}

// ensureSeeds trims or pads users to exactly SeedCount entries
func ensureSeeds(users []domain.RawUser) []domain.RawUser {
	n := min(len(users), domain.SeedCount)
	out := make([]domain.RawUser, n, domain.SeedCount)
	copy(out, users[:n]) // First entries verbatim, extras dropped
	for len(out) < domain.SeedCount {
		out = append(out, domain.SeedUser(len(out))) // Pad by position
	}
	return out
}
