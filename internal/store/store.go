package store

import (
	"errors"
	"slices"
	"sync"

	"user_directory/internal/domain"
)

// ErrNotFound indicates no record carries the requested id.
var ErrNotFound = errors.New("user not found")

// Store owns the in-memory record set. The backing file is only ever read.
type Store struct {
	mu    sync.RWMutex     // Guards users
	path  string           // Backing file, read only
	users []domain.RawUser // In-memory record set
}

// New wraps an already loaded record set.
func New(path string, users []domain.RawUser) *Store {
	return &Store{path: path, users: users}
}

// Open loads the record set from path.
func Open(path string) *Store {
	return New(path, Load(path))
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// ReadFile re-reads the backing file.
func (s *Store) ReadFile() ([]domain.RawUser, error) {
	return ReadFile(s.path)
}

// Snapshot returns a copy of the in-memory records.
func (s *Store) Snapshot() []domain.RawUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RawUser, len(s.users))
	copy(out, s.users)
	return out
}

// Create appends a record with the next free id. Records without a numeric
// id do not take part in id allocation.
func (s *Store) Create(name, role string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID int64
	found := false
	for _, u := range s.users { // Highest numeric id, negatives included
		if id, ok := u.NumericID(); ok && (!found || id > maxID) {
			maxID, found = id, true
		}
	}
	user := domain.User{ID: 1, Name: name, Role: role} // First id when none is numeric
	if found {
		user.ID = maxID + 1
	}
	s.users = append(s.users, domain.NewRawUser(user))
	return user
}

// Delete removes the first record whose numeric id equals id and returns it
// normalized at its former position.
func (s *Store) Delete(id int64) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if got, ok := u.NumericID(); ok && got == id {
			s.users = slices.Delete(s.users, i, i+1) // Later records shift down
			return domain.Normalize(u, i), nil
		}
	}
	return domain.User{}, ErrNotFound
}
