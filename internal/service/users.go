package service

import (
	"context"
	"errors"
	"io/fs"

	"github.com/sirupsen/logrus"

	"user_directory/internal/domain"
	"user_directory/internal/events"
	"user_directory/internal/store"
)

// UserService serves the user list. Reads prefer the backing file when it
// holds a non-empty users array; writes only ever touch the in-memory set,
// so a created user is hidden and a deleted one resurfaces for as long as
// the file has users of its own.
type UserService struct {
	store  *store.Store // In-memory set and backing file
	events events.Log   // Mutation log
}

// CreateInput carries the optional fields of a new user. Empty values take
// the placeholders.
type CreateInput struct {
	Name string
	Role string
}

// NewUserService creates a UserService over st that records mutations in log
func NewUserService(st *store.Store, log events.Log) *UserService {
	return &UserService{store: st, events: log}
}

// List returns the normalized users of the backing file, or of the
// in-memory set when the file is missing, unreadable, malformed or has no
// users.
func (s *UserService) List() []domain.User {
	source := s.store.Snapshot()         // In-memory set is the fallback
	fileUsers, err := s.store.ReadFile() // File is re-read on every call
	switch {
	case err == nil && len(fileUsers) > 0:
		source = fileUsers // A non-empty file wins
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		logrus.WithFields(logrus.Fields{
			"file":  s.store.Path(), // Backing file
			"error": err.Error(),    // Read or parse error
		}).Error("Failed to read store file, serving in-memory users")
	}

	users := make([]domain.User, len(source))
	for i, raw := range source {
		users[i] = domain.Normalize(raw, i) // Position drives the id fallback
	}
	return users
}

// Create appends a user to the in-memory set.
func (s *UserService) Create(ctx context.Context, in CreateInput) domain.User {
	name, role := in.Name, in.Role
	if name == "" {
		name = domain.DefaultName
	}
	if role == "" {
		role = domain.DefaultRole
	}
	user := s.store.Create(name, role)                   // Allocate id and append
	s.publish(ctx, events.New(events.UserCreated, user)) // Record the mutation
	return user
}

// Delete removes the in-memory user with the given id. It returns
// store.ErrNotFound when none matches.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	user, err := s.store.Delete(id)
	if err != nil {
		return err
	}
	s.publish(ctx, events.New(events.UserDeleted, user))
	return nil
}

// Events returns up to limit recent mutations, newest first.
func (s *UserService) Events(ctx context.Context, limit int) ([]events.Event, error) {
	return s.events.Recent(ctx, limit)
}

// publish records e; a failing log never fails the mutation
func (s *UserService) publish(ctx context.Context, e events.Event) {
	if err := s.events.Publish(ctx, e); err != nil {
		logrus.WithFields(logrus.Fields{
			"event":   e.Type,
			"user_id": e.User.ID,
			"error":   err.Error(),
		}).Warn("Failed to publish user event")
		return
	}
	logrus.WithFields(logrus.Fields{
		"event":   e.Type,
		"user_id": e.User.ID,
		"name":    e.User.Name,
		"role":    e.User.Role,
	}).Info("User set changed")
}
