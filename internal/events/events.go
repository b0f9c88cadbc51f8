package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"user_directory/internal/domain"
)

// Type names a mutation of the user set
type Type string

// Mutation types
const (
	UserCreated Type = "user.created" // A user was appended
	UserDeleted Type = "user.deleted" // A user was removed
)

// Capacity bounds how many events a log retains
const Capacity = 100

// Event records one mutation of the in-memory user set
type Event struct {
	ID        string      `json:"id"`        // UUID
	Type      Type        `json:"type"`      // Mutation type
	User      domain.User `json:"user"`      // Affected user, normalized
	Timestamp time.Time   `json:"timestamp"` // UTC
}

// New stamps an event for user
func New(t Type, user domain.User) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      t,
		User:      user,
		Timestamp: time.Now().UTC(),
	}
}

// Log stores recent events. Recent returns newest first.
type Log interface {
	Publish(ctx context.Context, e Event) error
	Recent(ctx context.Context, limit int) ([]Event, error)
	Close() error
}
