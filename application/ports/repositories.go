package ports

import (
	"context"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/valueobjects"
)

// SessionStore defines the interface for conversation persistence
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type SessionStore interface {
	// Save persists a conversation (create or update)
	Save(ctx context.Context, conv *entities.Conversation) error

	// GetByID retrieves a conversation by its session id
	GetByID(ctx context.Context, id valueobjects.SessionID) (*entities.Conversation, error)

	// Delete removes a conversation
	Delete(ctx context.Context, id valueobjects.SessionID) error

	// DeleteExpired prunes conversations idle past the TTL, returning the
	// number removed
	DeleteExpired(ctx context.Context) (int, error)
}

// SessionLock serializes concurrent turns on the same session across
// processes. AcquireLock blocks until the lock is held or the context ends.
type SessionLock interface {
	AcquireLock(ctx context.Context, sessionID string) (ReleaseFunc, error)
}

// ReleaseFunc releases a previously acquired session lock
type ReleaseFunc func(ctx context.Context) error
