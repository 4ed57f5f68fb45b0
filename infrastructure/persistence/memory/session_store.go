// Package memory provides in-process session storage for development and
// tests. Production deployments use the DynamoDB implementations instead.
package memory

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/valueobjects"
	apperrors "ziwei-backend/pkg/errors"
)

// SessionStore keeps conversations in memory with TTL-based expiry. It
// implements ports.SessionStore.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[valueobjects.SessionID]*sessionEntry
	ttl      time.Duration
	logger   *zap.Logger

	stopCleanup chan struct{}
	stopOnce    sync.Once
}

type sessionEntry struct {
	conv      *entities.Conversation
	expiresAt time.Time
}

// NewSessionStore creates an in-memory store whose cleanup loop prunes
// expired sessions every cleanupInterval until Stop is called.
func NewSessionStore(ttl, cleanupInterval time.Duration, logger *zap.Logger) *SessionStore {
	store := &SessionStore{
		sessions:    make(map[valueobjects.SessionID]*sessionEntry),
		ttl:         ttl,
		logger:      logger,
		stopCleanup: make(chan struct{}),
	}
	if cleanupInterval > 0 {
		go store.cleanupLoop(cleanupInterval)
	}
	return store
}

// Save persists a snapshot of the conversation, refreshing its expiry window
func (s *SessionStore) Save(ctx context.Context, conv *entities.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[conv.ID] = &sessionEntry{
		conv:      snapshot(conv),
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// GetByID retrieves a conversation by session id. Callers get their own
// copy, matching the DynamoDB store's round-trip semantics, so a reader
// never shares message slices with a concurrent turn.
func (s *SessionStore) GetByID(ctx context.Context, id valueobjects.SessionID) (*entities.Conversation, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, apperrors.NewNotFoundError("session")
	}
	return snapshot(entry.conv), nil
}

// snapshot copies the conversation and its message history. The chart is
// shared; it is not mutated after session start.
func snapshot(conv *entities.Conversation) *entities.Conversation {
	copied := *conv
	copied.Messages = append([]valueobjects.Message(nil), conv.Messages...)
	return &copied
}

// Delete removes a conversation
func (s *SessionStore) Delete(ctx context.Context, id valueobjects.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// DeleteExpired prunes sessions past their expiry, returning the number
// removed
func (s *SessionStore) DeleteExpired(ctx context.Context) (int, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Stop terminates the cleanup loop
func (s *SessionStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCleanup)
	})
}

func (s *SessionStore) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, _ := s.DeleteExpired(context.Background())
			if removed > 0 {
				s.logger.Debug("Pruned expired sessions", zap.Int("removed", removed))
			}
		case <-s.stopCleanup:
			return
		}
	}
}
