package memory

import (
	"context"
	"sync"

	"ziwei-backend/application/ports"
)

// SessionLock serializes turns per session within one process using a keyed
// mutex. It implements ports.SessionLock.
type SessionLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSessionLock creates an in-process session lock
func NewSessionLock() *SessionLock {
	return &SessionLock{
		locks: make(map[string]*sync.Mutex),
	}
}

// AcquireLock blocks until the per-session mutex is held. Mutexes are kept
// for the life of the process; session cardinality is bounded by the store's
// TTL cleanup upstream.
func (l *SessionLock) AcquireLock(ctx context.Context, sessionID string) (ports.ReleaseFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	lock, ok := l.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[sessionID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	release := func(ctx context.Context) error {
		lock.Unlock()
		return nil
	}
	return release, nil
}
