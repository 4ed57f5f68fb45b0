package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// SessionID identifies one conversation session
type SessionID string

// NewSessionID generates a fresh session identifier
func NewSessionID() SessionID {
	return SessionID(uuid.New().String())
}

// ParseSessionID validates an externally supplied session identifier
func ParseSessionID(s string) (SessionID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", errors.New("invalid session id format")
	}
	return SessionID(s), nil
}

// String returns the string form of the session id
func (id SessionID) String() string {
	return string(id)
}
