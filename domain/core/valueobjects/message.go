package valueobjects

import (
	"errors"
	"strings"
	"time"
)

// Role identifies the author of a conversation message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSummary   Role = "summary"
)

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSummary:
		return true
	}
	return false
}

// Message is one immutable entry in a conversation history
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage validates and creates a message with the current timestamp
func NewMessage(role Role, content string) (Message, error) {
	if !role.IsValid() {
		return Message{}, errors.New("invalid message role")
	}
	if strings.TrimSpace(content) == "" {
		return Message{}, errors.New("message content is required")
	}
	return Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}, nil
}

// NewUserMessage creates a user-authored message
func NewUserMessage(content string) (Message, error) {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates an assistant-authored message
func NewAssistantMessage(content string) (Message, error) {
	return NewMessage(RoleAssistant, content)
}
