package commands

import (
	"errors"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/validators"
	"ziwei-backend/domain/core/valueobjects"
)

// StartConversationCommand opens a chart-aware session. The caller supplies
// the session id so it can be returned without querying the bus.
type StartConversationCommand struct {
	SessionID valueobjects.SessionID
	Chart     *entities.Chart
}

// Validate validates the StartConversationCommand
func (c StartConversationCommand) Validate() error {
	if c.SessionID.String() == "" {
		return errors.New("session ID is required")
	}
	if c.Chart == nil {
		return errors.New("chart is required")
	}
	return validators.NewChartValidator().Validate(c.Chart)
}

// SummarizeConversationCommand condenses the older history of a long session
type SummarizeConversationCommand struct {
	SessionID valueobjects.SessionID
}

// Validate validates the SummarizeConversationCommand
func (c SummarizeConversationCommand) Validate() error {
	if c.SessionID.String() == "" {
		return errors.New("session ID is required")
	}
	return nil
}

// EndConversationCommand closes a session and records its final quality
type EndConversationCommand struct {
	SessionID valueobjects.SessionID
}

// Validate validates the EndConversationCommand
func (c EndConversationCommand) Validate() error {
	if c.SessionID.String() == "" {
		return errors.New("session ID is required")
	}
	return nil
}
