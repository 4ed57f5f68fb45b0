package handlers

import (
	"context"
	"fmt"

	"ziwei-backend/application/commands"
	appservices "ziwei-backend/application/services"
)

// StartConversationHandler opens sessions through the conversation service
type StartConversationHandler struct {
	conversations *appservices.ConversationService
}

// NewStartConversationHandler creates a start handler
func NewStartConversationHandler(conversations *appservices.ConversationService) *StartConversationHandler {
	return &StartConversationHandler{conversations: conversations}
}

// Handle executes the start command
func (h *StartConversationHandler) Handle(ctx context.Context, cmd commands.StartConversationCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}
	_, err := h.conversations.Start(ctx, cmd.SessionID, cmd.Chart)
	return err
}

// SummarizeConversationHandler condenses long sessions
type SummarizeConversationHandler struct {
	conversations *appservices.ConversationService
}

// NewSummarizeConversationHandler creates a summarize handler
func NewSummarizeConversationHandler(conversations *appservices.ConversationService) *SummarizeConversationHandler {
	return &SummarizeConversationHandler{conversations: conversations}
}

// Handle executes the summarize command
func (h *SummarizeConversationHandler) Handle(ctx context.Context, cmd commands.SummarizeConversationCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}
	_, err := h.conversations.Summarize(ctx, cmd.SessionID)
	return err
}

// EndConversationHandler closes sessions
type EndConversationHandler struct {
	conversations *appservices.ConversationService
}

// NewEndConversationHandler creates an end handler
func NewEndConversationHandler(conversations *appservices.ConversationService) *EndConversationHandler {
	return &EndConversationHandler{conversations: conversations}
}

// Handle executes the end command
func (h *EndConversationHandler) Handle(ctx context.Context, cmd commands.EndConversationCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}
	_, err := h.conversations.End(ctx, cmd.SessionID)
	return err
}
