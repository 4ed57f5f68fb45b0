package entities

import (
	"errors"
	"time"

	"ziwei-backend/domain/core/valueobjects"
)

// ConversationStatus is the lifecycle state of a session
type ConversationStatus string

const (
	ConversationUninitialized ConversationStatus = "uninitialized"
	ConversationActive        ConversationStatus = "active"
	ConversationSummarized    ConversationStatus = "summarized"
)

// TokenUsage accumulates generator token counts across a session
type TokenUsage struct {
	Input  int `json:"input" dynamodbav:"input"`
	Output int `json:"output" dynamodbav:"output"`
}

// Total returns input plus output tokens
func (u TokenUsage) Total() int {
	return u.Input + u.Output
}

// Conversation is a per-session dialogue over one chart. The full message
// history is retained locally; only a bounded window ever leaves the process.
type Conversation struct {
	ID           valueobjects.SessionID  `json:"sessionId" dynamodbav:"sessionId"`
	Status       ConversationStatus      `json:"status" dynamodbav:"status"`
	Chart        *Chart                  `json:"chart" dynamodbav:"chart"`
	ChartContext string                  `json:"chartContext" dynamodbav:"chartContext"`
	SystemPrompt string                  `json:"-" dynamodbav:"systemPrompt"`
	Messages     []valueobjects.Message  `json:"messages" dynamodbav:"messages"`
	Summary      string                  `json:"summary,omitempty" dynamodbav:"summary,omitempty"`
	Model        string                  `json:"model" dynamodbav:"model"`
	TokensUsed   TokenUsage              `json:"tokensUsed" dynamodbav:"tokensUsed"`
	CreatedAt    time.Time               `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt" dynamodbav:"updatedAt"`
}

// NewConversation creates an active session for the given chart
func NewConversation(chart *Chart, chartContext, systemPrompt, model string) *Conversation {
	now := time.Now()
	return &Conversation{
		ID:           valueobjects.NewSessionID(),
		Status:       ConversationActive,
		Chart:        chart,
		ChartContext: chartContext,
		SystemPrompt: systemPrompt,
		Messages:     []valueobjects.Message{},
		Model:        model,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AppendUserMessage records a user turn
func (c *Conversation) AppendUserMessage(content string) (valueobjects.Message, error) {
	msg, err := valueobjects.NewUserMessage(content)
	if err != nil {
		return valueobjects.Message{}, err
	}
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
	return msg, nil
}

// AppendAssistantMessage records a generator reply and its token usage
func (c *Conversation) AppendAssistantMessage(content string, usage TokenUsage) (valueobjects.Message, error) {
	msg, err := valueobjects.NewAssistantMessage(content)
	if err != nil {
		return valueobjects.Message{}, err
	}
	c.Messages = append(c.Messages, msg)
	c.TokensUsed.Input += usage.Input
	c.TokensUsed.Output += usage.Output
	c.UpdatedAt = time.Now()
	return msg, nil
}

// PayloadWindow returns the messages to send outbound for a new user turn:
// the last `window` prior messages plus the new one. Older history stays
// local and never enters the network payload.
func (c *Conversation) PayloadWindow(newMessage valueobjects.Message, window int) []valueobjects.Message {
	history := c.Messages
	if len(history) > window {
		history = history[len(history)-window:]
	}
	payload := make([]valueobjects.Message, 0, len(history)+1)
	payload = append(payload, history...)
	payload = append(payload, newMessage)
	return payload
}

// NeedsSummary reports whether the history has reached the summarize threshold
func (c *Conversation) NeedsSummary(threshold int) bool {
	return len(c.Messages) >= threshold
}

// OlderMessages returns the messages eligible for summarization: everything
// except the most recent keepRecent entries.
func (c *Conversation) OlderMessages(keepRecent int) []valueobjects.Message {
	if len(c.Messages) <= keepRecent {
		return nil
	}
	return c.Messages[:len(c.Messages)-keepRecent]
}

// ApplySummary records a condensed summary of the older history and moves the
// session to the summarized state. History is retained, not destroyed.
func (c *Conversation) ApplySummary(summary string) error {
	if summary == "" {
		return errors.New("summary text is required")
	}
	c.Summary = summary
	c.Status = ConversationSummarized
	c.UpdatedAt = time.Now()
	return nil
}

// MessageCount returns the number of messages in the local history
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}
