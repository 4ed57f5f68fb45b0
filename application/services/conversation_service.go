// Package services holds application-level orchestration that does not fit
// the command/query buses, chiefly the conversation workflow whose turns need
// a rich result payload.
package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ziwei-backend/application/ports"
	"ziwei-backend/domain/config"
	"ziwei-backend/domain/core/entities"
	domainservices "ziwei-backend/domain/core/services"
	"ziwei-backend/domain/core/valueobjects"
	"ziwei-backend/domain/events"
	appErrors "ziwei-backend/pkg/errors"
)

// TurnResult is the outcome of one conversation turn. Reply is empty when the
// generator is unavailable or failed; the rest of the fields are always
// computed.
type TurnResult struct {
	SessionID          valueobjects.SessionID `json:"sessionId"`
	Reply              string                 `json:"reply,omitempty"`
	ReplyAvailable     bool                   `json:"replyAvailable"`
	Topics             []string               `json:"topics"`
	SuggestedQuestions []string               `json:"suggestedQuestions"`
	QualityScore       int                    `json:"qualityScore"`
	TokensUsed         int                    `json:"tokensUsed"`
	Model              string                 `json:"model,omitempty"`
}

// QualityReport is the final assessment of a session
type QualityReport struct {
	SessionID    valueobjects.SessionID `json:"sessionId"`
	MessageCount int                    `json:"messageCount"`
	Topics       []string               `json:"topics"`
	QualityScore int                    `json:"qualityScore"`
	TokensUsed   int                    `json:"tokensUsed"`
}

// ConversationService orchestrates chart-aware dialogue sessions: creation,
// turn handling with history windowing, summarization, and teardown.
type ConversationService struct {
	store     ports.SessionStore
	lock      ports.SessionLock
	builder   *domainservices.ContextBuilder
	generator ports.NarrativeGenerator
	publisher ports.EventPublisher
	cfg       *config.DomainConfig
	model     string
	logger    *zap.Logger
}

// NewConversationService creates a conversation service
func NewConversationService(
	store ports.SessionStore,
	lock ports.SessionLock,
	builder *domainservices.ContextBuilder,
	generator ports.NarrativeGenerator,
	publisher ports.EventPublisher,
	cfg *config.DomainConfig,
	model string,
	logger *zap.Logger,
) *ConversationService {
	return &ConversationService{
		store:     store,
		lock:      lock,
		builder:   builder,
		generator: generator,
		publisher: publisher,
		cfg:       cfg,
		model:     model,
		logger:    logger,
	}
}

// Start opens a new session for a chart under the given id
func (s *ConversationService) Start(ctx context.Context, id valueobjects.SessionID, chart *entities.Chart) (*entities.Conversation, error) {
	conv := entities.NewConversation(
		chart,
		s.builder.ChartContext(chart),
		s.builder.SystemPrompt(chart),
		s.model,
	)
	conv.ID = id

	if err := s.store.Save(ctx, conv); err != nil {
		return nil, appErrors.Wrap(err, "failed to save new conversation")
	}

	event := events.NewConversationStarted(conv.ID, conv.Model, time.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish conversation started event", zap.Error(err))
	}

	return conv, nil
}

// SuggestedOpeners returns the generic question bank shown to a fresh
// session before any topics have emerged.
func (s *ConversationService) SuggestedOpeners() []string {
	return s.builder.FollowUpQuestions(nil)
}

// Get loads a session by id
func (s *ConversationService) Get(ctx context.Context, id valueobjects.SessionID) (*entities.Conversation, error) {
	return s.store.GetByID(ctx, id)
}

// Turn handles one user message: it sends the windowed history to the
// generator, records both sides of the exchange, and derives the session
// insights. A generator failure loses the reply, never the user's message.
func (s *ConversationService) Turn(ctx context.Context, id valueobjects.SessionID, content string) (*TurnResult, error) {
	release, err := s.lock.AcquireLock(ctx, id.String())
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to lock session")
	}
	defer func() {
		if err := release(ctx); err != nil {
			s.logger.Warn("Failed to release session lock",
				zap.String("sessionID", id.String()),
				zap.Error(err))
		}
	}()

	conv, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	userMsg, err := valueobjects.NewUserMessage(content)
	if err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	payload := conv.PayloadWindow(userMsg, s.cfg.HistoryWindow)

	if _, err := conv.AppendUserMessage(content); err != nil {
		return nil, appErrors.NewValidationError(err.Error())
	}

	result := &TurnResult{SessionID: conv.ID}

	if s.generator.Available() {
		s.generateReply(ctx, conv, payload, result)
	} else {
		s.logger.Info("Narrative generator unavailable, recording message only",
			zap.String("sessionID", id.String()))
	}

	if err := s.store.Save(ctx, conv); err != nil {
		return nil, appErrors.Wrap(err, "failed to save conversation")
	}

	result.Topics = s.builder.ExtractTopics(conv.Messages)
	result.SuggestedQuestions = s.builder.FollowUpQuestions(result.Topics)
	result.QualityScore = s.builder.QualityScore(
		conv.MessageCount(), len(result.Topics), conv.TokensUsed.Total())
	result.TokensUsed = conv.TokensUsed.Total()

	return result, nil
}

func (s *ConversationService) generateReply(ctx context.Context, conv *entities.Conversation, payload []valueobjects.Message, result *TurnResult) {
	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GeneratorTimeout)
	defer cancel()

	reply, err := s.generator.Generate(genCtx, ports.NarrativeRequest{
		SystemPrompt:    conv.SystemPrompt,
		Messages:        payload,
		MaxOutputTokens: s.cfg.ChatMaxOutputTokens,
	})
	if err != nil {
		s.logger.Warn("Reply generation failed",
			zap.String("sessionID", conv.ID.String()),
			zap.Error(err))
		return
	}

	usage := entities.TokenUsage{Input: reply.TokensInput, Output: reply.TokensOutput}
	if _, err := conv.AppendAssistantMessage(reply.Text, usage); err != nil {
		s.logger.Warn("Generator returned unusable reply",
			zap.String("sessionID", conv.ID.String()),
			zap.Error(err))
		return
	}

	result.Reply = reply.Text
	result.ReplyAvailable = true
	result.Model = reply.Model
}

// Summarize condenses the older history of a session that has crossed the
// summarize threshold. Recent messages stay verbatim.
func (s *ConversationService) Summarize(ctx context.Context, id valueobjects.SessionID) (string, error) {
	release, err := s.lock.AcquireLock(ctx, id.String())
	if err != nil {
		return "", appErrors.Wrap(err, "failed to lock session")
	}
	defer func() {
		if err := release(ctx); err != nil {
			s.logger.Warn("Failed to release session lock",
				zap.String("sessionID", id.String()),
				zap.Error(err))
		}
	}()

	conv, err := s.store.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if !conv.NeedsSummary(s.cfg.SummarizeThreshold) {
		return "", appErrors.NewValidationError("conversation has not reached the summarize threshold")
	}
	if !s.generator.Available() {
		return "", appErrors.NewUnavailableError("narrative generator is not configured")
	}

	older := conv.OlderMessages(s.cfg.SummaryKeepRecent)

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GeneratorTimeout)
	defer cancel()

	reply, err := s.generator.Generate(genCtx, ports.NarrativeRequest{
		SystemPrompt:    s.builder.SummaryPrompt(older),
		MaxOutputTokens: s.cfg.SummaryMaxOutputTokens,
	})
	if err != nil {
		return "", appErrors.NewExternalError("narrative generator", err)
	}

	if err := conv.ApplySummary(reply.Text); err != nil {
		return "", appErrors.NewValidationError(err.Error())
	}
	conv.TokensUsed.Input += reply.TokensInput
	conv.TokensUsed.Output += reply.TokensOutput

	if err := s.store.Save(ctx, conv); err != nil {
		return "", appErrors.Wrap(err, "failed to save summarized conversation")
	}

	event := events.NewConversationSummarized(conv.ID, conv.MessageCount(), time.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish summarization event", zap.Error(err))
	}

	return reply.Text, nil
}

// Quality computes the current quality assessment of a session
func (s *ConversationService) Quality(ctx context.Context, id valueobjects.SessionID) (*QualityReport, error) {
	conv, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.report(conv), nil
}

// End closes a session, publishing its final quality and removing it from
// the store.
func (s *ConversationService) End(ctx context.Context, id valueobjects.SessionID) (*QualityReport, error) {
	conv, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	report := s.report(conv)

	event := events.NewConversationEnded(conv.ID,
		report.MessageCount, report.QualityScore, report.TokensUsed, time.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish conversation ended event", zap.Error(err))
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return nil, appErrors.Wrap(err, "failed to delete conversation")
	}

	return report, nil
}

func (s *ConversationService) report(conv *entities.Conversation) *QualityReport {
	topics := s.builder.ExtractTopics(conv.Messages)
	return &QualityReport{
		SessionID:    conv.ID,
		MessageCount: conv.MessageCount(),
		Topics:       topics,
		QualityScore: s.builder.QualityScore(conv.MessageCount(), len(topics), conv.TokensUsed.Total()),
		TokensUsed:   conv.TokensUsed.Total(),
	}
}
