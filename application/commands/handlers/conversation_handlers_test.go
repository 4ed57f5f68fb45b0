package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ziwei-backend/application/commands"
	"ziwei-backend/application/ports"
	appservices "ziwei-backend/application/services"
	"ziwei-backend/domain/config"
	"ziwei-backend/domain/core/entities"
	domainservices "ziwei-backend/domain/core/services"
	"ziwei-backend/domain/core/valueobjects"
	"ziwei-backend/infrastructure/messaging"
	"ziwei-backend/infrastructure/persistence/memory"
	apperrors "ziwei-backend/pkg/errors"
)

type fakeGenerator struct{}

func (fakeGenerator) Available() bool { return true }

func (fakeGenerator) Generate(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeResult, error) {
	return &ports.NarrativeResult{Text: "a short summary", TokensInput: 50, TokensOutput: 30, Model: "gemini-2.0-flash"}, nil
}

func (fakeGenerator) GenerateSections(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeSections, *ports.NarrativeResult, error) {
	return nil, nil, nil
}

func commandFixture(t *testing.T) (*appservices.ConversationService, *memory.SessionStore) {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewSessionStore(time.Hour, 0, logger)
	svc := appservices.NewConversationService(
		store,
		memory.NewSessionLock(),
		domainservices.NewContextBuilder(config.DefaultDomainConfig()),
		fakeGenerator{},
		messaging.NewNoopPublisher(logger),
		config.DefaultDomainConfig(),
		"gemini-2.0-flash",
		logger,
	)
	return svc, store
}

func commandChart() *entities.Chart {
	return &entities.Chart{
		StarPositions:     map[string][]string{"紫微": {"命宮"}},
		FiveElementBureau: 4,
		LifeHouseIndex:    0,
		Houses: []entities.House{
			{Palace: "命宮", MajorStars: []string{"紫微"}},
		},
	}
}

func TestStartConversationCommand(t *testing.T) {
	svc, store := commandFixture(t)
	handler := NewStartConversationHandler(svc)
	id := valueobjects.NewSessionID()

	err := handler.Handle(context.Background(), commands.StartConversationCommand{
		SessionID: id,
		Chart:     commandChart(),
	})
	require.NoError(t, err)

	conv, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, conv.SystemPrompt)
}

func TestStartConversationCommandRejectsMissingChart(t *testing.T) {
	svc, _ := commandFixture(t)
	handler := NewStartConversationHandler(svc)

	err := handler.Handle(context.Background(), commands.StartConversationCommand{
		SessionID: valueobjects.NewSessionID(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid command")
}

func TestSummarizeConversationCommandRequiresHistory(t *testing.T) {
	svc, _ := commandFixture(t)
	id := valueobjects.NewSessionID()

	err := NewStartConversationHandler(svc).Handle(context.Background(), commands.StartConversationCommand{
		SessionID: id,
		Chart:     commandChart(),
	})
	require.NoError(t, err)

	err = NewSummarizeConversationHandler(svc).Handle(context.Background(), commands.SummarizeConversationCommand{SessionID: id})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestEndConversationCommandDeletesSession(t *testing.T) {
	svc, store := commandFixture(t)
	id := valueobjects.NewSessionID()

	err := NewStartConversationHandler(svc).Handle(context.Background(), commands.StartConversationCommand{
		SessionID: id,
		Chart:     commandChart(),
	})
	require.NoError(t, err)

	err = NewEndConversationHandler(svc).Handle(context.Background(), commands.EndConversationCommand{SessionID: id})
	require.NoError(t, err)

	_, err = store.GetByID(context.Background(), id)
	assert.True(t, apperrors.IsNotFound(err))
}
