package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ziwei-backend/application/ports"
	"ziwei-backend/domain/config"
	"ziwei-backend/domain/core/entities"
	domainservices "ziwei-backend/domain/core/services"
	"ziwei-backend/domain/core/valueobjects"
	"ziwei-backend/domain/events"
	apperrors "ziwei-backend/pkg/errors"
)

type stubStore struct {
	mu    sync.Mutex
	convs map[valueobjects.SessionID]*entities.Conversation

	saveErr error
}

func newStubStore() *stubStore {
	return &stubStore{convs: make(map[valueobjects.SessionID]*entities.Conversation)}
}

func (s *stubStore) Save(ctx context.Context, conv *entities.Conversation) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convs[conv.ID] = conv
	return nil
}

func (s *stubStore) GetByID(ctx context.Context, id valueobjects.SessionID) (*entities.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.convs[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("conversation")
	}
	return conv, nil
}

func (s *stubStore) Delete(ctx context.Context, id valueobjects.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.convs, id)
	return nil
}

func (s *stubStore) DeleteExpired(ctx context.Context) (int, error) { return 0, nil }

type stubLock struct{}

func (stubLock) AcquireLock(ctx context.Context, sessionID string) (ports.ReleaseFunc, error) {
	return func(context.Context) error { return nil }, nil
}

type stubGenerator struct {
	available bool
	reply     string
	err       error

	lastRequest ports.NarrativeRequest
}

func (g *stubGenerator) Available() bool { return g.available }

func (g *stubGenerator) Generate(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeResult, error) {
	g.lastRequest = req
	if g.err != nil {
		return nil, g.err
	}
	return &ports.NarrativeResult{
		Text:         g.reply,
		TokensInput:  120,
		TokensOutput: 80,
		Model:        "gemini-2.0-flash",
	}, nil
}

func (g *stubGenerator) GenerateSections(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeSections, *ports.NarrativeResult, error) {
	return nil, nil, errors.New("not used")
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *capturingPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, batch...)
	return nil
}

func (p *capturingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.GetEventType())
	}
	return out
}

func testChart() *entities.Chart {
	return &entities.Chart{
		StarPositions:     map[string][]string{"紫微": {"命宮"}},
		FiveElementBureau: 4,
		LifeHouseIndex:    0,
		Houses: []entities.House{
			{Palace: "命宮", MajorStars: []string{"紫微"}},
		},
	}
}

func newTestService(t *testing.T, gen *stubGenerator) (*ConversationService, *stubStore, *capturingPublisher) {
	t.Helper()
	store := newStubStore()
	publisher := &capturingPublisher{}
	svc := NewConversationService(
		store,
		stubLock{},
		domainservices.NewContextBuilder(config.DefaultDomainConfig()),
		gen,
		publisher,
		config.DefaultDomainConfig(),
		"gemini-2.0-flash",
		zap.NewNop(),
	)
	return svc, store, publisher
}

func TestStartCreatesSession(t *testing.T) {
	svc, store, publisher := newTestService(t, &stubGenerator{})
	id := valueobjects.NewSessionID()

	conv, err := svc.Start(context.Background(), id, testChart())
	require.NoError(t, err)

	assert.Equal(t, id, conv.ID)
	assert.NotEmpty(t, conv.SystemPrompt)
	assert.NotEmpty(t, conv.ChartContext)

	saved, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, saved.ID)

	assert.Contains(t, publisher.types(), "conversation.started")
}

func TestTurnWithGenerator(t *testing.T) {
	gen := &stubGenerator{available: true, reply: "Your Ming palace shows leadership."}
	svc, store, _ := newTestService(t, gen)
	id := valueobjects.NewSessionID()

	_, err := svc.Start(context.Background(), id, testChart())
	require.NoError(t, err)

	result, err := svc.Turn(context.Background(), id, "What does my chart say about my career?")
	require.NoError(t, err)

	assert.True(t, result.ReplyAvailable)
	assert.Equal(t, gen.reply, result.Reply)
	assert.Equal(t, 200, result.TokensUsed)
	assert.Contains(t, result.Topics, "career")
	assert.NotEmpty(t, result.SuggestedQuestions)
	assert.Greater(t, result.QualityScore, 0)

	conv, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 2, conv.MessageCount())

	t.Run("payload carries the system history plus the new message", func(t *testing.T) {
		require.NotEmpty(t, gen.lastRequest.Messages)
		last := gen.lastRequest.Messages[len(gen.lastRequest.Messages)-1]
		assert.Equal(t, valueobjects.RoleUser, last.Role)
		assert.Equal(t, "What does my chart say about my career?", last.Content)
		assert.NotEmpty(t, gen.lastRequest.SystemPrompt)
	})
}

func TestTurnSurvivesGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{available: true, err: errors.New("upstream timeout")}
	svc, store, _ := newTestService(t, gen)
	id := valueobjects.NewSessionID()

	_, err := svc.Start(context.Background(), id, testChart())
	require.NoError(t, err)

	result, err := svc.Turn(context.Background(), id, "Tell me about my money and wealth")
	require.NoError(t, err)

	assert.False(t, result.ReplyAvailable)
	assert.Empty(t, result.Reply)
	assert.Contains(t, result.Topics, "finance")

	// The user's message is recorded even though the reply was lost.
	conv, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, conv.MessageCount())
}

func TestTurnWithoutGenerator(t *testing.T) {
	svc, _, _ := newTestService(t, &stubGenerator{available: false})
	id := valueobjects.NewSessionID()

	_, err := svc.Start(context.Background(), id, testChart())
	require.NoError(t, err)

	result, err := svc.Turn(context.Background(), id, "hello there")
	require.NoError(t, err)
	assert.False(t, result.ReplyAvailable)
}

func TestTurnUnknownSession(t *testing.T) {
	svc, _, _ := newTestService(t, &stubGenerator{})

	_, err := svc.Turn(context.Background(), valueobjects.NewSessionID(), "hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSummarizeBelowThreshold(t *testing.T) {
	svc, _, _ := newTestService(t, &stubGenerator{available: true, reply: "summary"})
	id := valueobjects.NewSessionID()

	_, err := svc.Start(context.Background(), id, testChart())
	require.NoError(t, err)

	_, err = svc.Summarize(context.Background(), id)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSummarizeCondensesHistory(t *testing.T) {
	gen := &stubGenerator{available: true, reply: "The user asked mostly about career."}
	svc, store, publisher := newTestService(t, gen)
	id := valueobjects.NewSessionID()

	_, err := svc.Start(context.Background(), id, testChart())
	require.NoError(t, err)

	conv, err := store.GetByID(context.Background(), id)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		_, err = conv.AppendUserMessage("question about work")
		require.NoError(t, err)
		_, err = conv.AppendAssistantMessage("an answer", entities.TokenUsage{Input: 10, Output: 10})
		require.NoError(t, err)
	}
	require.NoError(t, store.Save(context.Background(), conv))

	summary, err := svc.Summarize(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, gen.reply, summary)

	conv, err = store.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, gen.reply, conv.Summary)
	assert.Contains(t, publisher.types(), "conversation.summarized")
}

func TestEndReturnsFinalReportAndDeletes(t *testing.T) {
	gen := &stubGenerator{available: true, reply: "reply"}
	svc, store, publisher := newTestService(t, gen)
	id := valueobjects.NewSessionID()

	_, err := svc.Start(context.Background(), id, testChart())
	require.NoError(t, err)
	_, err = svc.Turn(context.Background(), id, "What about my relationships?")
	require.NoError(t, err)

	report, err := svc.End(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, report.SessionID)
	assert.Equal(t, 2, report.MessageCount)
	assert.Contains(t, report.Topics, "relationship")
	assert.Greater(t, report.QualityScore, 0)
	assert.Contains(t, publisher.types(), "conversation.ended")

	_, err = store.GetByID(context.Background(), id)
	assert.True(t, apperrors.IsNotFound(err))
}
