package handlers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ziwei-backend/application/ports"
	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/events"
	"ziwei-backend/domain/knowledge"
	"ziwei-backend/infrastructure/persistence/seed"
)

type fakeGenerator struct {
	available bool
	text      string
	sections  *ports.NarrativeSections
	err       error
}

func (g *fakeGenerator) Available() bool { return g.available }

func (g *fakeGenerator) Generate(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &ports.NarrativeResult{Text: g.text, TokensInput: 200, TokensOutput: 150}, nil
}

func (g *fakeGenerator) GenerateSections(ctx context.Context, req ports.NarrativeRequest) (*ports.NarrativeSections, *ports.NarrativeResult, error) {
	if g.err != nil {
		return nil, nil, g.err
	}
	if g.sections == nil {
		return nil, nil, errors.New("no sections configured")
	}
	return g.sections, &ports.NarrativeResult{TokensInput: 200, TokensOutput: 150}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.DomainEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, batch...)
	return nil
}

func loadedRegistry(t *testing.T) *knowledge.Registry {
	t.Helper()
	registry := knowledge.NewRegistry()
	require.NoError(t, registry.Load(context.Background(), seed.NewStore()))
	return registry
}

func nopLogger() *zap.Logger { return zap.NewNop() }

func chartWith(stars map[string][]string) *entities.Chart {
	houses := make(map[string][]string)
	for star, palaces := range stars {
		for _, palace := range palaces {
			houses[palace] = append(houses[palace], star)
		}
	}
	chart := &entities.Chart{
		StarPositions:     stars,
		FiveElementBureau: 4,
		LifeHouseIndex:    0,
	}
	for palace, majors := range houses {
		chart.Houses = append(chart.Houses, entities.House{Palace: palace, MajorStars: majors})
	}
	return chart
}
