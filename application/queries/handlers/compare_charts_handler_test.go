package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ziwei-backend/application/queries"
	"ziwei-backend/domain/config"
	"ziwei-backend/domain/core/services"
)

func newCompareHandler(gen *fakeGenerator) (*CompareChartsHandler, *recordingPublisher) {
	publisher := &recordingPublisher{}
	handler := NewCompareChartsHandler(
		services.NewPatternIdentifier(),
		services.NewCompatibilityScorer(config.DefaultDomainConfig()),
		gen,
		publisher,
		config.DefaultDomainConfig(),
		nopLogger(),
	)
	return handler, publisher
}

func TestCompareChartsIdentical(t *testing.T) {
	handler, publisher := newCompareHandler(&fakeGenerator{})

	result, err := handler.Handle(context.Background(), queries.CompareChartsQuery{
		Chart1: chartWith(map[string][]string{"紫微": {"命宮"}}),
		Chart2: chartWith(map[string][]string{"紫微": {"命宮"}}),
	})
	require.NoError(t, err)

	assert.Equal(t, 77, result.CompatibilityScore)
	assert.Equal(t, "romantic", result.RelationshipType)
	assert.Contains(t, result.HarmoniousElements, "Both have 紫微 (strong connection)")
	assert.Empty(t, result.ConflictingElements)
	assert.Empty(t, result.Report)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, "compatibility.scored", publisher.events[0].GetEventType())
}

func TestCompareChartsWithReport(t *testing.T) {
	gen := &fakeGenerator{available: true, text: "A balanced pairing."}
	handler, _ := newCompareHandler(gen)

	result, err := handler.Handle(context.Background(), queries.CompareChartsQuery{
		Chart1:           chartWith(map[string][]string{"紫微": {"命宮"}}),
		Chart2:           chartWith(map[string][]string{"天府": {"命宮"}}),
		RelationshipType: "business",
		IncludeReport:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "business", result.RelationshipType)
	assert.Equal(t, "A balanced pairing.", result.Report)
	assert.Equal(t, 200, result.TokensInput)
	assert.Equal(t, 150, result.TokensOutput)
	assert.Contains(t, result.HarmoniousElements, "紫微 + 天府 pattern (harmonious)")
}

func TestCompareChartsReportFailureKeepsScore(t *testing.T) {
	gen := &fakeGenerator{available: true, err: errors.New("quota exceeded")}
	handler, _ := newCompareHandler(gen)

	result, err := handler.Handle(context.Background(), queries.CompareChartsQuery{
		Chart1:        chartWith(map[string][]string{"七殺": {"命宮"}}),
		Chart2:        chartWith(map[string][]string{"破軍": {"命宮"}}),
		IncludeReport: true,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Report)
	assert.Contains(t, result.ConflictingElements, "七殺 + 破軍 pattern (challenging)")
	assert.Greater(t, result.CompatibilityScore, 0)
}

func TestCompareChartsRejectsUnknownRelationship(t *testing.T) {
	handler, _ := newCompareHandler(&fakeGenerator{})

	_, err := handler.Handle(context.Background(), queries.CompareChartsQuery{
		Chart1:           chartWith(map[string][]string{"紫微": {"命宮"}}),
		Chart2:           chartWith(map[string][]string{"紫微": {"命宮"}}),
		RelationshipType: "rivals",
	})
	assert.Error(t, err)
}
