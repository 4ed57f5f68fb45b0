package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ziwei-backend/application/ports"
	"ziwei-backend/application/queries"
	"ziwei-backend/domain/core/services"
	"ziwei-backend/domain/events"
	"ziwei-backend/domain/knowledge"
)

// InterpretChartHandler handles rule-matching interpretation queries
type InterpretChartHandler struct {
	matcher   *services.RuleMatcher
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewInterpretChartHandler creates a new interpretation handler
func NewInterpretChartHandler(
	matcher *services.RuleMatcher,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *InterpretChartHandler {
	return &InterpretChartHandler{
		matcher:   matcher,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the interpretation query
func (h *InterpretChartHandler) Handle(ctx context.Context, query queries.InterpretChartQuery) (*queries.InterpretChartResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	matched := h.matcher.Match(query.Chart)

	if query.MinConsensus != "" {
		matched = h.matcher.FilterByConsensus(matched, knowledge.ConsensusLabel(query.MinConsensus))
	}

	dimensions := h.matcher.GroupByDimension(matched)

	flat := matched
	if query.RankByConfidence {
		flat = h.matcher.RankByConfidence(matched)
	}

	result := &queries.InterpretChartResult{
		Interpretations: flat,
		Dimensions:      dimensions,
		RuleCount:       len(flat),
	}

	event := events.NewChartInterpreted(uuid.NewString(), len(flat), len(dimensions), time.Now())
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Warn("Failed to publish interpretation event", zap.Error(err))
	}

	return result, nil
}
