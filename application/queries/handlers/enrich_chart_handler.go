package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ziwei-backend/application/ports"
	"ziwei-backend/application/queries"
	"ziwei-backend/domain/config"
	"ziwei-backend/domain/core/services"
	"ziwei-backend/domain/events"
)

// EnrichChartHandler handles knowledge-base enrichment queries
type EnrichChartHandler struct {
	enricher  *services.EnrichmentAggregator
	matcher   *services.RuleMatcher
	generator ports.NarrativeGenerator
	publisher ports.EventPublisher
	cfg       *config.DomainConfig
	logger    *zap.Logger
}

// NewEnrichChartHandler creates a new enrichment handler
func NewEnrichChartHandler(
	enricher *services.EnrichmentAggregator,
	matcher *services.RuleMatcher,
	generator ports.NarrativeGenerator,
	publisher ports.EventPublisher,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *EnrichChartHandler {
	return &EnrichChartHandler{
		enricher:  enricher,
		matcher:   matcher,
		generator: generator,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// Handle executes the enrichment query
func (h *EnrichChartHandler) Handle(ctx context.Context, query queries.EnrichChartQuery) (*queries.EnrichChartResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	enriched := h.enricher.Enrich(query.Chart)
	result := &queries.EnrichChartResult{Interpretation: enriched}

	if query.IncludeGuidance && h.generator.Available() {
		result.Guidance = h.generateGuidance(ctx, query)
	}

	event := events.NewChartEnriched(uuid.NewString(),
		enriched.KnowledgeCoverage.PalacesCovered,
		enriched.KnowledgeCoverage.StarsCovered,
		time.Now())
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Warn("Failed to publish enrichment event", zap.Error(err))
	}

	return result, nil
}

// generateGuidance asks the generator for a structured life guidance
// narrative over the matched rules. Failures yield nil, never an error.
func (h *EnrichChartHandler) generateGuidance(ctx context.Context, query queries.EnrichChartQuery) *queries.LifeGuidance {
	matched := h.matcher.Match(query.Chart)

	genCtx, cancel := context.WithTimeout(ctx, h.cfg.GeneratorTimeout)
	defer cancel()

	sections, _, err := h.generator.GenerateSections(genCtx, ports.NarrativeRequest{
		SystemPrompt:    guidancePrompt(query.Chart, matched),
		MaxOutputTokens: h.cfg.ReportMaxOutputTokens,
	})
	if err != nil {
		h.logger.Warn("Life guidance generation failed", zap.Error(err))
		return nil
	}

	return &queries.LifeGuidance{
		Synthesis:   sections.Synthesis,
		KeyPatterns: sections.KeyPatterns,
		Trajectory:  sections.Trajectory,
		Advice:      sections.Advice,
	}
}
