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

// CompareChartsHandler handles compatibility queries. The score and element
// lists are always computed locally; the narrative report is best-effort.
type CompareChartsHandler struct {
	identifier *services.PatternIdentifier
	scorer     *services.CompatibilityScorer
	generator  ports.NarrativeGenerator
	publisher  ports.EventPublisher
	cfg        *config.DomainConfig
	logger     *zap.Logger
}

// NewCompareChartsHandler creates a new compatibility handler
func NewCompareChartsHandler(
	identifier *services.PatternIdentifier,
	scorer *services.CompatibilityScorer,
	generator ports.NarrativeGenerator,
	publisher ports.EventPublisher,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *CompareChartsHandler {
	return &CompareChartsHandler{
		identifier: identifier,
		scorer:     scorer,
		generator:  generator,
		publisher:  publisher,
		cfg:        cfg,
		logger:     logger,
	}
}

// Handle executes the compatibility query
func (h *CompareChartsHandler) Handle(ctx context.Context, query queries.CompareChartsQuery) (*queries.CompareChartsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	relationshipType := query.RelationshipType
	if relationshipType == "" {
		relationshipType = "romantic"
	}

	patterns := h.identifier.Identify(query.Chart1, query.Chart2)
	score := h.scorer.Score(query.Chart1, query.Chart2, patterns)

	result := &queries.CompareChartsResult{
		CompatibilityScore:  score,
		HarmoniousElements:  patterns.Harmonious,
		ConflictingElements: patterns.Conflicting,
		RelationshipType:    relationshipType,
	}

	if query.IncludeReport && h.generator.Available() {
		h.attachReport(ctx, query, relationshipType, patterns, score, result)
	}

	event := events.NewCompatibilityScored(uuid.NewString(), score, relationshipType, result.Report != "", time.Now())
	if err := h.publisher.Publish(ctx, event); err != nil {
		h.logger.Warn("Failed to publish compatibility event", zap.Error(err))
	}

	return result, nil
}

// attachReport asks the generator for a narrative report. Failures are logged
// and leave the computed result untouched.
func (h *CompareChartsHandler) attachReport(
	ctx context.Context,
	query queries.CompareChartsQuery,
	relationshipType string,
	patterns *services.CompatibilityPatterns,
	score int,
	result *queries.CompareChartsResult,
) {
	genCtx, cancel := context.WithTimeout(ctx, h.cfg.GeneratorTimeout)
	defer cancel()

	reply, err := h.generator.Generate(genCtx, ports.NarrativeRequest{
		SystemPrompt:    compatibilityPrompt(query.Chart1, query.Chart2, relationshipType, patterns, score),
		MaxOutputTokens: h.cfg.ReportMaxOutputTokens,
	})
	if err != nil {
		h.logger.Warn("Compatibility report generation failed",
			zap.String("relationshipType", relationshipType),
			zap.Error(err))
		return
	}

	result.Report = reply.Text
	result.TokensInput = reply.TokensInput
	result.TokensOutput = reply.TokensOutput
}
