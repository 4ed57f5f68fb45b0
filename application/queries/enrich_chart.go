package queries

import (
	"errors"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/services"
	"ziwei-backend/domain/core/validators"
)

// EnrichChartQuery asks for the knowledge-base enrichment of one chart
type EnrichChartQuery struct {
	Chart *entities.Chart
	// IncludeGuidance requests a structured life guidance narrative when the
	// generator is available.
	IncludeGuidance bool
}

// Validate validates the EnrichChartQuery
func (q EnrichChartQuery) Validate() error {
	if q.Chart == nil {
		return errors.New("chart is required")
	}
	return validators.NewChartValidator().Validate(q.Chart)
}

// LifeGuidance is the structured narrative supplement to an enrichment.
// Present only when requested and the generator succeeded.
type LifeGuidance struct {
	Synthesis   string   `json:"synthesis"`
	KeyPatterns []string `json:"keyPatterns"`
	Trajectory  string   `json:"trajectory"`
	Advice      string   `json:"advice"`
}

// EnrichChartResult carries the enrichment and the optional guidance
type EnrichChartResult struct {
	Interpretation *services.EnrichedChartInterpretation `json:"interpretation"`
	Guidance       *LifeGuidance                         `json:"guidance,omitempty"`
}
