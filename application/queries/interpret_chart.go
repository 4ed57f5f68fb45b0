package queries

import (
	"errors"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/services"
	"ziwei-backend/domain/core/validators"
	"ziwei-backend/domain/knowledge"
)

// InterpretChartQuery asks for rule-matched interpretations of one chart
type InterpretChartQuery struct {
	Chart *entities.Chart
	// MinConsensus filters out interpretations below this consensus level.
	// Empty means no filtering.
	MinConsensus string
	// RankByConfidence orders the flat list by confidence instead of rule
	// declaration order.
	RankByConfidence bool
}

// Validate validates the InterpretChartQuery
func (q InterpretChartQuery) Validate() error {
	if q.Chart == nil {
		return errors.New("chart is required")
	}
	if q.MinConsensus != "" && !consensusLabelKnown(q.MinConsensus) {
		return errors.New("unknown consensus level")
	}
	return validators.NewChartValidator().Validate(q.Chart)
}

func consensusLabelKnown(label string) bool {
	switch knowledge.ConsensusLabel(label) {
	case knowledge.ConsensusAgreed, knowledge.ConsensusDisputed, knowledge.ConsensusExperimental:
		return true
	}
	return false
}

// InterpretChartResult carries the matched interpretations and their
// dimension grouping.
type InterpretChartResult struct {
	Interpretations []services.MatchedInterpretation `json:"interpretations"`
	Dimensions      []services.DimensionGroup        `json:"dimensions"`
	RuleCount       int                              `json:"ruleCount"`
}
