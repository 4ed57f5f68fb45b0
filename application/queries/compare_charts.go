package queries

import (
	"errors"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/validators"
)

// relationshipTypes are the supported relationship framings for a
// compatibility report.
var relationshipTypes = map[string]bool{
	"romantic":   true,
	"business":   true,
	"family":     true,
	"friendship": true,
}

// CompareChartsQuery asks for the compatibility analysis of a chart pair
type CompareChartsQuery struct {
	Chart1 *entities.Chart
	Chart2 *entities.Chart
	// RelationshipType frames the narrative report. Defaults to romantic.
	RelationshipType string
	// IncludeReport requests a narrative report when the generator is
	// available. The score and element lists never depend on it.
	IncludeReport bool
}

// Validate validates the CompareChartsQuery
func (q CompareChartsQuery) Validate() error {
	if q.Chart1 == nil || q.Chart2 == nil {
		return errors.New("two charts are required")
	}
	if q.RelationshipType != "" && !relationshipTypes[q.RelationshipType] {
		return errors.New("unknown relationship type")
	}
	return validators.NewChartValidator().ValidatePair(q.Chart1, q.Chart2)
}

// CompareChartsResult is the computed compatibility outcome. Report is empty
// when the generator is unavailable, failed, or was not requested.
type CompareChartsResult struct {
	CompatibilityScore  int      `json:"compatibilityScore"`
	HarmoniousElements  []string `json:"harmoniousElements"`
	ConflictingElements []string `json:"conflictingElements"`
	RelationshipType    string   `json:"relationshipType"`
	Report              string   `json:"report,omitempty"`
	TokensInput         int      `json:"tokensInput,omitempty"`
	TokensOutput        int      `json:"tokensOutput,omitempty"`
}
