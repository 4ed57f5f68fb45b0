package ports

import (
	"context"

	"ziwei-backend/domain/core/valueobjects"
)

// NarrativeRequest is one free-text synthesis call to the generator
type NarrativeRequest struct {
	SystemPrompt    string
	Messages        []valueobjects.Message
	MaxOutputTokens int
}

// NarrativeResult is the generator's reply with token accounting
type NarrativeResult struct {
	Text         string
	TokensInput  int
	TokensOutput int
	Model        string
}

// NarrativeSections is the structured report response used for compatibility
// and life guidance reports.
type NarrativeSections struct {
	Synthesis   string   `json:"synthesis"`
	KeyPatterns []string `json:"key_patterns"`
	Trajectory  string   `json:"trajectory"`
	Advice      string   `json:"advice"`
}

// NarrativeGenerator produces free-text narrative from a structured request.
// Callers never block their own computed outputs on this collaborator: when
// it is unavailable or fails, the computed values ship without narrative.
type NarrativeGenerator interface {
	// Available reports whether the generator has credentials configured
	Available() bool

	// Generate produces a plain text reply
	Generate(ctx context.Context, req NarrativeRequest) (*NarrativeResult, error)

	// GenerateSections produces a structured report
	GenerateSections(ctx context.Context, req NarrativeRequest) (*NarrativeSections, *NarrativeResult, error)
}
