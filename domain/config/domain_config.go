package config

import (
	"fmt"
	"time"
)

// DomainConfig holds every tunable business constant. The defaults mirror
// the empirically validated values; deployments may override them but the
// scoring invariants (caps before summation, final clamp) are fixed in code.
type DomainConfig struct {
	// Compatibility scoring
	BaseScore           int
	HarmoniousWeight    int
	HarmoniousCap       int
	ConflictingWeight   int
	ConflictingCap      int
	FiveElementBonus    int
	SameLifeHouseBonus  int
	SharedStarWeight    int
	SharedStarCap       int
	MinScore            int
	MaxScore            int

	// Conversation windowing
	HistoryWindow      int
	SummarizeThreshold int
	SummaryKeepRecent  int
	ContextPalaceCount int

	// Follow-up suggestions
	MaxFollowUpQuestions int

	// Conversation quality scoring
	QualityMessageWeight    int
	QualityMessageCap       int
	QualityTopicWeight      int
	QualityTopicCap         int
	QualityLowTokenBound    int
	QualityHighTokenBound   int
	QualityLowTokenPoints   int
	QualityHighTokenPoints  int
	QualityEngagedThreshold int
	QualityEngagedPoints    int
	QualityBasePoints       int
	QualityMax              int

	// Narrative generator budgets
	GeneratorTimeout       time.Duration
	ChatMaxOutputTokens    int
	ReportMaxOutputTokens  int
	SummaryMaxOutputTokens int

	// Session lifecycle
	SessionTTL time.Duration
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		BaseScore:          50,
		HarmoniousWeight:   5,
		HarmoniousCap:      20,
		ConflictingWeight:  3,
		ConflictingCap:     15,
		FiveElementBonus:   10,
		SameLifeHouseBonus: 5,
		SharedStarWeight:   2,
		SharedStarCap:      15,
		MinScore:           0,
		MaxScore:           100,

		HistoryWindow:      10,
		SummarizeThreshold: 15,
		SummaryKeepRecent:  5,
		ContextPalaceCount: 3,

		MaxFollowUpQuestions: 4,

		QualityMessageWeight:    2,
		QualityMessageCap:       30,
		QualityTopicWeight:      3,
		QualityTopicCap:         20,
		QualityLowTokenBound:    500,
		QualityHighTokenBound:   1000,
		QualityLowTokenPoints:   20,
		QualityHighTokenPoints:  10,
		QualityEngagedThreshold: 5,
		QualityEngagedPoints:    30,
		QualityBasePoints:       15,
		QualityMax:              100,

		GeneratorTimeout:       30 * time.Second,
		ChatMaxOutputTokens:    1500,
		ReportMaxOutputTokens:  5000,
		SummaryMaxOutputTokens: 500,

		SessionTTL: 24 * time.Hour,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	cfg := DefaultDomainConfig()

	// Tighter generator budget in production
	cfg.GeneratorTimeout = 20 * time.Second
	cfg.SessionTTL = 12 * time.Hour

	return cfg
}

// DevelopmentDomainConfig returns development-specific configuration
func DevelopmentDomainConfig() *DomainConfig {
	cfg := DefaultDomainConfig()

	cfg.GeneratorTimeout = 60 * time.Second
	cfg.SessionTTL = 72 * time.Hour

	return cfg
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}

// Validate checks that overridden values preserve the scoring invariants
func (c *DomainConfig) Validate() error {
	if c.MinScore > c.MaxScore {
		return fmt.Errorf("min score %d exceeds max score %d", c.MinScore, c.MaxScore)
	}
	if c.HarmoniousWeight < 0 || c.ConflictingWeight < 0 || c.SharedStarWeight < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("history window must be positive")
	}
	if c.SummaryKeepRecent >= c.SummarizeThreshold {
		return fmt.Errorf("summary keep-recent %d must be below the summarize threshold %d",
			c.SummaryKeepRecent, c.SummarizeThreshold)
	}
	if c.MaxFollowUpQuestions <= 0 {
		return fmt.Errorf("follow-up question cap must be positive")
	}
	return nil
}
