package services

import (
	"ziwei-backend/domain/config"
	"ziwei-backend/domain/core/entities"
)

// CompatibilityScorer converts pattern analysis into a bounded numeric score.
// Each contribution is capped independently before summation; the final clamp
// is applied once at the end, so the score stays monotonic in every input.
type CompatibilityScorer struct {
	cfg *config.DomainConfig
}

// NewCompatibilityScorer creates a scorer with the given tunables
func NewCompatibilityScorer(cfg *config.DomainConfig) *CompatibilityScorer {
	return &CompatibilityScorer{cfg: cfg}
}

// Score computes the 0-100 compatibility score for a chart pair from its
// pattern analysis.
func (s *CompatibilityScorer) Score(chart1, chart2 *entities.Chart, patterns *CompatibilityPatterns) int {
	score := s.cfg.BaseScore

	score += capAt(len(patterns.Harmonious)*s.cfg.HarmoniousWeight, s.cfg.HarmoniousCap)
	score -= capAt(len(patterns.Conflicting)*s.cfg.ConflictingWeight, s.cfg.ConflictingCap)

	if patterns.FiveElementCompatibility {
		score += s.cfg.FiveElementBonus
	}
	if chart1.LifeHouseIndex == chart2.LifeHouseIndex {
		score += s.cfg.SameLifeHouseBonus
	}

	score += capAt(patterns.SharedStarCount*s.cfg.SharedStarWeight, s.cfg.SharedStarCap)

	if score < s.cfg.MinScore {
		score = s.cfg.MinScore
	}
	if score > s.cfg.MaxScore {
		score = s.cfg.MaxScore
	}
	return score
}

func capAt(value, limit int) int {
	if value > limit {
		return limit
	}
	return value
}
