package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ziwei-backend/domain/config"
	"ziwei-backend/domain/core/valueobjects"
)

func TestCompatibilityScorerIdenticalCharts(t *testing.T) {
	identifier := NewPatternIdentifier()
	scorer := NewCompatibilityScorer(config.DefaultDomainConfig())

	chart1 := chartWith(valueobjects.BureauWood, 0, "紫微")
	chart2 := chartWith(valueobjects.BureauWood, 0, "紫微")

	patterns := identifier.Identify(chart1, chart2)
	score := scorer.Score(chart1, chart2, patterns)

	// 50 base + 10 harmonious (shared star note + element note)
	// + 10 element + 5 life house + 2 overlap
	assert.Equal(t, 77, score)
}

func TestCompatibilityScorerBounds(t *testing.T) {
	identifier := NewPatternIdentifier()
	scorer := NewCompatibilityScorer(config.DefaultDomainConfig())

	t.Run("score never exceeds 100", func(t *testing.T) {
		stars := []string{"紫微", "天府", "天機", "太陽", "武曲", "天相",
			"太陰", "天梁", "貪狼", "巨門", "天同", "廉貞"}
		chart1 := chartWith(valueobjects.BureauWood, 0, stars...)
		chart2 := chartWith(valueobjects.BureauWood, 0, stars...)

		patterns := identifier.Identify(chart1, chart2)
		score := scorer.Score(chart1, chart2, patterns)
		assert.LessOrEqual(t, score, 100)
		assert.GreaterOrEqual(t, score, 0)
	})

	t.Run("heavily conflicting pair stays above zero", func(t *testing.T) {
		chart1 := chartWith(valueobjects.BureauWater, 0, "七殺", "火星", "天刑", "擎羊")
		chart2 := chartWith(valueobjects.BureauFire, 5, "破軍", "鈴星", "天羅", "陀羅")

		patterns := identifier.Identify(chart1, chart2)
		score := scorer.Score(chart1, chart2, patterns)
		assert.GreaterOrEqual(t, score, 0)
		assert.Less(t, score, 50)
	})
}

func TestCompatibilityScorerMonotonicity(t *testing.T) {
	identifier := NewPatternIdentifier()
	scorer := NewCompatibilityScorer(config.DefaultDomainConfig())

	base1 := chartWith(valueobjects.BureauWood, 0, "天機")
	base2 := chartWith(valueobjects.BureauWater, 1, "太陰")
	baseScore := scorer.Score(base1, base2, identifier.Identify(base1, base2))

	t.Run("adding a shared star does not lower the score", func(t *testing.T) {
		richer1 := chartWith(valueobjects.BureauWood, 0, "天機", "紫微")
		richer2 := chartWith(valueobjects.BureauWater, 1, "太陰", "紫微")
		richerScore := scorer.Score(richer1, richer2, identifier.Identify(richer1, richer2))
		assert.GreaterOrEqual(t, richerScore, baseScore)
	})

	t.Run("adding a conflicting combo does not raise the score", func(t *testing.T) {
		worse1 := chartWith(valueobjects.BureauWood, 0, "天機", "七殺")
		worse2 := chartWith(valueobjects.BureauWater, 1, "太陰", "破軍")
		worseScore := scorer.Score(worse1, worse2, identifier.Identify(worse1, worse2))
		assert.LessOrEqual(t, worseScore, baseScore)
	})
}

func TestCompatibilityScorerCapsContributions(t *testing.T) {
	scorer := NewCompatibilityScorer(config.DefaultDomainConfig())

	chart1 := chartWith(valueobjects.BureauWood, 0, "天機")
	chart2 := chartWith(valueobjects.BureauWood, 0, "天機")

	patterns := &CompatibilityPatterns{
		Harmonious:               make([]string, 50),
		Conflicting:              nil,
		FiveElementCompatibility: false,
		SharedStarCount:          0,
	}

	// harmonious contribution is capped at 20 regardless of list length
	score := scorer.Score(chart1, chart2, patterns)
	assert.Equal(t, 50+20+5, score)
}
