package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/knowledge"
)

func TestRuleMatcherMatch(t *testing.T) {
	matcher := NewRuleMatcher(loadedRegistry(t))
	chart := testChart()

	t.Run("fires expected rules in declaration order", func(t *testing.T) {
		matched := matcher.Match(chart)
		require.Len(t, matched, 5)

		assert.Equal(t, "rule-ziwei-ming", matched[0].RuleID)
		assert.Equal(t, "star-紫微", matched[0].Scope)
		assert.Equal(t, "性格", matched[0].Dimension)
		assert.Equal(t, 0.82, matched[0].Confidence)

		assert.Equal(t, "rule-tianfu", matched[1].RuleID)
		assert.Equal(t, "rule-lu", matched[2].RuleID)
		assert.Equal(t, "transformation-祿", matched[2].Scope)
		assert.Equal(t, "rule-ziwei-taiyang", matched[3].RuleID)
		assert.Equal(t, "pattern-紫微-太陽", matched[3].Scope)
		assert.Equal(t, "rule-fuqi-occupied", matched[4].RuleID)
	})

	t.Run("is deterministic across runs", func(t *testing.T) {
		first := matcher.Match(chart)
		second := matcher.Match(chart)
		assert.Equal(t, first, second)
	})

	t.Run("palace-conditioned star rule needs that placement", func(t *testing.T) {
		moved := testChart()
		moved.StarPositions["紫微"] = []string{"官祿宮"}
		moved.Houses[0].MajorStars = nil
		moved.Houses[3].MajorStars = []string{"太陽", "紫微"}

		matched := matcher.Match(moved)
		for _, interp := range matched {
			assert.NotEqual(t, "rule-ziwei-ming", interp.RuleID)
		}
	})

	t.Run("pattern rule needs every star placed", func(t *testing.T) {
		partial := testChart()
		delete(partial.StarPositions, "太陽")

		matched := matcher.Match(partial)
		for _, interp := range matched {
			assert.NotEqual(t, "rule-ziwei-taiyang", interp.RuleID)
		}
	})

	t.Run("palace rule needs at least one major star", func(t *testing.T) {
		empty := testChart()
		empty.Houses[2].MajorStars = nil

		matched := matcher.Match(empty)
		for _, interp := range matched {
			assert.NotEqual(t, "rule-fuqi-occupied", interp.RuleID)
		}
	})

	t.Run("nil chart matches nothing", func(t *testing.T) {
		assert.Empty(t, matcher.Match(nil))
	})
}

func TestRuleMatcherGroupByDimension(t *testing.T) {
	matcher := NewRuleMatcher(loadedRegistry(t))

	interps := []MatchedInterpretation{
		{Dimension: "性格", Confidence: 0.6},
		{Dimension: "財運", Confidence: 0.9},
		{Dimension: "性格", Confidence: 0.8},
	}

	groups := matcher.GroupByDimension(interps)
	require.Len(t, groups, 2)

	assert.Equal(t, "財運", groups[0].Dimension)
	assert.Equal(t, 0.9, groups[0].AvgConfidence)
	assert.Equal(t, "性格", groups[1].Dimension)
	assert.InDelta(t, 0.7, groups[1].AvgConfidence, 1e-9)
	assert.Len(t, groups[1].Interpretations, 2)
}

func TestRuleMatcherFilterByConsensus(t *testing.T) {
	matcher := NewRuleMatcher(loadedRegistry(t))

	interps := []MatchedInterpretation{
		{RuleID: "a", Consensus: knowledge.ConsensusAgreed},
		{RuleID: "b", Consensus: knowledge.ConsensusDisputed},
		{RuleID: "c", Consensus: knowledge.ConsensusExperimental},
	}

	strict := matcher.FilterByConsensus(interps, knowledge.ConsensusAgreed)
	require.Len(t, strict, 1)
	assert.Equal(t, "a", strict[0].RuleID)

	loose := matcher.FilterByConsensus(interps, knowledge.ConsensusDisputed)
	assert.Len(t, loose, 2)

	all := matcher.FilterByConsensus(interps, knowledge.ConsensusExperimental)
	assert.Len(t, all, 3)
}

func TestRuleMatcherRankByConfidence(t *testing.T) {
	matcher := NewRuleMatcher(loadedRegistry(t))

	interps := []MatchedInterpretation{
		{RuleID: "low", Confidence: 0.5},
		{RuleID: "high", Confidence: 0.9},
		{RuleID: "mid", Confidence: 0.7},
	}

	ranked := matcher.RankByConfidence(interps)
	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].RuleID)
	assert.Equal(t, "mid", ranked[1].RuleID)
	assert.Equal(t, "low", ranked[2].RuleID)

	// input untouched
	assert.Equal(t, "low", interps[0].RuleID)
}

func TestRuleMatcherEmptyChart(t *testing.T) {
	matcher := NewRuleMatcher(loadedRegistry(t))
	assert.Empty(t, matcher.Match(&entities.Chart{}))
}
