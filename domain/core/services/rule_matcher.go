// Package services holds the pure interpretation logic. Everything here is
// deterministic given a chart and a loaded knowledge registry; no service
// touches the network or mutates its inputs.
package services

import (
	"fmt"
	"sort"
	"strings"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/knowledge"
)

// MatchedInterpretation is one rule firing against a chart
type MatchedInterpretation struct {
	RuleID     string                   `json:"ruleId"`
	Scope      string                   `json:"scope"`
	Dimension  string                   `json:"dimension"`
	Text       string                   `json:"text"`
	TextEn     string                   `json:"textEn,omitempty"`
	Confidence float64                  `json:"confidence"`
	Consensus  knowledge.ConsensusLabel `json:"consensus"`
}

// DimensionGroup collects the interpretations speaking to one life dimension
type DimensionGroup struct {
	Dimension       string                  `json:"dimension"`
	Interpretations []MatchedInterpretation `json:"interpretations"`
	AvgConfidence   float64                 `json:"avgConfidence"`
}

// RuleMatcher evaluates every loaded rule against a chart in a single pass.
// Rules are independent of each other; there is no chaining and no feedback.
type RuleMatcher struct {
	registry *knowledge.Registry
}

// NewRuleMatcher creates a matcher over the given registry
func NewRuleMatcher(registry *knowledge.Registry) *RuleMatcher {
	return &RuleMatcher{registry: registry}
}

// Match evaluates each rule's predicate against the chart and returns the
// firings in rule declaration order. Re-running on the same chart and rule
// set yields an identical list.
func (m *RuleMatcher) Match(chart *entities.Chart) []MatchedInterpretation {
	matched := make([]MatchedInterpretation, 0)
	if chart == nil {
		return matched
	}

	for _, rule := range m.registry.Rules() {
		scope, ok := m.evaluate(&rule, chart)
		if !ok {
			continue
		}
		matched = append(matched, MatchedInterpretation{
			RuleID:     rule.ID,
			Scope:      scope,
			Dimension:  rule.Interpretation.Dimension,
			Text:       rule.Interpretation.Zh,
			TextEn:     rule.Interpretation.En,
			Confidence: rule.Statistics.ConfidenceLevel,
			Consensus:  rule.Consensus,
		})
	}
	return matched
}

// evaluate runs the scope-specific predicate and, on a hit, returns the
// human-readable scope label for the firing.
func (m *RuleMatcher) evaluate(rule *knowledge.Rule, chart *entities.Chart) (string, bool) {
	switch rule.Scope {
	case knowledge.ScopeStar:
		if rule.Condition.Palace != "" {
			if !chart.StarInPalace(rule.Condition.Star, rule.Condition.Palace) {
				return "", false
			}
		} else if !chart.HasStar(rule.Condition.Star) {
			return "", false
		}
		return fmt.Sprintf("star-%s", rule.Condition.Star), true

	case knowledge.ScopeTransformation:
		if !chart.HasTransformation(rule.Condition.Transformation) {
			return "", false
		}
		return fmt.Sprintf("transformation-%s", rule.Condition.Transformation), true

	case knowledge.ScopePattern:
		// every pattern star must be placed; co-location is not required
		for _, star := range rule.Condition.Pattern {
			if !chart.HasStar(star) {
				return "", false
			}
		}
		return "pattern-" + strings.Join(rule.Condition.Pattern, "-"), true

	case knowledge.ScopePalace:
		for _, house := range chart.Houses {
			if house.Palace == rule.Condition.Palace && len(house.MajorStars) > 0 {
				return fmt.Sprintf("palace-%s", rule.Condition.Palace), true
			}
		}
		return "", false
	}
	return "", false
}

// GroupByDimension buckets interpretations by life dimension and orders the
// groups by average confidence, highest first.
func (m *RuleMatcher) GroupByDimension(interpretations []MatchedInterpretation) []DimensionGroup {
	buckets := make(map[string][]MatchedInterpretation)
	var order []string
	for _, interp := range interpretations {
		if _, seen := buckets[interp.Dimension]; !seen {
			order = append(order, interp.Dimension)
		}
		buckets[interp.Dimension] = append(buckets[interp.Dimension], interp)
	}

	groups := make([]DimensionGroup, 0, len(order))
	for _, dimension := range order {
		interps := buckets[dimension]
		var sum float64
		for _, interp := range interps {
			sum += interp.Confidence
		}
		groups = append(groups, DimensionGroup{
			Dimension:       dimension,
			Interpretations: interps,
			AvgConfidence:   sum / float64(len(interps)),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].AvgConfidence > groups[j].AvgConfidence
	})
	return groups
}

// FilterByConsensus keeps the interpretations at or above the given
// minimum consensus level.
func (m *RuleMatcher) FilterByConsensus(interpretations []MatchedInterpretation, min knowledge.ConsensusLabel) []MatchedInterpretation {
	filtered := make([]MatchedInterpretation, 0, len(interpretations))
	for _, interp := range interpretations {
		if interp.Consensus.AtLeast(min) {
			filtered = append(filtered, interp)
		}
	}
	return filtered
}

// RankByConfidence returns a copy sorted by confidence, highest first. Ties
// keep their match order.
func (m *RuleMatcher) RankByConfidence(interpretations []MatchedInterpretation) []MatchedInterpretation {
	ranked := make([]MatchedInterpretation, len(interpretations))
	copy(ranked, interpretations)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})
	return ranked
}
