package knowledge

import "fmt"

// RuleScope tags the variant shape of a rule's condition
type RuleScope string

const (
	ScopeStar           RuleScope = "star"
	ScopeTransformation RuleScope = "transformation"
	ScopePattern        RuleScope = "pattern"
	ScopePalace         RuleScope = "palace"
)

// IsValid reports whether the scope is a known variant
func (s RuleScope) IsValid() bool {
	switch s {
	case ScopeStar, ScopeTransformation, ScopePattern, ScopePalace:
		return true
	}
	return false
}

// ConsensusLabel tags how widely an interpretation is agreed upon
type ConsensusLabel string

const (
	ConsensusAgreed       ConsensusLabel = "consensus"
	ConsensusDisputed     ConsensusLabel = "disputed"
	ConsensusExperimental ConsensusLabel = "experimental"
)

// consensusRank orders labels for minimum-consensus filtering
var consensusRank = map[ConsensusLabel]int{
	ConsensusAgreed:       3,
	ConsensusDisputed:     2,
	ConsensusExperimental: 1,
}

// AtLeast reports whether the label meets the given minimum consensus
func (c ConsensusLabel) AtLeast(min ConsensusLabel) bool {
	return consensusRank[c] >= consensusRank[min]
}

// RuleCondition is the scope-dependent predicate input. Exactly the fields
// matching the rule's scope are set; the rest stay empty.
type RuleCondition struct {
	Star           string   `json:"star,omitempty" dynamodbav:"star,omitempty"`
	Palace         string   `json:"palace,omitempty" dynamodbav:"palace,omitempty"`
	Transformation string   `json:"transformation,omitempty" dynamodbav:"transformation,omitempty"`
	Pattern        []string `json:"pattern,omitempty" dynamodbav:"pattern,omitempty"`
}

// Interpretation is the bilingual reading a rule contributes when it fires,
// tagged with the life dimension it speaks to.
type Interpretation struct {
	Zh        string `json:"zh" dynamodbav:"zh"`
	En        string `json:"en" dynamodbav:"en"`
	Dimension string `json:"dimension" dynamodbav:"dimension"`
}

// RuleStatistics carries the empirical backing of a rule
type RuleStatistics struct {
	SampleSize      int     `json:"sample_size" dynamodbav:"sample_size"`
	MatchRate       float64 `json:"match_rate" dynamodbav:"match_rate"`
	ConfidenceLevel float64 `json:"confidence_level" dynamodbav:"confidence_level"`
}

// Rule is one static interpretation rule. Rules are flat and evaluated
// independently; there is no chaining.
type Rule struct {
	ID             string         `json:"id" dynamodbav:"id"`
	Scope          RuleScope      `json:"scope" dynamodbav:"scope"`
	Condition      RuleCondition  `json:"condition" dynamodbav:"condition"`
	Interpretation Interpretation `json:"interpretation" dynamodbav:"interpretation"`
	Consensus      ConsensusLabel `json:"consensus_label" dynamodbav:"consensus_label"`
	Statistics     RuleStatistics `json:"statistics" dynamodbav:"statistics"`
}

// Validate rejects malformed rules at load time. The condition must carry
// exactly the fields its scope requires.
func (r *Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rule: id is required")
	}
	if !r.Scope.IsValid() {
		return fmt.Errorf("rule %s: unknown scope %q", r.ID, r.Scope)
	}

	switch r.Scope {
	case ScopeStar:
		if r.Condition.Star == "" {
			return fmt.Errorf("rule %s: star scope requires a star", r.ID)
		}
	case ScopeTransformation:
		if r.Condition.Transformation == "" {
			return fmt.Errorf("rule %s: transformation scope requires a transformation", r.ID)
		}
	case ScopePattern:
		if len(r.Condition.Pattern) < 2 {
			return fmt.Errorf("rule %s: pattern scope requires at least two stars", r.ID)
		}
		for _, star := range r.Condition.Pattern {
			if star == "" {
				return fmt.Errorf("rule %s: pattern contains an empty star", r.ID)
			}
		}
	case ScopePalace:
		if r.Condition.Palace == "" {
			return fmt.Errorf("rule %s: palace scope requires a palace", r.ID)
		}
	}

	if r.Interpretation.Zh == "" && r.Interpretation.En == "" {
		return fmt.Errorf("rule %s: interpretation text is required", r.ID)
	}
	if _, ok := consensusRank[r.Consensus]; !ok {
		return fmt.Errorf("rule %s: unknown consensus label %q", r.ID, r.Consensus)
	}
	if r.Statistics.ConfidenceLevel < 0 || r.Statistics.ConfidenceLevel > 1 {
		return fmt.Errorf("rule %s: confidence level must be in [0,1]", r.ID)
	}
	if r.Statistics.MatchRate < 0 || r.Statistics.MatchRate > 1 {
		return fmt.Errorf("rule %s: match rate must be in [0,1]", r.ID)
	}
	return nil
}
