package handlers

import (
	"fmt"
	"strings"

	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/services"
)

// chartSummary renders the compact chart description embedded in generator
// prompts.
func chartSummary(chart *entities.Chart) string {
	if chart == nil || len(chart.Houses) == 0 {
		return "Chart data unavailable"
	}

	transformations := make([]string, 0, len(chart.BaseFourTransformations))
	for _, kind := range []string{"祿", "權", "科", "忌"} {
		if star, ok := chart.BaseFourTransformations[kind]; ok {
			transformations = append(transformations, star)
		}
	}

	return fmt.Sprintf(`
Life Palace (命宮): House %d (index)
Five Element Bureau: %s (%d)
Total Major Stars Placed: %d
Major Stars: %s
Four Transformations: %s
`,
		chart.LifeHouseIndex,
		chart.FiveElementBureau.Name(), int(chart.FiveElementBureau),
		len(chart.StarPositions),
		strings.Join(chart.StarNames(), ", "),
		strings.Join(transformations, ", "),
	)
}

// relationshipGuidance returns the report focus for a relationship type
func relationshipGuidance(relationshipType string) string {
	switch relationshipType {
	case "romantic":
		return "Focus on emotional connection, attraction, and long-term partnership potential. " +
			"Consider marriage compatibility, family building, and shared life goals."
	case "business":
		return "Evaluate business partnership potential, complementary skills, decision-making styles, " +
			"and financial compatibility. Consider how they handle conflict and risk."
	case "family":
		return "Assess family dynamics, generational differences, support structures, and long-term relationships. " +
			"Consider caregiving potential and family harmony."
	case "friendship":
		return "Evaluate friendship longevity, shared interests, communication ease, and mutual support patterns. " +
			"Consider how they handle disagreements."
	}
	return "Assess general relationship dynamics and compatibility."
}

// compatibilityPrompt builds the narrative report request for a scored pair
func compatibilityPrompt(chart1, chart2 *entities.Chart, relationshipType string, patterns *services.CompatibilityPatterns, score int) string {
	harmonious := strings.Join(patterns.Harmonious, ", ")
	if harmonious == "" {
		harmonious = "None detected"
	}
	conflicting := strings.Join(patterns.Conflicting, ", ")
	if conflicting == "" {
		conflicting = "None detected"
	}

	return fmt.Sprintf(`You are a Ziwei Astrology expert analyzing relationship compatibility.

Chart 1 Summary:
%s

Chart 2 Summary:
%s

Relationship Type: %s

Initial Compatibility Assessment:
- Calculated Score: %d/100
- Harmonious Elements Found: %s
- Conflicting Elements Found: %s

Using Zhongzhou School methodology, provide:

1. **Overall Compatibility**: Assess the relationship potential (0-100 scale rationale)
2. **Strengths**: What makes this pairing work well? Which specific stars/patterns support the relationship?
3. **Challenges**: What obstacles or tensions might arise? How can they be addressed?
4. **Communication Style**: How do these two people likely communicate? Any blind spots?
5. **Life Stages**: Are certain periods better for the relationship? When might tensions arise?
6. **Advice for Success**: 3-4 specific recommendations for making this relationship thrive
7. **Timeline**: Major relationship milestones or transition periods to watch for

For %s relationship specifically:
%s

Be balanced and honest - not every pairing needs to be perfect, but potential areas of friction should be addressed.`,
		chartSummary(chart1), chartSummary(chart2),
		relationshipType, score, harmonious, conflicting,
		relationshipType, relationshipGuidance(relationshipType))
}

// guidancePrompt builds the structured life guidance request for an enriched
// chart. The response is parsed as JSON sections.
func guidancePrompt(chart *entities.Chart, interpretations []services.MatchedInterpretation) string {
	return fmt.Sprintf(`You are an expert Ziwei Astrology (紫微斗數) interpreter using Zhongzhou School methodology.

A user's birth chart has been analyzed using traditional rule-based matching. Your task is to:
1. Synthesize the rule-based interpretations into coherent, nuanced insights
2. Add contextual depth that goes beyond individual rules
3. Identify patterns and relationships between different interpretations
4. Provide practical, actionable guidance

Birth Chart Summary:
%s

Rule-Based Interpretations Found:
%s

Respond with a JSON object holding exactly these fields:
- "synthesis": a coherent narrative combining the interpretations (3-5 paragraphs)
- "key_patterns": an array of patterns that emerge across the interpretations
- "trajectory": what this chart suggests about the person's life path
- "advice": what this person should focus on or be aware of

Use both Chinese and English where appropriate. Be specific to this chart, not generic.`,
		chartSummary(chart), formatInterpretations(interpretations))
}

func formatInterpretations(interpretations []services.MatchedInterpretation) string {
	if len(interpretations) == 0 {
		return "No interpretations available"
	}
	lines := make([]string, 0, len(interpretations))
	for i, interp := range interpretations {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s (confidence: %.0f%%)",
			i+1, interp.Dimension, interp.Text, interp.Confidence*100))
	}
	return strings.Join(lines, "\n")
}
