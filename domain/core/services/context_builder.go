package services

import (
	"fmt"
	"strings"

	"ziwei-backend/domain/config"
	"ziwei-backend/domain/core/entities"
	"ziwei-backend/domain/core/valueobjects"
)

// transformationOrder is the canonical display order of the four kinds
var transformationOrder = []string{"祿", "權", "科", "忌"}

// topicKeywords maps each conversation topic to the bilingual keywords that
// signal it. Matching is case-insensitive substring search.
var topicKeywords = map[string][]string{
	"career":       {"career", "工作", "work", "官祿", "job"},
	"relationship": {"relationship", "感情", "love", "夫妻", "partner"},
	"finance":      {"money", "財", "wealth", "金錢", "investment"},
	"health":       {"health", "健康", "medical", "疾厄"},
	"family":       {"family", "家庭", "parent", "父母"},
	"destiny":      {"destiny", "命", "fate", "運"},
	"personality":  {"personality", "性格", "character", "trait"},
}

// topicOrder fixes iteration order so extraction is deterministic
var topicOrder = []string{
	"career", "relationship", "finance", "health", "family", "destiny", "personality",
}

// topicFollowUps are the contextual follow-up suggestions per detected topic
var topicFollowUps = map[string]string{
	"career":       "What are the best career transitions for me in the next decade?",
	"relationship": "How compatible am I with someone else? (can share their birth date)",
	"finance":      "When is the best time to make major financial investments?",
	"health":       "Are there specific health concerns I should watch for?",
}

// genericFollowUps close out every suggestion list
var genericFollowUps = []string{
	"Tell me more about my personality based on this chart",
	"What challenges should I prepare for?",
}

// ContextBuilder derives conversation context from a chart: the system
// prompt, the short chart summary, topic extraction, follow-up suggestions,
// and the session quality score.
type ContextBuilder struct {
	cfg *config.DomainConfig
}

// NewContextBuilder creates a context builder with the given tunables
func NewContextBuilder(cfg *config.DomainConfig) *ContextBuilder {
	return &ContextBuilder{cfg: cfg}
}

// ChartContext renders the short chart summary injected into the system
// prompt. Charts without house data degrade to a placeholder.
func (b *ContextBuilder) ChartContext(chart *entities.Chart) string {
	if chart == nil || len(chart.Houses) == 0 {
		return "Chart data unavailable"
	}

	majorStars := strings.Join(chart.StarNames(), ", ")

	var transformations []string
	for _, kind := range transformationOrder {
		if star, ok := chart.BaseFourTransformations[kind]; ok {
			transformations = append(transformations, fmt.Sprintf("%s: %s", kind, star))
		}
	}

	var keyPalaces []string
	houses := chart.Houses
	if len(houses) > b.cfg.ContextPalaceCount {
		houses = houses[:b.cfg.ContextPalaceCount]
	}
	for _, house := range houses {
		if len(house.MajorStars) > 0 {
			keyPalaces = append(keyPalaces,
				fmt.Sprintf("%s: %s", house.Palace, strings.Join(house.MajorStars, ", ")))
		}
	}
	keyPalaceText := strings.Join(keyPalaces, "\n")
	if keyPalaceText == "" {
		keyPalaceText = "See detailed chart"
	}

	return fmt.Sprintf(`
📊 Chart Overview:
- Five Element Bureau: %s (%d)
- Life House (命宮): Index %d
- Total Major Stars: %d

⭐ Major Stars Placed:
%s

🔄 Four Transformations:
%s

🏠 Key Palaces:
%s
`,
		chart.FiveElementBureau.Name(), int(chart.FiveElementBureau),
		chart.LifeHouseIndex,
		len(chart.StarPositions),
		majorStars,
		strings.Join(transformations, ", "),
		keyPalaceText,
	)
}

// SystemPrompt builds the full narrative system prompt for a chart session
func (b *ContextBuilder) SystemPrompt(chart *entities.Chart) string {
	return fmt.Sprintf(`You are a compassionate and knowledgeable Ziwei Astrology (紫微斗數) expert using Zhongzhou School methodology.

The person you are talking to has the following birth chart:

%s

Your conversation guidelines:
1. **Be Personalized**: Always reference their specific chart, not generic advice
2. **Explain Concepts**: Use accessible language; explain Ziwei terms when first introduced
3. **Connect to Chart**: Relate every answer back to their specific stars, palaces, and patterns
4. **Be Practical**: Offer actionable insights, not vague mysticism
5. **Show Respect**: Acknowledge their free will while noting chart tendencies
6. **Use Both Languages**: Respond in both Chinese and English for key terms
7. **Be Encouraging**: Balance honest challenges with recognition of strengths

You have access to their:
- Major stars and their palaces
- Five element bureau (局)
- Four transformations (四化)
- Life house and palace configuration

When the user asks about:
- **Career/Work**: Reference their 官祿宮 (career palace) and relevant stars
- **Relationships**: Consult their 夫妻宮/子女宮 (marriage/children palaces)
- **Finance**: Look at their 財帛宮 (wealth palace) and 化祿 (wealth transformation)
- **Health**: Consider their 疾厄宮 (health palace)
- **Family**: Reference their 父母宮/兄弟宮 (family palaces)

Keep responses concise (200-400 words) but substantive. Ask clarifying questions if needed.`, b.ChartContext(chart))
}

// SummaryPrompt builds the condensation request for the older portion of a
// long conversation.
func (b *ContextBuilder) SummaryPrompt(messages []valueobjects.Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}
	return fmt.Sprintf(
		"Summarize this conversation about a Ziwei birth chart in 2-3 sentences:\n\n%s",
		strings.Join(lines, "\n\n"))
}

// ExtractTopics scans the message history for topic keywords and returns the
// detected topics in fixed order.
func (b *ContextBuilder) ExtractTopics(messages []valueobjects.Message) []string {
	var sb strings.Builder
	for _, msg := range messages {
		sb.WriteString(strings.ToLower(msg.Content))
		sb.WriteString(" ")
	}
	text := sb.String()

	topics := make([]string, 0)
	for _, topic := range topicOrder {
		for _, keyword := range topicKeywords[topic] {
			if strings.Contains(text, keyword) {
				topics = append(topics, topic)
				break
			}
		}
	}
	return topics
}

// FollowUpQuestions suggests the next questions for the session: contextual
// ones for detected topics first, then the generic pair, capped.
func (b *ContextBuilder) FollowUpQuestions(topics []string) []string {
	questions := make([]string, 0, b.cfg.MaxFollowUpQuestions)
	for _, topic := range topics {
		if question, ok := topicFollowUps[topic]; ok {
			questions = append(questions, question)
		}
	}
	questions = append(questions, genericFollowUps...)

	if len(questions) > b.cfg.MaxFollowUpQuestions {
		questions = questions[:b.cfg.MaxFollowUpQuestions]
	}
	return questions
}

// QualityScore rates a session from message volume, topic diversity, token
// efficiency, and engagement. Bounded by QualityMax.
func (b *ContextBuilder) QualityScore(messageCount, topicCount, tokensUsed int) int {
	score := capAt(messageCount*b.cfg.QualityMessageWeight, b.cfg.QualityMessageCap)
	score += capAt(topicCount*b.cfg.QualityTopicWeight, b.cfg.QualityTopicCap)

	divisor := messageCount
	if divisor < 1 {
		divisor = 1
	}
	avgTokens := tokensUsed / divisor
	if avgTokens < b.cfg.QualityLowTokenBound {
		score += b.cfg.QualityLowTokenPoints
	} else if avgTokens < b.cfg.QualityHighTokenBound {
		score += b.cfg.QualityHighTokenPoints
	}

	if messageCount > b.cfg.QualityEngagedThreshold {
		score += b.cfg.QualityEngagedPoints
	} else {
		score += b.cfg.QualityBasePoints
	}

	if score > b.cfg.QualityMax {
		score = b.cfg.QualityMax
	}
	return score
}
